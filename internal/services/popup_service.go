package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/store"
	"go.uber.org/zap"
)

// popupScope is the storage scope for popup state; popups are back-office
// data shared by every user.
const popupScope = "global"

// PopupService stores per-type popup configuration and the single armed
// popup type. Whether a popup actually shows (date range, frequency) is
// decided by the display layer; this service only persists configuration,
// but rejects inverted date ranges at write time.
type PopupService struct {
	kv     store.KV
	logger *logging.SafeLogger
}

// NewPopupService creates a popup manager over the given bridge
func NewPopupService(kv store.KV, logger *logging.SafeLogger) *PopupService {
	return &PopupService{kv: kv, logger: logger}
}

// Configs returns the stored per-type config map (empty map when unset)
func (s *PopupService) Configs(ctx context.Context) (map[models.PopupType]models.PopupConfig, error) {
	raw, found, err := s.kv.Read(ctx, store.Key(popupScope, models.KeyPopupConfig))
	if err != nil {
		return nil, fmt.Errorf("read popup configs: %w", err)
	}
	if !found {
		return map[models.PopupType]models.PopupConfig{}, nil
	}

	var configs map[models.PopupType]models.PopupConfig
	if err := json.Unmarshal([]byte(raw), &configs); err != nil {
		s.logger.Warn("stored popup configs are corrupt, resetting", zap.Error(err))
		return map[models.PopupType]models.PopupConfig{}, nil
	}
	return configs, nil
}

// Merge validates and merges partial per-type updates into the stored map,
// persisting the whole map.
func (s *PopupService) Merge(ctx context.Context, partial map[models.PopupType]models.PopupConfig) (map[models.PopupType]models.PopupConfig, error) {
	for popupType, config := range partial {
		if !popupType.Valid() {
			return nil, fmt.Errorf("unknown popup type %q", popupType)
		}
		if err := config.Validate(); err != nil {
			return nil, fmt.Errorf("popup %s: %w", popupType, err)
		}
	}

	configs, err := s.Configs(ctx)
	if err != nil {
		return nil, err
	}
	for popupType, config := range partial {
		configs[popupType] = config
	}

	raw, err := json.Marshal(configs)
	if err != nil {
		return nil, fmt.Errorf("serialize popup configs: %w", err)
	}
	if err := s.kv.Write(ctx, store.Key(popupScope, models.KeyPopupConfig), string(raw)); err != nil {
		return nil, fmt.Errorf("persist popup configs: %w", err)
	}

	s.logger.Info("merged popup configs", zap.Int("updated", len(partial)))
	return configs, nil
}

// Active returns the armed popup type, or nil when none is armed
func (s *PopupService) Active(ctx context.Context) (*models.PopupType, error) {
	raw, found, err := s.kv.Read(ctx, store.Key(popupScope, models.KeyActivePopup))
	if err != nil {
		return nil, fmt.Errorf("read active popup: %w", err)
	}
	if !found || raw == "" {
		return nil, nil
	}

	popupType := models.PopupType(raw)
	if !popupType.Valid() {
		s.logger.Warn("stored active popup has unknown type, ignoring",
			zap.String("type", raw))
		return nil, nil
	}
	return &popupType, nil
}

// SetActive arms one popup type, or clears the selection when popupType is
// nil. At most one popup type is ever armed.
func (s *PopupService) SetActive(ctx context.Context, popupType *models.PopupType) error {
	key := store.Key(popupScope, models.KeyActivePopup)

	if popupType == nil {
		if err := s.kv.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear active popup: %w", err)
		}
		s.logger.Info("cleared active popup")
		return nil
	}

	if !popupType.Valid() {
		return fmt.Errorf("unknown popup type %q", *popupType)
	}
	if err := s.kv.Write(ctx, key, string(*popupType)); err != nil {
		return fmt.Errorf("persist active popup: %w", err)
	}

	s.logger.Info("armed popup", zap.String("type", string(*popupType)))
	return nil
}
