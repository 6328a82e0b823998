package services

import (
	"context"
	"fmt"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// defaultHistoryLimit caps history reads when the caller asks for nothing
// specific.
const defaultHistoryLimit = 50

// HistoryService appends an audit record for every settings write. History
// is best-effort: a failed append never blocks the write that triggered it.
type HistoryService struct {
	logger *logging.SafeLogger
}

// NewHistoryService creates a history recorder
func NewHistoryService(logger *logging.SafeLogger) *HistoryService {
	return &HistoryService{logger: logger}
}

// Record appends one change record. Failures are logged and swallowed.
func (s *HistoryService) Record(ctx context.Context, scope, key, previous, value string) {
	if config.MongoDB == nil {
		return
	}

	change := models.SettingChange{
		Scope:     scope,
		Key:       key,
		Previous:  previous,
		Value:     value,
		Timestamp: time.Now(),
	}

	collection := config.MongoDB.Collection(config.AppConfig.SettingHistoryCollection)
	if _, err := collection.InsertOne(ctx, change); err != nil {
		observability.DatabaseOperations.WithLabelValues("insert", "error").Inc()
		s.logger.Warn("failed to record setting change",
			zap.String("scope", scope),
			zap.String("key", key),
			zap.Error(err))
		return
	}
	observability.DatabaseOperations.WithLabelValues("insert", "success").Inc()
}

// List returns the newest change records for scope, newest first
func (s *HistoryService) List(ctx context.Context, scope string, limit int) ([]models.SettingChange, error) {
	if config.MongoDB == nil {
		return []models.SettingChange{}, nil
	}
	if limit <= 0 || limit > 500 {
		limit = defaultHistoryLimit
	}

	collection := config.MongoDB.Collection(config.AppConfig.SettingHistoryCollection)
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, bson.M{"scope": scope}, opts)
	if err != nil {
		return nil, fmt.Errorf("list setting history: %w", err)
	}
	defer cursor.Close(ctx)

	changes := []models.SettingChange{}
	if err := cursor.All(ctx, &changes); err != nil {
		return nil, fmt.Errorf("decode setting history: %w", err)
	}
	return changes, nil
}
