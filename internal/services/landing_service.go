package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/flortune/app-settings/internal/config"
	"github.com/flortune/app-settings/internal/logging"
	"github.com/flortune/app-settings/internal/models"
	"github.com/flortune/app-settings/internal/observability"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const landingCacheKey = "landing_content:current"

// LandingService manages the landing-page marketing copy: Mongo is the
// source of truth, Redis a read-through cache invalidated on update.
type LandingService struct {
	logger *logging.SafeLogger
}

// NewLandingService creates a landing content service
func NewLandingService(logger *logging.SafeLogger) *LandingService {
	return &LandingService{logger: logger}
}

// Get returns the current landing content, falling back to defaults when
// nothing was ever saved.
func (s *LandingService) Get(ctx context.Context) (*models.LandingPageContent, error) {
	// Check cache
	if config.Redis != nil {
		cached, err := config.Redis.Get(ctx, landingCacheKey).Result()
		if err == nil && cached != "" {
			var content models.LandingPageContent
			unmarshalErr := json.Unmarshal([]byte(cached), &content)
			if unmarshalErr == nil {
				observability.CacheHits.WithLabelValues("landing_content").Inc()
				s.logger.Debug("landing content cache hit")
				return &content, nil
			}
			s.logger.Warn("failed to unmarshal cached landing content", zap.Error(unmarshalErr))
		}
	}

	collection := config.MongoDB.Collection(config.AppConfig.LandingContentCollection)

	var content models.LandingPageContent
	err := collection.FindOne(ctx, bson.M{"slug": models.LandingContentSlug}).Decode(&content)
	if err == mongo.ErrNoDocuments {
		return defaultLandingContent(), nil
	}
	if err != nil {
		s.logger.Error("failed to get landing content", zap.Error(err))
		return nil, fmt.Errorf("get landing content: %w", err)
	}

	// Cache the result
	if config.Redis != nil {
		if raw, err := json.Marshal(content); err == nil {
			config.Redis.Set(ctx, landingCacheKey, string(raw), config.AppConfig.LandingContentCacheTTL)
		}
	}

	return &content, nil
}

// Update replaces the landing content wholesale and invalidates the cache
func (s *LandingService) Update(ctx context.Context, content models.LandingPageContent) (*models.LandingPageContent, error) {
	content.Slug = models.LandingContentSlug
	content.UpdatedAt = time.Now()

	collection := config.MongoDB.Collection(config.AppConfig.LandingContentCollection)
	opts := options.Replace().SetUpsert(true)

	if _, err := collection.ReplaceOne(ctx, bson.M{"slug": models.LandingContentSlug}, content, opts); err != nil {
		observability.DatabaseOperations.WithLabelValues("replace", "error").Inc()
		s.logger.Error("failed to update landing content", zap.Error(err))
		return nil, fmt.Errorf("update landing content: %w", err)
	}
	observability.DatabaseOperations.WithLabelValues("replace", "success").Inc()

	s.invalidateCache(ctx)
	s.logger.Info("updated landing content")
	return &content, nil
}

// invalidateCache drops the cached landing content
func (s *LandingService) invalidateCache(ctx context.Context) {
	if config.Redis == nil {
		return
	}
	if err := config.Redis.Del(ctx, landingCacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate landing content cache", zap.Error(err))
	}
}

// defaultLandingContent is served before the back-office ever saves copy
func defaultLandingContent() *models.LandingPageContent {
	return &models.LandingPageContent{
		Slug:            models.LandingContentSlug,
		HeroTitle:       "Your finances, in bloom",
		HeroSubtitle:    "Track transactions, budgets and goals in one place.",
		FeaturesTitle:   "Everything a growing business needs",
		PricingTitle:    "Simple pricing",
		PricingSubtitle: "Start free, upgrade when you grow.",
		CTALabel:        "Get started",
		FooterNote:      "Flortune - personal finance and small business management.",
	}
}
