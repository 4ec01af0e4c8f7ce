package app

import (
	"context"
	"fmt"
	"time"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

// DefaultPersonalizedFeedConfig returns the default tunables of the feed pipeline.
func DefaultPersonalizedFeedConfig() command.PersonalizedFeedConfig {
	return command.PersonalizedFeedConfig{
		HistoryWindow:       30 * 24 * time.Hour,
		CandidateMultiplier: 3,
		DefaultLimit:        20,
		MaxLimit:            100,
		DefaultDiversity:    domain.DiversityMedium,
		HintTimeout:         5 * time.Second,
		HintCacheTTL:        time.Hour,
	}
}

// PersonalizedFeedConfigFromEnv applies FEED_* overrides to the defaults.
func PersonalizedFeedConfigFromEnv(ctx context.Context) command.PersonalizedFeedConfig {
	cfg := DefaultPersonalizedFeedConfig()
	cfg.HistoryWindow = GetEnvAsDurationOr(ctx, "FEED_HISTORY_WINDOW", cfg.HistoryWindow)
	cfg.CandidateMultiplier = GetEnvAsIntOr(ctx, "FEED_CANDIDATE_MULTIPLIER", cfg.CandidateMultiplier)
	cfg.DefaultLimit = GetEnvAsIntOr(ctx, "FEED_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.HintTimeout = GetEnvAsDurationOr(ctx, "FEED_HINT_TIMEOUT", cfg.HintTimeout)
	cfg.HintCacheTTL = GetEnvAsDurationOr(ctx, "FEED_HINT_CACHE_TTL", cfg.HintCacheTTL)

	if s := GetEnvAsStringOr(ctx, "FEED_DEFAULT_DIVERSITY", ""); s != "" {
		level, err := domain.ParseDiversityLevel(s)
		if err != nil {
			logger := domain.LoggerFromContext(ctx)
			logger.ErrorContext(ctx, "unable to parse environment variable as diversity level",
				"variable_name", "FEED_DEFAULT_DIVERSITY",
				"variable_value", s,
			)
			panic(fmt.Sprintf("unable to parse environment variable as diversity level [FEED_DEFAULT_DIVERSITY]: %s", s))
		}
		cfg.DefaultDiversity = level
	}

	return cfg
}

// DefaultWarmFeedsConfig returns the default config for background warming.
func DefaultWarmFeedsConfig() command.WarmFeedsConfig {
	return command.WarmFeedsConfig{
		ActiveWithin: 7 * 24 * time.Hour,
		Limit:        20,
		Concurrency:  4,
	}
}

func WarmFeedsConfigFromEnv(ctx context.Context) command.WarmFeedsConfig {
	cfg := DefaultWarmFeedsConfig()
	cfg.ActiveWithin = GetEnvAsDurationOr(ctx, "WARM_FEEDS_ACTIVE_WITHIN", cfg.ActiveWithin)
	cfg.Limit = GetEnvAsIntOr(ctx, "WARM_FEEDS_LIMIT", cfg.Limit)
	cfg.Concurrency = GetEnvAsIntOr(ctx, "WARM_FEEDS_CONCURRENCY", cfg.Concurrency)
	return cfg
}
