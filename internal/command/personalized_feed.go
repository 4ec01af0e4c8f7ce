package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
	"github.com/nairobell/feed/internal/metrics"
)

// PersonalizedFeedConfig holds the tunables of the feed pipeline.
type PersonalizedFeedConfig struct {
	// HistoryWindow is how far back read events are considered.
	HistoryWindow time.Duration

	// CandidateMultiplier scales the requested limit to size the candidate
	// pool, leaving room for the diversity caps to skip items.
	CandidateMultiplier int

	DefaultLimit int
	MaxLimit     int

	DefaultDiversity domain.DiversityLevel

	// HintTimeout bounds a single call to the hint provider.
	HintTimeout  time.Duration
	HintCacheTTL time.Duration
}

type PersonalizedFeedRequest struct {
	UserID string
	Limit  int

	// Diversity overrides the stored preference when set.
	Diversity domain.DiversityLevel

	// Filters override the stored preferred categories and countries.
	Filters domain.ItemFilters

	SkipHint bool
}

type PersonalizedFeedResponse struct {
	domain.PersonalizedFeed

	DiversityLevel domain.DiversityLevel `json:"diversity_level"`
	Candidates     int                   `json:"candidates"`
	HintApplied    bool                  `json:"hint_applied"`
}

// PersonalizedFeed builds a reader's ranked feed from recent items, their
// reading history and, when available, an external relevance hint.
type PersonalizedFeed struct {
	Preferences datasources.PreferencesGetter
	Candidates  datasources.CandidateItemLister
	History     datasources.ReadEventLister
	Hints       datasources.HintProvider
	Cache       datasources.Cache
	Config      PersonalizedFeedConfig
	Clock       Clock
}

// NewPersonalizedFeed creates a properly initialized PersonalizedFeed command.
func NewPersonalizedFeed(
	preferences datasources.PreferencesGetter,
	candidates datasources.CandidateItemLister,
	history datasources.ReadEventLister,
	hints datasources.HintProvider,
	cache datasources.Cache,
	config PersonalizedFeedConfig,
) *PersonalizedFeed {
	return &PersonalizedFeed{
		Preferences: preferences,
		Candidates:  candidates,
		History:     history,
		Hints:       hints,
		Cache:       cache,
		Config:      config,
	}
}

func (c *PersonalizedFeed) Execute(ctx context.Context, req PersonalizedFeedRequest) (PersonalizedFeedResponse, error) {
	logger := domain.LoggerFromContext(ctx).With("user_id", req.UserID)
	ctx = domain.ContextWithLogger(ctx, logger)
	now := c.Clock.Now()

	limit := c.limit(req.Limit)

	prefs, err := c.Preferences.GetUserPreferences(ctx, req.UserID)
	if err != nil {
		logger.WarnContext(ctx, "loading preferences failed, using defaults", "error", err)
		prefs = domain.DefaultUserPreferences()
	}

	level := req.Diversity
	if level == "" {
		level = prefs.DiversityLevel
	}
	if level == "" {
		level = c.Config.DefaultDiversity
	}

	filters := req.Filters
	if len(filters.Categories) == 0 {
		filters.Categories = prefs.PreferredCategories
	}
	if len(filters.Countries) == 0 {
		filters.Countries = prefs.PreferredCountries
	}

	candidateLimit := limit * max(1, c.Config.CandidateMultiplier)
	candidates, err := c.Candidates.ListCandidateItems(ctx, filters, candidateLimit)
	if err != nil {
		return PersonalizedFeedResponse{}, fmt.Errorf("listing candidate items: %w", err)
	}

	events, err := c.History.ListReadEvents(ctx, req.UserID, now.Add(-c.Config.HistoryWindow))
	if err != nil {
		return PersonalizedFeedResponse{}, fmt.Errorf("listing read events: %w", err)
	}

	profile := domain.AnalyzeHistory(events, domain.HistoryOptions{Now: now})

	var hint []string
	if req.SkipHint || len(candidates) == 0 {
		metrics.RecordHint(metrics.HintSkipped)
	} else {
		hint = c.hint(ctx, HintCacheKey(req.UserID, filters, candidateLimit), profile, candidates)
	}

	feed := domain.PersonalizeWithProfile(candidates, profile, hint, domain.PersonalizeOptions{
		Diversity:    level,
		MinimumCount: limit,
		Limit:        limit,
	}, now)

	metrics.RecordDiscardedItems(feed.Dropped, feed.Duplicates)
	if feed.Backfilled {
		metrics.RecordBackfill()
	}

	logger.DebugContext(ctx, "built personalized feed",
		"candidates", len(candidates),
		"events", len(events),
		"items", len(feed.Items),
		"diversity", level)

	return PersonalizedFeedResponse{
		PersonalizedFeed: feed,
		DiversityLevel:   level,
		Candidates:       len(candidates),
		HintApplied:      len(hint) > 0,
	}, nil
}

func (c *PersonalizedFeed) limit(requested int) int {
	limit := requested
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}
	if c.Config.MaxLimit > 0 && limit > c.Config.MaxLimit {
		limit = c.Config.MaxLimit
	}
	return max(1, limit)
}

// hint returns the hint provider's suggested order, read through the cache.
// Failures are logged and yield no hint.
func (c *PersonalizedFeed) hint(
	ctx context.Context,
	key string,
	profile domain.UserProfile,
	candidates []domain.Item,
) []string {
	logger := domain.LoggerFromContext(ctx)

	cached, err := c.Cache.Get(ctx, key)
	switch {
	case err == nil:
		var ids []string
		if err := json.Unmarshal(cached, &ids); err == nil {
			metrics.RecordHint(metrics.HintCacheHit)
			return ids
		}
		logger.WarnContext(ctx, "discarding unreadable cached hint", "key", key)
	case !errors.Is(err, datasources.ErrCacheMiss):
		logger.WarnContext(ctx, "reading hint cache failed", "error", err)
	}

	hintCtx := ctx
	if c.Config.HintTimeout > 0 {
		var cancel context.CancelFunc
		hintCtx, cancel = context.WithTimeout(ctx, c.Config.HintTimeout)
		defer cancel()
	}

	ids, err := c.Hints.SuggestOrder(hintCtx, profile, candidates)
	if err != nil {
		logger.WarnContext(ctx, "hint provider failed, ranking without hint", "error", err)
		metrics.RecordHint(metrics.HintFailed)
		return nil
	}
	metrics.RecordHint(metrics.HintFetched)

	if len(ids) > 0 && c.Config.HintCacheTTL > 0 {
		encoded, err := json.Marshal(ids)
		if err == nil {
			err = c.Cache.Set(ctx, key, encoded, c.Config.HintCacheTTL)
		}
		if err != nil {
			logger.WarnContext(ctx, "writing hint cache failed", "error", err)
		}
	}

	return ids
}

// HintCacheKeyPrefix is shared by every cached hint of a user, so all of them
// can be dropped when the user's history changes.
func HintCacheKeyPrefix(userID string) string {
	return "hint:" + userID + ":"
}

// HintCacheKey identifies a cached hint by user, candidate filters and
// candidate pool size. Hints for different pool sizes rank different lists.
func HintCacheKey(userID string, filters domain.ItemFilters, candidateLimit int) string {
	parts := []string{
		strconv.Itoa(candidateLimit),
		canonicalList(filters.Categories),
		canonicalList(filters.Countries),
		canonicalList(filters.OnlySources),
		canonicalList(filters.ExceptSources),
	}
	if !filters.PublishedFrom.IsZero() {
		parts = append(parts, filters.PublishedFrom.UTC().Format(time.RFC3339))
	}

	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return HintCacheKeyPrefix(userID) + hex.EncodeToString(sum[:8])
}

func canonicalList(values []string) string {
	sorted := make([]string, 0, len(values))
	for _, v := range values {
		sorted = append(sorted, strings.ToLower(strings.TrimSpace(v)))
	}
	slices.Sort(sorted)
	return strings.Join(slices.Compact(sorted), ",")
}
