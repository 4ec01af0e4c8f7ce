package command

import (
	"context"
	"fmt"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type RecordReadRequest struct {
	UserID           string
	ItemID           string
	Completed        bool
	TimeSpentSeconds float64
	Interacted       bool

	// Local marks a read of news about the reader's own country, which
	// earns more points.
	Local bool
}

// RecordRead stores a read event, drops the reader's cached hints since
// their history changed, and awards points for the read.
type RecordRead struct {
	Items       datasources.ItemGetter
	Recorder    datasources.ReadEventRecorder
	Invalidator datasources.CacheInvalidator
	AwardCmd    Command[AwardPointsRequest, domain.PointsAward]
	Clock       Clock
}

func NewRecordRead(
	items datasources.ItemGetter,
	recorder datasources.ReadEventRecorder,
	invalidator datasources.CacheInvalidator,
	awardCmd Command[AwardPointsRequest, domain.PointsAward],
) *RecordRead {
	return &RecordRead{
		Items:       items,
		Recorder:    recorder,
		Invalidator: invalidator,
		AwardCmd:    awardCmd,
	}
}

func (c *RecordRead) Execute(ctx context.Context, req RecordReadRequest) (domain.PointsAward, error) {
	logger := domain.LoggerFromContext(ctx)

	item, err := c.Items.GetItem(ctx, req.ItemID)
	if err != nil {
		return domain.PointsAward{}, fmt.Errorf("getting item: %w", err)
	}

	event := domain.ReadEvent{
		ItemID:           item.ID,
		ItemCategory:     item.Category,
		ItemCountries:    item.CountryFocus,
		ItemSource:       item.Source,
		ReadAt:           c.Clock.Now(),
		Completed:        req.Completed,
		TimeSpentSeconds: max(0, req.TimeSpentSeconds),
		Interacted:       req.Interacted,
	}
	if err := c.Recorder.RecordReadEvent(ctx, req.UserID, event); err != nil {
		return domain.PointsAward{}, fmt.Errorf("recording read event: %w", err)
	}

	if _, err := c.Invalidator.DeletePrefix(ctx, HintCacheKeyPrefix(req.UserID)); err != nil {
		logger.WarnContext(ctx, "invalidating cached hints failed", "user_id", req.UserID, "error", err)
	}

	activity := domain.ActivityArticleRead
	if req.Local {
		activity = domain.ActivityLocalArticleRead
	}

	award, err := c.AwardCmd.Execute(ctx, AwardPointsRequest{UserID: req.UserID, Activity: activity})
	if err != nil {
		return domain.PointsAward{}, fmt.Errorf("awarding read points: %w", err)
	}

	return award, nil
}
