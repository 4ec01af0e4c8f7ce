package command

import (
	"context"
	"fmt"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
	"github.com/nairobell/feed/internal/metrics"
)

type AwardPointsRequest struct {
	UserID   string
	Activity domain.Activity
}

// AwardPoints credits an activity to a reader's points ledger and grants the
// level-up bonus when the award crosses into a new level.
type AwardPoints struct {
	Ledger datasources.PointsLedger
}

func NewAwardPoints(ledger datasources.PointsLedger) *AwardPoints {
	return &AwardPoints{Ledger: ledger}
}

func (c *AwardPoints) Execute(ctx context.Context, req AwardPointsRequest) (domain.PointsAward, error) {
	points, err := domain.PointsForActivity(req.Activity)
	if err != nil {
		return domain.PointsAward{}, err
	}

	total, err := c.Ledger.AddPoints(ctx, req.UserID, points)
	if err != nil {
		return domain.PointsAward{}, fmt.Errorf("adding activity points: %w", err)
	}

	before := domain.LevelFor(float64(total - points))
	after := domain.LevelFor(float64(total))

	award := domain.PointsAward{
		Activity:    req.Activity,
		Points:      points,
		TotalPoints: total,
		Level:       after,
	}

	if after.Level > before.Level {
		award.LeveledUp = true
		award.Bonus = domain.LevelUpBonus(after.Level)

		total, err = c.Ledger.AddPoints(ctx, req.UserID, award.Bonus)
		if err != nil {
			return domain.PointsAward{}, fmt.Errorf("adding level-up bonus: %w", err)
		}
		award.TotalPoints = total
		award.Level = domain.LevelFor(float64(total))

		domain.LoggerFromContext(ctx).InfoContext(ctx, "user leveled up",
			"user_id", req.UserID,
			"level", after.Level,
			"bonus", award.Bonus)
	}

	metrics.RecordPoints(string(req.Activity), award.Points+award.Bonus, award.LeveledUp)

	return award, nil
}
