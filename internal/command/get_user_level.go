package command

import (
	"context"
	"fmt"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type GetUserLevelRequest struct {
	UserID string
}

type GetUserLevelResponse struct {
	TotalPoints int64        `json:"total_points"`
	Level       domain.Level `json:"level"`
}

type GetUserLevel struct {
	Points datasources.PointsGetter
}

func NewGetUserLevel(points datasources.PointsGetter) *GetUserLevel {
	return &GetUserLevel{Points: points}
}

func (c *GetUserLevel) Execute(ctx context.Context, req GetUserLevelRequest) (GetUserLevelResponse, error) {
	total, err := c.Points.GetPoints(ctx, req.UserID)
	if err != nil {
		return GetUserLevelResponse{}, fmt.Errorf("getting points total: %w", err)
	}

	return GetUserLevelResponse{
		TotalPoints: total,
		Level:       domain.LevelFor(float64(total)),
	}, nil
}
