package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

type PointsAwardBody struct {
	Activity string `json:"activity"`
}

// PointsAward handles POST /v1/me/points.
type PointsAward struct {
	Command command.Command[command.AwardPointsRequest, domain.PointsAward]
}

func (c PointsAward) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body PointsAwardBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	award, err := c.Command.Execute(ctx, command.AwardPointsRequest{
		UserID:   userID,
		Activity: domain.Activity(body.Activity),
	})
	if errors.Is(err, domain.ErrUnknownActivity) {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to award points", "error", err, "activity", body.Activity)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, award)
}
