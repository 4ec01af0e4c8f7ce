package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type ItemReadBody struct {
	Completed        bool    `json:"completed"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
	Interacted       bool    `json:"interacted"`
	Local            bool    `json:"local"`
}

// ItemRead handles POST /v1/items/{item_id}/read.
type ItemRead struct {
	Command command.Command[command.RecordReadRequest, domain.PointsAward]
}

func (c ItemRead) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	itemID := mux.Vars(r)["item_id"]
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var body ItemReadBody
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.WarnContext(ctx, "unable to parse request body", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid request body")
			return
		}
	}
	if body.TimeSpentSeconds < 0 {
		writeError(ctx, w, http.StatusBadRequest, "time_spent_seconds must not be negative")
		return
	}

	award, err := c.Command.Execute(ctx, command.RecordReadRequest{
		UserID:           userID,
		ItemID:           itemID,
		Completed:        body.Completed,
		TimeSpentSeconds: body.TimeSpentSeconds,
		Interacted:       body.Interacted,
		Local:            body.Local,
	})
	if errors.Is(err, datasources.ErrNotFound) {
		writeError(ctx, w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to record read", "error", err, "item_id", itemID)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, award)
}
