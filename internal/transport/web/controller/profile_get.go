package controller

import (
	"net/http"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

type ProfileGet struct {
	Command command.Command[command.AnalyzeUserHistoryRequest, domain.UserProfile]
}

func (c ProfileGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	profile, err := c.Command.Execute(ctx, command.AnalyzeUserHistoryRequest{UserID: userID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to analyze user history", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, profile)
}
