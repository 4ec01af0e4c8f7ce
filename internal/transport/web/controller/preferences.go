package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

// PreferencesGet handles GET /v1/me/preferences.
type PreferencesGet struct {
	Getter datasources.PreferencesGetter
}

func (c PreferencesGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	prefs, err := c.Getter.GetUserPreferences(ctx, userID)
	if err != nil {
		logger.ErrorContext(ctx, "unable to get preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, prefs)
}

// PreferencesUpdate handles PUT /v1/me/preferences.
type PreferencesUpdate struct {
	Command command.Command[command.UpdatePreferencesRequest, domain.UserPreferences]
}

func (c PreferencesUpdate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body domain.UserPreferences
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse request body", "error", err)
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	prefs, err := c.Command.Execute(ctx, command.UpdatePreferencesRequest{
		UserID:      userID,
		Preferences: body,
	})
	if errors.Is(err, command.ErrInvalidPreferences) {
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to update preferences", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, prefs)
}
