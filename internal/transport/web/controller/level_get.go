package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

// UserLevelGet handles GET /v1/me/level.
type UserLevelGet struct {
	Command command.Command[command.GetUserLevelRequest, command.GetUserLevelResponse]
}

func (c UserLevelGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	level, err := c.Command.Execute(ctx, command.GetUserLevelRequest{UserID: userID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get user level", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, level)
}

// LevelLookup handles GET /v1/levels/{points}, mapping any point total onto
// the level ladder.
type LevelLookup struct {
	CacheMaxAge time.Duration
}

func (c LevelLookup) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	points, err := strconv.ParseFloat(mux.Vars(r)["points"], 64)
	if err != nil {
		writeError(ctx, w, http.StatusBadRequest, "points must be a number")
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, domain.LevelFor(points))
}
