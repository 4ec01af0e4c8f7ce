package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type ItemGet struct {
	Getter      datasources.ItemGetter
	CacheMaxAge time.Duration
}

func (c ItemGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	itemID := mux.Vars(r)["item_id"]
	if itemID == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	item, err := c.Getter.GetItem(ctx, itemID)
	if errors.Is(err, datasources.ErrNotFound) {
		writeError(ctx, w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to get item", "error", err, "item_id", itemID)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, item)
}
