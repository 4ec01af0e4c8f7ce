package controller

import (
	"net/http"
	"time"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

type ItemsList struct {
	Lister interface {
		datasources.LatestItemLister
		datasources.MatchingItemCounter
	}
	CacheMaxAge time.Duration
}

type ItemsListResponse struct {
	Data     []domain.Item     `json:"data"`
	Metadata ItemsListMetadata `json:"metadata"`
}

type ItemsListMetadata struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalItems int64 `json:"total_items"`
}

func (c ItemsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filters, err := itemFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse item filters in query string", "error", err)
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse pagination in query string", "error", err)
		writeError(ctx, w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := c.Lister.ListLatestItems(ctx, filters, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := c.Lister.TotalMatchingItems(ctx, filters)
	if err != nil {
		logger.ErrorContext(ctx, "unable to count items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []domain.Item{}
	}

	setCacheMaxAge(w, c.CacheMaxAge)
	writeJSON(ctx, w, http.StatusOK, ItemsListResponse{
		Data: items,
		Metadata: ItemsListMetadata{
			Page:       page,
			PageSize:   pageSize,
			TotalItems: total,
		},
	})
}
