package controller

import (
	"encoding/json"
	"net/http"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

const (
	maxSearchTextBytes = 10 * 1024
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// ItemSearch handles POST /v1/items/search, finding items semantically close
// to free text.
type ItemSearch struct {
	Embedder   datasources.Embedder
	Similarity datasources.SimilarItemsByVectorLister
	Fetcher    datasources.ItemsFetcher
}

type itemSearchRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

func (c ItemSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req itemSearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxSearchTextBytes+1024)).Decode(&req); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Text == "" || len(req.Text) > maxSearchTextBytes {
		writeError(ctx, w, http.StatusBadRequest, "text must be between 1 and 10240 bytes")
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	limit = min(limit, maxSearchLimit)

	vector, err := c.Embedder.EmbedText(ctx, req.Text)
	if err != nil {
		logger.ErrorContext(ctx, "unable to embed text", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if vector == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	similar, err := c.Similarity.ListSimilarItemsByVector(ctx, vector, nil, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to find similar items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(similar))
	for _, s := range similar {
		ids = append(ids, s.ID)
	}

	items, err := c.Fetcher.FetchItemsByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch items", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if items == nil {
		items = []domain.Item{}
	}

	writeJSON(ctx, w, http.StatusOK, ItemsListResponse{
		Data: items,
		Metadata: ItemsListMetadata{
			Page:       1,
			PageSize:   limit,
			TotalItems: int64(len(items)),
		},
	})
}
