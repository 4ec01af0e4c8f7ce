package datasources

import (
	"context"

	"github.com/nairobell/feed/internal/domain"
)

// HintProvider asks an external relevance service how it would order the
// candidate items for a reader. The result is a list of item IDs, best first.
// Providers may omit items and may return IDs that are not candidates.
type HintProvider interface {
	SuggestOrder(ctx context.Context, profile domain.UserProfile, items []domain.Item) ([]string, error)
}

// NullHintProvider never has an opinion, so every item gets the neutral hint
// score.
type NullHintProvider struct{}

var _ HintProvider = NullHintProvider{}

func (NullHintProvider) SuggestOrder(_ context.Context, _ domain.UserProfile, _ []domain.Item) ([]string, error) {
	return nil, nil
}

// SimilarItem is an item ID matched by vector similarity.
type SimilarItem struct {
	ID    string
	Score float32
}

// SimilarItemsByVectorLister finds the items nearest to a query vector.
// When onlyIDs is non-empty the search is restricted to those items.
type SimilarItemsByVectorLister interface {
	ListSimilarItemsByVector(ctx context.Context, vector []float32, onlyIDs []string, limit int) ([]SimilarItem, error)
}

// NullSimilarItemsLister finds nothing.
type NullSimilarItemsLister struct{}

var _ SimilarItemsByVectorLister = NullSimilarItemsLister{}

func (NullSimilarItemsLister) ListSimilarItemsByVector(_ context.Context, _ []float32, _ []string, _ int) ([]SimilarItem, error) {
	return nil, nil
}
