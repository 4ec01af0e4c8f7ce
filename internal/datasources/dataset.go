package datasources

import (
	"context"
	"errors"

	"github.com/nairobell/feed/internal/domain"
)

var ErrNotFound = errors.New("not found")

type DatasetRepository interface {
	LatestItemLister
	CandidateItemLister
	ItemGetter
	ItemsFetcher
	MatchingItemCounter
}

// LatestItemLister lists items newest first, one page at a time.
type LatestItemLister interface {
	ListLatestItems(ctx context.Context, filters domain.ItemFilters, page, pageSize int) ([]domain.Item, error)
}

// CandidateItemLister returns the pool of recent items a feed is ranked from.
type CandidateItemLister interface {
	ListCandidateItems(ctx context.Context, filters domain.ItemFilters, limit int) ([]domain.Item, error)
}

// ItemGetter returns ErrNotFound when no item has the given ID.
type ItemGetter interface {
	GetItem(ctx context.Context, id string) (domain.Item, error)
}

// ItemsFetcher returns the items with the given IDs in the order requested.
// Unknown IDs are skipped.
type ItemsFetcher interface {
	FetchItemsByID(ctx context.Context, ids []string) ([]domain.Item, error)
}

type MatchingItemCounter interface {
	TotalMatchingItems(ctx context.Context, filters domain.ItemFilters) (int64, error)
}
