package pinecone

import (
	"context"
	"fmt"
	"strings"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarItemsByVectorLister = (*Client)(nil)

const (
	maxQueryLimit = 1000
	namespace     = "items"
)

type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

// ListSimilarItemsByVector returns the items whose chunks are nearest to the
// vector. Items are indexed as one or more chunks with IDs of the form
// "<item id>_<chunk>"; each item is reported once at its best chunk score.
func (c *Client) ListSimilarItemsByVector(
	ctx context.Context,
	vector []float32,
	onlyIDs []string,
	limit int,
) ([]datasources.SimilarItem, error) {
	if limit > maxQueryLimit {
		return nil, fmt.Errorf("limit value too high [%d]", limit)
	}
	if len(vector) == 0 || limit <= 0 {
		return nil, nil
	}

	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	defer func() { _ = idxConn.Close() }()

	filter, err := candidateFilter(onlyIDs)
	if err != nil {
		return nil, err
	}

	// Several chunks may belong to one item, so over-fetch.
	topK := uint32(min(limit*3, maxQueryLimit)) //nolint:gosec // bounded above
	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            topK,
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: false,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	matches := make([]chunkMatch, 0, len(resp.Matches))
	for _, scored := range resp.Matches {
		if scored == nil || scored.Vector == nil {
			continue
		}
		matches = append(matches, chunkMatch{vectorID: scored.Vector.Id, score: scored.Score})
	}
	return collapseChunks(matches, limit)
}

type chunkMatch struct {
	vectorID string
	score    float32
}

// collapseChunks keeps the first (best) match per item. Pinecone returns
// matches best first.
func collapseChunks(matches []chunkMatch, limit int) ([]datasources.SimilarItem, error) {
	results := make([]datasources.SimilarItem, 0, limit)
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		if len(results) == limit {
			break
		}
		itemID, err := extractItemIDFromVector(m.vectorID)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[itemID]; dup {
			continue
		}
		seen[itemID] = struct{}{}
		results = append(results, datasources.SimilarItem{ID: itemID, Score: m.score})
	}
	return results, nil
}

func candidateFilter(onlyIDs []string) (*pinecone.MetadataFilter, error) {
	if len(onlyIDs) == 0 {
		return nil, nil
	}

	ids := make([]any, 0, len(onlyIDs))
	for _, id := range onlyIDs {
		ids = append(ids, id)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"item_id": map[string]any{
			"$in": ids,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata filter map: %w", err)
	}
	return filter, nil
}

func extractItemIDFromVector(vectorID string) (string, error) {
	idx := strings.LastIndex(vectorID, "_")
	if idx <= 0 {
		return "", fmt.Errorf("unexpected pinecone vector ID format [%s]", vectorID)
	}
	return vectorID[:idx], nil
}
