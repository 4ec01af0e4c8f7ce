package pinecone

import (
	"context"
	"fmt"
	"strings"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

var _ datasources.HintProvider = (*HintProvider)(nil)

// HintProvider orders candidates by how close their embeddings are to a
// description of the reader's interests.
type HintProvider struct {
	embedder datasources.Embedder
	lister   datasources.SimilarItemsByVectorLister
}

func NewHintProvider(embedder datasources.Embedder, lister datasources.SimilarItemsByVectorLister) *HintProvider {
	return &HintProvider{
		embedder: embedder,
		lister:   lister,
	}
}

func (h *HintProvider) SuggestOrder(
	ctx context.Context,
	profile domain.UserProfile,
	items []domain.Item,
) ([]string, error) {
	query := interestQuery(profile)
	if query == "" || len(items) == 0 {
		return nil, nil
	}

	vector, err := h.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding reader interests: %w", err)
	}
	if len(vector) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.ID != "" {
			ids = append(ids, item.ID)
		}
	}

	similar, err := h.lister.ListSimilarItemsByVector(ctx, vector, ids, min(len(ids), maxQueryLimit))
	if err != nil {
		return nil, fmt.Errorf("listing similar items: %w", err)
	}

	order := make([]string, 0, len(similar))
	for _, s := range similar {
		order = append(order, s.ID)
	}
	return order, nil
}

// interestQuery describes the reader's strongest interests as a search query.
// Readers with no history produce an empty query.
func interestQuery(profile domain.UserProfile) string {
	categories := profile.TopCategoryKeys(3)
	countries := profile.TopCountryKeys(3)
	if len(categories) == 0 && len(countries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("African news")
	if len(categories) > 0 {
		b.WriteString(" about ")
		b.WriteString(strings.Join(categories, ", "))
	}
	if len(countries) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(countries, ", "))
	}
	return b.String()
}
