package datasources

import "context"

// Embedder maps free text (a search query or a reader's profile summary)
// into the vector space of the item index.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder is used when no embedding provider is configured. Its nil
// vector turns item search into a 503 and leaves the feed without a
// similarity hint.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}
