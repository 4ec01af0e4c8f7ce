package voyageai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/nairobell/feed/internal/datasources"
)

var _ datasources.Embedder = (*Client)(nil)

const defaultEndpoint = "https://api.voyageai.com/v1/contextualizedembeddings"

// Client embeds reader interest queries using the VoyageAI contextual
// embeddings API, in the same space the item chunks were indexed with.
type Client struct {
	apiKey     string
	model      string
	dimension  int
	endpoint   string
	httpClient *http.Client
}

func NewClient(apiKey, model string, dimension int, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		dimension:  dimension,
		endpoint:   defaultEndpoint,
		httpClient: httpClient,
	}
}

type embeddingRequest struct {
	Inputs          [][]string `json:"inputs"`
	Model           string     `json:"model"`
	InputType       string     `json:"input_type"`
	OutputDimension int        `json:"output_dimension"`
}

type embeddingResponse struct {
	Data []struct {
		Data []struct {
			Embedding []float32 `json:"embedding"`
		} `json:"data"`
	} `json:"data"`
}

func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	reqBody := embeddingRequest{
		Inputs:          [][]string{{text}},
		Model:           c.model,
		InputType:       "query",
		OutputDimension: c.dimension,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.endpoint,
		bytes.NewReader(jsonBody),
	)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("VoyageAI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(result.Data) == 0 || len(result.Data[0].Data) == 0 {
		return nil, errors.New("empty embedding response")
	}

	return result.Data[0].Data[0].Embedding, nil
}
