package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
	"golang.org/x/time/rate"
)

var _ datasources.HintProvider = (*Client)(nil)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// maxPromptItems bounds the prompt size; candidates beyond it are left for
// the neutral hint score.
const maxPromptItems = 50

// Client asks a Gemini model to order candidate items for a reader.
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	limiter    *rate.Limiter
	httpClient *http.Client
}

func NewClient(apiKey, model string, limiter *rate.Limiter, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	return &Client{
		apiKey:     apiKey,
		model:      model,
		baseURL:    defaultBaseURL,
		limiter:    limiter,
		httpClient: httpClient,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string  `json:"responseMimeType"`
	Temperature      float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) SuggestOrder(
	ctx context.Context,
	profile domain.UserProfile,
	items []domain.Item,
) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	prompt, err := buildPrompt(profile, items)
	if err != nil {
		return nil, err
	}

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}

	// The key goes in a header: transport errors quote the full URL.
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, errors.New("empty gemini response")
	}

	return parseOrder(result.Candidates[0].Content.Parts[0].Text)
}

type promptItem struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Category  string   `json:"category"`
	Countries []string `json:"countries,omitempty"`
	Source    string   `json:"source"`
}

func buildPrompt(profile domain.UserProfile, items []domain.Item) (string, error) {
	candidates := make([]promptItem, 0, min(len(items), maxPromptItems))
	for _, item := range items {
		if len(candidates) == maxPromptItems {
			break
		}
		candidates = append(candidates, promptItem{
			ID:        item.ID,
			Title:     item.Title,
			Category:  string(item.NormalizedCategory()),
			Countries: item.CountryFocus,
			Source:    item.Source,
		})
	}
	candidateJSON, err := json.Marshal(candidates)
	if err != nil {
		return "", fmt.Errorf("marshalling prompt candidates: %w", err)
	}

	var b strings.Builder
	b.WriteString("You rank African news articles for one reader.\n")
	fmt.Fprintf(&b, "Favourite categories: %s\n", joinOrNone(profile.TopCategoryKeys(5)))
	fmt.Fprintf(&b, "Countries followed: %s\n", joinOrNone(profile.TopCountryKeys(5)))
	fmt.Fprintf(&b, "Usually reads in the %s, engagement %.1f/10.\n", profile.PreferredPeriod, profile.EngagementScore)
	b.WriteString("Candidates:\n")
	b.Write(candidateJSON)
	b.WriteString("\nReply with a JSON array of candidate ids, most relevant first.")
	return b.String(), nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none yet"
	}
	return strings.Join(values, ", ")
}

// parseOrder reads the model's JSON array of ids, tolerating a markdown code
// fence around it.
func parseOrder(text string) ([]string, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var ids []string
	if err := json.Unmarshal([]byte(text), &ids); err != nil {
		return nil, fmt.Errorf("parsing suggested order: %w", err)
	}
	return ids, nil
}
