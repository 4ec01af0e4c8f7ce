// Package client provides an HTTP client for the Nairobell feed API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Item is a news item as returned by the API.
type Item struct {
	ID               string    `json:"id"`
	Title            string    `json:"title,omitempty"`
	Link             string    `json:"link,omitempty"`
	Description      string    `json:"description,omitempty"`
	Category         string    `json:"category"`
	CountryFocus     []string  `json:"country_focus,omitempty"`
	Source           string    `json:"source"`
	PublishedAt      time.Time `json:"published_at"`
	EngagementScore  *float64  `json:"engagement_score,omitempty"`
	CredibilityScore *float64  `json:"credibility_score,omitempty"`
}

// RankedItem is an item in a personalised feed.
type RankedItem struct {
	Item
	FinalScore float64  `json:"final_score"`
	Reasons    []string `json:"reasons"`
}

// ItemsResponse is the paginated response for item lists.
type ItemsResponse struct {
	Data     []Item `json:"data"`
	Metadata struct {
		Page       int   `json:"page"`
		PageSize   int   `json:"page_size"`
		TotalItems int64 `json:"total_items"`
	} `json:"metadata"`
}

// FeedResponse is the response for the personalised feed.
type FeedResponse struct {
	Data     []RankedItem `json:"data"`
	Metadata struct {
		DiversityLevel string `json:"diversity_level"`
		Candidates     int    `json:"candidates"`
		Backfilled     bool   `json:"backfilled"`
		HintApplied    bool   `json:"hint_applied"`
	} `json:"metadata"`
}

// Level is a position on the points ladder.
type Level struct {
	Level            int   `json:"level"`
	PointsIntoLevel  int64 `json:"points_into_level"`
	PointsToNext     int64 `json:"points_to_next"`
	ProgressPercent  int   `json:"progress_percent"`
	LevelRequirement int64 `json:"level_requirement"`
}

// UserLevel is the reader's point total and level.
type UserLevel struct {
	TotalPoints int64 `json:"total_points"`
	Level       Level `json:"level"`
}

// PointsAward is the result of recording a read.
type PointsAward struct {
	Activity    string `json:"activity"`
	Points      int64  `json:"points"`
	Bonus       int64  `json:"bonus"`
	TotalPoints int64  `json:"total_points"`
	LeveledUp   bool   `json:"leveled_up"`
	Level       Level  `json:"level"`
}

// Notification is a scheduled push for a high scoring item.
type Notification struct {
	ItemID      string    `json:"item_id"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	Category    string    `json:"category"`
	FinalScore  float64   `json:"final_score"`
	ScheduledAt time.Time `json:"scheduled_at"`
}

// ItemFilters contains parameters shared by item listing and the feed.
type ItemFilters struct {
	Categories    []string
	Countries     []string
	OnlySources   []string
	ExceptSources []string
	Since         *time.Time
	Limit         int
	Page          int
}

// FeedOptions are the personalised feed parameters.
type FeedOptions struct {
	ItemFilters
	Diversity string
	NoHint    bool
}

// ReadOptions describe how an item was read.
type ReadOptions struct {
	Completed        bool    `json:"completed"`
	TimeSpentSeconds float64 `json:"time_spent_seconds"`
	Interacted       bool    `json:"interacted"`
	Local            bool    `json:"local"`
}

// Client is an HTTP client for the Nairobell feed API.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		apiToken: apiToken,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	return c.doRequestWithBody(ctx, method, path, nil)
}

func (c *Client) doRequestWithBody(ctx context.Context, method, path string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, payload any) (*http.Response, error) {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshalling request: %w", err)
	}
	return c.doRequestWithBody(ctx, method, path, bytes.NewReader(jsonBody))
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

func (f ItemFilters) queryParams() url.Values {
	params := url.Values{}

	if len(f.Categories) > 0 {
		params.Set("category", strings.Join(f.Categories, ","))
	}
	if len(f.Countries) > 0 {
		params.Set("country", strings.Join(f.Countries, ","))
	}
	if len(f.OnlySources) > 0 {
		params.Set("only_sources", strings.Join(f.OnlySources, ","))
	}
	if len(f.ExceptSources) > 0 {
		params.Set("except_sources", strings.Join(f.ExceptSources, ","))
	}
	if f.Since != nil {
		params.Set("since", f.Since.Format(time.RFC3339))
	}
	if f.Page > 0 {
		params.Set("page", strconv.Itoa(f.Page))
	}

	return params
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

// ListItems lists the latest items matching the filters.
func (c *Client) ListItems(ctx context.Context, filters ItemFilters) ([]Item, error) {
	params := filters.queryParams()
	if filters.Limit > 0 {
		params.Set("page_size", strconv.Itoa(filters.Limit))
	}

	resp, err := c.doRequest(ctx, http.MethodGet, withQuery("/v1/items", params))
	if err != nil {
		return nil, err
	}

	var result ItemsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetItem retrieves a single item by ID.
func (c *Client) GetItem(ctx context.Context, itemID string) (*Item, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/items/"+url.PathEscape(itemID))
	if err != nil {
		return nil, err
	}

	var item Item
	if err := c.handleResponse(resp, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

// SearchItems finds items semantically similar to the given text.
func (c *Client) SearchItems(ctx context.Context, text string, limit int) ([]Item, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/items/search", struct {
		Text  string `json:"text"`
		Limit int    `json:"limit"`
	}{
		Text:  text,
		Limit: limit,
	})
	if err != nil {
		return nil, err
	}

	var result ItemsResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}

// GetFeed retrieves the authenticated reader's personalised feed.
func (c *Client) GetFeed(ctx context.Context, opts FeedOptions) (*FeedResponse, error) {
	params := opts.queryParams()
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Diversity != "" {
		params.Set("diversity", opts.Diversity)
	}
	if opts.NoHint {
		params.Set("hint", "false")
	}

	resp, err := c.doRequest(ctx, http.MethodGet, withQuery("/v1/me/feed", params))
	if err != nil {
		return nil, err
	}

	var result FeedResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// MarkRead records that the reader read an item and returns the points earned.
func (c *Client) MarkRead(ctx context.Context, itemID string, opts ReadOptions) (*PointsAward, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/v1/items/"+url.PathEscape(itemID)+"/read", opts)
	if err != nil {
		return nil, err
	}

	var award PointsAward
	if err := c.handleResponse(resp, &award); err != nil {
		return nil, err
	}

	return &award, nil
}

// GetUserLevel retrieves the reader's point total and level.
func (c *Client) GetUserLevel(ctx context.Context) (*UserLevel, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me/level")
	if err != nil {
		return nil, err
	}

	var level UserLevel
	if err := c.handleResponse(resp, &level); err != nil {
		return nil, err
	}

	return &level, nil
}

// LevelFor maps an arbitrary point total onto the level ladder.
func (c *Client) LevelFor(ctx context.Context, points int64) (*Level, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/levels/"+strconv.FormatInt(points, 10))
	if err != nil {
		return nil, err
	}

	var level Level
	if err := c.handleResponse(resp, &level); err != nil {
		return nil, err
	}

	return &level, nil
}

// ListNotifications retrieves the reader's scheduled notifications.
func (c *Client) ListNotifications(ctx context.Context) ([]Notification, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/v1/me/notifications")
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []Notification `json:"data"`
	}
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return result.Data, nil
}
