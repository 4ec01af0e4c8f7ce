package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetFeed(t *testing.T) {
	var gotPath, gotQuery, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		_, _ = io.WriteString(w, `{"data":[{"id":"a","category":"politics","source":"nation",`+
			`"published_at":"2024-06-15T10:00:00Z","final_score":7.2,"reasons":["breaking news"]}],`+
			`"metadata":{"diversity_level":"high","candidates":3,"hint_applied":true}}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "nbl_token")
	since := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	feed, err := c.GetFeed(context.Background(), FeedOptions{
		ItemFilters: ItemFilters{Categories: []string{"politics"}, Since: &since, Limit: 5},
		Diversity:   "high",
		NoHint:      true,
	})

	require.NoError(t, err)
	assert.Equal(t, "/v1/me/feed", gotPath)
	assert.Equal(t, "category=politics&diversity=high&hint=false&limit=5&since=2024-06-01T00%3A00%3A00Z", gotQuery)
	assert.Equal(t, "Bearer nbl_token", gotAuth)
	require.Len(t, feed.Data, 1)
	assert.Equal(t, "a", feed.Data[0].ID)
	assert.InDelta(t, 7.2, feed.Data[0].FinalScore, 0.0001)
	assert.True(t, feed.Metadata.HintApplied)
}

func TestClient_MarkRead(t *testing.T) {
	var body ReadOptions
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/items/item%201/read", r.URL.EscapedPath())
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = io.WriteString(w, `{"activity":"read","points":10,"bonus":100,"total_points":310,"leveled_up":true,"level":{"level":3}}`)
	}))
	defer srv.Close()

	award, err := NewClient(srv.URL, "").MarkRead(context.Background(), "item 1", ReadOptions{Completed: true})

	require.NoError(t, err)
	assert.True(t, body.Completed)
	assert.Equal(t, int64(310), award.TotalPoints)
	assert.True(t, award.LeveledUp)
	assert.Equal(t, 3, award.Level.Level)
}

func TestClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":"unauthorized"}`)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "bad").GetUserLevel(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
