package controller

import (
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
)

const rssPageSize = 100

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.LatestItemLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "Nairobell African News",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Latest news from across Africa",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	filters, err := itemFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse item filters in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items, err := c.Lister.ListLatestItems(ctx, filters, 1, rssPageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch items for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, item := range items {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          item.ID,
			IsPermaLink: "false",
			Title:       item.Title,
			Link:        &feeds.Link{Href: item.Link},
			Description: item.Description,
			Author:      &feeds.Author{Name: item.Source},
			Created:     item.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	setCacheMaxAge(w, c.CacheMaxAge)

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
