package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/domain"
	"github.com/nairobell/feed/internal/metrics"
	"github.com/nairobell/feed/internal/transport/web/controller"
)

// Commands are the operations exposed over HTTP.
type Commands struct {
	Feed              command.Command[command.PersonalizedFeedRequest, command.PersonalizedFeedResponse]
	Rank              command.Command[command.RankItemsRequest, domain.PersonalizedFeed]
	Profile           command.Command[command.AnalyzeUserHistoryRequest, domain.UserProfile]
	RecordRead        command.Command[command.RecordReadRequest, domain.PointsAward]
	AwardPoints       command.Command[command.AwardPointsRequest, domain.PointsAward]
	UserLevel         command.Command[command.GetUserLevelRequest, command.GetUserLevelResponse]
	Notifications     command.Command[command.SmartNotificationsRequest, []domain.Notification]
	UpdatePreferences command.Command[command.UpdatePreferencesRequest, domain.UserPreferences]
	CreateAPIToken    command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

type Config struct {
	Dataset     datasources.DatasetRepository
	Preferences datasources.PreferencesGetter
	Tokens      datasources.APITokenRepository
	Embedder    datasources.Embedder
	Similarity  datasources.SimilarItemsByVectorLister
	Commands    Commands

	RSSFeedBaseURL     string
	RSSFeedAuthorName  string
	RSSFeedAuthorEmail string
	LatestCacheMaxAge  time.Duration

	// AllowedOrigins lists the web app origins allowed to call the API.
	// Empty allows any origin.
	AllowedOrigins []string

	AuthMiddleware func(http.Handler) http.Handler
}

func MakeRouter(cfg Config) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(metrics.Middleware)
	r.Use(newCORSMiddleware(cfg.AllowedOrigins))
	r.Use(cfg.AuthMiddleware)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)

	// Public item routes.
	r.Handle("/v1/items", controller.ItemsList{
		Lister:      cfg.Dataset,
		CacheMaxAge: cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items/search", controller.ItemSearch{
		Embedder:   cfg.Embedder,
		Similarity: cfg.Similarity,
		Fetcher:    cfg.Dataset,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/items/{item_id}", controller.ItemGet{
		Getter:      cfg.Dataset,
		CacheMaxAge: cfg.LatestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/items/{item_id}/read", requireAuthMiddleware(controller.ItemRead{
		Command: cfg.Commands.RecordRead,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/rank", controller.RankItems{
		Command: cfg.Commands.Rank,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/levels/{points}", controller.LevelLookup{
		CacheMaxAge: 24 * time.Hour,
	}).Methods(http.MethodGet, http.MethodOptions)

	// Routes scoped to the authenticated reader.
	me := r.PathPrefix("/v1/me").Subrouter()
	me.Use(requireAuthMiddleware)

	me.Handle("/feed", controller.FeedGet{
		Command: cfg.Commands.Feed,
	}).Methods(http.MethodGet, http.MethodOptions)

	me.Handle("/profile", controller.ProfileGet{
		Command: cfg.Commands.Profile,
	}).Methods(http.MethodGet, http.MethodOptions)

	me.Handle("/notifications", controller.NotificationsList{
		Command: cfg.Commands.Notifications,
	}).Methods(http.MethodGet, http.MethodOptions)

	me.Handle("/points", controller.PointsAward{
		Command: cfg.Commands.AwardPoints,
	}).Methods(http.MethodPost, http.MethodOptions)

	me.Handle("/level", controller.UserLevelGet{
		Command: cfg.Commands.UserLevel,
	}).Methods(http.MethodGet, http.MethodOptions)

	me.Handle("/preferences", controller.PreferencesGet{
		Getter: cfg.Preferences,
	}).Methods(http.MethodGet, http.MethodOptions)

	me.Handle("/preferences", controller.PreferencesUpdate{
		Command: cfg.Commands.UpdatePreferences,
	}).Methods(http.MethodPut)

	// API token management.
	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: cfg.Tokens,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: cfg.Commands.CreateAPIToken,
	})).Methods(http.MethodPost)

	r.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: cfg.Tokens,
	})).Methods(http.MethodDelete, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    cfg.RSSFeedBaseURL,
			FeedPath:        "/rss",
			FeedAuthorName:  cfg.RSSFeedAuthorName,
			FeedAuthorEmail: cfg.RSSFeedAuthorEmail,
			Lister:          cfg.Dataset,
			CacheMaxAge:     cfg.LatestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
