package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/datasources"
	"github.com/nairobell/feed/internal/datasources/gemini"
	"github.com/nairobell/feed/internal/datasources/mysql"
	"github.com/nairobell/feed/internal/datasources/pinecone"
	"github.com/nairobell/feed/internal/datasources/redis"
	"github.com/nairobell/feed/internal/datasources/voyageai"
	"github.com/nairobell/feed/internal/transport/web/router"
	"github.com/nairobell/feed/internal/transport/web/server"
	"golang.org/x/time/rate"
)

type Component interface {
	Run(ctx context.Context) error
}

// HintCache is the cache the feed pipeline reads hints through.
type HintCache interface {
	datasources.Cache
	datasources.CacheInvalidator
}

// Infrastructure holds the storage and external service clients shared by
// the server and the batch jobs.
type Infrastructure struct {
	Dataset    *mysql.Repository
	Cache      HintCache
	Embedder   datasources.Embedder
	Similarity datasources.SimilarItemsByVectorLister
	Hints      datasources.HintProvider
}

func SetupInfrastructure(ctx context.Context) (*Infrastructure, error) {
	dataset, err := setupDatasetRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up dataset repository: %w", err)
	}

	cache, err := setupCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up cache: %w", err)
	}

	embedder, err := setupEmbedder(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up embedder: %w", err)
	}

	similarity, err := setupSimilarity(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity search: %w", err)
	}

	hints, err := setupHintProvider(ctx, embedder, similarity)
	if err != nil {
		return nil, fmt.Errorf("setting up hint provider: %w", err)
	}

	return &Infrastructure{
		Dataset:    dataset,
		Cache:      cache,
		Embedder:   embedder,
		Similarity: similarity,
		Hints:      hints,
	}, nil
}

// NewPersonalizedFeedCommand builds the feed pipeline over the infrastructure.
func NewPersonalizedFeedCommand(ctx context.Context, infra *Infrastructure) *command.PersonalizedFeed {
	return command.NewPersonalizedFeed(
		infra.Dataset,
		infra.Dataset,
		infra.Dataset,
		infra.Hints,
		infra.Cache,
		PersonalizedFeedConfigFromEnv(ctx),
	)
}

func Setup(ctx context.Context) ([]Component, error) {
	infra, err := SetupInfrastructure(ctx)
	if err != nil {
		return nil, err
	}

	authMiddleware, err := setupAuthMiddleware(ctx, infra.Dataset)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	feedCmd := NewPersonalizedFeedCommand(ctx, infra)
	awardPointsCmd := command.NewAwardPoints(infra.Dataset)

	httpRouter, err := router.MakeRouter(router.Config{
		Dataset:     infra.Dataset,
		Preferences: infra.Dataset,
		Tokens:      infra.Dataset,
		Embedder:    infra.Embedder,
		Similarity:  infra.Similarity,
		Commands: router.Commands{
			Feed:              feedCmd,
			Rank:              command.NewRankItems(),
			Profile:           command.NewAnalyzeUserHistory(infra.Dataset, feedCmd.Config.HistoryWindow),
			RecordRead:        command.NewRecordRead(infra.Dataset, infra.Dataset, infra.Cache, awardPointsCmd),
			AwardPoints:       awardPointsCmd,
			UserLevel:         command.NewGetUserLevel(infra.Dataset),
			Notifications:     command.NewSmartNotifications(infra.Dataset, feedCmd),
			UpdatePreferences: command.NewUpdatePreferences(infra.Dataset, infra.Cache),
			CreateAPIToken:    command.NewCreateAPIToken(infra.Dataset, infra.Dataset),
		},
		RSSFeedBaseURL:     MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		RSSFeedAuthorName:  MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		RSSFeedAuthorEmail: MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		LatestCacheMaxAge:  MustGetEnvAsDuration(ctx, "RSS_FEED_LATEST_CACHE_MAX_AGE"),
		AllowedOrigins:     GetEnvAsStringsOr(ctx, "CORS_ALLOWED_ORIGINS"),
		AuthMiddleware:     authMiddleware,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: GetEnvAsStringsOr(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}

	if interval := GetEnvAsDurationOr(ctx, "WARM_FEEDS_INTERVAL", 0); interval > 0 {
		components = append(components, &FeedWarmer{
			Command:  command.NewWarmFeeds(infra.Dataset, feedCmd, WarmFeedsConfigFromEnv(ctx)),
			Interval: interval,
		})
	}

	return components, nil
}

func setupDatasetRepository(ctx context.Context) (*mysql.Repository, error) {
	db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return nil, fmt.Errorf("connecting to MySQL: %w", err)
	}

	if GetEnvAsBooleanOr(ctx, "MYSQL_APPLY_SCHEMA", false) {
		if err := mysql.ApplySchema(ctx, db); err != nil {
			return nil, fmt.Errorf("applying MySQL schema: %w", err)
		}
	}

	return mysql.New(db), nil
}

func setupCache(ctx context.Context) (HintCache, error) {
	switch driver := GetEnvAsStringOr(ctx, "CACHE_DRIVER", "null"); driver {
	case "null":
		return datasources.NullCache{}, nil
	case "redis":
		client, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_URL"))
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redis.New(client, GetEnvAsStringOr(ctx, "REDIS_KEY_PREFIX", "nairobell:feed:")), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupEmbedder(ctx context.Context) (datasources.Embedder, error) {
	switch driver := GetEnvAsStringOr(ctx, "EMBEDDER_DRIVER", "null"); driver {
	case "null":
		return datasources.NullEmbedder{}, nil
	case "voyageai":
		return voyageai.NewClient(
			MustGetEnvAsString(ctx, "VOYAGEAI_API_KEY"),
			GetEnvAsStringOr(ctx, "VOYAGEAI_MODEL", "voyage-context-3"),
			GetEnvAsIntOr(ctx, "VOYAGEAI_DIMENSION", 1024),
			&http.Client{Timeout: 30 * time.Second},
		), nil
	default:
		return nil, fmt.Errorf("unknown embedder driver [%s]", driver)
	}
}

func setupSimilarity(ctx context.Context) (datasources.SimilarItemsByVectorLister, error) {
	switch driver := GetEnvAsStringOr(ctx, "SIMILARITY_DRIVER", "null"); driver {
	case "null":
		return datasources.NullSimilarItemsLister{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupHintProvider(
	ctx context.Context,
	embedder datasources.Embedder,
	similarity datasources.SimilarItemsByVectorLister,
) (datasources.HintProvider, error) {
	switch driver := GetEnvAsStringOr(ctx, "HINT_DRIVER", "null"); driver {
	case "null":
		return datasources.NullHintProvider{}, nil
	case "pinecone":
		return pinecone.NewHintProvider(embedder, similarity), nil
	case "gemini":
		limiter := rate.NewLimiter(rate.Limit(GetEnvAsFloatOr(ctx, "GEMINI_REQUESTS_PER_SECOND", 1)), 1)
		return gemini.NewClient(
			MustGetEnvAsString(ctx, "GEMINI_API_KEY"),
			GetEnvAsStringOr(ctx, "GEMINI_MODEL", "gemini-2.0-flash"),
			limiter,
			&http.Client{Timeout: 30 * time.Second},
		), nil
	default:
		return nil, fmt.Errorf("unknown hint driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, tokens datasources.APITokenRepository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "supabase":
			v, err := router.NewSupabaseValidator(
				MustGetEnvAsString(ctx, "SUPABASE_URL"),
				MustGetEnvAsString(ctx, "SUPABASE_JWT_SECRET"),
				GetEnvAsStringOr(ctx, "SUPABASE_JWT_AUDIENCE", "authenticated"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Supabase validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, tokens, tokens))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
