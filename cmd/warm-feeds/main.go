package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/nairobell/feed/internal/app"
	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "feed warming failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "feed warming completed successfully")
}

func run(ctx context.Context) error {
	infra, err := app.SetupInfrastructure(ctx)
	if err != nil {
		return err
	}

	warmCmd := command.NewWarmFeeds(
		infra.Dataset,
		app.NewPersonalizedFeedCommand(ctx, infra),
		app.WarmFeedsConfigFromEnv(ctx),
	)

	resp, err := warmCmd.Execute(ctx, command.WarmFeedsRequest{})
	if err != nil {
		return err
	}
	if resp.Users > 0 && resp.Warmed == 0 {
		return fmt.Errorf("no feeds warmed out of %d active users", resp.Users)
	}
	return nil
}
