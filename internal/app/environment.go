package app

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nairobell/feed/internal/domain"
)

func MustGetEnvAsString(ctx context.Context, name string) string {
	s, exists := os.LookupEnv(name)
	if !exists {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "environment variable missing", "variable_name", name)
		panic(fmt.Sprintf("missing environment variable [%s]", name))
	}

	return s
}

// MustGetEnvAsStrings splits a comma separated variable, trimming spaces and
// dropping empty entries.
func MustGetEnvAsStrings(ctx context.Context, name string) []string {
	s := MustGetEnvAsString(ctx, name)

	var out []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func MustGetEnvAsInt(ctx context.Context, name string) int {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.Atoi(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as integer",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as integer [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsFloat(ctx context.Context, name string) float64 {
	s := MustGetEnvAsString(ctx, name)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as float",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as float [%s]: %s", name, s))
	}

	return v
}

func MustGetEnvAsBoolean(ctx context.Context, name string) bool {
	s := MustGetEnvAsString(ctx, name)

	switch strings.ToLower(s) {
	case "true":
		return true
	case "false":
		return false
	default:
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as boolean ('true'/'false')",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as boolean ('true'/'false') [%s]: %s", name, s))
	}
}

func MustGetEnvAsDuration(ctx context.Context, name string) time.Duration {
	s := MustGetEnvAsString(ctx, name)

	duration, err := time.ParseDuration(s)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse environment variable as duration",
			"variable_name", name,
			"variable_value", s,
		)
		panic(fmt.Sprintf("unable to parse environment variable as duration [%s]: %s", name, s))
	}

	return duration
}

// The GetEnvAs*Or helpers return def when the variable is unset, and panic
// like their Must counterparts when it is set but malformed.

func GetEnvAsStringOr(ctx context.Context, name, def string) string {
	if _, ok := os.LookupEnv(name); !ok {
		return def
	}
	return MustGetEnvAsString(ctx, name)
}

func GetEnvAsIntOr(ctx context.Context, name string, def int) int {
	if _, ok := os.LookupEnv(name); !ok {
		return def
	}
	return MustGetEnvAsInt(ctx, name)
}

func GetEnvAsFloatOr(ctx context.Context, name string, def float64) float64 {
	if _, ok := os.LookupEnv(name); !ok {
		return def
	}
	return MustGetEnvAsFloat(ctx, name)
}

func GetEnvAsBooleanOr(ctx context.Context, name string, def bool) bool {
	if _, ok := os.LookupEnv(name); !ok {
		return def
	}
	return MustGetEnvAsBoolean(ctx, name)
}

func GetEnvAsDurationOr(ctx context.Context, name string, def time.Duration) time.Duration {
	if _, ok := os.LookupEnv(name); !ok {
		return def
	}
	return MustGetEnvAsDuration(ctx, name)
}

// GetEnvAsStringsOr is MustGetEnvAsStrings returning nil when unset.
func GetEnvAsStringsOr(ctx context.Context, name string) []string {
	if _, ok := os.LookupEnv(name); !ok {
		return nil
	}
	return MustGetEnvAsStrings(ctx, name)
}
