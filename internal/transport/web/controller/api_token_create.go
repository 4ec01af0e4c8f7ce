package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

const maxAPITokenLifetimeDays = 365

// APITokenCreateRequest is the JSON request body for creating a token.
type APITokenCreateRequest struct {
	Name          string `json:"name,omitempty"`
	ExpiresInDays int    `json:"expires_in_days,omitempty"`
}

// APITokenCreate handles POST /v1/tokens to create a new API token.
type APITokenCreate struct {
	CreateCmd command.Command[command.CreateAPITokenRequest, command.CreateAPITokenResponse]
}

func (c APITokenCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var reqBody APITokenCreateRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
			logger.WarnContext(ctx, "unable to parse request body", "error", err)
			writeError(ctx, w, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	if reqBody.ExpiresInDays < 0 || reqBody.ExpiresInDays > maxAPITokenLifetimeDays {
		writeError(ctx, w, http.StatusBadRequest, "expires_in_days must be between 0 and 365")
		return
	}

	req := command.CreateAPITokenRequest{
		UserID:    userID,
		ExpiresIn: time.Duration(reqBody.ExpiresInDays) * 24 * time.Hour,
	}
	if name := strings.TrimSpace(reqBody.Name); name != "" {
		req.Name = &name
	}

	result, err := c.CreateCmd.Execute(ctx, req)
	if errors.Is(err, command.ErrTokenLimitExceeded) {
		writeError(ctx, w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		logger.ErrorContext(ctx, "unable to create API token", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusCreated, result)
}
