package controller

import (
	"net/http"

	"github.com/nairobell/feed/internal/command"
	"github.com/nairobell/feed/internal/domain"
)

type NotificationsListResponse struct {
	Data []domain.Notification `json:"data"`
}

// NotificationsList handles GET /v1/me/notifications.
type NotificationsList struct {
	Command command.Command[command.SmartNotificationsRequest, []domain.Notification]
}

func (c NotificationsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	notifications, err := c.Command.Execute(ctx, command.SmartNotificationsRequest{UserID: userID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to build notifications", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if notifications == nil {
		notifications = []domain.Notification{}
	}

	writeJSON(ctx, w, http.StatusOK, NotificationsListResponse{Data: notifications})
}
