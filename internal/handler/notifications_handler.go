package handler

import (
	"Yatra-App/internal/infrastructure/notify"
	"net/http"

	"github.com/gin-gonic/gin"
)

// NotificationsHandler はトースト通知取り出しAPIのハンドラー
type NotificationsHandler struct {
	notifier *notify.ToastNotifier
}

// NewNotificationsHandler は新しいNotificationsHandlerインスタンスを作成
func NewNotificationsHandler(notifier *notify.ToastNotifier) *NotificationsHandler {
	return &NotificationsHandler{
		notifier: notifier,
	}
}

// GetNotifications は未配信の通知をすべて取り出すエンドポイント
// GET /notifications
func (h *NotificationsHandler) GetNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"notifications": h.notifier.Drain(),
	})
}
