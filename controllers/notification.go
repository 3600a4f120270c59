// controllers/notification.go
package controllers

import (
	"net/http"

	"fugazero-backend/config"
	"fugazero-backend/models"
	"fugazero-backend/services"
	"fugazero-backend/utils"

	"github.com/gin-gonic/gin"
)

// NotificationController exposes the daily-schedule notifications.
type NotificationController struct {
	Service *services.NotificationService
}

// GetNotificationLogs lists sent notifications, newest first
func (nc *NotificationController) GetNotificationLogs(c *gin.Context) {
	query := config.DB.Model(&models.NotificationLog{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if userID := c.Query("userId"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var logs []models.NotificationLog
	if err := query.Order("sent_at DESC").Limit(200).Find(&logs).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "No se pudieron obtener las notificaciones")
		return
	}

	c.JSON(http.StatusOK, logs)
}

// RunNotifications triggers the daily schedule send outside the cron, for
// when the office needs to resend after fixing a technician's phone.
func (nc *NotificationController) RunNotifications(c *gin.Context) {
	go nc.Service.SendDailySchedules()
	c.JSON(http.StatusAccepted, gin.H{"message": "Envío de notificaciones iniciado"})
}
