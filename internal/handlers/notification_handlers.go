package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func ListNotificationsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		notifications, err := database.GetNotificationsByUserID(pool, currentUserID(c))
		if err != nil {
			log.Printf("Ошибка получения уведомлений: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить уведомления")
			return
		}
		if notifications == nil {
			notifications = []models.Notification{}
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

func MarkNotificationReadHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := database.MarkNotificationAsRead(pool, id, currentUserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Уведомление не найдено")
				return
			}
			log.Printf("Ошибка пометки уведомления: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось пометить уведомление")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Уведомление помечено как прочитанное"})
	}
}
