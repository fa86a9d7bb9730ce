package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

type registerRequest struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Password     string `json:"password"`
	ProfilePhoto string `json:"profilePhoto"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func HelloHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Сервис учета финансов работает"})
	}
}

// RegisterHandler регистрирует пользователя и сразу открывает сессию
func RegisterHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}

		if req.Email == "" || req.Name == "" || req.Password == "" {
			respondError(c, http.StatusBadRequest, "Email, имя и пароль обязательны")
			return
		}
		if err := models.ValidateEmail(req.Email); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if err := models.ValidateProfilePhoto(req.ProfilePhoto); err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		user := &models.User{
			Email:        req.Email,
			Name:         req.Name,
			ProfilePhoto: req.ProfilePhoto,
		}
		if err := database.RegisterUser(pool, user, req.Password); err != nil {
			if errors.Is(err, database.ErrEmailTaken) {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			log.Printf("Ошибка регистрации пользователя: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось зарегистрировать пользователя")
			return
		}

		session := sessions.Default(c)
		session.Set(sessionUserKey, user.ID)
		if err := session.Save(); err != nil {
			log.Printf("Ошибка сохранения сессии: %v", err)
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Пользователь успешно зарегистрирован",
			"user":    user,
		})
	}
}

// LoginHandler: неизвестный email и неверный пароль дают одинаковый ответ
func LoginHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}
		if req.Email == "" || req.Password == "" {
			respondError(c, http.StatusBadRequest, "Email и пароль обязательны")
			return
		}

		user, err := database.AuthenticateUser(pool, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, database.ErrInvalidCredentials) {
				respondError(c, http.StatusUnauthorized, "Неверный email или пароль")
				return
			}
			log.Printf("Ошибка входа: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось выполнить вход")
			return
		}

		session := sessions.Default(c)
		session.Set(sessionUserKey, user.ID)
		if err := session.Save(); err != nil {
			log.Printf("Ошибка сохранения сессии: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось выполнить вход")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Вход выполнен",
			"user":    user,
		})
	}
}

func LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Clear()
		session.Options(sessions.Options{Path: "/", MaxAge: -1})
		if err := session.Save(); err != nil {
			log.Printf("Ошибка очистки сессии: %v", err)
		}
		c.JSON(http.StatusOK, gin.H{"message": "Выход выполнен"})
	}
}

// CheckHandler доступен без авторизации: фронтенд проверяет им состояние сессии
func CheckHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID, ok := session.Get(sessionUserKey).(int)
		c.JSON(http.StatusOK, gin.H{"authenticated": ok && userID > 0})
	}
}

func MeHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := database.GetUserByID(pool, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Пользователь не найден")
				return
			}
			log.Printf("Ошибка получения пользователя: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить данные пользователя")
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user})
	}
}
