package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// DefaultRecentGoals — сколько целей отдавать на /goals/recent без параметра limit
const DefaultRecentGoals = 2

type createGoalRequest struct {
	Name          string   `json:"name"`
	TargetAmount  *float64 `json:"target_amount"`
	CurrentAmount *float64 `json:"current_amount"`
	Deadline      string   `json:"deadline"`
	Category      string   `json:"category"`
	Description   string   `json:"description"`
}

type updateGoalRequest struct {
	Name          models.Optional[string]  `json:"name"`
	TargetAmount  models.Optional[float64] `json:"target_amount"`
	CurrentAmount models.Optional[float64] `json:"current_amount"`
	Deadline      models.Optional[string]  `json:"deadline"`
	Category      models.Optional[string]  `json:"category"`
	Description   models.Optional[string]  `json:"description"`
	Status        models.Optional[string]  `json:"status"`
}

type updateGoalAmountRequest struct {
	Amount *float64 `json:"amount"`
}

func CreateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}

		if req.Name == "" || req.TargetAmount == nil || req.Deadline == "" {
			respondError(c, http.StatusBadRequest, "Название, целевая сумма и срок обязательны")
			return
		}
		if *req.TargetAmount <= 0 {
			respondError(c, http.StatusBadRequest, "Целевая сумма должна быть больше нуля")
			return
		}
		current := 0.0
		if req.CurrentAmount != nil {
			if *req.CurrentAmount < 0 {
				respondError(c, http.StatusBadRequest, "Текущая сумма не может быть отрицательной")
				return
			}
			current = *req.CurrentAmount
		}
		deadline, err := parseDate(req.Deadline)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if models.DeadlineInPast(deadline, time.Now()) {
			respondError(c, http.StatusBadRequest, "Срок цели не может быть в прошлом")
			return
		}

		goal := &models.Goal{
			UserID:        currentUserID(c),
			Name:          req.Name,
			TargetAmount:  *req.TargetAmount,
			CurrentAmount: current,
			Deadline:      deadline,
			Category:      req.Category,
			Description:   req.Description,
			Status:        models.GoalStatusActive,
		}
		goal.ApplyAutoStatus()

		if err := database.CreateGoal(pool, goal); err != nil {
			log.Printf("Ошибка создания цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось создать цель")
			return
		}
		goal.RefreshProgress()

		c.JSON(http.StatusCreated, gin.H{
			"message": "Цель успешно создана",
			"goal":    goal,
		})
	}
}

func GetGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		goal, err := database.GetGoalByID(pool, id, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка получения цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить цель")
			return
		}
		goal.RefreshProgress()
		c.JSON(http.StatusOK, gin.H{"goal": goal})
	}
}

// ListGoalsHandler отдает цели по возрастанию срока; неизвестное значение
// фильтра статуса игнорируется
func ListGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.GetGoalsByUserID(pool, currentUserID(c), c.Query("status"))
		if err != nil {
			log.Printf("Ошибка получения целей: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить цели")
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		for i := range goals {
			goals[i].RefreshProgress()
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals})
	}
}

func RecentGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := DefaultRecentGoals
		if raw := c.Query("limit"); raw != "" {
			if parsed, err := validateID(raw); err == nil && parsed > 0 {
				limit = parsed
			}
		}

		goals, err := database.GetRecentGoals(pool, currentUserID(c), limit)
		if err != nil {
			log.Printf("Ошибка получения последних целей: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить последние цели")
			return
		}
		if goals == nil {
			goals = []models.Goal{}
		}
		for i := range goals {
			goals[i].RefreshProgress()
		}
		c.JSON(http.StatusOK, gin.H{"goals": goals})
	}
}

// UpdateGoalHandler применяет только присланные поля. Все присланные
// значения проверяются до записи; статус пересчитывается автоматически,
// если не задан в запросе явно.
func UpdateGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		var req updateGoalRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}

		if req.Name.Set && (!req.Name.Valid || req.Name.Value == "") {
			respondError(c, http.StatusBadRequest, "Название не может быть пустым")
			return
		}
		if req.TargetAmount.Set && (!req.TargetAmount.Valid || req.TargetAmount.Value <= 0) {
			respondError(c, http.StatusBadRequest, "Целевая сумма должна быть больше нуля")
			return
		}
		if req.CurrentAmount.Set && (!req.CurrentAmount.Valid || req.CurrentAmount.Value < 0) {
			respondError(c, http.StatusBadRequest, "Текущая сумма не может быть отрицательной")
			return
		}
		if req.Status.Set && (!req.Status.Valid || !models.ValidGoalStatus(req.Status.Value)) {
			respondError(c, http.StatusBadRequest, "Недопустимый статус цели")
			return
		}
		// проверка "срок в прошлом" выполняется только если срок меняют
		var newDeadline *time.Time
		if req.Deadline.Set {
			if !req.Deadline.Valid {
				respondError(c, http.StatusBadRequest, "Срок цели не может быть null")
				return
			}
			deadline, err := parseDate(req.Deadline.Value)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			if models.DeadlineInPast(deadline, time.Now()) {
				respondError(c, http.StatusBadRequest, "Срок цели не может быть в прошлом")
				return
			}
			newDeadline = &deadline
		}

		goal, err := database.GetGoalByID(pool, id, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка получения цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить цель")
			return
		}

		if req.Name.Set {
			goal.Name = req.Name.Value
		}
		if req.TargetAmount.Set {
			goal.TargetAmount = req.TargetAmount.Value
		}
		if req.CurrentAmount.Set {
			goal.CurrentAmount = req.CurrentAmount.Value
		}
		if newDeadline != nil {
			goal.Deadline = *newDeadline
		}
		// null или пустая строка очищают необязательные текстовые поля
		if req.Category.Set {
			goal.Category = req.Category.Value
		}
		if req.Description.Set {
			goal.Description = req.Description.Value
		}
		if req.Status.Set {
			// явный статус в запросе всегда сильнее автоматического правила
			goal.Status = req.Status.Value
		} else {
			goal.ApplyAutoStatus()
		}

		if err := database.UpdateGoal(pool, goal); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка обновления цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить цель")
			return
		}
		goal.RefreshProgress()

		c.JSON(http.StatusOK, gin.H{
			"message": "Цель успешно обновлена",
			"goal":    goal,
		})
	}
}

// UpdateGoalAmountHandler устанавливает текущую сумму цели. Достижение
// целевой суммы переводит цель в completed; обратного перехода на этом
// пути нет — завершение через этот эндпоинт необратимо.
func UpdateGoalAmountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		var req updateGoalAmountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}
		// нулевая сумма приравнена к отсутствующей
		if req.Amount == nil || *req.Amount <= 0 {
			respondError(c, http.StatusBadRequest, "Сумма обязательна и должна быть больше нуля")
			return
		}

		goal, err := database.GetGoalByID(pool, id, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка получения цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить прогресс")
			return
		}

		completedNow := goal.ApplyProgressAmount(*req.Amount)

		if err := database.UpdateGoal(pool, goal); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка обновления прогресса цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить прогресс")
			return
		}
		goal.RefreshProgress()

		message := "Прогресс цели обновлен"
		if completedNow {
			message = "Поздравляем! Цель достигнута"
			notification := &models.Notification{
				UserID:  goal.UserID,
				Message: fmt.Sprintf("Цель «%s» достигнута", goal.Name),
			}
			if err := database.CreateNotification(pool, notification); err != nil {
				log.Printf("Ошибка создания уведомления о достижении цели: %v", err)
			}
		}

		c.JSON(http.StatusOK, gin.H{
			"message":   message,
			"completed": completedNow,
			"goal":      goal,
		})
	}
}

func DeleteGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := database.DeleteGoal(pool, id, currentUserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Цель не найдена")
				return
			}
			log.Printf("Ошибка удаления цели: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось удалить цель")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Цель успешно удалена"})
	}
}
