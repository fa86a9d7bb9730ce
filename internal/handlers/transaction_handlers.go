package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

type createTransactionRequest struct {
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Amount      *float64 `json:"amount"`
	Date        string   `json:"date"`
}

type updateTransactionRequest struct {
	Type        models.Optional[string]  `json:"type"`
	Category    models.Optional[string]  `json:"category"`
	Description models.Optional[string]  `json:"description"`
	Amount      models.Optional[float64] `json:"amount"`
	Date        models.Optional[string]  `json:"date"`
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}

		if !models.ValidTransactionType(req.Type) {
			respondError(c, http.StatusBadRequest, "Тип транзакции должен быть income или expense")
			return
		}
		if req.Amount == nil || *req.Amount <= 0 {
			respondError(c, http.StatusBadRequest, "Сумма должна быть положительным числом")
			return
		}
		if req.Date == "" {
			respondError(c, http.StatusBadRequest, "Дата транзакции обязательна")
			return
		}
		date, err := parseDate(req.Date)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		transaction := &models.Transaction{
			UserID:      currentUserID(c),
			Type:        req.Type,
			Category:    req.Category,
			Description: req.Description,
			Amount:      *req.Amount,
			Date:        date,
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Printf("Ошибка создания транзакции: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось создать транзакцию")
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":     "Транзакция успешно создана",
			"transaction": transaction,
		})
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		transaction, err := database.GetTransactionByID(pool, id, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Транзакция не найдена")
				return
			}
			log.Printf("Ошибка получения транзакции: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить транзакцию")
			return
		}
		c.JSON(http.StatusOK, gin.H{"transaction": transaction})
	}
}

// ListTransactionsHandler поддерживает фильтры type, from и to;
// обе границы диапазона дат включительные и применяются независимо
func ListTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var filter database.TransactionFilter
		if t := c.Query("type"); models.ValidTransactionType(t) {
			filter.Type = t
		}
		if raw := c.Query("from"); raw != "" {
			from, err := parseDate(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			filter.From = &from
		}
		if raw := c.Query("to"); raw != "" {
			to, err := parseDate(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			filter.To = &to
		}

		transactions, err := database.GetTransactionsByUserID(pool, currentUserID(c), filter)
		if err != nil {
			log.Printf("Ошибка получения транзакций: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить транзакции")
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		c.JSON(http.StatusOK, gin.H{"transactions": transactions})
	}
}

// UpdateTransactionHandler применяет только присланные поля; все присланные
// значения проверяются до какой-либо записи в базу
func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		var req updateTransactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "Некорректный формат ввода")
			return
		}

		if req.Type.Set && (!req.Type.Valid || !models.ValidTransactionType(req.Type.Value)) {
			respondError(c, http.StatusBadRequest, "Тип транзакции должен быть income или expense")
			return
		}
		if req.Amount.Set && (!req.Amount.Valid || req.Amount.Value <= 0) {
			respondError(c, http.StatusBadRequest, "Сумма должна быть положительным числом")
			return
		}
		var newDate *time.Time
		if req.Date.Set {
			if !req.Date.Valid {
				respondError(c, http.StatusBadRequest, "Дата транзакции не может быть null")
				return
			}
			date, err := parseDate(req.Date.Value)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			newDate = &date
		}

		transaction, err := database.GetTransactionByID(pool, id, currentUserID(c))
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Транзакция не найдена")
				return
			}
			log.Printf("Ошибка получения транзакции: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить транзакцию")
			return
		}

		if req.Type.Set {
			transaction.Type = req.Type.Value
		}
		if req.Amount.Set {
			transaction.Amount = req.Amount.Value
		}
		if newDate != nil {
			transaction.Date = *newDate
		}
		// null или пустая строка очищают необязательные текстовые поля
		if req.Category.Set {
			transaction.Category = req.Category.Value
		}
		if req.Description.Set {
			transaction.Description = req.Description.Value
		}

		if err := database.UpdateTransaction(pool, transaction); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Транзакция не найдена")
				return
			}
			log.Printf("Ошибка обновления транзакции: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось обновить транзакцию")
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "Транзакция успешно обновлена",
			"transaction": transaction,
		})
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := validateID(c.Param("id"))
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}

		if err := database.DeleteTransaction(pool, id, currentUserID(c)); err != nil {
			if errors.Is(err, database.ErrNotFound) {
				respondError(c, http.StatusNotFound, "Транзакция не найдена")
				return
			}
			log.Printf("Ошибка удаления транзакции: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось удалить транзакцию")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Транзакция успешно удалена"})
	}
}

// SummaryHandler пересчитывает сводку полным проходом по транзакциям
func SummaryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := database.GetTransactionsByUserID(pool, currentUserID(c), database.TransactionFilter{})
		if err != nil {
			log.Printf("Ошибка получения транзакций для сводки: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось получить сводку")
			return
		}
		c.JSON(http.StatusOK, gin.H{"summary": models.Summarize(transactions)})
	}
}

func MonthlyChartHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		transactions, err := database.GetTransactionsSince(pool, currentUserID(c), models.ChartStart(now))
		if err != nil {
			log.Printf("Ошибка получения транзакций для графика: %v", err)
			respondError(c, http.StatusInternalServerError, "Не удалось построить график")
			return
		}
		c.JSON(http.StatusOK, gin.H{"chart": models.MonthlyChart(transactions, now)})
	}
}
