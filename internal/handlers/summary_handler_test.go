package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// handlerTestPool подключается к базе из ../../.env; без нее
// интеграционные тесты пропускаются
func handlerTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		t.Skipf("нет .env, пропускаем интеграционный тест: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		t.Skipf("ошибка конфигурации: %v", err)
	}
	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		t.Skipf("БД недоступна: %v", err)
	}
	pool, err := database.ConnectDB(cfg.DatabaseURL())
	if err != nil {
		t.Skipf("БД недоступна: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// asUser подставляет пользователя в контекст в обход сессии
func asUser(userID int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(contextUserKey, userID)
		c.Next()
	}
}

func TestSummaryHandlerResponseShape(t *testing.T) {
	pool := handlerTestPool(t)

	user := &models.User{
		Email: fmt.Sprintf("summary_%d@example.com", time.Now().UnixNano()),
		Name:  "Тестовый пользователь",
	}
	if err := database.RegisterUser(pool, user, "секретный-пароль"); err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}

	for _, tx := range []models.Transaction{
		{UserID: user.ID, Type: models.TransactionIncome, Amount: 150, Date: time.Now()},
		{UserID: user.ID, Type: models.TransactionExpense, Amount: 40, Date: time.Now()},
	} {
		if err := database.CreateTransaction(pool, &tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/transactions/summary/stats", asUser(user.ID), SummaryHandler(pool))

	req := httptest.NewRequest(http.MethodGet, "/transactions/summary/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ожидали 200, получили %d (тело: %s)", w.Code, w.Body.String())
	}

	// сводка завернута в объект с ключом summary, как и остальные ответы API
	var body struct {
		Summary *models.Summary `json:"summary"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("ответ должен быть JSON: %v", err)
	}
	if body.Summary == nil {
		t.Fatalf("в ответе должен быть ключ summary, получили: %s", w.Body.String())
	}
	if body.Summary.Income != 150 || body.Summary.Expenses != 40 || body.Summary.Balance != 110 {
		t.Errorf("сводка 150/40/110 не совпала: %+v", body.Summary)
	}
	if body.Summary.Count != 2 {
		t.Errorf("транзакций должно быть 2, получили %d", body.Summary.Count)
	}
}
