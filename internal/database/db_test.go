package database_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// testPool подключается к базе из ../../.env; без нее интеграционные
// тесты пропускаются
func testPool(t *testing.T) *pgxpool.Pool {
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

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()

	user := &models.User{
		Email: fmt.Sprintf("test_%d@example.com", time.Now().UnixNano()),
		Name:  "Тестовый пользователь",
	}
	if err := database.RegisterUser(pool, user, "секретный-пароль"); err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	return user
}
