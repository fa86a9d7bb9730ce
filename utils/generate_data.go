package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GenerateDemoData наполняет базу тестовыми пользователями с транзакциями
// и целями. Используется только для ручной проверки фронтенда.
func GenerateDemoData(pool *pgxpool.Pool) {
	userIDs := GenerateTestUsers(pool, 3)
	GenerateTestTransactions(pool, userIDs, 60)
	GenerateTestGoals(pool, userIDs, 9)
	log.Printf("Тестовые данные созданы: пользователей %d", len(userIDs))
}

func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) []int {
	ids := make([]int, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user := &models.User{
			Email: gofakeit.Email(),
			Name:  gofakeit.Name(),
		}
		password := gofakeit.Password(true, true, true, false, false, 10)
		if err := database.RegisterUser(pool, user, password); err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

func randomTransactionType() string {
	if rand.Intn(2) == 0 {
		return models.TransactionExpense
	}
	return models.TransactionIncome
}

func GenerateTestTransactions(pool *pgxpool.Pool, userIDs []int, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		transaction := &models.Transaction{
			UserID:      userIDs[rand.Intn(len(userIDs))],
			Type:        randomTransactionType(),
			Category:    gofakeit.Word(),
			Description: gofakeit.Sentence(5),
			Amount:      gofakeit.Price(1, 1000),
			Date:        time.Now().AddDate(0, 0, -rand.Intn(150)), // случайная дата в пределах окна графика
		}
		if err := database.CreateTransaction(pool, transaction); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}

func GenerateTestGoals(pool *pgxpool.Pool, userIDs []int, numGoals int) {
	for i := 0; i < numGoals; i++ {
		target := gofakeit.Price(500, 5000)
		goal := &models.Goal{
			UserID:        userIDs[rand.Intn(len(userIDs))],
			Name:          gofakeit.BuzzWord(),
			TargetAmount:  target,
			CurrentAmount: gofakeit.Price(0, target),
			Deadline:      time.Now().AddDate(0, rand.Intn(12)+1, 0),
			Category:      gofakeit.Word(),
			Description:   gofakeit.Sentence(4),
			Status:        models.GoalStatusActive,
		}
		goal.ApplyAutoStatus()
		if err := database.CreateGoal(pool, goal); err != nil {
			log.Fatalf("ошибка при добавлении цели: %v", err)
		}
	}
}
