package database_test

import (
	"errors"
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestCreateTransaction(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID:      user.ID,
		Type:        models.TransactionExpense,
		Category:    "продукты",
		Description: "тестовая транзакция",
		Amount:      100.00,
		Date:        time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	created, err := database.GetTransactionByID(pool, transaction.ID, user.ID)
	if err != nil {
		t.Fatalf("ошибка получения транзакции по ID: %v", err)
	}
	if created.Amount != transaction.Amount || created.Category != transaction.Category {
		t.Errorf("данные транзакции не совпадают: получили %+v, хотели %+v", created, transaction)
	}
}

func TestUpdateTransaction(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionIncome,
		Amount: 200.00,
		Date:   time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	transaction.Amount = 250.00
	transaction.Description = "обновленная транзакция"
	if err := database.UpdateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка обновления транзакции: %v", err)
	}

	updated, err := database.GetTransactionByID(pool, transaction.ID, user.ID)
	if err != nil {
		t.Fatalf("не смогли получить обновленную транзакцию: %v", err)
	}
	if updated.Amount != 250.00 || updated.Description != "обновленная транзакция" {
		t.Errorf("данные после обновления не совпадают: %+v", updated)
	}
}

func TestDeleteTransaction(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID: user.ID,
		Type:   models.TransactionExpense,
		Amount: 300.00,
		Date:   time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	if err := database.DeleteTransaction(pool, transaction.ID, user.ID); err != nil {
		t.Fatalf("ошибка удаления транзакции: %v", err)
	}

	if _, err := database.GetTransactionByID(pool, transaction.ID, user.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаленная транзакция должна давать ErrNotFound, получили: %v", err)
	}
}

func TestTransactionOwnership(t *testing.T) {
	pool := testPool(t)
	owner := createTestUser(t, pool)
	stranger := createTestUser(t, pool)

	transaction := &models.Transaction{
		UserID: owner.ID,
		Type:   models.TransactionExpense,
		Amount: 50.00,
		Date:   time.Now(),
	}
	if err := database.CreateTransaction(pool, transaction); err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	// чужая запись неотличима от несуществующей
	if _, err := database.GetTransactionByID(pool, transaction.ID, stranger.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("чтение чужой транзакции должно давать ErrNotFound, получили: %v", err)
	}
	if err := database.DeleteTransaction(pool, transaction.ID, stranger.ID); !errors.Is(err, database.ErrNotFound) {
		t.Errorf("удаление чужой транзакции должно давать ErrNotFound, получили: %v", err)
	}
}

func TestTransactionFilters(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	old := time.Now().AddDate(0, 0, -20)
	recent := time.Now()
	for _, tx := range []*models.Transaction{
		{UserID: user.ID, Type: models.TransactionIncome, Amount: 100, Date: old},
		{UserID: user.ID, Type: models.TransactionExpense, Amount: 40, Date: recent},
	} {
		if err := database.CreateTransaction(pool, tx); err != nil {
			t.Fatalf("ошибка создания транзакции: %v", err)
		}
	}

	expenses, err := database.GetTransactionsByUserID(pool, user.ID, database.TransactionFilter{Type: models.TransactionExpense})
	if err != nil {
		t.Fatalf("ошибка фильтрации по типу: %v", err)
	}
	for _, tx := range expenses {
		if tx.Type != models.TransactionExpense {
			t.Errorf("фильтр по типу пропустил %+v", tx)
		}
	}

	from := time.Now().AddDate(0, 0, -5)
	inRange, err := database.GetTransactionsByUserID(pool, user.ID, database.TransactionFilter{From: &from})
	if err != nil {
		t.Fatalf("ошибка фильтрации по дате: %v", err)
	}
	for _, tx := range inRange {
		if tx.Date.Before(from.Truncate(24 * time.Hour)) {
			t.Errorf("фильтр по нижней границе пропустил %+v", tx)
		}
	}
}
