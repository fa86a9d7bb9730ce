package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// TransactionFilter — необязательные условия выборки; границы диапазона дат включительные
type TransactionFilter struct {
	Type string
	From *time.Time
	To   *time.Time
}

const transactionColumns = `id, user_id, type, category, description, amount, transaction_date, created_at, updated_at`

func scanTransaction(row pgx.Row, t *models.Transaction) error {
	return row.Scan(
		&t.ID,
		&t.UserID,
		&t.Type,
		&t.Category,
		&t.Description,
		&t.Amount,
		&t.Date,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
}

func CreateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, type, category, description, amount, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`
	err := pool.QueryRow(context.Background(), query,
		transaction.UserID,
		transaction.Type,
		transaction.Category,
		transaction.Description,
		transaction.Amount,
		transaction.Date).Scan(&transaction.ID, &transaction.CreatedAt, &transaction.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении транзакции: %v", err)
	}
	return nil
}

// GetTransactionByID ищет транзакцию по id в пределах записей владельца:
// чужая запись неотличима от несуществующей
func GetTransactionByID(pool *pgxpool.Pool, transactionID, userID int) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`

	transaction := &models.Transaction{}
	err := scanTransaction(pool.QueryRow(context.Background(), query, transactionID, userID), transaction)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %v", err)
	}
	return transaction, nil
}

func UpdateTransaction(pool *pgxpool.Pool, transaction *models.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $1, category = $2, description = $3, amount = $4, transaction_date = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7`
	result, err := pool.Exec(context.Background(), query,
		transaction.Type,
		transaction.Category,
		transaction.Description,
		transaction.Amount,
		transaction.Date,
		transaction.ID,
		transaction.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления транзакции: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteTransaction(pool *pgxpool.Pool, transactionID, userID int) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления транзакции: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func GetTransactionsByUserID(pool *pgxpool.Pool, userID int, filter TransactionFilter) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		query += fmt.Sprintf(" AND transaction_date >= $%d", len(args))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		query += fmt.Sprintf(" AND transaction_date <= $%d", len(args))
	}
	query += ` ORDER BY transaction_date DESC, id DESC`

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionsSince отдает транзакции с датой не раньше since — нижняя
// граница окна месячного графика
func GetTransactionsSince(pool *pgxpool.Pool, userID int, since time.Time) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE user_id = $1 AND transaction_date >= $2
		ORDER BY transaction_date`

	rows, err := pool.Query(context.Background(), query, userID, since)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций для графика: %v", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
