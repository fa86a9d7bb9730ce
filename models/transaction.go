package models

import "time"

const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

type Transaction struct {
	ID          int       `json:"id" db:"id"`
	UserID      int       `json:"user_id" db:"user_id"`
	Type        string    `json:"type" db:"type"`
	Category    string    `json:"category,omitempty" db:"category"`
	Description string    `json:"description,omitempty" db:"description"`
	Amount      float64   `json:"amount" db:"amount"`
	Date        time.Time `json:"date" db:"transaction_date"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ValidTransactionType проверяет тип транзакции: доход или расход
func ValidTransactionType(t string) bool {
	return t == TransactionIncome || t == TransactionExpense
}
