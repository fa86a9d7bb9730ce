package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ChartMonths — размер окна графика: текущий месяц плюс пять предыдущих
const ChartMonths = 6

type Summary struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Balance  float64 `json:"balance"`
	Count    int     `json:"transactions_count"`
}

type MonthBucket struct {
	Month    int     `json:"month"`
	Year     int     `json:"year"`
	Label    string  `json:"label"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

var monthNames = [...]string{
	"Январь", "Февраль", "Март", "Апрель", "Май", "Июнь",
	"Июль", "Август", "Сентябрь", "Октябрь", "Ноябрь", "Декабрь",
}

// Summarize пересчитывает сводку полным проходом по всем транзакциям
// пользователя. Кеширования нет намеренно: объемы на одного пользователя
// маленькие, простота важнее.
func Summarize(transactions []Transaction) Summary {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range transactions {
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case TransactionIncome:
			income = income.Add(amount)
		case TransactionExpense:
			expenses = expenses.Add(amount)
		}
	}
	return Summary{
		Income:   income.InexactFloat64(),
		Expenses: expenses.InexactFloat64(),
		Balance:  income.Sub(expenses).InexactFloat64(),
		Count:    len(transactions),
	}
}

// ChartStart возвращает первое число самого старого месяца окна графика
func ChartStart(now time.Time) time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(ChartMonths - 1), 0)
}

// MonthlyChart раскладывает транзакции по шести календарным месяцам,
// от старого к новому, текущий месяц — последний. Сначала строятся все
// корзины (арифметика по календарным месяцам, границы года учитываются),
// затем каждая транзакция попадает в корзину по паре (месяц, год).
// Транзакции вне окна пропускаются, пустые корзины остаются с нулями.
func MonthlyChart(transactions []Transaction, now time.Time) []MonthBucket {
	buckets := make([]MonthBucket, 0, ChartMonths)
	index := make(map[[2]int]int, ChartMonths)
	start := ChartStart(now)
	for i := 0; i < ChartMonths; i++ {
		m := start.AddDate(0, i, 0)
		buckets = append(buckets, MonthBucket{
			Month: int(m.Month()),
			Year:  m.Year(),
			Label: fmt.Sprintf("%s %d", monthNames[m.Month()-1], m.Year()),
		})
		index[[2]int{m.Year(), int(m.Month())}] = i
	}

	incomes := make([]decimal.Decimal, ChartMonths)
	expenses := make([]decimal.Decimal, ChartMonths)
	for _, t := range transactions {
		i, ok := index[[2]int{t.Date.Year(), int(t.Date.Month())}]
		if !ok {
			continue // вне окна
		}
		amount := decimal.NewFromFloat(t.Amount)
		switch t.Type {
		case TransactionIncome:
			incomes[i] = incomes[i].Add(amount)
		case TransactionExpense:
			expenses[i] = expenses[i].Add(amount)
		}
	}
	for i := range buckets {
		buckets[i].Income = incomes[i].InexactFloat64()
		buckets[i].Expenses = expenses[i].InexactFloat64()
	}
	return buckets
}
