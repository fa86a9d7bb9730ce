package models

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	GoalStatusActive    = "active"
	GoalStatusCompleted = "completed"
	GoalStatusCancelled = "cancelled"
)

type Goal struct {
	ID            int       `json:"id" db:"id"`
	UserID        int       `json:"user_id" db:"user_id"`
	Name          string    `json:"name" db:"name"`
	TargetAmount  float64   `json:"target_amount" db:"target_amount"`
	CurrentAmount float64   `json:"current_amount" db:"current_amount"`
	Deadline      time.Time `json:"deadline" db:"deadline"`
	Category      string    `json:"category,omitempty" db:"category"`
	Description   string    `json:"description,omitempty" db:"description"`
	Status        string    `json:"status" db:"status"`
	Progress      int       `json:"progress"` // вычисляется, в базе не хранится
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// ValidGoalStatus проверяет, что статус из допустимого набора
func ValidGoalStatus(status string) bool {
	switch status {
	case GoalStatusActive, GoalStatusCompleted, GoalStatusCancelled:
		return true
	}
	return false
}

func (g *Goal) RemainingAmount() float64 {
	return g.TargetAmount - g.CurrentAmount
}

// ComputeProgress считает процент накопления: round(current/target*100),
// результат обрезается в диапазон [0, 100]. При нулевой целевой сумме всегда 0.
func (g *Goal) ComputeProgress() int {
	if g.TargetAmount <= 0 {
		return 0
	}
	percent := decimal.NewFromFloat(g.CurrentAmount).
		Div(decimal.NewFromFloat(g.TargetAmount)).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	value := int(percent.IntPart())
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}

// RefreshProgress записывает вычисленный прогресс перед отдачей клиенту
func (g *Goal) RefreshProgress() {
	g.Progress = g.ComputeProgress()
}

// ApplyAutoStatus обновляет статус цели после изменения сумм.
// Если текущая сумма достигла целевой — цель завершена; если цель была
// завершена, а сумма снова упала ниже целевой — цель возвращается в активные.
// Вызывается только когда статус не задан в запросе явно.
func (g *Goal) ApplyAutoStatus() {
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = GoalStatusCompleted
		return
	}
	if g.Status == GoalStatusCompleted {
		g.Status = GoalStatusActive
	}
}

// ApplyProgressAmount устанавливает текущую сумму через эндпоинт прогресса.
// Достижение целевой суммы переводит цель в completed; обратного перехода
// на этом пути нет — даже если сумма ниже целевой, завершенная цель
// остается завершенной. Возвращает true только в момент перехода
// в completed, повторное пополнение завершенной цели сигнала не дает.
func (g *Goal) ApplyProgressAmount(amount float64) bool {
	wasCompleted := g.Status == GoalStatusCompleted
	g.CurrentAmount = amount
	if g.CurrentAmount >= g.TargetAmount {
		g.Status = GoalStatusCompleted
		return !wasCompleted
	}
	return false
}

// DeadlineInPast сравнивает только календарные даты, время суток не учитывается
func DeadlineInPast(deadline, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return day.Before(today)
}
