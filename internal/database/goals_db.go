package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

const goalColumns = `id, user_id, name, target_amount, current_amount, deadline, category, description, status, created_at, updated_at`

func scanGoal(row pgx.Row, g *models.Goal) error {
	return row.Scan(
		&g.ID,
		&g.UserID,
		&g.Name,
		&g.TargetAmount,
		&g.CurrentAmount,
		&g.Deadline,
		&g.Category,
		&g.Description,
		&g.Status,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
}

func CreateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	query := `
		INSERT INTO goals (user_id, name, target_amount, current_amount, deadline, category, description, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`
	err := pool.QueryRow(context.Background(), query,
		goal.UserID,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.Category,
		goal.Description,
		goal.Status).Scan(&goal.ID, &goal.CreatedAt, &goal.UpdatedAt)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении цели: %v", err)
	}
	return nil
}

// GetGoalByID ищет цель по id в пределах записей владельца:
// чужая цель неотличима от несуществующей
func GetGoalByID(pool *pgxpool.Pool, goalID, userID int) (*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = $1 AND user_id = $2`

	goal := &models.Goal{}
	err := scanGoal(pool.QueryRow(context.Background(), query, goalID, userID), goal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при получении цели: %v", err)
	}
	return goal, nil
}

func UpdateGoal(pool *pgxpool.Pool, goal *models.Goal) error {
	// срок мог измениться, поэтому отметка о просрочке взводится заново
	query := `
		UPDATE goals
		SET name = $1, target_amount = $2, current_amount = $3, deadline = $4,
		    category = $5, description = $6, status = $7,
		    overdue_notified = FALSE, updated_at = now()
		WHERE id = $8 AND user_id = $9`
	result, err := pool.Exec(context.Background(), query,
		goal.Name,
		goal.TargetAmount,
		goal.CurrentAmount,
		goal.Deadline,
		goal.Category,
		goal.Description,
		goal.Status,
		goal.ID,
		goal.UserID)
	if err != nil {
		return fmt.Errorf("ошибка обновления цели: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func DeleteGoal(pool *pgxpool.Pool, goalID, userID int) error {
	query := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := pool.Exec(context.Background(), query, goalID, userID)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %v", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// GetGoalsByUserID извлекает цели пользователя по возрастанию срока.
// Неизвестное значение фильтра статуса игнорируется, а не отклоняется.
func GetGoalsByUserID(pool *pgxpool.Pool, userID int, status string) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1`
	args := []interface{}{userID}

	if models.ValidGoalStatus(status) {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += ` ORDER BY deadline ASC, id ASC`

	rows, err := pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// GetRecentGoals — последние созданные цели независимо от статуса
func GetRecentGoals(pool *pgxpool.Pool, userID, limit int) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE user_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`

	rows, err := pool.Query(context.Background(), query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении последних целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// MarkGoalOverdueNotified фиксирует, что уведомление о просрочке отправлено
func MarkGoalOverdueNotified(pool *pgxpool.Pool, goalID int) error {
	query := `UPDATE goals SET overdue_notified = TRUE WHERE id = $1`
	if _, err := pool.Exec(context.Background(), query, goalID); err != nil {
		return fmt.Errorf("ошибка отметки просроченной цели: %v", err)
	}
	return nil
}

// GetUnnotifiedOverdueGoals — активные цели с истекшим сроком, о которых
// владельцу еще не сообщали. Флаг overdue_notified не дает ежедневной
// задаче плодить повторные уведомления и не теряет цели, если процесс
// не работал в ночь истечения срока.
func GetUnnotifiedOverdueGoals(pool *pgxpool.Pool) ([]models.Goal, error) {
	query := `SELECT ` + goalColumns + `
		FROM goals
		WHERE status = 'active' AND deadline < CURRENT_DATE AND NOT overdue_notified`

	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении просроченных целей: %v", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		var g models.Goal
		if err := scanGoal(rows, &g); err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}
