package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// RegisterUser регистрирует нового пользователя, пароль хешируется bcrypt
func RegisterUser(pool *pgxpool.Pool, user *models.User, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("ошибка хеширования пароля: %v", err)
	}

	query := `
		INSERT INTO users (email, name, password, profile_photo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at`
	err = pool.QueryRow(context.Background(), query,
		user.Email,
		user.Name,
		string(hashed),
		user.ProfilePhoto).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return fmt.Errorf("ошибка при добавлении пользователя: %v", err)
	}
	return nil
}

// AuthenticateUser проверяет пару email/пароль. Несуществующий email и
// неверный пароль дают одну и ту же ошибку.
func AuthenticateUser(pool *pgxpool.Pool, email, password string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, name, password, profile_photo, created_at FROM users WHERE email = $1`
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.Password,
		&user.ProfilePhoto,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %v", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user.Password = ""
	return &user, nil
}

func GetUserByID(pool *pgxpool.Pool, id int) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, name, profile_photo, created_at FROM users WHERE id = $1`
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Name,
		&user.ProfilePhoto,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %v", err)
	}
	return &user, nil
}
