package models

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"time"
)

// MaxProfilePhotoBytes — ограничение на размер фото профиля после декодирования
const MaxProfilePhotoBytes = 2 << 20

type User struct {
	ID           int       `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	Password     string    `json:"-" db:"password"` // bcrypt-хеш, наружу не отдается
	ProfilePhoto string    `json:"profile_photo,omitempty" db:"profile_photo"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("некорректный формат email")
	}
	return nil
}

// ValidateProfilePhoto проверяет, что фото — валидный base64 не больше 2 МБ
func ValidateProfilePhoto(photo string) error {
	if photo == "" {
		return nil
	}
	raw, err := base64.StdEncoding.DecodeString(photo)
	if err != nil {
		return fmt.Errorf("фото профиля должно быть закодировано в base64")
	}
	if len(raw) > MaxProfilePhotoBytes {
		return fmt.Errorf("фото профиля превышает 2 МБ")
	}
	return nil
}
