package models

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestValidateEmail(t *testing.T) {
	for _, email := range []string{"user@example.com", "a.b@mail.ru"} {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("email %q должен проходить проверку: %v", email, err)
		}
	}
	for _, email := range []string{"", "user", "user@", "@example.com", "a b@example.com"} {
		if err := ValidateEmail(email); err == nil {
			t.Errorf("email %q не должен проходить проверку", email)
		}
	}
}

func TestValidateProfilePhoto(t *testing.T) {
	if err := ValidateProfilePhoto(""); err != nil {
		t.Errorf("пустое фото допустимо: %v", err)
	}

	small := base64.StdEncoding.EncodeToString([]byte("png-данные"))
	if err := ValidateProfilePhoto(small); err != nil {
		t.Errorf("маленькое фото должно проходить проверку: %v", err)
	}

	if err := ValidateProfilePhoto("не base64!!!"); err == nil {
		t.Error("некорректный base64 должен отклоняться")
	}

	big := base64.StdEncoding.EncodeToString(bytes.Repeat([]byte{1}, MaxProfilePhotoBytes+1))
	if err := ValidateProfilePhoto(big); err == nil {
		t.Error("фото больше 2 МБ должно отклоняться")
	}
}
