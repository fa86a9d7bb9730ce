package database

import "errors"

var (
	// ErrNotFound возвращается и когда записи нет, и когда она принадлежит
	// другому пользователю: владельцу чужой записи нельзя дать понять,
	// что она существует.
	ErrNotFound = errors.New("запись не найдена")

	ErrEmailTaken         = errors.New("пользователь с таким email уже существует")
	ErrInvalidCredentials = errors.New("неверный email или пароль")
)
