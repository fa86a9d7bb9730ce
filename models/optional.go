package models

import (
	"bytes"
	"encoding/json"
)

// Optional различает три состояния поля при частичном обновлении:
// ключ отсутствует в JSON, ключ есть со значением null, ключ есть со значением.
// Отсутствующие поля не трогают сохраненные данные; null на необязательных
// текстовых полях очищает их.
type Optional[T any] struct {
	Set   bool // ключ присутствовал в JSON
	Valid bool // значение не null
	Value T
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		var zero T
		o.Valid = false
		o.Value = zero
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}
