package models

import (
	"encoding/json"
	"testing"
)

func TestOptionalUnmarshal(t *testing.T) {
	type payload struct {
		Name   Optional[string]  `json:"name"`
		Amount Optional[float64] `json:"amount"`
	}

	t.Run("отсутствующий ключ", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
			t.Fatalf("ошибка разбора: %v", err)
		}
		if p.Name.Set || p.Amount.Set {
			t.Errorf("отсутствующие поля не должны быть помечены как заданные: %+v", p)
		}
	})

	t.Run("явный null", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name": null}`), &p); err != nil {
			t.Fatalf("ошибка разбора: %v", err)
		}
		if !p.Name.Set || p.Name.Valid {
			t.Errorf("null должен давать Set=true, Valid=false: %+v", p.Name)
		}
	})

	t.Run("значение", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"name": "отпуск", "amount": 250.5}`), &p); err != nil {
			t.Fatalf("ошибка разбора: %v", err)
		}
		if !p.Name.Set || !p.Name.Valid || p.Name.Value != "отпуск" {
			t.Errorf("строковое поле разобрано неверно: %+v", p.Name)
		}
		if !p.Amount.Set || !p.Amount.Valid || p.Amount.Value != 250.5 {
			t.Errorf("числовое поле разобрано неверно: %+v", p.Amount)
		}
	})

	t.Run("неподходящий тип", func(t *testing.T) {
		var p payload
		if err := json.Unmarshal([]byte(`{"amount": "12a"}`), &p); err == nil {
			t.Error("строка вместо числа должна давать ошибку разбора")
		}
	})
}
