package handlers

import (
	"testing"
	"time"
)

func TestValidateID(t *testing.T) {
	valid := map[string]int{
		"7":   7,
		"42":  42,
		"007": 7,
	}
	for raw, want := range valid {
		id, err := validateID(raw)
		if err != nil {
			t.Errorf("ID %q должен проходить проверку: %v", raw, err)
			continue
		}
		if id != want {
			t.Errorf("ID %q: получили %d, хотели %d", raw, id, want)
		}
	}

	invalid := []string{"", "7a", "a7", "-7", "+7", "1.5", " 7", "7 ", "семь"}
	for _, raw := range invalid {
		if _, err := validateID(raw); err == nil {
			t.Errorf("ID %q не должен проходить проверку", raw)
		}
	}
}

func TestParseDate(t *testing.T) {
	got, err := parseDate("2026-03-15")
	if err != nil {
		t.Fatalf("дата должна разбираться: %v", err)
	}
	want := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("получили %v, хотели %v", got, want)
	}

	for _, raw := range []string{"", "15.03.2026", "2026-13-01", "вчера"} {
		if _, err := parseDate(raw); err == nil {
			t.Errorf("дата %q не должна разбираться", raw)
		}
	}
}
