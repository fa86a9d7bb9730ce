package handlers

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

var idPattern = regexp.MustCompile(`^[0-9]+$`)

// validateID принимает только целое из одних цифр: "7" годится,
// "7a", "-7" и пустая строка отклоняются еще до обращения к базе
func validateID(raw string) (int, error) {
	if !idPattern.MatchString(raw) {
		return 0, fmt.Errorf("некорректный ID")
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("некорректный ID")
	}
	return id, nil
}

// parseDate разбирает календарную дату без времени суток
func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("некорректная дата, ожидается формат ГГГГ-ММ-ДД")
	}
	return t, nil
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
