package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// Роутер без БД: проверяем ветки валидации, которые отвечают
// до первого обращения к пулу.
func amountTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/goals/:id/amount", UpdateGoalAmountHandler(nil))
	return r
}

func TestUpdateGoalAmountValidation(t *testing.T) {
	cases := []struct {
		name string
		path string
		body string
	}{
		{"нулевая сумма приравнена к отсутствующей", "/goals/7/amount", `{"amount": 0}`},
		{"отрицательная сумма", "/goals/7/amount", `{"amount": -5}`},
		{"сумма не передана", "/goals/7/amount", `{}`},
		{"сумма не число", "/goals/7/amount", `{"amount": "12a"}`},
		{"нечисловой id", "/goals/7a/amount", `{"amount": 100}`},
		{"отрицательный id", "/goals/-7/amount", `{"amount": 100}`},
	}

	r := amountTestRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("ожидали 400, получили %d (тело: %s)", w.Code, w.Body.String())
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("ответ должен быть JSON: %v", err)
			}
			if body["error"] == "" {
				t.Errorf("в ответе должно быть поле error, получили: %s", w.Body.String())
			}
		})
	}
}
