package routes

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
)

func SetupRouter(pool *pgxpool.Pool, cfg *config.Config) *gin.Engine {
	r := gin.Default()
	r.Use(handlers.CORSMiddleware())

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("finance_session", store))

	r.GET("/hello", handlers.HelloHandler())

	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.RegisterHandler(pool))
		auth.POST("/login", handlers.LoginHandler(pool))
		auth.GET("/check", handlers.CheckHandler())
		auth.POST("/logout", handlers.AuthRequired(), handlers.LogoutHandler())
		auth.GET("/me", handlers.AuthRequired(), handlers.MeHandler(pool))
	}

	api := r.Group("", handlers.AuthRequired())
	{
		api.POST("/transactions", handlers.CreateTransactionHandler(pool))
		api.GET("/transactions", handlers.ListTransactionsHandler(pool))
		api.GET("/transactions/summary/stats", handlers.SummaryHandler(pool))
		api.GET("/transactions/chart/monthly", handlers.MonthlyChartHandler(pool))
		api.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
		api.PUT("/transactions/:id", handlers.UpdateTransactionHandler(pool))
		api.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

		api.POST("/goals", handlers.CreateGoalHandler(pool))
		api.GET("/goals", handlers.ListGoalsHandler(pool))
		api.GET("/goals/recent", handlers.RecentGoalsHandler(pool))
		api.GET("/goals/:id", handlers.GetGoalHandler(pool))
		api.PUT("/goals/:id", handlers.UpdateGoalHandler(pool))
		api.PUT("/goals/:id/amount", handlers.UpdateGoalAmountHandler(pool))
		api.DELETE("/goals/:id", handlers.DeleteGoalHandler(pool))

		api.GET("/notifications", handlers.ListNotificationsHandler(pool))
		api.PUT("/notifications/:id/read", handlers.MarkNotificationReadHandler(pool))
	}

	return r
}
