package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/config"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/routes"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

// ScheduleOverdueGoalCheck раз в сутки находит активные цели с истекшим
// сроком и создает владельцам уведомления. Цель помечается обработанной
// только после успешной записи уведомления, поэтому пропущенный запуск
// (процесс был выключен) догоняется при следующем.
func ScheduleOverdueGoalCheck(pool *pgxpool.Pool) {
	c := cron.New()
	_, err := c.AddFunc("@daily", func() {
		goals, err := database.GetUnnotifiedOverdueGoals(pool)
		if err != nil {
			log.Printf("Ошибка проверки просроченных целей: %v", err)
			return
		}
		for _, g := range goals {
			notification := &models.Notification{
				UserID:  g.UserID,
				Message: fmt.Sprintf("Срок цели «%s» истек %s", g.Name, g.Deadline.Format("02.01.2006")),
			}
			if err := database.CreateNotification(pool, notification); err != nil {
				log.Printf("Ошибка создания уведомления о просроченной цели: %v", err)
				continue
			}
			if err := database.MarkGoalOverdueNotified(pool, g.ID); err != nil {
				log.Printf("Ошибка отметки просроченной цели: %v", err)
			}
		}
		if len(goals) > 0 {
			log.Printf("Просроченных целей за сутки: %d", len(goals))
		}
	})
	if err != nil {
		log.Fatalf("Ошибка настройки CRON-задачи проверки целей: %v", err)
	}
	c.Start()
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используются переменные окружения")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
		log.Fatalf("Ошибка миграций: %v", err)
	}

	pool, err := database.ConnectDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatalf("Ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	if cfg.GenerateDemoData {
		utils.GenerateDemoData(pool)
	}

	ScheduleOverdueGoalCheck(pool)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.SetupRouter(pool, cfg)

	log.Printf("Сервер запущен на порту %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
