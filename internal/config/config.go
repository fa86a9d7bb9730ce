package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"os"
)

type Config struct {
	Env              string
	Port             string
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	SessionSecret    string
	GenerateDemoData bool
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName)
}

// Load собирает конфигурацию из переменных окружения.
// SESSION_SECRET обязателен в production; в development при его отсутствии
// генерируется случайный секрет с предупреждением в логе (сессии при этом
// не переживают перезапуск процесса).
func Load() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBUser:           getEnv("DB_USER", "postgres"),
		DBPassword:       getEnv("DB_PASSWORD", ""),
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBName:           getEnv("DB_NAME", "finance_db"),
		SessionSecret:    os.Getenv("SESSION_SECRET"),
		GenerateDemoData: getEnv("GENERATE_DEMO_DATA", "") == "true",
	}

	if cfg.SessionSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("SESSION_SECRET обязателен в production")
		}
		secret := make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("не удалось сгенерировать сессионный секрет: %v", err)
		}
		cfg.SessionSecret = hex.EncodeToString(secret)
		log.Println("ВНИМАНИЕ: SESSION_SECRET не задан, используется случайный секрет (допустимо только в development)")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
