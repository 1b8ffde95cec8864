package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver string
	DBSource string
	Port     string

	AllowOrigins []string

	JWTSecret string
	JWTTTL    time.Duration

	RedisURL string
	OTPTTL   time.Duration

	AdminEmployeeID string
	AdminEmail      string
	AdminPassword   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	return &Config{
		DBDriver:        getEnv("DB_DRIVER", "sqlite"),
		DBSource:        getEnv("DB_SOURCE", "canteen.db"),
		Port:            getEnv("PORT", "8000"),
		AllowOrigins:    splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		JWTSecret:       getEnv("JWT_SECRET", "changeme"),
		JWTTTL:          24 * time.Hour,
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		OTPTTL:          10 * time.Minute,
		AdminEmployeeID: getEnv("ADMIN_EMPLOYEE_ID", ""),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
