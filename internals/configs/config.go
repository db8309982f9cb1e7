package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using ENV from the system")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running on Railway, using ENV from the system")
	}

	if GetEnv("DB_HOST") == "" {
		log.Println("❌ DB_HOST is not set!")
	}
	if GetEnv("DB_NAME") == "" {
		log.Println("❌ DB_NAME is not set!")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
