package config

import (
	"log"
	"os"
)

type Config struct {
	MySQLDSN string
	RedisURL string
	APIToken string
	Port     string
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		if def == "" {
			log.Fatalf("missing env %s", key)
		}
		return def
	}
	return v
}

func Load() Config {
	return Config{
		MySQLDSN: getenv("MYSQL_DSN", "missionctl:missionctl@tcp(localhost:3306)/missionctl"),
		RedisURL: os.Getenv("REDIS_URL"), // optional: live feed is skipped without it
		APIToken: getenv("API_TOKEN", ""),
		Port:     getenv("PORT", "8080"),
	}
}
