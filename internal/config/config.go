package config

import (
	"fmt"
	"os"
)

type Config struct {
	DBUrl      string
	JWTSecret  string
	ServerPort string
	Timezone   string
}

func Load() *Config {
	return &Config{
		DBUrl:      getEnv("DATABASE_URL", "file:bookings.db"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		ServerPort: getEnv("SERVER_PORT", "3000"),
		Timezone:   getEnv("RESTAURANT_TIMEZONE", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
