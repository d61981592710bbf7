package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port            string
	Env             string
	MongoURI        string
	MongoDB         string
	RabbitURL       string
	RedisAddr       string
	RateLimitPerMin int
	DDEnabled       bool
}

func Load() Config {
	return Config{
		Port:            getenv("APP_PORT", "8080"),
		Env:             getenv("APP_ENV", "dev"),
		MongoURI:        getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:         getenv("MONGO_DB", "school_db"),
		RabbitURL:       getenv("RABBIT_URL", ""),
		RedisAddr:       getenv("REDIS_ADDR", ""),
		RateLimitPerMin: atoi(getenv("RATE_LIMIT_PER_MIN", "60")),
		DDEnabled:       getenv("DD_ENABLED", "") == "true",
	}
}

func (c Config) Prod() bool { return c.Env == "prod" }

func atoi(s string) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return 0
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
