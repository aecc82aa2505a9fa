// Package config reads service settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds server configuration.
type Config struct {
	HTTPAddr      string
	RedisAddr     string
	StorePrefix   string
	KafkaBroker   string
	EventsEnabled bool
	SessionKey    string
	SimDelay      time.Duration
	InitialWallet float64
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		HTTPAddr:      getenv("CC_HTTP_ADDR", ":8080"),
		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		StorePrefix:   getenv("CC_STORE_PREFIX", "cc:"),
		KafkaBroker:   getenv("KAFKA_BROKER", "kafka:9092"),
		EventsEnabled: getenv("CC_EVENTS_ENABLED", "true") == "true",
		SessionKey:    getenv("CC_SESSION_KEY", "buyerSession"),
		SimDelay:      getDuration("CC_SIM_DELAY", time.Second),
		InitialWallet: getFloat("CC_INITIAL_WALLET", 500),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: %s=%q is not a duration, using %s", key, v, def)
		return def
	}
	return d
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		log.Printf("config: %s=%q is not a non-negative number, using %v", key, v, def)
		return def
	}
	return f
}
