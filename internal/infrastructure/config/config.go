package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string   // "*" allows any origin
	RenderWorkers   int        // concurrent PDF renders
	LogLevel        slog.Level // debug, info, warn, error
	WorksheetTitle  string     // written into the PDF metadata
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()
	return &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", "0.0.0.0:4001"),
		ShutdownTimeout: getDurationDefault("SHUTDOWN_TIMEOUT", 10*time.Second),
		AllowedOrigins:  splitList(getenvDefault("ALLOWED_ORIGINS", "*")),
		RenderWorkers:   getIntDefault("RENDER_WORKERS", 4),
		LogLevel:        getLevelDefault("LOG_LEVEL", slog.LevelInfo),
		WorksheetTitle:  getenvDefault("WORKSHEET_TITLE", "Math Worksheet"),
	}
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDurationDefault(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getIntDefault(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		log.Fatalf("config: %s=%q must be a positive integer", k, v)
	}
	return n
}

func getLevelDefault(k string, fallback slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
