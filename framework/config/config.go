package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the typed configuration of a container application.
type Config struct {
	App AppConfig
	Log LogConfig
	IoC IoCConfig
}

type AppConfig struct {
	Name    string
	Env     string // local | production | testing
	Version string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// IoCConfig controls the container lifecycle and its diagnostics server.
type IoCConfig struct {
	// Lockdown freezes the container once every provider has booted.
	Lockdown bool
	// DebugAddr is the listen address of the diagnostics server; empty disables it.
	DebugAddr       string
	ShutdownTimeout time.Duration
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:    env("APP_NAME", "microioc"),
			Env:     env("APP_ENV", "local"),
			Version: env("APP_VERSION", "dev"),
		},
		Log: LogConfig{
			Level: env("LOG_LEVEL", "info"),
		},
		IoC: IoCConfig{
			Lockdown:        envBool("IOC_LOCKDOWN", true),
			DebugAddr:       os.Getenv("IOC_DEBUG_ADDR"),
			ShutdownTimeout: time.Duration(GetInt("IOC_SHUTDOWN_TIMEOUT", 10)) * time.Second,
		},
	}
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
