package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

const (
	appNameVar = "APP_NAME"
)

type EnvConfig interface {
	GetAppName() string
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

var dotEnvOnce sync.Once

// loadDotEnv reads an optional .env file into the process environment.
// Missing files are fine, real environment variables always win.
func loadDotEnv() {
	dotEnvOnce.Do(func() {
		_ = godotenv.Load()
	})
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Fin Track")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
