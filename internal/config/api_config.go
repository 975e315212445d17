package config

import (
	"time"
)

type APIConfig interface {
	GetBaseURL() string
	GetHTTPTimeout() time.Duration
}

type API struct{}

var _ APIConfig = API{}

// GetBaseURL returns the origin of the finance tracker backend.
// All REST endpoints live under <base-url>/api/.
func (API) GetBaseURL() string {
	return GetEnv("API_BASE_URL", "http://localhost:8000")
}

func (API) GetHTTPTimeout() time.Duration {
	return getDurationEnv("HTTP_TIMEOUT", 30*time.Second)
}

func getDurationEnv(envVar string, defaultValue time.Duration) time.Duration {
	value := GetEnv(envVar, "")
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
