package config

import (
	"os"
	"path/filepath"
	"time"
)

type SessionConfig interface {
	GetTokenRefreshInterval() time.Duration
	GetCredentialFile() string
}

type Session struct{}

var _ SessionConfig = Session{}

// GetTokenRefreshInterval returns how often the access token is silently
// refreshed while a session is active. The backend team should confirm the
// actual access token lifetime before shortening this.
func (Session) GetTokenRefreshInterval() time.Duration {
	return getDurationEnv("TOKEN_REFRESH_INTERVAL", 4*time.Minute)
}

// GetCredentialFile returns the path of the persisted token pair.
func (Session) GetCredentialFile() string {
	if file := GetEnv("CREDENTIAL_FILE", ""); file != "" {
		return file
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ".fintrack-credentials.json"
	}
	return filepath.Join(configDir, "fintrack", "credentials.json")
}
