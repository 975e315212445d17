// Package credstore persists the session's token pair between runs.
// One record under one key: the serialized {access, refresh} pair.
package credstore

import (
	"errors"

	"github.com/fintrack/go-finance-client/api"
)

// ErrNoCredentials is returned by Load when no record is persisted.
var ErrNoCredentials = errors.New("no stored credentials")

// Repo stores at most one credential record.
type Repo interface {
	// Load returns the persisted token pair, or ErrNoCredentials.
	Load() (*api.TokenPair, error)
	// Save replaces the persisted token pair.
	Save(pair *api.TokenPair) error
	// Clear removes the persisted record. Clearing an empty store is not an error.
	Clear() error
}
