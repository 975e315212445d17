package fakecredrepo

import (
	"sync"

	"github.com/fintrack/go-finance-client/api"
	"github.com/fintrack/go-finance-client/session/credstore"
)

var _ credstore.Repo = (*FakeCredRepo)(nil)

// FakeCredRepo is an in-memory credential store for tests.
type FakeCredRepo struct {
	pair *api.TokenPair
	lock sync.RWMutex
}

func NewFakeCredRepo() *FakeCredRepo {
	return &FakeCredRepo{}
}

func (r *FakeCredRepo) Load() (*api.TokenPair, error) {
	r.lock.RLock()
	defer r.lock.RUnlock()

	if r.pair == nil {
		return nil, credstore.ErrNoCredentials
	}
	pair := *r.pair
	return &pair, nil
}

func (r *FakeCredRepo) Save(pair *api.TokenPair) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	copied := *pair
	r.pair = &copied
	return nil
}

func (r *FakeCredRepo) Clear() error {
	r.lock.Lock()
	defer r.lock.Unlock()

	r.pair = nil
	return nil
}
