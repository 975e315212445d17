package credstore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/fintrack/go-finance-client/api"
)

// FileRepo keeps the credential record in a single JSON file. Tokens are
// bearer credentials, so the file is written user-readable only.
type FileRepo struct {
	path string
}

var _ Repo = (*FileRepo)(nil)

// NewFileRepo creates a FileRepo at the given path. Parent directories are
// created on the first Save.
func NewFileRepo(path string) *FileRepo {
	return &FileRepo{path: path}
}

func (r *FileRepo) Load() (*api.TokenPair, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, ErrNoCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "[FileRepo.Load] read credential file")
	}

	var pair api.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, errors.Wrap(err, "[FileRepo.Load] parse credential file")
	}
	if pair.Access == "" || pair.Refresh == "" {
		return nil, ErrNoCredentials
	}
	return &pair, nil
}

func (r *FileRepo) Save(pair *api.TokenPair) error {
	if pair == nil {
		return errors.New("[FileRepo.Save] nil token pair")
	}
	data, err := json.Marshal(pair)
	if err != nil {
		return errors.Wrap(err, "[FileRepo.Save] marshal token pair")
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o700); err != nil {
		return errors.Wrap(err, "[FileRepo.Save] create credential dir")
	}
	if err := os.WriteFile(r.path, data, 0o600); err != nil {
		return errors.Wrap(err, "[FileRepo.Save] write credential file")
	}
	return nil
}

func (r *FileRepo) Clear() error {
	if err := os.Remove(r.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "[FileRepo.Clear] remove credential file")
	}
	return nil
}
