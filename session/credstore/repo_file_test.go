package credstore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fintrack/go-finance-client/api"
	"github.com/fintrack/go-finance-client/session/credstore"
)

func TestFileRepoRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	repo := credstore.NewFileRepo(path)

	_, err := repo.Load()
	require.ErrorIs(t, err, credstore.ErrNoCredentials)

	pair := &api.TokenPair{Access: "a1", Refresh: "r1"}
	require.NoError(t, repo.Save(pair))

	loaded, err := repo.Load()
	require.NoError(t, err)
	require.Equal(t, pair, loaded)

	// Replacement is wholesale.
	require.NoError(t, repo.Save(&api.TokenPair{Access: "a2", Refresh: "r2"}))
	loaded, err = repo.Load()
	require.NoError(t, err)
	require.Equal(t, "a2", loaded.Access)
	require.Equal(t, "r2", loaded.Refresh)
}

func TestFileRepoPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	path := filepath.Join(t.TempDir(), "credentials.json")
	repo := credstore.NewFileRepo(path)
	require.NoError(t, repo.Save(&api.TokenPair{Access: "a", Refresh: "r"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileRepoClearIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	repo := credstore.NewFileRepo(path)

	require.NoError(t, repo.Save(&api.TokenPair{Access: "a", Refresh: "r"}))
	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear())

	_, err := repo.Load()
	require.ErrorIs(t, err, credstore.ErrNoCredentials)
}

func TestFileRepoRejectsPartialRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"access":"only"}`), 0o600))

	repo := credstore.NewFileRepo(path)
	_, err := repo.Load()
	require.ErrorIs(t, err, credstore.ErrNoCredentials)
}
