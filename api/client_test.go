package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fintrack/go-finance-client/api"
	errs "github.com/fintrack/go-finance-client/internal/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *api.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return api.New(server.URL, 5*time.Second)
}

func TestGetSendsBearerAndRequestID(t *testing.T) {
	var gotAuth, gotRequestID string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	var out map[string]bool
	require.NoError(t, client.Get(context.Background(), "token-123", "/api/thing/", &out))
	require.Equal(t, "Bearer token-123", gotAuth)
	require.NotEmpty(t, gotRequestID)
	require.True(t, out["ok"])
}

func TestUnauthorizedMapsToSentinel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	err := client.Get(context.Background(), "t", "/api/thing/", &struct{}{})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestStatusErrorPrefersServerDetail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"detail":"amount must be positive"}`))
	}))

	err := client.Get(context.Background(), "t", "/api/thing/", &struct{}{})
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.Status)
	require.Equal(t, "amount must be positive", statusErr.Message)
}

func TestStatusErrorTruncatesRawBody(t *testing.T) {
	longBody := strings.Repeat("x", 500)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(longBody))
	}))

	err := client.Get(context.Background(), "t", "/api/thing/", &struct{}{})
	var statusErr *api.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Contains(t, statusErr.Message, "status 500")
	require.Less(t, len(statusErr.Message), 200, "raw body excerpt must be truncated")
}

func TestShapeMismatchIsAnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"prediction": "not-an-object"`))
	}))

	var out struct{ Prediction struct{ X int } }
	err := client.Get(context.Background(), "t", "/api/thing/", &out)
	require.ErrorIs(t, err, errs.ErrInvalidShape)
}

func TestNetworkFailureIsClassified(t *testing.T) {
	client := api.New("http://127.0.0.1:1", 200*time.Millisecond)

	err := client.Get(context.Background(), "t", "/api/thing/", &struct{}{})
	require.ErrorIs(t, err, errs.ErrNetwork)
}

func TestObtainAndRefreshToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/token/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access":"a1","refresh":"r1"}`))
	})
	mux.HandleFunc("POST /api/token/refresh/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access":"a2","refresh":"r2"}`))
	})
	client := newTestClient(t, mux)

	pair, err := client.ObtainToken(context.Background(), "ana", "pw")
	require.NoError(t, err)
	require.Equal(t, &api.TokenPair{Access: "a1", Refresh: "r1"}, pair)

	pair, err = client.RefreshToken(context.Background(), "r1")
	require.NoError(t, err)
	require.Equal(t, "a2", pair.Access)
}

func TestGetRawReturnsFilename(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Disposition", `attachment; filename="transactions_export_20250309.csv"`)
		_, _ = w.Write([]byte("Date,Title,Amount\n"))
	}))

	data, filename, err := client.GetRaw(context.Background(), "t", "/api/export-transactions/")
	require.NoError(t, err)
	require.Equal(t, "transactions_export_20250309.csv", filename)
	require.Equal(t, "Date,Title,Amount\n", string(data))
}
