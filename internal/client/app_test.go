package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remoteConfig(address string) *config.ClientConfig {
	return &config.ClientConfig{
		App: config.ClientApp{
			Profile:       "default",
			TokenSignKey:  "key",
			TokenIssuer:   "issuer",
			TokenDuration: time.Minute,
		},
		Adapter: config.ClientAdapter{
			HTTPAddress:    address,
			RequestTimeout: time.Second,
		},
	}
}

func newDirectoryServer(t *testing.T, versionCalls, listCalls *atomic.Int32) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/version":
			versionCalls.Add(1)
			_ = json.NewEncoder(w).Encode(models.VersionResponse{Version: "1.0.0"})
		case "/api/accounts":
			listCalls.Add(1)
			_, _ = w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNewAccountService_Remote(t *testing.T) {
	var versionCalls, listCalls atomic.Int32
	srv := newDirectoryServer(t, &versionCalls, &listCalls)

	accounts, closeFn, err := newAccountService(context.Background(), remoteConfig(srv.URL), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, closeFn)
	assert.NoError(t, closeFn())
	assert.Equal(t, int32(1), versionCalls.Load())

	list, err := accounts.ListAccounts(context.Background(), "default")
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, int32(1), listCalls.Load())
}

func TestNewAccountService_RemoteValidates(t *testing.T) {
	var versionCalls, listCalls atomic.Int32
	srv := newDirectoryServer(t, &versionCalls, &listCalls)

	accounts, _, err := newAccountService(context.Background(), remoteConfig(srv.URL), logger.Nop())
	require.NoError(t, err)

	_, err = accounts.ListAccounts(context.Background(), "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.Equal(t, int32(0), listCalls.Load())
}

func TestNewAccountService_UnreachableServerIsNotFatal(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	address := srv.URL
	srv.Close()

	_, _, err := newAccountService(context.Background(), remoteConfig(address), logger.Nop())
	assert.NoError(t, err)
}

func TestNewApp_Remote(t *testing.T) {
	var versionCalls, listCalls atomic.Int32
	srv := newDirectoryServer(t, &versionCalls, &listCalls)

	app, err := NewApp(context.Background(), remoteConfig(srv.URL), models.NewAppBuildInfo("1", "d", "c"), logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "default", app.services.Directory.Owner())
	assert.NotNil(t, app.tui)
	assert.NoError(t, app.Close())
}
