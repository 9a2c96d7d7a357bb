package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	myHTTP "github.com/MKhiriev/go-account-switcher/internal/handler/http"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAppInfo struct{}

func (stubAppInfo) GetAppInfo(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: "9.9.9"}
}

func testConfig(address string) *config.ServerConfig {
	cfg := &config.ServerConfig{}
	cfg.Server.HTTPAddress = address
	cfg.Server.RequestTimeout = time.Second
	cfg.App.TokenSignKey = "key"
	cfg.App.TokenIssuer = "issuer"
	return cfg
}

func TestNewServer_RequiresAddress(t *testing.T) {
	cfg := testConfig("")
	h := myHTTP.NewHandler(&service.Services{}, cfg, logger.Nop())

	_, err := NewServer(h, cfg, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(nil, testConfig(":0"), logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunOn_ServesAndStopsOnCancel(t *testing.T) {
	cfg := testConfig("127.0.0.1:0")
	h := myHTTP.NewHandler(&service.Services{AppInfoService: stubAppInfo{}}, cfg, logger.Nop())

	srv, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.(*server).runOn(ctx, listener)
	}()

	resp, err := http.Get("http://" + listener.Addr().String() + "/api/version")
	require.NoError(t, err)
	var version models.VersionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&version))
	require.NoError(t, resp.Body.Close())
	assert.Equal(t, "9.9.9", version.Version)

	cancel()
	select {
	case err = <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}
