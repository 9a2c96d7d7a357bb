// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validLocalClientConfig() *ClientConfig {
	return &ClientConfig{
		App:     ClientApp{Profile: "default"},
		Storage: ClientStorage{DB: ClientDB{DSN: "accounts.db"}},
	}
}

func validRemoteClientConfig() *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Profile:       "default",
			TokenSignKey:  "k",
			TokenIssuer:   "iss",
			TokenDuration: time.Minute,
		},
		Adapter: ClientAdapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second},
	}
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		remote bool
		want   error
	}{
		{name: "local ok", mutate: func(*ClientConfig) {}},
		{name: "local empty dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = "" }, want: ErrInvalidStorageConfigs},
		{name: "local memory dsn", mutate: func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "empty profile", mutate: func(c *ClientConfig) { c.App.Profile = " " }, want: ErrInvalidAppConfigs},
		{name: "remote ok", remote: true, mutate: func(*ClientConfig) {}},
		{name: "remote no timeout", remote: true, mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "remote no key", remote: true, mutate: func(c *ClientConfig) { c.App.TokenSignKey = "" }, want: ErrInvalidAppConfigs},
		{name: "remote no duration", remote: true, mutate: func(c *ClientConfig) { c.App.TokenDuration = 0 }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validLocalClientConfig()
			if tt.remote {
				cfg = validRemoteClientConfig()
			}
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.want)
			if tt.want == nil {
				assert.NoError(t, cfg.validate())
			}
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		return &ServerConfig{
			App:     ServerApp{TokenSignKey: "k", TokenIssuer: "iss"},
			Storage: Storage{DB: DB{DSN: "postgres://db"}},
			Server:  Server{HTTPAddress: ":8080"},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Server.HTTPAddress = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)

	cfg = valid()
	cfg.App.TokenIssuer = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
}

func TestServerConfig_ShutdownTimeout(t *testing.T) {
	cfg := &ServerConfig{}
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout())

	cfg.Server.RequestTimeout = time.Second
	assert.Equal(t, time.Second, cfg.ShutdownTimeout())
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		App:     App{Profile: "p", TokenSignKey: "k", LogPath: "l"},
		Adapter: Adapter{HTTPAddress: "http://x", RequestTimeout: time.Second},
		Storage: Storage{DB: DB{DSN: "a.db"}},
	})

	assert.Equal(t, "p", cfg.App.Profile)
	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, "l", cfg.App.LogPath)
	assert.True(t, cfg.Remote())
	assert.Equal(t, "a.db", cfg.Storage.DB.DSN)
}
