package config

import (
	"fmt"
	"time"
)

// ServerApp holds the application settings the directory server needs.
type ServerApp struct {
	// TokenSignKey verifies incoming bearer tokens.
	TokenSignKey string
	// TokenIssuer is the required "iss" claim.
	TokenIssuer string
	// Version is reported by the version endpoint.
	Version string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ServerConfig is the directory server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Server  Server
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App: ServerApp{
			TokenSignKey: cfg.App.TokenSignKey,
			TokenIssuer:  cfg.App.TokenIssuer,
			Version:      cfg.App.Version,
			LogLevel:     cfg.App.LogLevel,
		},
		Storage: cfg.Storage,
		Server: Server{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}
}

// ShutdownTimeout is how long the server waits for in-flight requests.
func (cfg *ServerConfig) ShutdownTimeout() time.Duration {
	if cfg.Server.RequestTimeout > 0 {
		return cfg.Server.RequestTimeout
	}
	return 10 * time.Second
}
