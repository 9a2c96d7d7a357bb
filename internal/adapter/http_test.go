// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/internal/utils"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "account-switcher"
	testSignKey = "test-sign-key"
)

// newTestAdapter builds an adapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpDirectoryAdapter {
	t.Helper()

	a, err := NewHTTPDirectoryAdapter(
		config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: time.Second},
		config.ClientApp{TokenIssuer: testIssuer, TokenSignKey: testSignKey, TokenDuration: time.Minute},
		logger.Nop(),
	)
	require.NoError(t, err)

	adapter := a.(*httpDirectoryAdapter)
	adapter.client.SetRetryCount(0)
	return adapter
}

// requireOwner checks the bearer token of r and returns its subject.
func requireOwner(t *testing.T, r *http.Request) string {
	t.Helper()

	raw, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
	require.NoError(t, err)

	token, err := utils.ValidateAndParseJWTToken(raw, testSignKey, testIssuer)
	require.NoError(t, err)
	return token.Owner
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPDirectoryAdapter_Address(t *testing.T) {
	_, err := NewHTTPDirectoryAdapter(config.ClientAdapter{HTTPAddress: ""}, config.ClientApp{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)

	a, err := NewHTTPDirectoryAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080/"}, config.ClientApp{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpDirectoryAdapter).client.BaseURL)
}

// ── ListAccounts ────────────────────────────────────────────────────────────

func TestListAccounts_Success(t *testing.T) {
	want := []models.Account{{ID: uuid.New(), Name: "Ann", Selected: true, CreatedAt: time.Now().UTC().Truncate(time.Second)}}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "alice", requireOwner(t, r))

		writeJSON(w, http.StatusOK, want)
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListAccounts(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want[0].ID, got[0].ID)
	assert.True(t, got[0].Selected)
	assert.True(t, want[0].CreatedAt.Equal(got[0].CreatedAt))
}

func TestListAccounts_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "invalid token"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).ListAccounts(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "invalid token")
}

func TestListAccounts_NoTokenWithoutSignKey(t *testing.T) {
	a, err := NewHTTPDirectoryAdapter(config.ClientAdapter{HTTPAddress: "http://localhost:1"}, config.ClientApp{TokenIssuer: testIssuer}, logger.Nop())
	require.NoError(t, err)

	_, err = a.ListAccounts(context.Background(), "alice")
	assert.ErrorIs(t, err, utils.ErrInvalidTokenParams)
}

// ── AddAccount ──────────────────────────────────────────────────────────────

func TestAddAccount_Success(t *testing.T) {
	email := "bob@example.com"
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/accounts", r.URL.Path)
		assert.Equal(t, "alice", requireOwner(t, r))

		var req models.NewAccountRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Bob", req.Name)
		require.NotNil(t, req.Email)
		assert.Equal(t, email, *req.Email)

		writeJSON(w, http.StatusCreated, models.Account{ID: id, Name: req.Name, Email: req.Email})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).AddAccount(context.Background(), "alice", models.NewAccountRequest{Name: "Bob", Email: &email})

	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
}

func TestAddAccount_BadRequestMapsToInvalidData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "invalid account name"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddAccount(context.Background(), "alice", models.NewAccountRequest{})

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestAddAccount_ConflictMapsToAlreadyExists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).AddAccount(context.Background(), "alice", models.NewAccountRequest{Name: "Bob"})

	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorIs(t, err, store.ErrAccountAlreadyExists)
}

// ── RemoveAccount ───────────────────────────────────────────────────────────

func TestRemoveAccount_Success(t *testing.T) {
	id := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/accounts/"+id.String(), r.URL.Path)
		assert.Equal(t, "alice", requireOwner(t, r))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, newTestAdapter(t, srv.URL).RemoveAccount(context.Background(), "alice", id))
}

func TestRemoveAccount_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "account was not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).RemoveAccount(context.Background(), "alice", uuid.New())

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, store.ErrAccountNotFound)
}

func TestRemoveAccount_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).RemoveAccount(context.Background(), "alice", uuid.New())

	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Contains(t, err.Error(), "boom")
}

// ── SelectAccount ───────────────────────────────────────────────────────────

func TestSelectAccount_SendsIDOrNull(t *testing.T) {
	id := uuid.New()
	var bodies []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/accounts/selected", r.URL.Path)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		if v, ok := raw["account_id"].(string); ok {
			bodies = append(bodies, v)
		} else {
			bodies = append(bodies, "null")
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	require.NoError(t, a.SelectAccount(context.Background(), "alice", &id))
	require.NoError(t, a.SelectAccount(context.Background(), "alice", nil))

	assert.Equal(t, []string{id.String(), "null"}, bodies)
}

// ── Version ─────────────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, models.VersionResponse{Version: "1.0.0", Date: "2026-01-01", Commit: "abc"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", got.Version)
}
