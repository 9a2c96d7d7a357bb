// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/utils"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const (
	accountsPath        = "/api/accounts"
	accountPath         = "/api/accounts/{account_id}"
	selectedAccountPath = "/api/accounts/selected"
	versionPath         = "/api/version"
)

type httpDirectoryAdapter struct {
	client *utils.HTTPClient

	tokenIssuer   string
	tokenSignKey  string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHTTPDirectoryAdapter constructs the HTTP implementation of
// [DirectoryAdapter]. The base URL comes from adapterCfg.HTTPAddress; a
// missing scheme defaults to http.
func NewHTTPDirectoryAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (DirectoryAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpDirectoryAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		tokenIssuer:   appCfg.TokenIssuer,
		tokenSignKey:  appCfg.TokenSignKey,
		tokenDuration: appCfg.TokenDuration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListAccounts implements [DirectoryAdapter] with GET /api/accounts.
func (h *httpDirectoryAdapter) ListAccounts(ctx context.Context, owner string) ([]models.Account, error) {
	req, err := h.authedRequest(ctx, owner)
	if err != nil {
		return nil, err
	}

	var accounts []models.Account
	resp, err := req.SetResult(&accounts).Get(accountsPath)
	if err != nil {
		return nil, fmt.Errorf("list accounts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return accounts, nil
}

// AddAccount implements [DirectoryAdapter] with POST /api/accounts.
func (h *httpDirectoryAdapter) AddAccount(ctx context.Context, owner string, newAccount models.NewAccountRequest) (models.Account, error) {
	req, err := h.authedRequest(ctx, owner)
	if err != nil {
		return models.Account{}, err
	}

	var account models.Account
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(newAccount).
		SetResult(&account).
		Post(accountsPath)
	if err != nil {
		return models.Account{}, fmt.Errorf("add account request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

// RemoveAccount implements [DirectoryAdapter] with DELETE /api/accounts/{id}.
func (h *httpDirectoryAdapter) RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error {
	req, err := h.authedRequest(ctx, owner)
	if err != nil {
		return err
	}

	resp, err := req.
		SetPathParam("account_id", accountID.String()).
		Delete(accountPath)
	if err != nil {
		return fmt.Errorf("remove account request: %w", err)
	}

	return mapHTTPError(resp)
}

// SelectAccount implements [DirectoryAdapter] with PUT /api/accounts/selected.
func (h *httpDirectoryAdapter) SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error {
	req, err := h.authedRequest(ctx, owner)
	if err != nil {
		return err
	}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(models.SelectAccountRequest{AccountID: accountID}).
		Put(selectedAccountPath)
	if err != nil {
		return fmt.Errorf("select account request: %w", err)
	}

	return mapHTTPError(resp)
}

// Version implements [DirectoryAdapter] with the unauthenticated
// GET /api/version.
func (h *httpDirectoryAdapter) Version(ctx context.Context) (models.VersionResponse, error) {
	var version models.VersionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get(versionPath)
	if err != nil {
		return models.VersionResponse{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionResponse{}, err
	}

	return version, nil
}

// authedRequest mints a token for owner and attaches it as a bearer token.
func (h *httpDirectoryAdapter) authedRequest(ctx context.Context, owner string) (*resty.Request, error) {
	token, err := utils.GenerateJWTToken(h.tokenIssuer, owner, h.tokenDuration, h.tokenSignKey)
	if err != nil {
		h.logger.Err(err).Str("func", "*httpDirectoryAdapter.authedRequest").Msg("error minting token")
		return nil, fmt.Errorf("error minting token: %w", err)
	}

	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token.String()), nil
}
