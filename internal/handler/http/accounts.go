// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/utils"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *Handler) listAccounts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	accounts, err := h.services.AccountService.ListAccounts(r.Context(), owner)
	if err != nil {
		log.Err(err).Msg("error listing accounts")
		writeServiceError(w, err)
		return
	}
	if accounts == nil {
		accounts = []models.Account{}
	}

	if _, err = utils.WriteJSON(w, accounts, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing accounts response")
	}
}

func (h *Handler) addAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	var req models.NewAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding new account request")
		writeServiceError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	account, err := h.services.AccountService.AddAccount(r.Context(), owner, req)
	if err != nil {
		log.Err(err).Msg("error adding account")
		writeServiceError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, account, http.StatusCreated); err != nil {
		log.Err(err).Msg("error writing account response")
	}
}

func (h *Handler) removeAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	accountID, err := uuid.Parse(chi.URLParam(r, "account_id"))
	if err != nil {
		writeServiceError(w, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}

	if err = h.services.AccountService.RemoveAccount(r.Context(), owner, accountID); err != nil {
		log.Err(err).Str("account_id", accountID.String()).Msg("error removing account")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) selectAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	owner, ok := utils.GetOwnerFromContext(r.Context())
	if !ok {
		writeServiceError(w, ErrNoOwnerInContext)
		return
	}

	var req models.SelectAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("error decoding select account request")
		writeServiceError(w, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.AccountService.SelectAccount(r.Context(), owner, req.AccountID); err != nil {
		log.Err(err).Msg("error selecting account")
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
