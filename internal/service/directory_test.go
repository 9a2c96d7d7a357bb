// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/mock"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestDirectory(t *testing.T) (*AccountDirectory, *mock.MockAccountRepository) {
	t.Helper()
	svc, repo := newTestAccountService(t)
	return NewClientServices(svc, "alice", logger.Nop()).Directory, repo
}

func receive(t *testing.T, updates <-chan models.AccountsUpdate) (models.AccountsUpdate, bool) {
	t.Helper()
	select {
	case update, ok := <-updates:
		return update, ok
	case <-time.After(time.Second):
		t.Fatal("no update received")
		return models.AccountsUpdate{}, false
	}
}

func TestAccountDirectory_ObserveAccounts_EmitsOnceAndCloses(t *testing.T) {
	dir, repo := newTestDirectory(t)
	want := []models.Account{{ID: uuid.New(), Name: "Ann", Selected: true}}

	repo.EXPECT().ListAccounts(gomock.Any(), "alice").Return(want, nil)

	updates := dir.ObserveAccounts(context.Background())

	update, ok := receive(t, updates)
	require.True(t, ok)
	require.NoError(t, update.Err)
	assert.Equal(t, want, update.Accounts)

	_, ok = receive(t, updates)
	assert.False(t, ok, "stream is closed after the single emission")
}

func TestAccountDirectory_ObserveAccounts_Error(t *testing.T) {
	dir, repo := newTestDirectory(t)
	listErr := errors.New("database is locked")

	repo.EXPECT().ListAccounts(gomock.Any(), "alice").Return(nil, listErr)

	update, ok := receive(t, dir.ObserveAccounts(context.Background()))
	require.True(t, ok)
	assert.ErrorIs(t, update.Err, listErr)
	assert.Empty(t, update.Accounts)
}

func TestAccountDirectory_RemoveAndSelect(t *testing.T) {
	dir, repo := newTestDirectory(t)
	account := models.Account{ID: uuid.New(), Name: "Ann"}

	gomock.InOrder(
		repo.EXPECT().RemoveAccount(gomock.Any(), "alice", account.ID).Return(nil),
		repo.EXPECT().SelectAccount(gomock.Any(), "alice", &account.ID).Return(nil),
		repo.EXPECT().SelectAccount(gomock.Any(), "alice", gomock.Nil()).Return(nil),
	)

	require.NoError(t, dir.RemoveAccount(context.Background(), account))
	require.NoError(t, dir.SelectAccount(context.Background(), &account))
	require.NoError(t, dir.SelectAccount(context.Background(), nil))
}

func TestAccountDirectory_AddAccount(t *testing.T) {
	dir, repo := newTestDirectory(t)

	repo.EXPECT().SaveAccount(gomock.Any(), "alice", gomock.Any()).Return(nil)

	account, err := dir.AddAccount(context.Background(), "Bob", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bob", account.Name)
	assert.Nil(t, account.Email)
	assert.Equal(t, "alice", dir.Owner())
}
