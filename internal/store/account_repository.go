// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

const (
	colAccountID = "account_id"
	colOwner     = "owner"
	colName      = "name"
	colEmail     = "email"
	colSelected  = "selected"
	colCreatedAt = "created_at"
)

// accountRepository is the SQL implementation of [AccountRepository]. The
// same code serves PostgreSQL and SQLite; only the placeholder format of
// the statement builder differs.
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) ListAccounts(ctx context.Context, owner string) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(colAccountID, colName, colEmail, colSelected, colCreatedAt).
		From(models.Account{}.TableName()).
		Where(sq.Eq{colOwner: owner}).
		OrderBy(colCreatedAt, colAccountID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Str("owner", owner).Msg("failed to query accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Email, &account.Selected, &account.CreatedAt); err != nil {
			log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("failed to scan account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*accountRepository.ListAccounts").Msg("error iterating account rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) SaveAccount(ctx context.Context, owner string, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(models.Account{}.TableName()).
		Columns(colAccountID, colOwner, colName, colEmail, colSelected, colCreatedAt).
		Values(account.ID.String(), owner, account.Name, account.Email, account.Selected, account.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.SaveAccount").
			Str("owner", owner).
			Stringer("account_id", account.ID).
			Msg("failed to insert account")

		if r.db.uniqueViolation(err) {
			return ErrAccountAlreadyExists
		}
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return ErrAccountNotSaved
	}

	return nil
}

func (r *accountRepository) RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Delete(models.Account{}.TableName()).
		Where(sq.Eq{colOwner: owner}).
		Where(sq.Eq{colAccountID: accountID.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*accountRepository.RemoveAccount").
			Str("owner", owner).
			Stringer("account_id", accountID).
			Msg("failed to delete account")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// SelectAccount clears the owner's selection and, when accountID is set,
// marks that account selected. Both updates share one transaction so the
// owner never ends up with two selected accounts.
func (r *accountRepository) SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error {
	log := logger.FromContext(ctx)

	clearQuery, clearArgs, err := r.db.builder.
		Update(models.Account{}.TableName()).
		Set(colSelected, false).
		Where(sq.Eq{colOwner: owner}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var setQuery string
	var setArgs []any
	if accountID != nil {
		setQuery, setArgs, err = r.db.builder.
			Update(models.Account{}.TableName()).
			Set(colSelected, true).
			Where(sq.Eq{colOwner: owner}).
			Where(sq.Eq{colAccountID: accountID.String()}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if accountID == nil {
			return nil
		}

		result, err := tx.ExecContext(ctx, setQuery, setArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if affected == 0 {
			return ErrAccountNotFound
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.SelectAccount").Str("owner", owner).Msg("failed to select account")
		return err
	}

	return nil
}
