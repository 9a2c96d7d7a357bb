// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

// Controller drives one account settings session at a time.
//
// Start, HandleOption, Confirm and Teardown must be called on the
// presentation goroutine. Only the fetch slot is shared with the background
// fetch goroutine and it is guarded by mu.
type Controller struct {
	directory  AccountDirectory
	host       DialogHost
	signIn     SignInFlow
	dispatcher Dispatcher
	reporter   Reporter
	logger     *logger.Logger
	labels     Labels

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc

	// presentation goroutine only
	ctx           context.Context
	active        bool
	pendingRemove []models.Account
	selected      *models.Account
	userSelected  bool
}

// NewController wires a Controller to its collaborators. reporter may be
// nil, in which case errors are only logged.
func NewController(
	directory AccountDirectory,
	host DialogHost,
	signIn SignInFlow,
	dispatcher Dispatcher,
	reporter Reporter,
	log *logger.Logger,
) (*Controller, error) {
	if directory == nil || host == nil || signIn == nil || dispatcher == nil {
		return nil, ErrNilDependency
	}
	if log == nil {
		log = logger.Nop()
	}

	return &Controller{
		directory:  directory,
		host:       host,
		signIn:     signIn,
		dispatcher: dispatcher,
		reporter:   reporter,
		logger:     log,
		labels:     DefaultLabels(),
		ctx:        context.Background(),
	}, nil
}

// SetLabels replaces the dialog strings used by the next render.
func (c *Controller) SetLabels(labels Labels) {
	c.labels = labels
}

// Start opens a new session. Any previous fetch is disposed and the pending
// state of the previous session is dropped. The account list is requested
// on a background goroutine; the dialog is rendered through the dispatcher
// once a non-empty list arrives. A failed or empty list shows nothing.
func (c *Controller) Start(ctx context.Context) {
	fetchCtx, gen := c.openSlot(ctx)

	c.ctx = ctx
	c.active = false
	c.pendingRemove = nil
	c.selected = nil
	c.userSelected = false

	c.logger.Debug().Uint64("generation", gen).Msg("account session started")

	go c.watch(fetchCtx, gen)
}

// Refresh requests the account list again without leaving the current
// session. Pending removals and the user's selection are kept and
// reconciled with the list once it arrives.
func (c *Controller) Refresh(ctx context.Context) {
	fetchCtx, gen := c.openSlot(ctx)
	c.ctx = ctx

	c.logger.Debug().
		Uint64("generation", gen).
		Int("pending", len(c.pendingRemove)).
		Msg("account session refreshed")

	go c.watch(fetchCtx, gen)
}

// Teardown disposes the in-flight fetch and clears the session state.
// It never waits for the fetch goroutine.
func (c *Controller) Teardown() {
	c.dispose()
	c.active = false
	c.pendingRemove = nil
	c.selected = nil
	c.userSelected = false
}

// Confirm commits the session: every pending removal is applied in the
// order it was marked, then the pending selection (possibly none) is
// applied, then the session is torn down. Failures do not stop the
// remaining calls; they are joined, logged, reported and returned.
//
// Confirm on a session that is not showing a dialog is a no-op.
func (c *Controller) Confirm(ctx context.Context) error {
	if !c.active {
		c.logger.Debug().Msg("confirm ignored: no active account session")
		return nil
	}

	c.dispose()

	removals := c.pendingRemove
	selected := c.selected

	var errs []error
	for _, account := range removals {
		if err := c.directory.RemoveAccount(ctx, account); err != nil {
			errs = append(errs, fmt.Errorf("remove account %s: %w", account.ID, err))
		}
	}

	// a selected account that is also pending removal is still passed on
	if err := c.directory.SelectAccount(ctx, selected); err != nil {
		errs = append(errs, fmt.Errorf("select account: %w", err))
	}

	c.Teardown()

	if len(errs) > 0 {
		err := fmt.Errorf("%w: %w", ErrCommit, errors.Join(errs...))
		c.logger.Err(err).Str("func", "*Controller.Confirm").Msg("error applying account changes")
		c.report(err)
		return err
	}

	c.logger.Info().
		Int("removed", len(removals)).
		Bool("selected", selected != nil).
		Msg("account changes applied")

	return nil
}

// HandleOption applies a user action on a dialog option. Options that
// arrive while no dialog is active are ignored.
func (c *Controller) HandleOption(opt Option) {
	if !c.active {
		c.logger.Debug().Stringer("kind", opt.Kind).Msg("option ignored: no active account session")
		return
	}

	switch opt.Kind {
	case OptionSelect:
		c.userSelected = true
		if opt.Account == nil {
			c.selected = nil
			return
		}
		account := *opt.Account
		c.selected = &account
	case OptionRemove:
		if opt.Account == nil {
			return
		}
		if opt.Checked {
			c.markForRemoval(*opt.Account)
		} else {
			c.unmarkForRemoval(opt.Account.ID)
		}
	case OptionAddAccount:
		c.signIn.Start(c.ctx)
	default:
		c.logger.Warn().Stringer("kind", opt.Kind).Msg("unknown option kind")
	}
}

// Active reports whether a dialog of the current session is showing.
func (c *Controller) Active() bool {
	return c.active
}

// PendingRemovals returns a copy of the accounts marked for removal.
func (c *Controller) PendingRemovals() []models.Account {
	out := make([]models.Account, len(c.pendingRemove))
	copy(out, c.pendingRemove)
	return out
}

// SelectedAccount returns the pending selection, if any.
func (c *Controller) SelectedAccount() (models.Account, bool) {
	if c.selected == nil {
		return models.Account{}, false
	}
	return *c.selected, true
}

func (c *Controller) watch(ctx context.Context, gen uint64) {
	updates := c.directory.ObserveAccounts(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}

			if update.Err != nil {
				if ctx.Err() != nil {
					return
				}
				err := fmt.Errorf("%w: %w", ErrAccountsFetch, update.Err)
				c.logger.Err(err).Str("func", "*Controller.watch").Msg("error fetching accounts")
				c.dispatcher.Dispatch(func() {
					if c.isCurrent(gen) {
						c.report(err)
					}
				})
				return
			}

			if len(update.Accounts) == 0 {
				c.logger.Debug().Msg("no accounts to show")
				continue
			}

			accounts := update.Accounts
			c.dispatcher.Dispatch(func() {
				c.render(gen, accounts)
			})
		}
	}
}

func (c *Controller) render(gen uint64, accounts []models.Account) {
	if !c.isCurrent(gen) {
		c.logger.Debug().Uint64("generation", gen).Msg("stale account list dropped")
		return
	}

	c.reconcileSelection(accounts)
	c.retainPending(accounts)
	c.active = true

	c.host.Clear()
	c.host.AppendRadioCategory(c.labels.AccountList, c.selectOptions(accounts))
	c.host.AppendCheckedCategory(c.labels.RemoveAccount, c.removeOptions(accounts))
	c.host.AppendSingleButton(Option{Kind: OptionAddAccount, Title: c.labels.AddAccount})
	c.host.ShowDialog(c.labels.Title, c.HandleOption, func() {
		_ = c.Confirm(c.ctx)
	})
}

func (c *Controller) selectOptions(accounts []models.Account) []Option {
	options := make([]Option, 0, len(accounts)+1)
	options = append(options, Option{
		Kind:    OptionSelect,
		Title:   c.labels.None,
		Checked: c.selected == nil,
	})

	for _, account := range accounts {
		options = append(options, Option{
			Kind:    OptionSelect,
			Title:   FormatAccount(account.Name, account.Email),
			Account: &account,
			Checked: c.selected != nil && c.selected.ID == account.ID,
		})
	}

	return options
}

func (c *Controller) removeOptions(accounts []models.Account) []Option {
	options := make([]Option, 0, len(accounts))
	for _, account := range accounts {
		options = append(options, Option{
			Kind:    OptionRemove,
			Title:   FormatAccount(account.Name, account.Email),
			Account: &account,
			Checked: c.isPendingRemoval(account.ID),
		})
	}

	return options
}

func (c *Controller) markForRemoval(account models.Account) {
	if c.isPendingRemoval(account.ID) {
		return
	}
	c.pendingRemove = append(c.pendingRemove, account)
}

func (c *Controller) unmarkForRemoval(id uuid.UUID) {
	for i, account := range c.pendingRemove {
		if account.ID == id {
			c.pendingRemove = append(c.pendingRemove[:i], c.pendingRemove[i+1:]...)
			return
		}
	}
}

func (c *Controller) isPendingRemoval(id uuid.UUID) bool {
	for _, account := range c.pendingRemove {
		if account.ID == id {
			return true
		}
	}
	return false
}

// reconcileSelection keeps a selection made by the user while its account
// is still listed. Otherwise the directory's selected account wins.
func (c *Controller) reconcileSelection(accounts []models.Account) {
	if c.userSelected && (c.selected == nil || listed(accounts, c.selected.ID)) {
		return
	}

	c.userSelected = false
	c.selected = nil
	for _, account := range accounts {
		if account.Selected {
			c.selected = &account
		}
	}
}

func listed(accounts []models.Account, id uuid.UUID) bool {
	for _, account := range accounts {
		if account.ID == id {
			return true
		}
	}
	return false
}

// retainPending drops pending removals whose account is no longer listed.
func (c *Controller) retainPending(accounts []models.Account) {
	kept := c.pendingRemove[:0]
	for _, pending := range c.pendingRemove {
		if listed(accounts, pending.ID) {
			kept = append(kept, pending)
		}
	}
	c.pendingRemove = kept
}

func (c *Controller) report(err error) {
	if c.reporter != nil {
		c.reporter.ReportError(err)
	}
}

func (c *Controller) openSlot(ctx context.Context) (context.Context, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
	}
	c.generation++

	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	return fetchCtx, c.generation
}

func (c *Controller) dispose() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
}

func (c *Controller) isCurrent(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancel != nil && c.generation == gen
}
