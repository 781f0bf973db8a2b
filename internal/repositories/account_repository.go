package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"chaibisket/models"
	"chaibisket/pkg/logger"
	"chaibisket/pkg/storage"
)

// AccountRepositoryInterface persists the registered account list and the
// single current-session snapshot.
type AccountRepositoryInterface interface {
	GetAll(ctx context.Context) []models.Account
	FindByEmail(ctx context.Context, email string) (*models.Account, bool)
	Add(ctx context.Context, account models.Account) error
	Update(ctx context.Context, email string, account models.Account) error

	GetSession(ctx context.Context) (*models.Session, bool)
	SaveSession(ctx context.Context, session models.Session) error
	ClearSession(ctx context.Context) error
}

// AccountRepository serializes accounts under the users key and the
// session under the user key. Corrupted values degrade to empty state.
type AccountRepository struct {
	store  storage.Store
	logger *logger.Logger
}

// NewAccountRepository creates an account repository over the given store.
func NewAccountRepository(store storage.Store, log *logger.Logger) *AccountRepository {
	return &AccountRepository{
		store:  store,
		logger: log.WithComponent("account_repository"),
	}
}

// GetAll reads every registered account. Missing or corrupted data yields
// an empty list.
func (r *AccountRepository) GetAll(ctx context.Context) []models.Account {
	data, err := r.store.Get(ctx, storage.KeyUsers)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to read accounts, treating as empty", "error", err)
		}
		return []models.Account{}
	}

	var accounts []models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		r.logger.Warn("Failed to parse persisted accounts, treating as empty", "error", err)
		return []models.Account{}
	}

	return accounts
}

// FindByEmail does a linear scan for an exact, case-sensitive email match.
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*models.Account, bool) {
	for _, account := range r.GetAll(ctx) {
		if account.Email == email {
			found := account
			return &found, true
		}
	}
	return nil, false
}

// Add appends a new account to the persisted list.
func (r *AccountRepository) Add(ctx context.Context, account models.Account) error {
	accounts := r.GetAll(ctx)
	accounts = append(accounts, account)
	return r.saveAll(ctx, accounts)
}

// Update overwrites the account record currently stored under email.
// The replacement may carry a different email (profile edits can change it).
func (r *AccountRepository) Update(ctx context.Context, email string, account models.Account) error {
	accounts := r.GetAll(ctx)
	for i := range accounts {
		if accounts[i].Email == email {
			accounts[i] = account
			return r.saveAll(ctx, accounts)
		}
	}

	r.logger.Warn("Account to update not found", "email", email)
	return fmt.Errorf("account %s not found", email)
}

// GetSession reads the current session snapshot, if any.
func (r *AccountRepository) GetSession(ctx context.Context) (*models.Session, bool) {
	data, err := r.store.Get(ctx, storage.KeySession)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.logger.Warn("Failed to read session, treating as absent", "error", err)
		}
		return nil, false
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		r.logger.Warn("Failed to parse persisted session, treating as absent", "error", err)
		return nil, false
	}

	return &session, true
}

// SaveSession persists the current session snapshot.
func (r *AccountRepository) SaveSession(ctx context.Context, session models.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		r.logger.Error("Failed to serialize session", "error", err)
		return fmt.Errorf("failed to serialize session: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeySession, data); err != nil {
		r.logger.Error("Failed to persist session", "error", err)
		return err
	}

	return nil
}

// ClearSession destroys the current session.
func (r *AccountRepository) ClearSession(ctx context.Context) error {
	if err := r.store.Remove(ctx, storage.KeySession); err != nil {
		r.logger.Error("Failed to clear session", "error", err)
		return err
	}
	return nil
}

func (r *AccountRepository) saveAll(ctx context.Context, accounts []models.Account) error {
	data, err := json.Marshal(accounts)
	if err != nil {
		r.logger.Error("Failed to serialize accounts", "error", err)
		return fmt.Errorf("failed to serialize accounts: %v", err)
	}

	if err := r.store.Set(ctx, storage.KeyUsers, data); err != nil {
		r.logger.Error("Failed to persist accounts", "error", err)
		return err
	}

	return nil
}
