package session

import (
	"context"
	"strings"
	"sync"

	"github.com/abhisheksit27/agrovest/internal/client/models"
	"github.com/abhisheksit27/agrovest/internal/client/repositories/accounts"
	"github.com/abhisheksit27/agrovest/internal/logging"
)

// seedAccount is written the first time the store initializes against an
// empty account collection, so the demo is usable before any registration.
var seedAccount = models.Account{
	FullName: "Abhishek Shrivastav",
	Email:    "abhisheksit27@gmail.com",
	Phone:    "9876543210",
	Password: "1234",
}

// Store owns the durable set of registered accounts and the in-memory
// session state. It is constructed once at startup and passed by reference
// to whatever layer needs it.
//
// Register and Login report a bare boolean: a caller cannot distinguish
// "email taken" from "bad credentials" from a storage failure. Details are
// logged, never returned.
//
// The session (authenticated flag plus current account) lives only in
// memory. It is never persisted and every process start begins anonymous.
type Store struct {
	mu       sync.Mutex
	accounts accounts.Repository
	log      logging.Logger

	authenticated bool
	current       *models.Account
}

func NewStore(repo accounts.Repository, log logging.Logger) *Store {
	return &Store{accounts: repo, log: log}
}

// loadAccounts reads the full collection. Storage errors are logged and
// collapse to an empty collection.
func (s *Store) loadAccounts(ctx context.Context) []models.Account {
	users, err := s.accounts.List(ctx)
	if err != nil {
		s.log.Error(ctx, "error loading accounts", "error", err)
		return nil
	}
	return users
}

// saveAccounts rewrites the full collection. Storage errors are logged and
// dropped.
func (s *Store) saveAccounts(ctx context.Context, users []models.Account) {
	if err := s.accounts.SaveAll(ctx, users); err != nil {
		s.log.Error(ctx, "error saving accounts", "error", err)
	}
}

// EnsureSeedAccount writes the fixed seed account if the persisted
// collection is empty. It runs once per store lifetime, on startup; an
// existing collection is never re-seeded.
func (s *Store) EnsureSeedAccount(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.loadAccounts(ctx)) > 0 {
		return
	}
	s.saveAccounts(ctx, []models.Account{seedAccount})
}

// Register adds the account to the collection unless its email is already
// taken (case-insensitive). A successful registration persists the account
// and implicitly logs the user in.
func (s *Store) Register(ctx context.Context, account models.Account) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.loadAccounts(ctx)

	for _, u := range users {
		if strings.EqualFold(u.Email, account.Email) {
			s.log.Warn(ctx, "registration rejected, email already taken", "email", account.Email)
			return false
		}
	}

	users = append(users, account)
	s.saveAccounts(ctx, users)

	s.authenticated = true
	s.current = &account
	return true
}

// Login authenticates against the stored collection. The email is matched
// case-insensitively, the password exactly. The first matching account in
// collection order wins. On failure the session is left untouched.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.loadAccounts(ctx) {
		if strings.EqualFold(u.Email, email) && u.Password == password {
			acc := u
			s.authenticated = true
			s.current = &acc
			return true
		}
	}

	return false
}

// Logout unconditionally clears the session. Storage is untouched, so the
// same credentials keep working afterwards.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.authenticated = false
	s.current = nil
}

// IsAuthenticated reports whether a user is currently logged in.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated
}

// CurrentUser returns the logged-in account, or false when anonymous.
func (s *Store) CurrentUser() (models.Account, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return models.Account{}, false
	}
	return *s.current, true
}
