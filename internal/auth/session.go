package auth

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// Session tracks the current authenticated identity. The identity lives in
// process memory and is backed by a durable "remember me" token: the plain
// account email stored under store.SessionTokenKey, resolved again at
// startup by Restore.
type Session struct {
	mu      sync.Mutex
	kv      *database.KeyValue
	store   *store.Store
	current *models.Account
}

// NewSession creates a session manager with no authenticated identity.
func NewSession(kv *database.KeyValue, st *store.Store) *Session {
	return &Session{kv: kv, store: st}
}

// Login authenticates email/password against the account collection. It
// succeeds only when an account exists with exactly equal email, exactly
// equal plaintext password, and verified set; any other outcome is reported
// as invalid credentials, without distinguishing the cause.
func (s *Session) Login(email, password string) (models.Account, error) {
	var match *models.Account
	s.store.View(func(doc *models.Document) {
		for i := range doc.Accounts {
			a := &doc.Accounts[i]
			if a.Email == email && a.Password == password && a.Verified {
				copied := *a
				match = &copied
				break
			}
		}
	})

	if match == nil {
		return models.Account{}, models.NewDomainError(models.ErrInvalidCredentials,
			"Invalid email or password, or account not verified.")
	}

	if err := s.kv.Set(store.SessionTokenKey, match.Email); err != nil {
		return models.Account{}, err
	}

	s.mu.Lock()
	s.current = match
	s.mu.Unlock()

	log.WithField("email", match.Email).Info("Login successful")
	return *match, nil
}

// Logout clears the in-memory identity and removes the durable token.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
	return s.kv.Delete(store.SessionTokenKey)
}

// Restore resolves the durable token to an account at startup. A token with
// no matching account is stale and gets discarded, so a broken session heals
// itself on the next start. Returns whether an identity was restored.
func (s *Session) Restore() (bool, error) {
	token, found, err := s.kv.Get(store.SessionTokenKey)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	var match *models.Account
	s.store.View(func(doc *models.Document) {
		if a := doc.FindAccountByEmail(token); a != nil {
			copied := *a
			match = &copied
		}
	})

	if match == nil {
		log.WithField("token", token).Warn("Stale session token, discarding")
		return false, s.kv.Delete(store.SessionTokenKey)
	}

	s.mu.Lock()
	s.current = match
	s.mu.Unlock()

	log.WithField("email", match.Email).Info("Session restored")
	return true, nil
}

// Current returns a copy of the authenticated account, or nil when the
// session is anonymous.
func (s *Session) Current() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Refresh re-reads the current account from the document so edits made
// through the admin views show up in the session identity.
func (s *Session) Refresh() {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return
	}
	email := s.current.Email
	s.mu.Unlock()

	var match *models.Account
	s.store.View(func(doc *models.Document) {
		if a := doc.FindAccountByEmail(email); a != nil {
			copied := *a
			match = &copied
		}
	})
	if match == nil {
		return
	}

	s.mu.Lock()
	s.current = match
	s.mu.Unlock()
}
