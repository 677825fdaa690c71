package services

import (
	"strings"

	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

// AuthService handles self-service registration and the simulated email
// verification step that gates login.
type AuthService interface {
	// Register creates an unverified user-role account and marks its email
	// as pending verification.
	Register(firstName, lastName, email, password string) (models.Account, error)
	// Verify flips the pending account to verified and clears the pending
	// marker. No real email is involved; the caller simulates the click.
	Verify() (models.Account, error)
	// PendingEmail returns the email awaiting verification, if any.
	PendingEmail() (string, bool, error)
}

type authService struct {
	store *store.Store
	kv    *database.KeyValue
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(st *store.Store, kv *database.KeyValue) AuthService {
	return &authService{store: st, kv: kv}
}

func (s *authService) Register(firstName, lastName, email, password string) (models.Account, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	if firstName == "" || lastName == "" || email == "" || password == "" {
		return models.Account{}, models.NewDomainError(models.ErrValidationFailed, "All fields are required.")
	}
	if len(password) < 6 {
		return models.Account{}, models.NewDomainError(models.ErrValidationFailed, "Password must be at least 6 characters.")
	}

	account := models.Account{
		ID:        store.NextID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
		Role:      models.RoleUser,
		Verified:  false,
	}

	err := s.store.Update(func(doc *models.Document) error {
		if doc.FindAccountByEmail(email) != nil {
			return models.NewDomainError(models.ErrDuplicateEmail, "An account with that email already exists.")
		}
		doc.Accounts = append(doc.Accounts, account)
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	if err := s.kv.Set(store.PendingEmailKey, email); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (s *authService) Verify() (models.Account, error) {
	email, found, err := s.kv.Get(store.PendingEmailKey)
	if err != nil {
		return models.Account{}, err
	}
	if !found {
		return models.Account{}, models.NewDomainError(models.ErrNoPendingVerification, "No email to verify.")
	}

	var verified models.Account
	err = s.store.Update(func(doc *models.Document) error {
		account := doc.FindAccountByEmail(email)
		if account == nil {
			return models.NewDomainError(models.ErrNotFound, "Account not found.")
		}
		account.Verified = true
		verified = *account
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	if err := s.kv.Delete(store.PendingEmailKey); err != nil {
		return models.Account{}, err
	}
	return verified, nil
}

func (s *authService) PendingEmail() (string, bool, error) {
	return s.kv.Get(store.PendingEmailKey)
}
