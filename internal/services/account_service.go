package services

import (
	"strings"

	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

// AccountInput carries the admin account form fields. Unlike registration,
// the role and verified flag are settable directly.
type AccountInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// AccountService provides the admin CRUD over accounts.
type AccountService interface {
	// ListAccounts returns all accounts.
	ListAccounts() []models.Account
	// CreateAccount creates an account from the admin form.
	CreateAccount(in AccountInput) (models.Account, error)
	// UpdateAccount replaces all fields of an existing account.
	UpdateAccount(id int64, in AccountInput) (models.Account, error)
	// ResetPassword sets a new password for an account.
	ResetPassword(id int64, newPassword string) error
	// DeleteAccount removes an account. The current identity can never
	// delete itself, confirmed or not.
	DeleteAccount(id int64, confirmed bool, current *models.Account) error
}

type accountService struct {
	store *store.Store
}

// NewAccountService creates a new instance of AccountService
func NewAccountService(st *store.Store) AccountService {
	return &accountService{store: st}
}

func (s *accountService) ListAccounts() []models.Account {
	var accounts []models.Account
	s.store.View(func(doc *models.Document) {
		accounts = append([]models.Account{}, doc.Accounts...)
	})
	return accounts
}

// validateAccountInput trims and checks the shared form fields, returning
// the normalized input.
func validateAccountInput(in AccountInput) (AccountInput, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return in, models.NewDomainError(models.ErrValidationFailed, "All fields are required.")
	}
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	if in.Role != models.RoleUser && in.Role != models.RoleAdmin {
		return in, models.NewDomainError(models.ErrValidationFailed, "Role must be user or admin.")
	}
	return in, nil
}

func (s *accountService) CreateAccount(in AccountInput) (models.Account, error) {
	in, err := validateAccountInput(in)
	if err != nil {
		return models.Account{}, err
	}

	account := models.Account{
		ID:        store.NextID(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Password:  in.Password,
		Role:      in.Role,
		Verified:  in.Verified,
	}

	err = s.store.Update(func(doc *models.Document) error {
		if doc.FindAccountByEmail(in.Email) != nil {
			return models.NewDomainError(models.ErrDuplicateEmail, "An account with that email already exists.")
		}
		doc.Accounts = append(doc.Accounts, account)
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (s *accountService) UpdateAccount(id int64, in AccountInput) (models.Account, error) {
	in, err := validateAccountInput(in)
	if err != nil {
		return models.Account{}, err
	}

	var updated models.Account
	err = s.store.Update(func(doc *models.Document) error {
		account := doc.FindAccountByID(id)
		if account == nil {
			return models.NewDomainError(models.ErrNotFound, "Account not found.")
		}
		account.FirstName = in.FirstName
		account.LastName = in.LastName
		account.Email = in.Email
		account.Password = in.Password
		account.Role = in.Role
		account.Verified = in.Verified
		updated = *account
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}
	return updated, nil
}

func (s *accountService) ResetPassword(id int64, newPassword string) error {
	if len(newPassword) < 6 {
		return models.NewDomainError(models.ErrValidationFailed, "Password must be at least 6 characters!")
	}
	return s.store.Update(func(doc *models.Document) error {
		account := doc.FindAccountByID(id)
		if account == nil {
			return models.NewDomainError(models.ErrNotFound, "Account not found.")
		}
		account.Password = newPassword
		return nil
	})
}

func (s *accountService) DeleteAccount(id int64, confirmed bool, current *models.Account) error {
	// Self-deletion is rejected before the confirmation check: confirming
	// does not make it allowed.
	if current != nil && current.ID == id {
		return models.NewDomainError(models.ErrCannotDeleteSelf, "You cannot delete your own account!")
	}
	if !confirmed {
		return models.NewDomainError(models.ErrConfirmationRequired, "Deleting an account requires confirmation.")
	}
	return s.store.Update(func(doc *models.Document) error {
		for i := range doc.Accounts {
			if doc.Accounts[i].ID == id {
				doc.Accounts = append(doc.Accounts[:i], doc.Accounts[i+1:]...)
				return nil
			}
		}
		return models.NewDomainError(models.ErrNotFound, "Account not found.")
	})
}
