package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
)

func TestRegisterValidation(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	testCases := []struct {
		name      string
		firstName string
		lastName  string
		email     string
		password  string
	}{
		{"empty first name", "", "Lee", "pat@example.com", "secret1"},
		{"empty last name", "Pat", "", "pat@example.com", "secret1"},
		{"empty email", "Pat", "Lee", "", "secret1"},
		{"empty password", "Pat", "Lee", "pat@example.com", ""},
		{"short password", "Pat", "Lee", "pat@example.com", "12345"},
		{"whitespace-only name", "   ", "Lee", "pat@example.com", "secret1"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(tt.firstName, tt.lastName, tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))
		})
	}

	// None of the rejected attempts created an account
	st.View(func(doc *models.Document) {
		assert.Len(t, doc.Accounts, 1)
	})
}

func TestRegisterDuplicateEmail(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	_, err := svc.Register("Pat", "Lee", "admin@example.com", "secret1")
	require.Error(t, err)
	assert.Equal(t, models.ErrDuplicateEmail, models.ErrorCode(err))

	st.View(func(doc *models.Document) {
		assert.Len(t, doc.Accounts, 1)
	})
}

func TestRegisterCreatesUnverifiedUser(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	account, err := svc.Register("Pat", "Lee", "pat@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, account.Role)
	assert.False(t, account.Verified)
	assert.NotZero(t, account.ID)

	// The email is marked pending verification
	pending, found, err := svc.PendingEmail()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "pat@example.com", pending)

	// Login is gated until verification
	session := auth.NewSession(kv, st)
	_, err = session.Login("pat@example.com", "secret1")
	require.Error(t, err)
}

func TestVerifyThenLogin(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	_, err := svc.Register("Pat", "Lee", "pat@example.com", "secret1")
	require.NoError(t, err)

	verified, err := svc.Verify()
	require.NoError(t, err)
	assert.True(t, verified.Verified)

	// The pending marker is cleared
	_, found, err := svc.PendingEmail()
	require.NoError(t, err)
	assert.False(t, found)

	session := auth.NewSession(kv, st)
	account, err := session.Login("pat@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "pat@example.com", account.Email)
}

func TestVerifyWithoutPendingRegistration(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	_, err := svc.Verify()
	require.Error(t, err)
	assert.Equal(t, models.ErrNoPendingVerification, models.ErrorCode(err))
}

func TestVerifyWithVanishedAccount(t *testing.T) {
	st, kv := setupTestStore(t)
	svc := NewAuthService(st, kv)

	require.NoError(t, kv.Set(store.PendingEmailKey, "ghost@example.com"))

	_, err := svc.Verify()
	require.Error(t, err)
	assert.Equal(t, models.ErrNotFound, models.ErrorCode(err))
}
