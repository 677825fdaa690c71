package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

func TestCreateAccountFromAdminForm(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewAccountService(st)

	// Unlike registration, role and verified are settable directly
	account, err := svc.CreateAccount(AccountInput{
		FirstName: "Dana", LastName: "Cole", Email: "dana@example.com",
		Password: "secret1", Role: models.RoleAdmin, Verified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, account.Role)
	assert.True(t, account.Verified)

	all := svc.ListAccounts()
	assert.Len(t, all, 2)
}

func TestCreateAccountValidation(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewAccountService(st)

	_, err := svc.CreateAccount(AccountInput{FirstName: "Dana", Email: "dana@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	_, err = svc.CreateAccount(AccountInput{
		FirstName: "Dana", LastName: "Cole", Email: "dana@example.com",
		Password: "secret1", Role: "superuser",
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	_, err = svc.CreateAccount(AccountInput{
		FirstName: "Dana", LastName: "Cole", Email: "admin@example.com", Password: "secret1",
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrDuplicateEmail, models.ErrorCode(err))
}

func TestUpdateAccountReplacesAllFields(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewAccountService(st)

	updated, err := svc.UpdateAccount(1, AccountInput{
		FirstName: "Root", LastName: "Admin", Email: "root@example.com",
		Password: "NewPass1!", Role: models.RoleAdmin, Verified: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "Root", updated.FirstName)
	assert.Equal(t, "root@example.com", updated.Email)
	assert.Equal(t, "NewPass1!", updated.Password)

	_, err = svc.UpdateAccount(999, AccountInput{
		FirstName: "No", LastName: "One", Email: "no@example.com",
		Password: "secret1", Role: models.RoleUser,
	})
	require.Error(t, err)
	assert.Equal(t, models.ErrNotFound, models.ErrorCode(err))
}

func TestResetPassword(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewAccountService(st)

	err := svc.ResetPassword(1, "12345")
	require.Error(t, err)
	assert.Equal(t, models.ErrValidationFailed, models.ErrorCode(err))

	err = svc.ResetPassword(999, "longenough")
	require.Error(t, err)
	assert.Equal(t, models.ErrNotFound, models.ErrorCode(err))

	require.NoError(t, svc.ResetPassword(1, "longenough"))
	st.View(func(doc *models.Document) {
		assert.Equal(t, "longenough", doc.FindAccountByID(1).Password)
	})
}

func TestDeleteAccount(t *testing.T) {
	st, _ := setupTestStore(t)
	svc := NewAccountService(st)

	other, err := svc.CreateAccount(AccountInput{
		FirstName: "Dana", LastName: "Cole", Email: "dana@example.com",
		Password: "secret1", Role: models.RoleUser, Verified: true,
	})
	require.NoError(t, err)

	var admin models.Account
	st.View(func(doc *models.Document) { admin = *doc.FindAccountByID(1) })

	t.Run("self-deletion fails even when confirmed", func(t *testing.T) {
		err := svc.DeleteAccount(admin.ID, true, &admin)
		require.Error(t, err)
		assert.Equal(t, models.ErrCannotDeleteSelf, models.ErrorCode(err))
	})

	t.Run("unconfirmed deletion is rejected", func(t *testing.T) {
		err := svc.DeleteAccount(other.ID, false, &admin)
		require.Error(t, err)
		assert.Equal(t, models.ErrConfirmationRequired, models.ErrorCode(err))
	})

	t.Run("confirmed deletion of another account succeeds", func(t *testing.T) {
		require.NoError(t, svc.DeleteAccount(other.ID, true, &admin))
		assert.Len(t, svc.ListAccounts(), 1)
	})

	t.Run("deleting a missing account reports not found", func(t *testing.T) {
		err := svc.DeleteAccount(other.ID, true, &admin)
		require.Error(t, err)
		assert.Equal(t, models.ErrNotFound, models.ErrorCode(err))
	})
}
