package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/database"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/store"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestSession(t *testing.T) (*Session, *database.KeyValue, *store.Store) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&database.Entry{})
	require.NoError(t, err)

	kv := database.NewKeyValue(db)
	st, err := store.Open(kv)
	require.NoError(t, err)

	return NewSession(kv, st), kv, st
}

func TestLoginWithSeededAdmin(t *testing.T) {
	session, kv, _ := setupTestSession(t)

	account, err := session.Login("admin@example.com", "Password123!")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", account.Email)
	assert.Equal(t, models.RoleAdmin, account.Role)

	// The durable token is the plain account email
	token, found, err := kv.Get(store.SessionTokenKey)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "admin@example.com", token)

	current := session.Current()
	require.NotNil(t, current)
	assert.Equal(t, "admin@example.com", current.Email)
}

func TestLoginFailures(t *testing.T) {
	session, _, st := setupTestSession(t)

	// Unverified account, correct credentials
	err := st.Update(func(doc *models.Document) error {
		doc.Accounts = append(doc.Accounts, models.Account{
			ID: store.NextID(), FirstName: "Pat", LastName: "Lee",
			Email: "pat@example.com", Password: "hunter22", Role: models.RoleUser,
			Verified: false,
		})
		return nil
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "wrong"},
		{"unknown email", "nobody@example.com", "Password123!"},
		{"unverified account", "pat@example.com", "hunter22"},
		{"case-sensitive email", "Admin@example.com", "Password123!"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := session.Login(tt.email, tt.password)
			require.Error(t, err)
			assert.Equal(t, models.ErrInvalidCredentials, models.ErrorCode(err))
			assert.Nil(t, session.Current())
		})
	}
}

func TestLogoutClearsIdentityAndToken(t *testing.T) {
	session, kv, _ := setupTestSession(t)

	_, err := session.Login("admin@example.com", "Password123!")
	require.NoError(t, err)

	require.NoError(t, session.Logout())
	assert.Nil(t, session.Current())

	_, found, err := kv.Get(store.SessionTokenKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRestoreSession(t *testing.T) {
	session, kv, st := setupTestSession(t)

	_, err := session.Login("admin@example.com", "Password123!")
	require.NoError(t, err)

	// A fresh session manager over the same storage picks the identity up
	restored := NewSession(kv, st)
	ok, err := restored.Restore()
	require.NoError(t, err)
	assert.True(t, ok)
	require.NotNil(t, restored.Current())
	assert.Equal(t, "admin@example.com", restored.Current().Email)
}

func TestRestoreDiscardsStaleToken(t *testing.T) {
	session, kv, _ := setupTestSession(t)

	// Token pointing at an account that no longer exists
	require.NoError(t, kv.Set(store.SessionTokenKey, "ghost@example.com"))

	ok, err := session.Restore()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, session.Current())

	// Self-healing: the stale token is gone
	_, found, err := kv.Get(store.SessionTokenKey)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRestoreWithNoToken(t *testing.T) {
	session, _, _ := setupTestSession(t)

	ok, err := session.Restore()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, session.Current())
}

func TestRefreshPicksUpAccountEdits(t *testing.T) {
	session, _, st := setupTestSession(t)

	_, err := session.Login("admin@example.com", "Password123!")
	require.NoError(t, err)

	err = st.Update(func(doc *models.Document) error {
		doc.FindAccountByEmail("admin@example.com").FirstName = "Root"
		return nil
	})
	require.NoError(t, err)

	session.Refresh()
	assert.Equal(t, "Root", session.Current().FirstName)
}
