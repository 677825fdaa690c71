package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

// Context key for the account resolved by the guards.
const CurrentUserKey = "currentUser"

// RequireSession guards protected routes. It consults the session manager on
// every request; an anonymous caller is denied and pointed at the login
// route. On success the current account is set in the request context.
func RequireSession(session *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := session.Current()
		if current == nil {
			c.JSON(http.StatusUnauthorized, models.APIError{
				Code:     models.ErrUnauthorized,
				Message:  "Authentication required.",
				Redirect: "/login",
			})
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, current)
		c.Next()
	}
}

// CurrentAccount returns the account placed in the context by the guards,
// or nil.
func CurrentAccount(c *gin.Context) *models.Account {
	value, exists := c.Get(CurrentUserKey)
	if !exists {
		return nil
	}
	account, ok := value.(*models.Account)
	if !ok {
		return nil
	}
	return account
}
