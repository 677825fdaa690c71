package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/auth"
	"github.com/theotejano-rpg/fullstack-prototype-tejano/internal/models"
)

// RequireAdmin guards admin-only routes. Anonymous and non-admin callers get
// the same access-denied outcome, pointed at the home route rather than the
// login route. The check runs on every request so a logout between requests
// takes effect immediately.
func RequireAdmin(session *auth.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := session.Current()
		if current == nil || !current.IsAdmin() {
			c.JSON(http.StatusForbidden, models.APIError{
				Code:     models.ErrForbidden,
				Message:  "Access denied. Admins only.",
				Redirect: "/",
			})
			c.Abort()
			return
		}
		c.Set(CurrentUserKey, current)
		c.Next()
	}
}
