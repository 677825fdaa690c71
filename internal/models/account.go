package models

// Account roles. The demo only knows these two.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account represents a login-capable identity. Passwords are stored and
// compared as plaintext; the document format inherited this from the demo
// it replaces and login depends on exact equality.
type Account struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

// IsAdmin reports whether the account carries the admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}
