package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain-specific errors
	ErrDuplicateEmail        = "DUPLICATE_EMAIL"
	ErrInvalidCredentials    = "INVALID_CREDENTIALS"
	ErrUnknownAccount        = "UNKNOWN_ACCOUNT"
	ErrCannotDeleteSelf      = "CANNOT_DELETE_SELF"
	ErrConfirmationRequired  = "CONFIRMATION_REQUIRED"
	ErrNoPendingVerification = "NO_PENDING_VERIFICATION"
)

// DomainError is a validation or policy failure with a named kind. Services
// return these instead of surfacing interactive alerts; the HTTP layer maps
// the code to a status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// ErrorCode extracts the domain error code from err, or ErrInternalServer
// when err is not a DomainError.
func ErrorCode(err error) string {
	if de, ok := err.(*DomainError); ok {
		return de.Code
	}
	return ErrInternalServer
}
