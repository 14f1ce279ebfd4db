package auth

import "errors"

// Tagged error variants for each identity failure mode. The API boundary
// maps these onto fixed user-facing messages; anything unrecognized gets a
// generic one.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrTooManyAttempts    = errors.New("too many attempts")
	ErrWeakPassword       = errors.New("password too weak")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
)

// userMessages is the fixed set of user-facing strings for known failure
// modes.
var userMessages = map[error]string{
	ErrInvalidCredentials: "Incorrect email or password.",
	ErrUserExists:         "An account with this email already exists.",
	ErrUserNotFound:       "No account found for this email.",
	ErrTooManyAttempts:    "Too many attempts. Please try again later.",
	ErrWeakPassword:       "Password must be at least 8 characters.",
	ErrInvalidEmail:       "Please enter a valid email address.",
	ErrInvalidToken:       "Your session is invalid. Please sign in again.",
	ErrTokenExpired:       "Your session has expired. Please sign in again.",
}

// genericMessage covers unmapped failure codes.
const genericMessage = "Something went wrong. Please try again."

// UserMessage maps an identity error onto its user-facing string.
func UserMessage(err error) string {
	for tagged, msg := range userMessages {
		if errors.Is(err, tagged) {
			return msg
		}
	}
	return genericMessage
}
