package services

import "errors"

// Rejections raised by the registration and sign-in flows. Their text is the
// message shown to the user.
var (
	ErrMissingField     = errors.New("Please complete all fields.")
	ErrPasswordTooShort = errors.New("Password must be at least 8 characters.")
	ErrPasswordMismatch = errors.New("Passwords do not match.")
	ErrDuplicateAccount = errors.New("An account with that email already exists.")

	ErrMissingCredential = errors.New("Please enter email and password.")
	ErrAccountNotFound   = errors.New("No account found for that email.")
	ErrIncorrectPassword = errors.New("Incorrect password.")
)

var rejections = []error{
	ErrMissingField,
	ErrPasswordTooShort,
	ErrPasswordMismatch,
	ErrDuplicateAccount,
	ErrMissingCredential,
	ErrAccountNotFound,
	ErrIncorrectPassword,
}

// IsRejection reports whether err is a validation rejection rather than a
// failure of the underlying store.
func IsRejection(err error) bool {
	for _, r := range rejections {
		if errors.Is(err, r) {
			return true
		}
	}
	return false
}
