package utils

import (
	"strings"
	"unicode"
)

// passwordSymbols mirrors the punctuation set accepted on registration and
// password change.
const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// ValidatePassword enforces the server-side password policy: minimum 8
// characters, at least one digit, at least one symbol.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return ErrWeakPassword
	}
	hasDigit := false
	for _, r := range password {
		if unicode.IsDigit(r) {
			hasDigit = true
			break
		}
	}
	if !hasDigit {
		return ErrWeakPassword
	}
	if !strings.ContainsAny(password, passwordSymbols) {
		return ErrWeakPassword
	}
	return nil
}
