// Package validation provides input checks for signup fields.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 30
	minPasswordLen = 8
)

// ValidateUsername checks length and allowed characters.
func ValidateUsername(username string) error {
	if len(username) < minUsernameLen {
		return errors.New("username must be at least 3 characters")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username must be at most 30 characters")
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return errors.New("username may only contain letters, digits, '_', '-' and '.'")
		}
	}
	return nil
}

// ValidateEmail performs a light structural check; real verification happens
// out of band.
func ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email address is invalid")
	}
	domain := email[at+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return errors.New("email address is invalid")
	}
	return nil
}

// ValidatePassword enforces minimum length plus letter and digit classes.
func ValidatePassword(password string) error {
	if len(password) < minPasswordLen {
		return errors.New("password must be at least 8 characters")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return errors.New("password must contain at least one letter and one digit")
	}
	return nil
}
