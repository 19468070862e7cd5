package service

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 128
	maxNameLength     = 100
)

var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

// normalizeEmail trims and lower-cases an address, then checks its shape.
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", invalid("email", "email is required")
	}
	if !emailPattern.MatchString(email) {
		return "", invalid("email", "please provide a valid email")
	}
	return email, nil
}

func validatePassword(field, password string) error {
	n := utf8.RuneCountInString(password)
	switch {
	case n == 0:
		return invalid(field, "password is required")
	case n < minPasswordLength:
		return invalid(field, "password must be at least 6 characters")
	case n > maxPasswordLength:
		return invalid(field, "password must be at most 128 characters")
	}
	return nil
}

func normalizeFullName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("fullName", "full name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", invalid("fullName", "full name must be at most 100 characters")
	}
	return name, nil
}

func normalizePhone(phone string) string {
	return strings.TrimSpace(phone)
}
