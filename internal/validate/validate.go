// Package validate holds the per-entity payload validators. Each validator
// is pure: it inspects a decoded payload and returns per-field messages,
// leaving storage and HTTP concerns to the caller.
package validate

import (
	"fmt"
	"net/mail"
	"net/url"
	"time"
)

// FieldErrors maps field names to human-readable validation messages.
type FieldErrors map[string]string

func (e FieldErrors) add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func requiredMsg() string { return "is required" }

func maxLenMsg(n int) string {
	return fmt.Sprintf("must be at most %d characters", n)
}

func oneOfMsg(options ...string) string {
	msg := "must be one of:"
	for i, o := range options {
		if i > 0 {
			msg += ","
		}
		msg += " " + o
	}
	return msg
}

func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
