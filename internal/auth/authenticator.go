package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/reclamos/internal/model"
	"github.com/dukerupert/reclamos/internal/store"
)

// ErrInvalidCredentials is the single outcome for every failed login.
// Unknown email and wrong password are deliberately indistinguishable.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized is the single outcome for every failed token resolution.
var ErrUnauthorized = errors.New("unauthenticated")

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so both login failure paths pay the same hash cost.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Authenticator verifies credentials, issues and resolves bearer tokens,
// and revokes them on logout.
type Authenticator struct {
	users    *store.UserStore
	sessions *store.SessionStore
}

func New(users *store.UserStore, sessions *store.SessionStore) *Authenticator {
	return &Authenticator{users: users, sessions: sessions}
}

// Login verifies the email/password pair and issues a fresh token. Each call
// issues a distinct token; concurrent sessions per user are allowed.
func (a *Authenticator) Login(email, password string) (*model.User, string, error) {
	user, err := a.users.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("login lookup: %w", err)
	}
	if user == nil {
		bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	sess, err := a.sessions.Create(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session: %w", err)
	}
	return user, sess.Token, nil
}

// Authenticate resolves a bearer token to its user. The error carries no
// detail about whether the token is unknown or revoked.
func (a *Authenticator) Authenticate(token string) (*model.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}
	sess, err := a.sessions.GetByToken(token)
	if err != nil {
		return nil, fmt.Errorf("resolve token: %w", err)
	}
	if sess == nil {
		return nil, ErrUnauthorized
	}
	user, err := a.users.GetByID(sess.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, ErrUnauthorized
	}
	return user, nil
}

// Logout revokes the token. It never fails for an unknown or already-revoked
// token; logout always appears to succeed.
func (a *Authenticator) Logout(token string) error {
	if token == "" {
		return nil
	}
	if err := a.sessions.Revoke(token); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
