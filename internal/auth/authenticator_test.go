package auth

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/dukerupert/reclamos/internal/database"
	"github.com/dukerupert/reclamos/internal/model"
	"github.com/dukerupert/reclamos/internal/store"
)

func setupAuthenticator(t *testing.T) (*Authenticator, *store.UserStore) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	us := store.NewUserStore(db)
	return New(us, store.NewSessionStore(db)), us
}

func seedUser(t *testing.T, us *store.UserStore, email, password string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	u, err := us.Create("Juan", email, string(hash))
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	a, us := setupAuthenticator(t)
	seeded := seedUser(t, us, "juan@example.com", "secret")

	user, token, err := a.Login("juan@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != seeded.ID {
		t.Errorf("user id = %d, want %d", user.ID, seeded.ID)
	}
	if len(token) != 64 {
		t.Errorf("token length = %d, want 64", len(token))
	}

	resolved, err := a.Authenticate(token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if resolved.ID != seeded.ID {
		t.Errorf("resolved id = %d, want %d", resolved.ID, seeded.ID)
	}
}

func TestLoginCaseInsensitiveEmail(t *testing.T) {
	a, us := setupAuthenticator(t)
	seedUser(t, us, "juan@example.com", "secret")

	if _, _, err := a.Login("JUAN@EXAMPLE.COM", "secret"); err != nil {
		t.Fatalf("login with uppercase email: %v", err)
	}
}

// Wrong password and unknown email must be the same outcome; nothing may
// leak which half of the pair was wrong.
func TestLoginFailuresIndistinguishable(t *testing.T) {
	a, us := setupAuthenticator(t)
	seedUser(t, us, "juan@example.com", "secret")

	_, _, errWrongPassword := a.Login("juan@example.com", "not-secret")
	_, _, errUnknownEmail := a.Login("nobody@example.com", "secret")

	if errWrongPassword != ErrInvalidCredentials {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", errWrongPassword)
	}
	if errUnknownEmail != ErrInvalidCredentials {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", errUnknownEmail)
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	a, us := setupAuthenticator(t)
	seedUser(t, us, "juan@example.com", "secret")

	_, token, err := a.Login("juan@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := a.Logout(token); err != nil {
		t.Fatalf("logout: %v", err)
	}

	if _, err := a.Authenticate(token); err != ErrUnauthorized {
		t.Errorf("revoked token: err = %v, want ErrUnauthorized", err)
	}

	// A fresh login issues a distinct, working token.
	_, token2, err := a.Login("juan@example.com", "secret")
	if err != nil {
		t.Fatalf("second login: %v", err)
	}
	if token2 == token {
		t.Error("new login reused a revoked token")
	}
	if _, err := a.Authenticate(token2); err != nil {
		t.Errorf("new token should resolve: %v", err)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	a, us := setupAuthenticator(t)
	seedUser(t, us, "juan@example.com", "secret")

	_, token, _ := a.Login("juan@example.com", "secret")

	if err := a.Logout(token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := a.Logout(token); err != nil {
		t.Fatalf("logout of revoked token: %v", err)
	}
	if err := a.Logout("fabricated-token"); err != nil {
		t.Fatalf("logout of fabricated token: %v", err)
	}
	if err := a.Logout(""); err != nil {
		t.Fatalf("logout of empty token: %v", err)
	}
}

func TestAuthenticateEmptyToken(t *testing.T) {
	a, _ := setupAuthenticator(t)

	if _, err := a.Authenticate(""); err != ErrUnauthorized {
		t.Errorf("empty token: err = %v, want ErrUnauthorized", err)
	}
}

func TestMultiDeviceLogin(t *testing.T) {
	a, us := setupAuthenticator(t)
	seedUser(t, us, "juan@example.com", "secret")

	_, t1, _ := a.Login("juan@example.com", "secret")
	_, t2, _ := a.Login("juan@example.com", "secret")

	if err := a.Logout(t1); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := a.Authenticate(t2); err != nil {
		t.Errorf("second device token should survive first device logout: %v", err)
	}
}
