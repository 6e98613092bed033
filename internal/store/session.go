package store

import (
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"fmt"

	"github.com/dukerupert/reclamos/internal/model"
)

type SessionStore struct {
	db *sql.DB
}

func NewSessionStore(db *sql.DB) *SessionStore {
	return &SessionStore{db: db}
}

func scanSession(scanner interface{ Scan(...any) error }) (*model.Session, error) {
	var s model.Session
	var revokedAt sql.NullTime
	err := scanner.Scan(&s.ID, &s.Token, &s.UserID, &revokedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	if revokedAt.Valid {
		s.RevokedAt = &revokedAt.Time
	}
	return &s, nil
}

const sessionCols = `id, token, user_id, revoked_at, created_at`

// Create issues a new session with a crypto-random 32-byte token,
// hex-encoded to 64 chars. The unique index on token closes the collision
// window at the storage layer.
func (s *SessionStore) Create(userID int64) (*model.Session, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	result, err := s.db.Exec(
		`INSERT INTO sessions (token, user_id) VALUES (?, ?)`,
		token, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	row := s.db.QueryRow(`SELECT `+sessionCols+` FROM sessions WHERE id = ?`, id)
	return scanSession(row)
}

// GetByToken returns the live session for the given token, or nil if the
// token is unknown or revoked.
func (s *SessionStore) GetByToken(token string) (*model.Session, error) {
	row := s.db.QueryRow(
		`SELECT `+sessionCols+` FROM sessions WHERE token = ? AND revoked_at IS NULL`,
		token,
	)
	sess, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session by token: %w", err)
	}
	return sess, nil
}

// Revoke marks the token dead. Revoking an unknown or already-revoked token
// is not an error; logout must always appear to succeed.
func (s *SessionStore) Revoke(token string) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET revoked_at = datetime('now') WHERE token = ? AND revoked_at IS NULL`,
		token,
	)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

// RevokeByUserID revokes every live session for a user.
func (s *SessionStore) RevokeByUserID(userID int64) error {
	_, err := s.db.Exec(
		`UPDATE sessions SET revoked_at = datetime('now') WHERE user_id = ? AND revoked_at IS NULL`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("revoke sessions by user: %w", err)
	}
	return nil
}
