// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/genememetor/genememetor/db"
	"github.com/genememetor/genememetor/models"
)

// Closed error taxonomy. Handlers map these to HTTP status codes;
// anything else coming out of this package is a store failure (500).
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoSession          = errors.New("session not found")
	ErrSessionExpired     = errors.New("session expired")
	ErrNotAllowed         = errors.New("not allowed")
)

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// ----------------------------
// Context helpers (for middleware and handlers)
// ----------------------------

type ctxKeySession struct{}

func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, ctxKeySession{}, s)
}

func SessionFrom(ctx context.Context) (*models.Session, bool) {
	s, ok := ctx.Value(ctxKeySession{}).(*models.Session)
	return s, ok && s != nil
}

// ----------------------------
// Credentials
// ----------------------------

// SignUp creates a user with a bcrypt password hash and returns the new
// user id. Duplicate username or email fails with ErrUsernameTaken /
// ErrEmailTaken. The pre-check and the insert are not one atomic step;
// the UNIQUE constraints catch the race and are mapped to the same
// sentinels.
func SignUp(conn *sql.DB, username, email, password string, cost int) (string, error) {
	var takenUsername, takenEmail string
	err := conn.QueryRow(
		`SELECT username, email FROM users WHERE username = $1 OR email = $2`,
		username, email,
	).Scan(&takenUsername, &takenEmail)
	if err == nil {
		if takenUsername == username {
			return "", ErrUsernameTaken
		}
		return "", ErrEmailTaken
	}
	if err != sql.ErrNoRows {
		return "", fmt.Errorf("error checking existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	id, err := GenerateID(12)
	if err != nil {
		return "", err
	}

	_, err = conn.Exec(
		`INSERT INTO users (id, username, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, username, email, string(hash), time.Now(),
	)
	if db.IsUniqueViolation(err) {
		// Lost a concurrent signup race; report the same conflict
		return "", ErrUsernameTaken
	}
	if err != nil {
		return "", fmt.Errorf("error inserting user: %w", err)
	}

	return id, nil
}

// LogIn verifies the credentials and issues a session. Unknown username
// fails with ErrUserNotFound, a hash mismatch with ErrInvalidCredentials.
func LogIn(conn *sql.DB, username, password string, ttl time.Duration) (token, userID string, err error) {
	var passwordHash string
	err = conn.QueryRow(
		`SELECT id, password_hash FROM users WHERE username = $1`,
		username,
	).Scan(&userID, &passwordHash)
	if err == sql.ErrNoRows {
		return "", "", ErrUserNotFound
	}
	if err != nil {
		return "", "", fmt.Errorf("error querying user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err = IssueSession(conn, userID, ttl)
	if err != nil {
		return "", "", err
	}
	return token, userID, nil
}

// ChangePassword overwrites the user's hash after verifying the old
// password. A mismatch fails with ErrNotAllowed, not ErrInvalidCredentials:
// the caller already holds a valid session, this is an authorization
// failure (403).
func ChangePassword(conn *sql.DB, userID, oldPassword, newPassword string, cost int) error {
	var passwordHash string
	err := conn.QueryRow(
		`SELECT password_hash FROM users WHERE id = $1`,
		userID,
	).Scan(&passwordHash)
	if err == sql.ErrNoRows {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error querying user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(oldPassword)); err != nil {
		return ErrNotAllowed
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), cost)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	_, err = conn.Exec(
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		string(newHash), userID,
	)
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}
	return nil
}

// ----------------------------
// Sessions
// ----------------------------

// IssueSession persists a fresh opaque token for the user and returns
// it. Every login gets its own row; concurrent sessions per user are
// allowed. ttl == 0 means the session never expires.
func IssueSession(conn *sql.DB, userID string, ttl time.Duration) (string, error) {
	id, err := GenerateID(12)
	if err != nil {
		return "", err
	}
	token := uuid.NewString()

	var expiresAt *time.Time
	if ttl > 0 {
		t := time.Now().Add(ttl)
		expiresAt = &t
	}

	_, err = conn.Exec(
		`INSERT INTO sessions (id, user_id, token, created_at, expires_at) VALUES ($1, $2, $3, $4, $5)`,
		id, userID, token, time.Now(), expiresAt,
	)
	if err != nil {
		return "", fmt.Errorf("error inserting session: %w", err)
	}
	return token, nil
}

// ValidateSession resolves a bearer token to its session. Unknown
// tokens fail with ErrNoSession, expired ones with ErrSessionExpired;
// handlers treat both as 401.
func ValidateSession(conn *sql.DB, token string) (*models.Session, error) {
	if token == "" {
		return nil, ErrNoSession
	}

	var s models.Session
	err := conn.QueryRow(
		`SELECT id, user_id, created_at, expires_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&s.ID, &s.UserID, &s.CreatedAt, &s.ExpiresAt)
	if err == sql.ErrNoRows {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("error querying session: %w", err)
	}
	s.Token = token

	if s.ExpiresAt != nil && s.ExpiresAt.Before(time.Now()) {
		return nil, ErrSessionExpired
	}
	return &s, nil
}

// ----------------------------
// Authorization
// ----------------------------

// IsAdmin reports whether an admin marker exists for the user.
func IsAdmin(conn *sql.DB, userID string) (bool, error) {
	var exists bool
	err := conn.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM admins WHERE user_id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error querying admin status: %w", err)
	}
	return exists, nil
}

// CanModify reports whether userID may mutate a resource created by
// creatorID: the creator always may, admins may regardless of
// ownership.
func CanModify(conn *sql.DB, creatorID, userID string) (bool, error) {
	if creatorID == userID {
		return true, nil
	}
	return IsAdmin(conn, userID)
}
