// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"database/sql"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/genememetor/genememetor/db"
)

// setupDB opens a private in-memory sqlite database with the full schema.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()

	name, err := GenerateID(8)
	if err != nil {
		t.Fatalf("Failed to generate database name: %v", err)
	}

	conn, err := sql.Open("sqlite", "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

const testCost = bcrypt.MinCost // keep hashing fast in tests

func TestGenerateID(t *testing.T) {
	tests := []struct {
		name    string
		byteLen int
		wantLen int // hex encoded length = byteLen * 2
	}{
		{"8 bytes", 8, 16},
		{"12 bytes", 12, 24},
		{"16 bytes", 16, 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := GenerateID(tt.byteLen)
			if err != nil {
				t.Fatalf("GenerateID() error = %v", err)
			}
			if len(id) != tt.wantLen {
				t.Errorf("GenerateID() length = %d, want %d", len(id), tt.wantLen)
			}
			// Verify it's valid hex
			for _, c := range id {
				if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
					t.Errorf("GenerateID() contains invalid hex char: %c", c)
				}
			}
		})
	}

	// Test randomness - two IDs should be different
	id1, _ := GenerateID(16)
	id2, _ := GenerateID(16)
	if id1 == id2 {
		t.Error("GenerateID() produced duplicate IDs (extremely unlikely)")
	}
}

func TestSignUpAndLogIn(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	userID, err := SignUp(conn, "alice", "alice@example.com", "correct-horse", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if userID == "" {
		t.Fatal("SignUp() returned empty user id")
	}

	// Plaintext must never be stored
	var storedHash string
	if err := conn.QueryRow(`SELECT password_hash FROM users WHERE id = $1`, userID).Scan(&storedHash); err != nil {
		t.Fatalf("Failed to query user: %v", err)
	}
	if storedHash == "correct-horse" {
		t.Error("SignUp() stored the plaintext password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("correct-horse")); err != nil {
		t.Errorf("stored hash does not verify against the password: %v", err)
	}

	token, loggedInID, err := LogIn(conn, "alice", "correct-horse", 0)
	if err != nil {
		t.Fatalf("LogIn() error = %v", err)
	}
	if loggedInID != userID {
		t.Errorf("LogIn() user id = %s, want %s", loggedInID, userID)
	}
	if token == "" {
		t.Error("LogIn() returned empty token")
	}

	session, err := ValidateSession(conn, token)
	if err != nil {
		t.Fatalf("ValidateSession() error = %v", err)
	}
	if session.UserID != userID {
		t.Errorf("session user id = %s, want %s", session.UserID, userID)
	}
	if session.ExpiresAt != nil {
		t.Error("session with ttl 0 should not have an expiry")
	}
}

func TestSignUpConflicts(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	if _, err := SignUp(conn, "alice", "alice@example.com", "password-1", testCost); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	tests := []struct {
		name     string
		username string
		email    string
		wantErr  error
	}{
		{"duplicate username", "alice", "other@example.com", ErrUsernameTaken},
		{"duplicate email", "bob", "alice@example.com", ErrEmailTaken},
		{"duplicate both", "alice", "alice@example.com", ErrUsernameTaken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SignUp(conn, tt.username, tt.email, "password-2", testCost)
			if err != tt.wantErr {
				t.Errorf("SignUp() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLogInFailures(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	if _, err := SignUp(conn, "alice", "alice@example.com", "correct-horse", testCost); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, _, err := LogIn(conn, "nobody", "whatever", 0); err != ErrUserNotFound {
		t.Errorf("LogIn(unknown user) error = %v, want %v", err, ErrUserNotFound)
	}

	if _, _, err := LogIn(conn, "alice", "wrong-password", 0); err != ErrInvalidCredentials {
		t.Errorf("LogIn(wrong password) error = %v, want %v", err, ErrInvalidCredentials)
	}
}

func TestMultipleConcurrentSessions(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	userID, err := SignUp(conn, "alice", "alice@example.com", "correct-horse", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	// Two logins yield two distinct live sessions
	tok1, _, err := LogIn(conn, "alice", "correct-horse", 0)
	if err != nil {
		t.Fatalf("LogIn() error = %v", err)
	}
	tok2, _, err := LogIn(conn, "alice", "correct-horse", 0)
	if err != nil {
		t.Fatalf("LogIn() error = %v", err)
	}
	if tok1 == tok2 {
		t.Fatal("two logins produced the same token")
	}

	for _, tok := range []string{tok1, tok2} {
		s, err := ValidateSession(conn, tok)
		if err != nil {
			t.Errorf("ValidateSession(%q) error = %v", tok, err)
		} else if s.UserID != userID {
			t.Errorf("session user id = %s, want %s", s.UserID, userID)
		}
	}
}

func TestValidateSessionFailures(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	if _, err := ValidateSession(conn, ""); err != ErrNoSession {
		t.Errorf("ValidateSession(empty) error = %v, want %v", err, ErrNoSession)
	}

	if _, err := ValidateSession(conn, "not-a-real-token"); err != ErrNoSession {
		t.Errorf("ValidateSession(unknown) error = %v, want %v", err, ErrNoSession)
	}
}

func TestSessionExpiry(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	userID, err := SignUp(conn, "alice", "alice@example.com", "correct-horse", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	token, err := IssueSession(conn, userID, time.Hour)
	if err != nil {
		t.Fatalf("IssueSession() error = %v", err)
	}
	if _, err := ValidateSession(conn, token); err != nil {
		t.Errorf("fresh session should validate, got %v", err)
	}

	// Push the expiry into the past and revalidate
	past := time.Now().Add(-time.Minute)
	if _, err := conn.Exec(`UPDATE sessions SET expires_at = $1 WHERE token = $2`, past, token); err != nil {
		t.Fatalf("Failed to backdate session: %v", err)
	}
	if _, err := ValidateSession(conn, token); err != ErrSessionExpired {
		t.Errorf("ValidateSession(expired) error = %v, want %v", err, ErrSessionExpired)
	}
}

func TestChangePassword(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	userID, err := SignUp(conn, "alice", "alice@example.com", "old-password", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if err := ChangePassword(conn, userID, "wrong-old", "new-password", testCost); err != ErrNotAllowed {
		t.Errorf("ChangePassword(wrong old) error = %v, want %v", err, ErrNotAllowed)
	}

	if err := ChangePassword(conn, userID, "old-password", "new-password", testCost); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	// New password logs in, old one no longer does
	if _, _, err := LogIn(conn, "alice", "new-password", 0); err != nil {
		t.Errorf("LogIn(new password) error = %v", err)
	}
	if _, _, err := LogIn(conn, "alice", "old-password", 0); err != ErrInvalidCredentials {
		t.Errorf("LogIn(old password) error = %v, want %v", err, ErrInvalidCredentials)
	}

	if err := ChangePassword(conn, "missing-user", "x", "y", testCost); err != ErrUserNotFound {
		t.Errorf("ChangePassword(unknown user) error = %v, want %v", err, ErrUserNotFound)
	}
}

func TestIsAdminAndCanModify(t *testing.T) {
	conn := setupDB(t)
	defer conn.Close()

	ownerID, err := SignUp(conn, "owner", "owner@example.com", "password-1", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	adminID, err := SignUp(conn, "admin", "admin@example.com", "password-2", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	strangerID, err := SignUp(conn, "stranger", "stranger@example.com", "password-3", testCost)
	if err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}

	if _, err := conn.Exec(`INSERT INTO admins (user_id) VALUES ($1)`, adminID); err != nil {
		t.Fatalf("Failed to insert admin: %v", err)
	}

	tests := []struct {
		name   string
		userID string
		want   bool
	}{
		{"admin user", adminID, true},
		{"plain user", ownerID, false},
		{"unknown user", "no-such-id", false},
	}
	for _, tt := range tests {
		t.Run("IsAdmin "+tt.name, func(t *testing.T) {
			got, err := IsAdmin(conn, tt.userID)
			if err != nil {
				t.Fatalf("IsAdmin() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAdmin() = %v, want %v", got, tt.want)
			}
		})
	}

	modTests := []struct {
		name   string
		userID string
		want   bool
	}{
		{"owner may modify", ownerID, true},
		{"admin may modify", adminID, true},
		{"stranger may not", strangerID, false},
	}
	for _, tt := range modTests {
		t.Run("CanModify "+tt.name, func(t *testing.T) {
			got, err := CanModify(conn, ownerID, tt.userID)
			if err != nil {
				t.Fatalf("CanModify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("CanModify() = %v, want %v", got, tt.want)
			}
		})
	}
}
