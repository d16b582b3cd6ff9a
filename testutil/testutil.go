// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/db"
)

// SetupTestDB creates a private in-memory sqlite database with the full
// schema. Each call gets its own database, so tests never see each
// other's rows and the suite needs no external services.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	name, err := auth.GenerateID(8)
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

// GetTestConfig returns a standard test configuration. The bcrypt cost
// is the minimum so hashing doesn't dominate test time.
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:              5000,
		DatabaseURL:       ":memory:",
		DatabaseType:      "sqlite",
		DownvoteThreshold: 50,
		SessionTTLHours:   0,
		BcryptCost:        bcrypt.MinCost,
	}
}

// CreateTestUser inserts a user and returns its ID
func CreateTestUser(t *testing.T, conn *sql.DB, username, email, password string) string {
	t.Helper()

	userID, err := auth.SignUp(conn, username, email, password, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to create test user %s: %v", username, err)
	}
	return userID
}

// CreateTestSession logs a user in directly and returns the bearer token
func CreateTestSession(t *testing.T, conn *sql.DB, userID string) string {
	t.Helper()

	token, err := auth.IssueSession(conn, userID, 0)
	if err != nil {
		t.Fatalf("Failed to create test session: %v", err)
	}
	return token
}

// MakeAdmin marks a user as admin
func MakeAdmin(t *testing.T, conn *sql.DB, userID string) {
	t.Helper()

	if _, err := conn.Exec(`INSERT INTO admins (user_id) VALUES ($1)`, userID); err != nil {
		t.Fatalf("Failed to make user admin: %v", err)
	}
}

// CreateTestCategory inserts a category and returns its ID
func CreateTestCategory(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	id, _ := auth.GenerateID(12)
	if _, err := conn.Exec(`INSERT INTO categories (id, name) VALUES ($1, $2)`, id, name); err != nil {
		t.Fatalf("Failed to create test category: %v", err)
	}
	return id
}

// CreateTestMeme inserts a meme and returns its ID
func CreateTestMeme(t *testing.T, conn *sql.DB, creatorID, categoryID, imageURL string) string {
	t.Helper()

	id, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO memes (id, description, image_url, category_id, creator_id, created_at)
		VALUES ($1, 'A test meme description', $2, $3, $4, $5)
	`, id, imageURL, categoryID, creatorID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test meme: %v", err)
	}
	return id
}

// CastTestVote inserts a vote row directly
func CastTestVote(t *testing.T, conn *sql.DB, memeID, voterID, voteType string) {
	t.Helper()

	id, _ := auth.GenerateID(12)
	_, err := conn.Exec(`
		INSERT INTO votes (id, meme_id, voter_id, vote_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, memeID, voterID, voteType, time.Now())
	if err != nil {
		t.Fatalf("Failed to cast test vote: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AuthHeader builds the bearer header map for MakeRequest
func AuthHeader(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
