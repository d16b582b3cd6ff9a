// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/testutil"
)

func TestRouterEndpoints(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"health", "GET", "/health", http.StatusOK},
		{"root", "GET", "/", http.StatusOK},
		{"list categories", "GET", "/categories", http.StatusOK},
		{"list memes", "GET", "/memes", http.StatusOK},
		{"random meme on empty db", "GET", "/memes/random", http.StatusNotFound},
		{"unknown path", "GET", "/nope", http.StatusNotFound},
		{"wrong method on signup", "GET", "/signup", http.StatusMethodNotAllowed},
		{"wrong method on memes collection", "DELETE", "/memes", http.StatusMethodNotAllowed},
		{"meme creation requires auth", "POST", "/memes", http.StatusUnauthorized},
		{"vote requires auth", "POST", "/memes/abc/votes", http.StatusUnauthorized},
		{"category creation requires auth", "POST", "/categories", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest(tt.method, tt.path, nil, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
		})
	}
}

// Walks the whole API surface the way a client would: signup, login,
// category setup by an admin, meme submission, voting, and teardown.
func TestRouterEndToEnd(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	defer conn.Close()

	mux := NewRouter(conn, testutil.GetTestConfig())

	do := func(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
		t.Helper()
		var headers map[string]string
		if token != "" {
			headers = testutil.AuthHeader(token)
		}
		req := testutil.MakeRequest(method, path, body, headers)
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	// Sign up and log in
	w := do(t, "POST", "/signup", models.SignUpRequest{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "secret-password",
		ConfirmPassword: "secret-password",
	}, "")
	testutil.AssertStatus(t, w, http.StatusCreated)

	var signup models.SignUpResponse
	testutil.AssertJSON(t, w, &signup)

	w = do(t, "POST", "/login", models.LogInRequest{
		Username: "alice",
		Password: "secret-password",
	}, "")
	testutil.AssertStatus(t, w, http.StatusOK)

	var login models.LogInResponse
	testutil.AssertJSON(t, w, &login)

	// Category mutations need admin
	w = do(t, "POST", "/categories", models.CategoryRequest{Name: "Classic"}, login.Token)
	testutil.AssertStatus(t, w, http.StatusForbidden)

	testutil.MakeAdmin(t, conn, signup.UserID)

	w = do(t, "POST", "/categories", models.CategoryRequest{Name: "Classic"}, login.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Submit a meme
	w = do(t, "POST", "/memes", models.CreateMemeRequest{
		Description: "An end to end meme",
		ImageURL:    "https://img.example.com/e2e.jpg",
		Category:    "Classic",
	}, login.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.CreateMemeResponse
	testutil.AssertJSON(t, w, &created)

	// It shows up in listings and by id
	w = do(t, "GET", "/memes/"+created.MemeID, nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do(t, "GET", "/users/alice/memes", nil, "")
	testutil.AssertStatus(t, w, http.StatusOK)

	var memes []models.Meme
	testutil.AssertJSON(t, w, &memes)
	if len(memes) != 1 {
		t.Fatalf("Expected 1 meme for alice, got %d", len(memes))
	}

	// Vote on it
	w = do(t, "POST", "/memes/"+created.MemeID+"/votes", models.CastVoteRequest{
		VoteType: models.VoteUp,
	}, login.Token)
	testutil.AssertStatus(t, w, http.StatusCreated)

	// Edit and delete as the owner
	w = do(t, "PUT", "/memes/"+created.MemeID, models.EditMemeRequest{
		Description: "Edited end to end meme",
	}, login.Token)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do(t, "DELETE", "/memes/"+created.MemeID, nil, login.Token)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	w = do(t, "GET", "/memes/"+created.MemeID, nil, "")
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
