// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides credential, session, and authorization operations.

# Credentials

Passwords are stored as bcrypt hashes, never plaintext:

	userID, err := auth.SignUp(conn, username, email, password, cfg.BcryptCost)
	token, userID, err := auth.LogIn(conn, username, password, cfg.SessionTTL())
	err := auth.ChangePassword(conn, userID, oldPassword, newPassword, cfg.BcryptCost)

# Sessions

A successful login issues an opaque uuid token persisted in the
sessions table. One row per login; a user may hold several live
sessions at once, and there is no logout endpoint:

	token, err := auth.IssueSession(conn, userID, ttl)
	session, err := auth.ValidateSession(conn, token)

ttl == 0 disables expiry (the default). Otherwise ValidateSession
rejects rows past their expires_at.

# Authorization

	ok, err := auth.IsAdmin(conn, userID)
	ok, err := auth.CanModify(conn, meme.CreatorID, userID)

CanModify grants mutation rights to the resource creator or to any
admin. Category management is admin-only; ownership does not apply
there.

# Error Taxonomy

The package returns a closed set of sentinel errors that handlers map
to HTTP statuses:

	ErrUsernameTaken, ErrEmailTaken      → 409
	ErrUserNotFound                      → 404
	ErrInvalidCredentials                → 401
	ErrNoSession, ErrSessionExpired      → 401
	ErrNotAllowed                        → 403

Any other error is an unexpected store failure (500).

# Context Helpers

Middleware attaches the validated session for downstream handlers:

	ctx := auth.WithSession(r.Context(), session)
	session, ok := auth.SessionFrom(r.Context())

# ID Generation

Random hex IDs for database records:

	id, err := auth.GenerateID(12)  // 24 hex characters
*/
package auth
