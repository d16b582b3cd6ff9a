// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/models"
)

const unauthenticatedMessage = "You don't have permission to access this! Please, check your credentials and try again."

// WithLogging wraps a handler with request logging
func WithLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Log request
		slog.Info("request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote", r.RemoteAddr,
		)

		// Call the next handler
		next(w, r)

		// Log completion
		duration := time.Since(start)
		slog.Info("request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", duration.Milliseconds(),
		)
	}
}

// JSONResponse writes a JSON response
func JSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// ErrorResponse writes a JSON error response
func ErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	JSONResponse(w, statusCode, models.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}

// ValidationErrorResponse writes a 422 carrying the full field error list
func ValidationErrorResponse(w http.ResponseWriter, fields []models.FieldError) {
	JSONResponse(w, http.StatusUnprocessableEntity, models.ValidationResponse{
		Error:  http.StatusText(http.StatusUnprocessableEntity),
		Fields: fields,
	})
}

// ParseJSONBody parses the request body into the given struct
func ParseJSONBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header. A missing or malformed header returns the empty string, which
// downstream validation treats the same as an unknown token.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// WithAuth validates the bearer token and attaches the resolved session
// to the request context. Missing, unknown, and expired tokens all get
// the same 401.
func WithAuth(db *sql.DB, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := auth.ValidateSession(db, BearerToken(r))
		if err == auth.ErrNoSession || err == auth.ErrSessionExpired {
			ErrorResponse(w, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}
		if err != nil {
			slog.Error("failed to validate session", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}

		next(w, r.WithContext(auth.WithSession(r.Context(), session)))
	}
}

// WithAdmin validates the session and additionally requires an admin
// marker. Used for category management, where ownership does not apply.
func WithAdmin(db *sql.DB, next http.HandlerFunc) http.HandlerFunc {
	return WithAuth(db, func(w http.ResponseWriter, r *http.Request) {
		session, _ := auth.SessionFrom(r.Context())

		isAdmin, err := auth.IsAdmin(db, session.UserID)
		if err != nil {
			slog.Error("failed to check admin status", "error", err)
			ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		if !isAdmin {
			ErrorResponse(w, http.StatusForbidden,
				"You don't have the necessary access level to manage categories! Please, check your credentials and try again.")
			return
		}

		next(w, r)
	})
}

// CORS middleware allows cross-origin requests from the frontend
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin == "" {
			origin = "*"
		}

		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		// Handle preflight requests
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
