// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Session Auth

Protected routes validate the bearer token and expose the session via
the request context:

	mux.HandleFunc("POST /memes", middleware.WithLogging(middleware.WithAuth(db, memeHandler.Create)))

	// in the handler:
	session, _ := auth.SessionFrom(r.Context())

A missing Authorization header, a malformed one, an unknown token, and
an expired session all produce the same 401.

Admin-only routes stack the admin gate on top:

	mux.HandleFunc("POST /categories", middleware.WithLogging(middleware.WithAdmin(db, categoryHandler.Create)))

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (duration_ms).

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, PUT, DELETE, OPTIONS with headers
Content-Type, Authorization.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.ValidationErrorResponse(w, fieldErrors) // 422

Parse JSON request bodies:

	var req models.CreateMemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
*/
package middleware
