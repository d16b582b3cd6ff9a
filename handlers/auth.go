// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/middleware"
	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/schemas"
)

type AuthHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewAuthHandler(db *sql.DB, cfg cliparse.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// SignUp handles POST /signup
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateSignUp(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	userID, err := auth.SignUp(h.db, req.Username, req.Email, req.Password, h.cfg.BcryptCost)
	switch err {
	case nil:
	case auth.ErrUsernameTaken, auth.ErrEmailTaken:
		middleware.ErrorResponse(w, http.StatusConflict,
			"Data already in use. Please, choose a different username or e-mail, or log in.")
		return
	default:
		slog.Error("failed to sign up user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	slog.Info("user signed up", "user_id", userID, "username", req.Username)

	middleware.JSONResponse(w, http.StatusCreated, models.SignUpResponse{
		UserID: userID,
	})
}

// LogIn handles POST /login
func (h *AuthHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req models.LogInRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateLogIn(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	token, userID, err := auth.LogIn(h.db, req.Username, req.Password, h.cfg.SessionTTL())
	switch err {
	case nil:
	case auth.ErrUserNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found! Please check and try again.")
		return
	case auth.ErrInvalidCredentials:
		middleware.ErrorResponse(w, http.StatusUnauthorized,
			"Username and password combination is incorrect! Please, check and try again.")
		return
	default:
		slog.Error("failed to log in user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	slog.Info("user logged in", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, models.LogInResponse{
		Token: token,
	})
}
