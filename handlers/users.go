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

type UserHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewUserHandler(db *sql.DB, cfg cliparse.Config) *UserHandler {
	return &UserHandler{db: db, cfg: cfg}
}

// Memes handles GET /users/{username}/memes (public)
func (h *UserHandler) Memes(w http.ResponseWriter, r *http.Request) {
	username := schemas.Normalize(r.PathValue("username"))
	if username == "" {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found! Please check and try again.")
		return
	}

	var userID string
	err := h.db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&userID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found! Please check and try again.")
		return
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, description, image_url, category_id, creator_id, created_at
		FROM memes
		WHERE creator_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		slog.Error("failed to query user memes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	memes := []models.Meme{}
	for rows.Next() {
		var m models.Meme
		if err := rows.Scan(&m.ID, &m.Description, &m.ImageURL, &m.CategoryID, &m.CreatorID, &m.CreatedAt); err != nil {
			slog.Error("failed to scan meme", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		memes = append(memes, m)
	}

	middleware.JSONResponse(w, http.StatusOK, memes)
}

// ChangePassword handles PUT /users/{id}/password (authenticated).
// Only the owning user may change their password; the id in the path
// must match the session user.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	userID := r.PathValue("id")

	if userID != session.UserID {
		middleware.ErrorResponse(w, http.StatusForbidden,
			"You don't have the necessary access level to change this user! Please, check your credentials and try again.")
		return
	}

	var req models.ChangePasswordRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateChangePassword(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	err := auth.ChangePassword(h.db, userID, req.OldPassword, req.NewPassword, h.cfg.BcryptCost)
	switch err {
	case nil:
	case auth.ErrNotAllowed:
		middleware.ErrorResponse(w, http.StatusForbidden,
			"Current password is incorrect! Please, check and try again.")
		return
	case auth.ErrUserNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found! Please check and try again.")
		return
	default:
		slog.Error("failed to change password", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to change password")
		return
	}

	slog.Info("password changed", "user_id", userID)

	middleware.JSONResponse(w, http.StatusOK, map[string]string{
		"message": "Password updated successfully.",
	})
}
