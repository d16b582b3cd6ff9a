// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/db"
	"github.com/genememetor/genememetor/middleware"
	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/schemas"
)

type MemeHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewMemeHandler(db *sql.DB, cfg cliparse.Config) *MemeHandler {
	return &MemeHandler{db: db, cfg: cfg}
}

// Create handles POST /memes (authenticated)
func (h *MemeHandler) Create(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())

	var req models.CreateMemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateCreateMeme(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	// Reject re-submissions of the same image
	var existingID string
	err := h.db.QueryRow(`SELECT id FROM memes WHERE image_url = $1`, req.ImageURL).Scan(&existingID)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusConflict,
			"This meme has already been added. Please, access it using its id: "+existingID)
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query meme by image url", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// Resolve the category by name
	var categoryID string
	err = h.db.QueryRow(`SELECT id FROM categories WHERE name = $1`, req.Category).Scan(&categoryID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found! Please check and try again.")
		return
	}
	if err != nil {
		slog.Error("failed to query category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	memeID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate meme ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create meme")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO memes (id, description, image_url, category_id, creator_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, memeID, req.Description, req.ImageURL, categoryID, session.UserID, time.Now())

	if db.IsUniqueViolation(err) {
		// Lost a concurrent submission race on image_url
		middleware.ErrorResponse(w, http.StatusConflict, "This meme has already been added.")
		return
	}
	if err != nil {
		slog.Error("failed to insert meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create meme")
		return
	}

	slog.Info("meme created", "meme_id", memeID, "creator_id", session.UserID)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateMemeResponse{
		MemeID: memeID,
	})
}

// List handles GET /memes with optional username/category filters
func (h *MemeHandler) List(w http.ResponseWriter, r *http.Request) {
	username, category, errs := schemas.ValidateMemeQuery(
		r.URL.Query().Get("username"),
		r.URL.Query().Get("category"),
	)
	if len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	query := `
		SELECT id, description, image_url, category_id, creator_id, created_at
		FROM memes
	`
	var args []interface{}

	switch {
	case username != "" && category != "":
		creatorID, ok := h.lookupUser(w, username)
		if !ok {
			return
		}
		categoryID, ok := h.lookupCategory(w, category)
		if !ok {
			return
		}
		query += ` WHERE creator_id = $1 AND category_id = $2`
		args = append(args, creatorID, categoryID)
	case username != "":
		creatorID, ok := h.lookupUser(w, username)
		if !ok {
			return
		}
		query += ` WHERE creator_id = $1`
		args = append(args, creatorID)
	case category != "":
		categoryID, ok := h.lookupCategory(w, category)
		if !ok {
			return
		}
		query += ` WHERE category_id = $1`
		args = append(args, categoryID)
	}
	query += ` ORDER BY created_at`

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to query memes", "error", err)
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

// lookupUser resolves a username filter, writing a 404 on miss
func (h *MemeHandler) lookupUser(w http.ResponseWriter, username string) (string, bool) {
	var id string
	err := h.db.QueryRow(`SELECT id FROM users WHERE username = $1`, username).Scan(&id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "User not found! Please check and try again.")
		return "", false
	}
	if err != nil {
		slog.Error("failed to query user", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}
	return id, true
}

// lookupCategory resolves a category-name filter, writing a 404 on miss
func (h *MemeHandler) lookupCategory(w http.ResponseWriter, name string) (string, bool) {
	var id string
	err := h.db.QueryRow(`SELECT id FROM categories WHERE name = $1`, name).Scan(&id)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found! Please check and try again.")
		return "", false
	}
	if err != nil {
		slog.Error("failed to query category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return "", false
	}
	return id, true
}

// Random handles GET /memes/random
func (h *MemeHandler) Random(w http.ResponseWriter, r *http.Request) {
	var m models.Meme
	// ORDER BY RANDOM() is accepted by both sqlite and postgres
	err := h.db.QueryRow(`
		SELECT id, description, image_url, category_id, creator_id, created_at
		FROM memes
		ORDER BY RANDOM()
		LIMIT 1
	`).Scan(&m.ID, &m.Description, &m.ImageURL, &m.CategoryID, &m.CreatorID, &m.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Memes not found!")
		return
	}
	if err != nil {
		slog.Error("failed to query random meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, m)
}

// Get handles GET /memes/{memeId}
func (h *MemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	memeID := r.PathValue("memeId")

	var m models.Meme
	err := h.db.QueryRow(`
		SELECT id, description, image_url, category_id, creator_id, created_at
		FROM memes
		WHERE id = $1
	`, memeID).Scan(&m.ID, &m.Description, &m.ImageURL, &m.CategoryID, &m.CreatorID, &m.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Memes not found!")
		return
	}
	if err != nil {
		slog.Error("failed to query meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, m)
}

// Edit handles PUT /memes/{memeId} (authenticated; owner or admin)
func (h *MemeHandler) Edit(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	memeID := r.PathValue("memeId")

	var req models.EditMemeRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateEditMeme(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	meme, ok := h.requireModifiable(w, memeID, session.UserID)
	if !ok {
		return
	}

	description := meme.Description
	if req.Description != "" {
		description = req.Description
	}
	categoryID := meme.CategoryID
	if req.Category != "" {
		categoryID, ok = h.lookupCategory(w, req.Category)
		if !ok {
			return
		}
	}

	_, err := h.db.Exec(`
		UPDATE memes SET description = $1, category_id = $2 WHERE id = $3
	`, description, categoryID, memeID)
	if err != nil {
		slog.Error("failed to update meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update meme")
		return
	}

	slog.Info("meme updated", "meme_id", memeID, "user_id", session.UserID)

	middleware.JSONResponse(w, http.StatusOK, models.Meme{
		ID:          meme.ID,
		Description: description,
		ImageURL:    meme.ImageURL,
		CategoryID:  categoryID,
		CreatorID:   meme.CreatorID,
		CreatedAt:   meme.CreatedAt,
	})
}

// Delete handles DELETE /memes/{memeId} (authenticated; owner or admin).
// The meme's votes go with it, in one transaction.
func (h *MemeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	memeID := r.PathValue("memeId")

	if _, ok := h.requireModifiable(w, memeID, session.UserID); !ok {
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM votes WHERE meme_id = $1`, memeID); err != nil {
		slog.Error("failed to delete votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete meme")
		return
	}
	if _, err := tx.Exec(`DELETE FROM memes WHERE id = $1`, memeID); err != nil {
		slog.Error("failed to delete meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete meme")
		return
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete meme")
		return
	}

	slog.Info("meme deleted", "meme_id", memeID, "user_id", session.UserID)

	w.WriteHeader(http.StatusNoContent)
}

// requireModifiable loads the meme and checks the owner-or-admin rule,
// writing 404/403 on failure. The service's original ownership check was
// short-circuited and only ever honored admin status; owner rights are
// deliberately restored here.
func (h *MemeHandler) requireModifiable(w http.ResponseWriter, memeID, userID string) (*models.Meme, bool) {
	var m models.Meme
	err := h.db.QueryRow(`
		SELECT id, description, image_url, category_id, creator_id, created_at
		FROM memes
		WHERE id = $1
	`, memeID).Scan(&m.ID, &m.Description, &m.ImageURL, &m.CategoryID, &m.CreatorID, &m.CreatedAt)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Memes not found!")
		return nil, false
	}
	if err != nil {
		slog.Error("failed to query meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}

	allowed, err := auth.CanModify(h.db, m.CreatorID, userID)
	if err != nil {
		slog.Error("failed to check authorization", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return nil, false
	}
	if !allowed {
		middleware.ErrorResponse(w, http.StatusForbidden,
			"You don't have the necessary access level to change this meme! Please, check your credentials and try again.")
		return nil, false
	}

	return &m, true
}
