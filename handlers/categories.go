// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/db"
	"github.com/genememetor/genememetor/middleware"
	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/schemas"
)

// CategoryHandler manages category CRUD. Mutations are admin-only;
// ownership does not apply to categories.
type CategoryHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewCategoryHandler(db *sql.DB, cfg cliparse.Config) *CategoryHandler {
	return &CategoryHandler{db: db, cfg: cfg}
}

// List handles GET /categories (public)
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		slog.Error("failed to query categories", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			slog.Error("failed to scan category", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
			return
		}
		categories = append(categories, c)
	}

	middleware.JSONResponse(w, http.StatusOK, categories)
}

// Create handles POST /categories (admin)
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateCategory(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	var existing string
	err := h.db.QueryRow(`SELECT id FROM categories WHERE name = $1`, req.Name).Scan(&existing)
	if err == nil {
		middleware.ErrorResponse(w, http.StatusConflict,
			"This category already exists! Choose a new name and try again or take a look at the existing category.")
		return
	}
	if err != sql.ErrNoRows {
		slog.Error("failed to query category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	id, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate category ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	_, err = h.db.Exec(`INSERT INTO categories (id, name) VALUES ($1, $2)`, id, req.Name)
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "This category already exists!")
		return
	}
	if err != nil {
		slog.Error("failed to insert category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create category")
		return
	}

	slog.Info("category created", "category_id", id, "name", req.Name)

	middleware.JSONResponse(w, http.StatusCreated, models.CategoryResponse{
		ID:   id,
		Name: req.Name,
	})
}

// Edit handles PUT /categories/{id} (admin)
func (h *CategoryHandler) Edit(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("id")

	var req models.CategoryRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateCategory(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found! Please check and try again.")
		return
	}

	_, err = h.db.Exec(`UPDATE categories SET name = $1 WHERE id = $2`, req.Name, categoryID)
	if db.IsUniqueViolation(err) {
		middleware.ErrorResponse(w, http.StatusConflict, "This category already exists!")
		return
	}
	if err != nil {
		slog.Error("failed to update category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update category")
		return
	}

	slog.Info("category updated", "category_id", categoryID, "name", req.Name)

	middleware.JSONResponse(w, http.StatusOK, models.CategoryResponse{
		ID:   categoryID,
		Name: req.Name,
	})
}

// Delete handles DELETE /categories/{id} (admin). A category still
// referenced by memes cannot be removed.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("id")

	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`, categoryID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Category not found! Please check and try again.")
		return
	}

	var inUse bool
	err = h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM memes WHERE category_id = $1)`, categoryID).Scan(&inUse)
	if err != nil {
		slog.Error("failed to query memes for category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if inUse {
		middleware.ErrorResponse(w, http.StatusConflict,
			"This category still has memes in it! Move or delete them first.")
		return
	}

	if _, err := h.db.Exec(`DELETE FROM categories WHERE id = $1`, categoryID); err != nil {
		slog.Error("failed to delete category", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	slog.Info("category deleted", "category_id", categoryID)

	w.WriteHeader(http.StatusNoContent)
}
