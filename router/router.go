// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/handlers"
	"github.com/genememetor/genememetor/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(db, cfg)
	memeHandler := handlers.NewMemeHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)
	statusHandler := handlers.NewStatusHandler()

	// Status
	mux.HandleFunc("GET /health", statusHandler.Health)
	mux.HandleFunc("GET /{$}", statusHandler.Root)

	// Auth (public)
	mux.HandleFunc("POST /signup", middleware.WithLogging(authHandler.SignUp))
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.LogIn))

	// Categories (reads public, mutations admin-only)
	mux.HandleFunc("GET /categories", middleware.WithLogging(categoryHandler.List))
	mux.HandleFunc("POST /categories", middleware.WithLogging(middleware.WithAdmin(db, categoryHandler.Create)))
	mux.HandleFunc("PUT /categories/{id}", middleware.WithLogging(middleware.WithAdmin(db, categoryHandler.Edit)))
	mux.HandleFunc("DELETE /categories/{id}", middleware.WithLogging(middleware.WithAdmin(db, categoryHandler.Delete)))

	// Memes (reads public, mutations owner-or-admin behind auth)
	mux.HandleFunc("GET /memes", middleware.WithLogging(memeHandler.List))
	mux.HandleFunc("POST /memes", middleware.WithLogging(middleware.WithAuth(db, memeHandler.Create)))
	mux.HandleFunc("GET /memes/random", middleware.WithLogging(memeHandler.Random))
	mux.HandleFunc("GET /memes/{memeId}", middleware.WithLogging(memeHandler.Get))
	mux.HandleFunc("PUT /memes/{memeId}", middleware.WithLogging(middleware.WithAuth(db, memeHandler.Edit)))
	mux.HandleFunc("DELETE /memes/{memeId}", middleware.WithLogging(middleware.WithAuth(db, memeHandler.Delete)))

	// Votes (authenticated)
	mux.HandleFunc("POST /memes/{memeId}/votes", middleware.WithLogging(middleware.WithAuth(db, voteHandler.Cast)))

	// Users
	mux.HandleFunc("GET /users/{username}/memes", middleware.WithLogging(userHandler.Memes))
	mux.HandleFunc("PUT /users/{id}/password", middleware.WithLogging(middleware.WithAuth(db, userHandler.ChangePassword)))

	return mux
}
