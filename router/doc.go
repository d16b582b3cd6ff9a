// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Genememetor API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

# Endpoints

Status:

	GET /health
	GET /

Auth (public):

	POST /signup - Create account
	POST /login  - Issue bearer token

Categories (reads public, mutations admin-only):

	GET    /categories
	POST   /categories
	PUT    /categories/{id}
	DELETE /categories/{id}

Memes (reads public, mutations require a session and owner-or-admin):

	GET    /memes          - List, optional ?username= and ?category=
	POST   /memes          - Submit
	GET    /memes/random
	GET    /memes/{memeId}
	PUT    /memes/{memeId}
	DELETE /memes/{memeId}

Votes (authenticated):

	POST /memes/{memeId}/votes

Users:

	GET /users/{username}/memes - Public listing
	PUT /users/{id}/password    - Owner only

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(db, cfg)
	memeHandler := handlers.NewMemeHandler(db, cfg)
	voteHandler := handlers.NewVoteHandler(db, cfg)
	categoryHandler := handlers.NewCategoryHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db, cfg)

All handlers receive the database connection and configuration.
Protected routes are wrapped with middleware.WithAuth or
middleware.WithAdmin.
*/
package router
