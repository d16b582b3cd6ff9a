// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Genememetor API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - AuthHandler: signup and login
  - MemeHandler: meme CRUD (list, random, get, create, edit, delete)
  - VoteHandler: vote casting and the down-vote removal threshold
  - CategoryHandler: category CRUD (mutations admin-only)
  - UserHandler: per-user meme listing and password change
  - StatusHandler: health and root endpoints

Handlers are created via constructor functions that accept *sql.DB and Config:

	memeHandler := handlers.NewMemeHandler(db, cfg)

# Auth Flow

	POST /signup → SignUp (201, 409 on duplicate username/email)
	POST /login  → LogIn (200 with bearer token; 404 unknown user,
	               401 wrong password)

Protected routes are wrapped in middleware.WithAuth, which resolves the
Authorization bearer token to a session and puts it on the request
context. Category mutations use middleware.WithAdmin instead.

# Meme Lifecycle

	POST   /memes          → Create (owner = session user; 409 duplicate image)
	GET    /memes          → List (optional username/category filters)
	GET    /memes/random   → Random
	GET    /memes/{memeId} → Get
	PUT    /memes/{memeId} → Edit (owner or admin)
	DELETE /memes/{memeId} → Delete (owner or admin; removes votes too)

# Voting

	POST /memes/{memeId}/votes → Cast

Votes are append-only and never deduplicated. A down-vote that brings
the meme's down-vote count to the configured threshold deletes the meme
and its entire vote history inside the vote's transaction; the response
message reports the removal.

# Authorization Rule

Meme mutation requires owner-or-admin (auth.CanModify). An earlier
iteration of the service had a short-circuited ownership expression that
effectively required admin for everything; that is treated as a bug and
not reproduced.
*/
package handlers
