// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Genememetor API server.

Genememetor is a meme-sharing backend: users sign up and log in, submit
memes under named categories, and vote memes up or down. A meme that
collects enough down-votes is removed automatically, votes and all.
A small set of admin users moderates categories and any meme regardless
of ownership.

# Starting the Server

The server reads configuration from a .env file, environment variables,
or CLI flags:

	DATABASE_URL=postgres://... DATABASE_TYPE=postgres go run main.go

Or with flags:

	go run main.go -p 5000 -t sqlite -d "file:genememetor.db"

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string (postgres URL or sqlite file)

Optional settings:

  - PORT (-p): server port (default: 5000)
  - DATABASE_TYPE (-t): "sqlite" or "postgres" (default: sqlite)
  - DOWNVOTE_THRESHOLD (-downvote-threshold): down-votes before a meme
    is removed (default: 50)
  - SESSION_TTL_HOURS (-session-ttl-hours): session lifetime, 0 means
    sessions never expire (default: 0)
  - BCRYPT_COST (-bcrypt-cost): password hash cost factor (default: 10)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, memes, votes, categories, users)
  - router: Route definitions using Go 1.22+ routing
  - middleware: session auth, admin gate, CORS, logging, JSON helpers
  - schemas: input normalization and field validation
  - models: request/response and domain types
  - auth: credentials, sessions, and authorization checks
  - db: driver selection and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
