// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
// The DDL sticks to the portable subset accepted by both sqlite and
// postgres: TEXT keys, explicit timestamps, no database-side defaults.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a unique-constraint failure
// from either driver. Check-then-insert flows race under concurrent
// requests; the constraint catches the losing writer and this turns the
// failure into a 409 instead of a 500.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key value violates unique constraint") // postgres
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);

-- Sessions (one row per login; no logout endpoint exists)
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES users(id),
    token TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL,
    expires_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_sessions_user_id ON sessions(user_id);

-- Admin markers, managed out-of-band
CREATE TABLE IF NOT EXISTS admins (
    user_id TEXT PRIMARY KEY REFERENCES users(id)
);

-- Categories
CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE
);

-- Memes
CREATE TABLE IF NOT EXISTS memes (
    id TEXT PRIMARY KEY,
    description TEXT NOT NULL,
    image_url TEXT NOT NULL UNIQUE,
    category_id TEXT NOT NULL REFERENCES categories(id),
    creator_id TEXT NOT NULL REFERENCES users(id),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_memes_creator_id ON memes(creator_id);
CREATE INDEX IF NOT EXISTS idx_memes_category_id ON memes(category_id);

-- Votes. Deliberately no uniqueness on (meme_id, voter_id): the service
-- allows repeat voting by the same voter.
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    meme_id TEXT NOT NULL REFERENCES memes(id),
    voter_id TEXT NOT NULL REFERENCES users(id),
    vote_type TEXT NOT NULL CHECK (vote_type IN ('up', 'down')),
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_meme_type ON votes(meme_id, vote_type);
`
