// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection and schema creation.

# Opening a Connection

Open selects the driver from configuration:

	conn, err := db.Open(cfg) // sqlite (modernc.org/sqlite) or postgres (lib/pq)

All queries in the codebase use $N placeholders in ascending first-use
order and portable DDL, so both drivers accept them unchanged.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - users: credentials (unique username and email)
  - sessions: bearer tokens per login, optional expiry
  - admins: user ids with elevated privilege
  - categories: unique category names
  - memes: submissions (unique image_url)
  - votes: append-only up/down votes

# Relationships

	users 1──* sessions
	users 1──* memes (creator)
	users 0..1─ admins
	categories 1──* memes
	memes 1──* votes

The votes table intentionally has no uniqueness on (meme_id, voter_id):
a voter may vote on the same meme repeatedly, matching the observed
behavior of the service. Vote-threshold removal deletes a meme and its
votes inside one transaction.

# Unique Violations

IsUniqueViolation detects constraint failures from either driver so
handlers can map races on username/email/image_url/category name to
409 Conflict.
*/
package db
