// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseURL: connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - DownvoteThreshold: down-votes before a meme is removed (default: 50)
  - SessionTTLHours: session lifetime, 0 = never expire (default: 0)
  - BcryptCost: password hash cost factor (default: 10)

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	DATABASE_TYPE      → -t
	DOWNVOTE_THRESHOLD → -downvote-threshold
	SESSION_TTL_HOURS  → -session-ttl-hours
	BCRYPT_COST        → -bcrypt-cost

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or out of
range:

  - DATABASE_URL must be provided
  - DATABASE_TYPE must be sqlite or postgres
  - DOWNVOTE_THRESHOLD must be at least 1
  - BCRYPT_COST must be between 4 and 31
*/
package cliparse
