// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - SignUpRequest: username, email, password, confirm_password
  - LogInRequest: username, password
  - CreateMemeRequest: description, image_url, category (by name)
  - EditMemeRequest: description and/or category
  - CastVoteRequest: vote_type ("up" or "down")
  - CategoryRequest: name
  - ChangePasswordRequest: old_password, new_password

# Response Types

Types for JSON responses:

  - SignUpResponse: user_id
  - LogInResponse: token
  - CreateMemeResponse: meme_id
  - CastVoteResponse: vote_id, message, meme_removed
  - CategoryResponse: id, name
  - StatusResponse: status, uptime
  - ErrorResponse: error, message
  - ValidationResponse: error, fields ([]FieldError)

# Domain Types

Internal data structures:

  - User: credentials record (password hash never serialized)
  - Session: bearer token mapped to a user, optional expiry
  - Category: named grouping for memes
  - Meme: submission with creator and category references
  - Vote: one up or down vote on a meme; append-only

# Constants

Vote types:

	VoteUp   = "up"
	VoteDown = "down"
*/
package models
