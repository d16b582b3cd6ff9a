// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package schemas validates and normalizes request input.

Validation is pure: each ValidateX function normalizes the request
struct in place (HTML stripped via bluemonday's strict policy, then
trimmed) and returns a list of field-level errors. No validation
library chains, no I/O. Handlers return the list with a 422 when it is
non-empty.

# Rules

  - signup: username 3-20, valid email, password 8-50, confirmation match
  - login: username 3-20, password 8-50
  - meme: description 5-200, http(s) image URL ending .jpg/.jpeg/.png/.gif,
    category name required
  - meme edit: present fields only; empty field = leave unchanged
  - vote: vote_type "up" or "down"
  - category: name 3-50, internal spaces removed
  - password change: old required, new 8-50
  - meme query filters: username 3-20, category 3-50 when present

# Usage

	var req models.SignUpRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil { ... }
	if errs := schemas.ValidateSignUp(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}
*/
package schemas
