// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package schemas

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/genememetor/genememetor/models"
)

// strict drops every HTML tag; submitted strings are plain text only
var strict = bluemonday.StrictPolicy()

var (
	emailPattern    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	imageExtPattern = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif)$`)
)

// Normalize strips HTML and trims surrounding whitespace. Every string
// field crossing the HTTP boundary goes through here before validation.
func Normalize(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

func fieldLen(errs *[]models.FieldError, field, value string, min, max int) {
	if len(value) < min || len(value) > max {
		*errs = append(*errs, models.FieldError{
			Field:   field,
			Message: fmt.Sprintf("%s must be between %d and %d characters", field, min, max),
		})
	}
}

// ValidateSignUp normalizes the request in place and returns any
// field-level failures. Bounds follow the service's published rules:
// username 3-20, password 8-50, confirmation must match.
func ValidateSignUp(req *models.SignUpRequest) []models.FieldError {
	req.Username = Normalize(req.Username)
	req.Email = Normalize(req.Email)
	req.Password = Normalize(req.Password)
	req.ConfirmPassword = Normalize(req.ConfirmPassword)

	var errs []models.FieldError
	fieldLen(&errs, "username", req.Username, 3, 20)
	if !emailPattern.MatchString(req.Email) {
		errs = append(errs, models.FieldError{Field: "email", Message: "email must be a valid address"})
	}
	fieldLen(&errs, "password", req.Password, 8, 50)
	if req.ConfirmPassword != req.Password {
		errs = append(errs, models.FieldError{Field: "confirm_password", Message: "confirm_password must match password"})
	}
	return errs
}

func ValidateLogIn(req *models.LogInRequest) []models.FieldError {
	req.Username = Normalize(req.Username)
	req.Password = Normalize(req.Password)

	var errs []models.FieldError
	fieldLen(&errs, "username", req.Username, 3, 20)
	fieldLen(&errs, "password", req.Password, 8, 50)
	return errs
}

// validImageURL accepts http(s) URLs ending in a known image extension.
func validImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return imageExtPattern.MatchString(u.Path)
}

func ValidateCreateMeme(req *models.CreateMemeRequest) []models.FieldError {
	req.Description = Normalize(req.Description)
	req.ImageURL = Normalize(req.ImageURL)
	req.Category = Normalize(req.Category)

	var errs []models.FieldError
	fieldLen(&errs, "description", req.Description, 5, 200)
	if !validImageURL(req.ImageURL) {
		errs = append(errs, models.FieldError{
			Field:   "image_url",
			Message: "image_url must be an http(s) URL ending in .jpg, .jpeg, .png or .gif",
		})
	}
	if req.Category == "" {
		errs = append(errs, models.FieldError{Field: "category", Message: "category is required"})
	}
	return errs
}

// ValidateEditMeme checks only the fields that are present; an empty
// field means "leave unchanged".
func ValidateEditMeme(req *models.EditMemeRequest) []models.FieldError {
	req.Description = Normalize(req.Description)
	req.Category = Normalize(req.Category)

	var errs []models.FieldError
	if req.Description == "" && req.Category == "" {
		errs = append(errs, models.FieldError{Field: "description", Message: "nothing to update"})
		return errs
	}
	if req.Description != "" {
		fieldLen(&errs, "description", req.Description, 5, 200)
	}
	return errs
}

func ValidateCastVote(req *models.CastVoteRequest) []models.FieldError {
	req.VoteType = Normalize(req.VoteType)

	var errs []models.FieldError
	if req.VoteType != models.VoteUp && req.VoteType != models.VoteDown {
		errs = append(errs, models.FieldError{Field: "vote_type", Message: "vote_type must be up or down"})
	}
	return errs
}

// ValidateCategory also removes internal spaces from the name, the way
// the service has always stored category names.
func ValidateCategory(req *models.CategoryRequest) []models.FieldError {
	req.Name = strings.ReplaceAll(Normalize(req.Name), " ", "")

	var errs []models.FieldError
	fieldLen(&errs, "name", req.Name, 3, 50)
	return errs
}

func ValidateChangePassword(req *models.ChangePasswordRequest) []models.FieldError {
	req.OldPassword = Normalize(req.OldPassword)
	req.NewPassword = Normalize(req.NewPassword)

	var errs []models.FieldError
	if req.OldPassword == "" {
		errs = append(errs, models.FieldError{Field: "old_password", Message: "old_password is required"})
	}
	fieldLen(&errs, "new_password", req.NewPassword, 8, 50)
	return errs
}

// ValidateMemeQuery checks the optional ?username= and ?category=
// filters on meme listing.
func ValidateMemeQuery(username, category string) (string, string, []models.FieldError) {
	username = Normalize(username)
	category = Normalize(category)

	var errs []models.FieldError
	if username != "" {
		fieldLen(&errs, "username", username, 3, 20)
	}
	if category != "" {
		fieldLen(&errs, "category", category, 3, 50)
	}
	return username, category, errs
}
