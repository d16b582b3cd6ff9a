package models

import "time"

// Vote type constants
const (
	VoteUp   = "up"
	VoteDown = "down"
)

// Request types

type SignUpRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type LogInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type CreateMemeRequest struct {
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
}

// Zero-value fields are left unchanged
type EditMemeRequest struct {
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CastVoteRequest struct {
	VoteType string `json:"vote_type"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// Response types

type SignUpResponse struct {
	UserID string `json:"user_id"`
}

type LogInResponse struct {
	Token string `json:"token"`
}

type CreateMemeResponse struct {
	MemeID string `json:"meme_id"`
}

type CastVoteResponse struct {
	VoteID      string `json:"vote_id"`
	Message     string `json:"message"`
	MemeRemoved bool   `json:"meme_removed"`
}

type CategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Domain types

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	CreatedAt    time.Time `json:"created_at"`
}

type Session struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Token     string     `json:"-"` // Never expose in JSON
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Meme struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CategoryID  string    `json:"category_id"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Vote struct {
	ID        string    `json:"id"`
	MemeID    string    `json:"meme_id"`
	VoterID   string    `json:"voter_id"`
	VoteType  string    `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Error responses

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResponse struct {
	Error  string       `json:"error"`
	Fields []FieldError `json:"fields"`
}
