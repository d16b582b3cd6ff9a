// Copyright (c) 2025 the Genememetor authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/genememetor/genememetor/auth"
	"github.com/genememetor/genememetor/cliparse"
	"github.com/genememetor/genememetor/middleware"
	"github.com/genememetor/genememetor/models"
	"github.com/genememetor/genememetor/schemas"
)

type VoteHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVoteHandler(db *sql.DB, cfg cliparse.Config) *VoteHandler {
	return &VoteHandler{db: db, cfg: cfg}
}

// Cast handles POST /memes/{memeId}/votes (authenticated).
//
// Votes are append-only: there is no one-vote-per-user rule, a voter may
// vote on the same meme any number of times. After a down-vote the tally
// is recomputed inside the same transaction, and a meme that reaches the
// configured threshold is removed together with all of its votes.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	session, _ := auth.SessionFrom(r.Context())
	memeID := r.PathValue("memeId")

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if errs := schemas.ValidateCastVote(&req); len(errs) > 0 {
		middleware.ValidationErrorResponse(w, errs)
		return
	}

	// The meme must exist before the vote is recorded
	var exists bool
	err := h.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM memes WHERE id = $1)`, memeID).Scan(&exists)
	if err != nil {
		slog.Error("failed to query meme", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Memes not found!")
		return
	}

	voteID, err := auth.GenerateID(12)
	if err != nil {
		slog.Error("failed to generate vote ID", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		slog.Error("failed to begin transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO votes (id, meme_id, voter_id, vote_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, memeID, session.UserID, req.VoteType, time.Now())
	if err != nil {
		slog.Error("failed to insert vote", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	removed := false
	if req.VoteType == models.VoteDown {
		var downVotes int
		err = tx.QueryRow(`
			SELECT COUNT(*) FROM votes WHERE meme_id = $1 AND vote_type = 'down'
		`, memeID).Scan(&downVotes)
		if err != nil {
			slog.Error("failed to count down-votes", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
			return
		}

		if downVotes >= h.cfg.DownvoteThreshold {
			// Meme and vote history go together; votes first so the
			// meme row is never orphan-referenced
			if _, err := tx.Exec(`DELETE FROM votes WHERE meme_id = $1`, memeID); err != nil {
				slog.Error("failed to delete votes", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
				return
			}
			if _, err := tx.Exec(`DELETE FROM memes WHERE id = $1`, memeID); err != nil {
				slog.Error("failed to delete meme", "error", err)
				middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
				return
			}
			removed = true
		}
	}

	if err := tx.Commit(); err != nil {
		slog.Error("failed to commit transaction", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to cast vote")
		return
	}

	message := "Vote recorded."
	if removed {
		message = "Vote recorded. This meme crossed the down-vote threshold and has been removed."
		slog.Info("meme removed by down-vote threshold",
			"meme_id", memeID, "threshold", h.cfg.DownvoteThreshold)
	}

	slog.Info("vote cast", "meme_id", memeID, "voter_id", session.UserID, "vote_type", req.VoteType)

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		VoteID:      voteID,
		Message:     message,
		MemeRemoved: removed,
	})
}
