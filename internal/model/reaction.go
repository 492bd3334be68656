package model

import (
	"time"

	"github.com/google/uuid"
)

// Reaction is unique per (thread_item_id, user_id).
type Reaction struct {
	ID           uuid.UUID `db:"id" json:"id"`
	ThreadItemID uuid.UUID `db:"thread_item_id" json:"thread_item_id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Emoji        string    `db:"emoji" json:"emoji"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// AggregatedReaction is a reaction on any thread item carrying the doodle,
// joined with the reactor's profile.
type AggregatedReaction struct {
	DoodleID    uuid.UUID `db:"doodle_id" json:"doodle_id"`
	UserID      uuid.UUID `db:"user_id" json:"user_id"`
	Emoji       string    `db:"emoji" json:"emoji"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	Username    string    `db:"username" json:"username"`
	DisplayName *string   `db:"display_name" json:"display_name,omitempty"`
	AvatarURL   *string   `db:"avatar_url" json:"avatar_url,omitempty"`
}

type ReactionSummary struct {
	TopEmojis  []string             `json:"top_emojis"`
	TotalCount int                  `json:"total_count"`
	Reactions  []AggregatedReaction `json:"reactions"`
}
