package model

import (
	"time"

	"github.com/google/uuid"
)

type Doodle struct {
	ID        uuid.UUID `db:"id" json:"id"`
	SenderID  uuid.UUID `db:"sender_id" json:"sender_id"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// DoodleRecipient is one delivery of a doodle to a user.
type DoodleRecipient struct {
	ID          uuid.UUID `db:"id" json:"id"`
	DoodleID    uuid.UUID `db:"doodle_id" json:"doodle_id"`
	RecipientID uuid.UUID `db:"recipient_id" json:"recipient_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
