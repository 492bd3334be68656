package engine

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

// Fractional seconds are tried first. The zone-less layouts cover columns
// stored as timestamp without time zone, read as UTC.
var timestampLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", value)
}

type threadItemRecord struct {
	ID             uuid.UUID  `json:"id"`
	ConversationID uuid.UUID  `json:"conversation_id"`
	SenderID       uuid.UUID  `json:"sender_id"`
	Type           string     `json:"type"`
	DoodleID       *uuid.UUID `json:"doodle_id"`
	TextContent    *string    `json:"text_content"`
	ReplyToItemID  *uuid.UUID `json:"reply_to_item_id"`
	CreatedAt      string     `json:"created_at"`
}

func decodeThreadItem(raw json.RawMessage) (model.ThreadItem, error) {
	var rec threadItemRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.ThreadItem{}, fmt.Errorf("failed to unmarshal thread item: %w", err)
	}
	if rec.ID == uuid.Nil || rec.ConversationID == uuid.Nil {
		return model.ThreadItem{}, fmt.Errorf("thread item without id or conversation_id")
	}

	createdAt, err := parseTimestamp(rec.CreatedAt)
	if err != nil {
		return model.ThreadItem{}, err
	}

	item := model.ThreadItem{
		ID:             rec.ID,
		ConversationID: rec.ConversationID,
		SenderID:       rec.SenderID,
		Type:           model.ThreadItemType(rec.Type),
		DoodleID:       rec.DoodleID,
		TextContent:    rec.TextContent,
		ReplyToItemID:  rec.ReplyToItemID,
		CreatedAt:      createdAt,
	}

	switch item.Type {
	case model.DoodleItemType:
		if item.DoodleID == nil {
			return model.ThreadItem{}, fmt.Errorf("doodle item %s without doodle_id", item.ID)
		}
	case model.TextItemType:
		if item.TextContent == nil {
			return model.ThreadItem{}, fmt.Errorf("text item %s without text_content", item.ID)
		}
	default:
		return model.ThreadItem{}, fmt.Errorf("thread item %s has unknown type %q", item.ID, rec.Type)
	}

	return item, nil
}

type friendshipRecord struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FriendID  uuid.UUID `json:"friend_id"`
	Status    string    `json:"status"`
	CreatedAt string    `json:"created_at"`
}

func decodeFriendship(raw json.RawMessage) (model.Friendship, error) {
	var rec friendshipRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.Friendship{}, fmt.Errorf("failed to unmarshal friendship: %w", err)
	}

	createdAt, err := parseTimestamp(rec.CreatedAt)
	if err != nil {
		return model.Friendship{}, err
	}

	return model.Friendship{
		ID:        rec.ID,
		UserID:    rec.UserID,
		FriendID:  rec.FriendID,
		Status:    model.FriendshipStatus(rec.Status),
		CreatedAt: createdAt,
	}, nil
}

type doodleRecipientRecord struct {
	ID          uuid.UUID `json:"id"`
	DoodleID    uuid.UUID `json:"doodle_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	CreatedAt   string    `json:"created_at"`
}

func decodeDoodleRecipient(raw json.RawMessage) (model.DoodleRecipient, error) {
	var rec doodleRecipientRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return model.DoodleRecipient{}, fmt.Errorf("failed to unmarshal doodle recipient: %w", err)
	}

	createdAt, err := parseTimestamp(rec.CreatedAt)
	if err != nil {
		return model.DoodleRecipient{}, err
	}

	return model.DoodleRecipient{
		ID:          rec.ID,
		DoodleID:    rec.DoodleID,
		RecipientID: rec.RecipientID,
		CreatedAt:   createdAt,
	}, nil
}
