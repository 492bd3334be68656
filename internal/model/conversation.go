package model

import (
	"time"

	"github.com/google/uuid"
)

type ConversationType string

const (
	DirectConversation ConversationType = "direct"
	GroupConversation  ConversationType = "group"
)

type User struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Username    string    `db:"username" json:"username"`
	DisplayName *string   `db:"display_name" json:"display_name,omitempty"`
	AvatarURL   *string   `db:"avatar_url" json:"avatar_url,omitempty"`
}

type ConversationSummary struct {
	ConversationID   uuid.UUID        `json:"conversation_id"`
	Type             ConversationType `json:"type"`
	UpdatedAt        time.Time        `json:"updated_at"`
	OtherParticipant User             `json:"other_participant"`
	LastItem         *ThreadItem      `json:"last_item,omitempty"`
	LastDoodle       *Doodle          `json:"last_doodle,omitempty"`
	UnreadCount      int              `json:"unread_count"`
	Muted            bool             `json:"muted"`
}

// ConversationMetadata is one row of the batched conversations query.
type ConversationMetadata struct {
	ConversationID uuid.UUID        `db:"conversation_id"`
	Type           ConversationType `db:"type"`
	UpdatedAt      time.Time        `db:"updated_at"`
	Muted          bool             `db:"muted"`
	UnreadCount    int              `db:"unread_count"`

	OtherUserID      uuid.UUID `db:"other_user_id"`
	OtherUsername    string    `db:"other_username"`
	OtherDisplayName *string   `db:"other_display_name"`
	OtherAvatarURL   *string   `db:"other_avatar_url"`

	LastItemID            *uuid.UUID      `db:"last_item_id"`
	LastItemSenderID      *uuid.UUID      `db:"last_item_sender_id"`
	LastItemType          *ThreadItemType `db:"last_item_type"`
	LastItemDoodleID      *uuid.UUID      `db:"last_item_doodle_id"`
	LastItemTextContent   *string         `db:"last_item_text_content"`
	LastItemReplyToItemID *uuid.UUID      `db:"last_item_reply_to_item_id"`
	LastItemCreatedAt     *time.Time      `db:"last_item_created_at"`
}

// Summary builds the derived summary. LastDoodle is resolved separately.
func (m ConversationMetadata) Summary() ConversationSummary {
	summary := ConversationSummary{
		ConversationID: m.ConversationID,
		Type:           m.Type,
		UpdatedAt:      m.UpdatedAt,
		OtherParticipant: User{
			ID:          m.OtherUserID,
			Username:    m.OtherUsername,
			DisplayName: m.OtherDisplayName,
			AvatarURL:   m.OtherAvatarURL,
		},
		UnreadCount: m.UnreadCount,
		Muted:       m.Muted,
	}

	if m.LastItemID != nil && m.LastItemSenderID != nil && m.LastItemType != nil && m.LastItemCreatedAt != nil {
		summary.LastItem = &ThreadItem{
			ID:             *m.LastItemID,
			ConversationID: m.ConversationID,
			SenderID:       *m.LastItemSenderID,
			Type:           *m.LastItemType,
			DoodleID:       m.LastItemDoodleID,
			TextContent:    m.LastItemTextContent,
			ReplyToItemID:  m.LastItemReplyToItemID,
			CreatedAt:      *m.LastItemCreatedAt,
		}
	}

	return summary
}
