package model

import (
	"time"

	"github.com/google/uuid"
)

type ThreadItemType string

const (
	DoodleItemType ThreadItemType = "doodle"
	TextItemType   ThreadItemType = "text"
)

type ThreadItemList []ThreadItem

type ThreadItem struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	ConversationID uuid.UUID      `db:"conversation_id" json:"conversation_id"`
	SenderID       uuid.UUID      `db:"sender_id" json:"sender_id"`
	Type           ThreadItemType `db:"type" json:"type"`
	DoodleID       *uuid.UUID     `db:"doodle_id" json:"doodle_id,omitempty"`
	TextContent    *string        `db:"text_content" json:"text_content,omitempty"`
	ReplyToItemID  *uuid.UUID     `db:"reply_to_item_id" json:"reply_to_item_id,omitempty"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// Contains reports whether an item with the given id is in the list.
func (l ThreadItemList) Contains(id uuid.UUID) bool {
	for _, item := range l {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Oldest returns the minimum created_at in the list.
func (l ThreadItemList) Oldest() (time.Time, bool) {
	if len(l) == 0 {
		return time.Time{}, false
	}
	oldest := l[0].CreatedAt
	for _, item := range l[1:] {
		if item.CreatedAt.Before(oldest) {
			oldest = item.CreatedAt
		}
	}
	return oldest, true
}

// DoodleIDs collects the distinct doodle ids referenced by the list, in order.
func (l ThreadItemList) DoodleIDs() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, item := range l {
		if item.DoodleID == nil {
			continue
		}
		if _, ok := seen[*item.DoodleID]; ok {
			continue
		}
		seen[*item.DoodleID] = struct{}{}
		ids = append(ids, *item.DoodleID)
	}
	return ids
}

func (l ThreadItemList) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(l))
	for _, item := range l {
		ids = append(ids, item.ID)
	}
	return ids
}
