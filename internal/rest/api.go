package rest

import (
	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

type Error struct {
	Error string `json:"error"`
}

type StatusResponse struct {
	UserID              uuid.UUID `json:"user_id"`
	Connected           bool      `json:"connected"`
	ConversationsLoaded bool      `json:"conversations_loaded"`
}

type GetConversationsResponse struct {
	Conversations []model.ConversationSummary `json:"conversations"`
}

type GetThreadResponse struct {
	Status            string                              `json:"status"`
	Items             []model.ThreadItem                  `json:"items"`
	Doodles           map[uuid.UUID]model.Doodle          `json:"doodles"`
	Reactions         map[uuid.UUID][]model.Reaction      `json:"reactions"`
	ReactionSummaries map[uuid.UUID]model.ReactionSummary `json:"reaction_summaries"`
	HasMore           bool                                `json:"has_more"`
	Live              bool                                `json:"live"`
	Error             *string                             `json:"error,omitempty"`
}

type LoadOlderParams struct {
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

type SendTextRequest struct {
	Text          string     `json:"text"`
	ReplyToItemID *uuid.UUID `json:"reply_to_item_id,omitempty"`
}

type SendDoodleRequest struct {
	DoodleID uuid.UUID `json:"doodle_id"`
}

type ThreadItemResponse struct {
	Item model.ThreadItem `json:"item"`
}

type SetMutedRequest struct {
	Muted bool `json:"muted"`
}

type ToggleReactionRequest struct {
	Emoji string `json:"emoji"`
}

// ToggleReactionResponse carries a nil reaction after a removal.
type ToggleReactionResponse struct {
	Reaction *model.Reaction `json:"reaction"`
}

type GetRecipientsResponse struct {
	Recipients []model.User `json:"recipients"`
}

type ForwardDoodleRequest struct {
	RecipientIDs []uuid.UUID `json:"recipient_ids"`
}

type GetFriendRequestsResponse struct {
	FriendRequests []model.Friendship `json:"friend_requests"`
}

type GetReceivedDoodlesResponse struct {
	Doodles []model.Doodle `json:"doodles"`
}

type EventPayload struct {
	ConversationID *uuid.UUID `json:"conversation_id,omitempty"`
}
