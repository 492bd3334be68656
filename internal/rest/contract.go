//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/engine"
	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/store"
)

type SyncEngine interface {
	UserID() uuid.UUID
	Connected() bool
	ConversationsLoaded() bool
	Conversations() []model.ConversationSummary
	LoadConversations(ctx context.Context) error
	OpenConversation(ctx context.Context, conversationID uuid.UUID) error
	CloseConversation()
	LiveThread() (store.LiveThread, bool)
	ThreadState(conversationID uuid.UUID) model.ThreadState
	HasMore(conversationID uuid.UUID) bool
	LoadMore(ctx context.Context, conversationID uuid.UUID, limit int) error
	SendText(ctx context.Context, conversationID uuid.UUID, text string, replyTo *uuid.UUID) (model.ThreadItem, error)
	SendDoodle(ctx context.Context, conversationID uuid.UUID, doodleID uuid.UUID) (model.ThreadItem, error)
	ToggleReaction(ctx context.Context, conversationID uuid.UUID, threadItemID uuid.UUID, emoji string) (*model.Reaction, error)
	MarkRead(ctx context.Context, conversationID uuid.UUID) error
	SetMuted(ctx context.Context, conversationID uuid.UUID, muted bool) error
	DoodleReactions(ctx context.Context, doodleID uuid.UUID) (model.ReactionSummary, error)
	Recipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error)
	ForwardDoodle(ctx context.Context, doodleID uuid.UUID, recipientIDs []uuid.UUID) error
	FriendRequests() []model.Friendship
	ReceivedDoodles() []model.Doodle
	Subscribe() (<-chan engine.Notification, func())
}
