//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package engine

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

type Gateway interface {
	FetchConversationsWithMetadata(ctx context.Context, userID uuid.UUID) ([]model.ConversationMetadata, error)
	FetchThreadItems(ctx context.Context, conversationID uuid.UUID, limit int, before *time.Time) ([]model.ThreadItem, error)
	FetchDoodles(ctx context.Context, ids []uuid.UUID) ([]model.Doodle, error)
	FetchReactions(ctx context.Context, threadItemIDs []uuid.UUID) ([]model.Reaction, error)
	FetchAggregatedReactions(ctx context.Context, doodleIDs []uuid.UUID) ([]model.AggregatedReaction, error)
	FetchDoodleRecipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error)

	CreateTextItem(ctx context.Context, conversationID uuid.UUID, senderID uuid.UUID, text string, replyTo *uuid.UUID) (model.ThreadItem, error)
	CreateDoodleItem(ctx context.Context, conversationID uuid.UUID, senderID uuid.UUID, doodleID uuid.UUID) (model.ThreadItem, error)
	UpsertReaction(ctx context.Context, threadItemID uuid.UUID, userID uuid.UUID, emoji string) (model.Reaction, error)
	DeleteReaction(ctx context.Context, threadItemID uuid.UUID, userID uuid.UUID) error
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) error
	SetConversationMuted(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID, muted bool) error
	ForwardDoodle(ctx context.Context, doodleID uuid.UUID, senderID uuid.UUID, recipientIDs []uuid.UUID) error

	SubscribeThreadItemInserts(ctx context.Context) (Subscription, error)
	SubscribeFriendshipInserts(ctx context.Context) (Subscription, error)
	SubscribeFriendshipUpdates(ctx context.Context) (Subscription, error)
	SubscribeDoodleRecipientInserts(ctx context.Context) (Subscription, error)
}

// Subscription is a live feed of row events. The channel is closed when the
// transport ends, whether by Close or by a drop.
type Subscription interface {
	Events() <-chan model.RowEvent
	Close() error
}

type Validator interface {
	ValidateText(text string) error
	ValidateEmoji(emoji string) error
	ValidateForward(recipientIDs []uuid.UUID) error
}
