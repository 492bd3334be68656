//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package gateway

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/engine"
	"github.com/s21platform/doodle-sync/internal/model"
)

type Repository interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error

	FetchConversationsWithMetadata(ctx context.Context, userID uuid.UUID) ([]model.ConversationMetadata, error)
	FetchThreadItems(ctx context.Context, conversationID uuid.UUID, limit int, before *time.Time) ([]model.ThreadItem, error)
	FetchDoodles(ctx context.Context, ids []uuid.UUID) ([]model.Doodle, error)
	FetchReactions(ctx context.Context, threadItemIDs []uuid.UUID) ([]model.Reaction, error)
	FetchAggregatedReactions(ctx context.Context, doodleIDs []uuid.UUID) ([]model.AggregatedReaction, error)
	FetchDoodleRecipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error)
	FetchParticipantIDs(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error)

	InsertThreadItem(ctx context.Context, item model.ThreadItem) (model.ThreadItem, error)
	AddDoodleRecipients(ctx context.Context, doodleID uuid.UUID, conversationID uuid.UUID, senderID uuid.UUID) ([]model.DoodleRecipient, error)
	EnsureDirectConversation(ctx context.Context, userID uuid.UUID, otherID uuid.UUID) (uuid.UUID, error)
	UpsertReaction(ctx context.Context, threadItemID uuid.UUID, userID uuid.UUID, emoji string) (model.Reaction, error)
	DeleteReaction(ctx context.Context, threadItemID uuid.UUID, userID uuid.UUID) (*model.Reaction, error)
	MarkConversationRead(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID) error
	SetConversationMuted(ctx context.Context, conversationID uuid.UUID, userID uuid.UUID, muted bool) error
}

type Publisher interface {
	Broadcast(ctx context.Context, channels []string, event model.RowEvent) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, channel string) (engine.Subscription, error)
}
