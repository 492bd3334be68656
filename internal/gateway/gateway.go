// Package gateway backs the engine's remote contracts with the database, the
// realtime server HTTP API and realtime websocket subscriptions.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/doodle-sync/internal/client/realtime"
	"github.com/s21platform/doodle-sync/internal/engine"
	"github.com/s21platform/doodle-sync/internal/model"
)

const (
	threadItemsTable      = "thread_items"
	friendshipsTable      = "friendships"
	doodleRecipientsTable = "doodle_recipients"
)

// Channels are per user: "<table>:<event>#<user id>".
func channel(table, eventType string, userID uuid.UUID) string {
	return fmt.Sprintf("%s:%s#%s", table, eventLabel(eventType), userID)
}

func eventLabel(eventType string) string {
	switch eventType {
	case model.UpdateEvent:
		return "update"
	case model.DeleteEvent:
		return "delete"
	default:
		return "insert"
	}
}

var _ engine.Gateway = (*Gateway)(nil)

type Gateway struct {
	repo       Repository
	publisher  Publisher
	subscriber Subscriber
	logger     logger_lib.LoggerInterface
	userID     uuid.UUID
}

func New(repo Repository, publisher Publisher, subscriber Subscriber, logger logger_lib.LoggerInterface, userID uuid.UUID) *Gateway {
	return &Gateway{
		repo:       repo,
		publisher:  publisher,
		subscriber: subscriber,
		logger:     logger,
		userID:     userID,
	}
}

// RealtimeSubscriber exposes a realtime client as a Subscriber.
func RealtimeSubscriber(client *realtime.Client) Subscriber {
	return realtimeSubscriber{client: client}
}

type realtimeSubscriber struct {
	client *realtime.Client
}

func (s realtimeSubscriber) Subscribe(ctx context.Context, channel string) (engine.Subscription, error) {
	sub, err := s.client.Subscribe(ctx, channel)
	if err != nil {
		return nil, err
	}
	return sub, nil
}

func (g *Gateway) FetchConversationsWithMetadata(ctx context.Context, userID uuid.UUID) ([]model.ConversationMetadata, error) {
	return g.repo.FetchConversationsWithMetadata(ctx, userID)
}

func (g *Gateway) FetchThreadItems(ctx context.Context, conversationID uuid.UUID, limit int, before *time.Time) ([]model.ThreadItem, error) {
	return g.repo.FetchThreadItems(ctx, conversationID, limit, before)
}

func (g *Gateway) FetchDoodles(ctx context.Context, ids []uuid.UUID) ([]model.Doodle, error) {
	return g.repo.FetchDoodles(ctx, ids)
}

func (g *Gateway) FetchReactions(ctx context.Context, threadItemIDs []uuid.UUID) ([]model.Reaction, error) {
	return g.repo.FetchReactions(ctx, threadItemIDs)
}

func (g *Gateway) FetchAggregatedReactions(ctx context.Context, doodleIDs []uuid.UUID) ([]model.AggregatedReaction, error) {
	return g.repo.FetchAggregatedReactions(ctx, doodleIDs)
}

func (g *Gateway) FetchDoodleRecipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error) {
	return g.repo.FetchDoodleRecipients(ctx, doodleID)
}

func (g *Gateway) CreateTextItem(ctx context.Context, conversationID, senderID uuid.UUID, text string, replyTo *uuid.UUID) (model.ThreadItem, error) {
	item, err := g.repo.InsertThreadItem(ctx, model.ThreadItem{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           model.TextItemType,
		TextContent:    &text,
		ReplyToItemID:  replyTo,
	})
	if err != nil {
		return model.ThreadItem{}, err
	}

	g.publishItems(ctx, []model.ThreadItem{item})
	return item, nil
}

// CreateDoodleItem posts the doodle into the conversation and records its
// delivery to the other participants in one transaction.
func (g *Gateway) CreateDoodleItem(ctx context.Context, conversationID, senderID, doodleID uuid.UUID) (model.ThreadItem, error) {
	var (
		item       model.ThreadItem
		recipients []model.DoodleRecipient
	)

	err := g.repo.WithTx(ctx, func(ctx context.Context) error {
		var err error
		item, err = g.repo.InsertThreadItem(ctx, doodleItem(conversationID, senderID, doodleID))
		if err != nil {
			return err
		}

		recipients, err = g.repo.AddDoodleRecipients(ctx, doodleID, conversationID, senderID)
		return err
	})
	if err != nil {
		return model.ThreadItem{}, err
	}

	g.publishItems(ctx, []model.ThreadItem{item})
	g.publishRecipients(ctx, senderID, recipients)
	return item, nil
}

// ForwardDoodle posts the doodle into the direct conversation with every
// recipient, creating conversations that do not exist yet.
func (g *Gateway) ForwardDoodle(ctx context.Context, doodleID, senderID uuid.UUID, recipientIDs []uuid.UUID) error {
	var (
		items      []model.ThreadItem
		recipients []model.DoodleRecipient
	)

	err := g.repo.WithTx(ctx, func(ctx context.Context) error {
		for _, recipientID := range recipientIDs {
			conversationID, err := g.repo.EnsureDirectConversation(ctx, senderID, recipientID)
			if err != nil {
				return err
			}

			item, err := g.repo.InsertThreadItem(ctx, doodleItem(conversationID, senderID, doodleID))
			if err != nil {
				return err
			}
			items = append(items, item)

			added, err := g.repo.AddDoodleRecipients(ctx, doodleID, conversationID, senderID)
			if err != nil {
				return err
			}
			recipients = append(recipients, added...)
		}
		return nil
	})
	if err != nil {
		return err
	}

	g.publishItems(ctx, items)
	g.publishRecipients(ctx, senderID, recipients)
	return nil
}

func (g *Gateway) UpsertReaction(ctx context.Context, threadItemID, userID uuid.UUID, emoji string) (model.Reaction, error) {
	return g.repo.UpsertReaction(ctx, threadItemID, userID, emoji)
}

func (g *Gateway) DeleteReaction(ctx context.Context, threadItemID, userID uuid.UUID) error {
	_, err := g.repo.DeleteReaction(ctx, threadItemID, userID)
	return err
}

func (g *Gateway) MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	return g.repo.MarkConversationRead(ctx, conversationID, userID)
}

func (g *Gateway) SetConversationMuted(ctx context.Context, conversationID, userID uuid.UUID, muted bool) error {
	return g.repo.SetConversationMuted(ctx, conversationID, userID, muted)
}

func (g *Gateway) SubscribeThreadItemInserts(ctx context.Context) (engine.Subscription, error) {
	return g.subscriber.Subscribe(ctx, channel(threadItemsTable, model.InsertEvent, g.userID))
}

func (g *Gateway) SubscribeFriendshipInserts(ctx context.Context) (engine.Subscription, error) {
	return g.subscriber.Subscribe(ctx, channel(friendshipsTable, model.InsertEvent, g.userID))
}

func (g *Gateway) SubscribeFriendshipUpdates(ctx context.Context) (engine.Subscription, error) {
	return g.subscriber.Subscribe(ctx, channel(friendshipsTable, model.UpdateEvent, g.userID))
}

func (g *Gateway) SubscribeDoodleRecipientInserts(ctx context.Context) (engine.Subscription, error) {
	return g.subscriber.Subscribe(ctx, channel(doodleRecipientsTable, model.InsertEvent, g.userID))
}

func doodleItem(conversationID, senderID, doodleID uuid.UUID) model.ThreadItem {
	return model.ThreadItem{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Type:           model.DoodleItemType,
		DoodleID:       &doodleID,
	}
}

// publishItems fans each stored item out to every participant, the sender
// included. The rows are committed already, so failures are only logged and
// receivers catch up on their next fetch.
func (g *Gateway) publishItems(ctx context.Context, items []model.ThreadItem) {
	for _, item := range items {
		participants, err := g.repo.FetchParticipantIDs(ctx, item.ConversationID)
		if err != nil {
			g.logger.Warn(fmt.Sprintf("failed to get participants of %s, item %s not published: %v", item.ConversationID, item.ID, err))
			continue
		}

		channels := make([]string, 0, len(participants))
		for _, id := range participants {
			channels = append(channels, channel(threadItemsTable, model.InsertEvent, id))
		}
		g.publish(ctx, channels, threadItemsTable, item)
	}
}

// publishRecipients tells the recipient and the sender about each delivery.
func (g *Gateway) publishRecipients(ctx context.Context, senderID uuid.UUID, recipients []model.DoodleRecipient) {
	for _, r := range recipients {
		channels := []string{
			channel(doodleRecipientsTable, model.InsertEvent, r.RecipientID),
			channel(doodleRecipientsTable, model.InsertEvent, senderID),
		}
		g.publish(ctx, channels, doodleRecipientsTable, r)
	}
}

func (g *Gateway) publish(ctx context.Context, channels []string, table string, record interface{}) {
	raw, err := json.Marshal(record)
	if err != nil {
		g.logger.Error(fmt.Sprintf("failed to marshal %s record: %v", table, err))
		return
	}

	event := model.RowEvent{Table: table, Type: model.InsertEvent, Record: raw}
	if err := g.publisher.Broadcast(ctx, channels, event); err != nil {
		g.logger.Warn(fmt.Sprintf("failed to publish %s event: %v", table, err))
	}
}
