package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/store"
)

func (e *Engine) handleThreadItemInsert(ctx context.Context, event model.RowEvent) {
	item, err := decodeThreadItem(event.Record)
	if err != nil {
		e.logger.Error(fmt.Sprintf("failed to decode thread item event, dropping: %v", err))
		return
	}

	e.applyItem(ctx, item, true)
}

// applyItem reconciles one thread item into the summary, the cache and the
// live thread in a single store update. remote marks items that came from the
// realtime feed rather than from our own write.
func (e *Engine) applyItem(ctx context.Context, item model.ThreadItem, remote bool) {
	var needsDoodle bool

	e.store.Update(func(tx *store.Tx) {
		var knownDoodle *model.Doodle
		if item.DoodleID != nil {
			knownDoodle = lookupDoodle(tx, item.ConversationID, *item.DoodleID)
			needsDoodle = knownDoodle == nil
		}

		held, tracked := heldItem(tx, item.ConversationID, item.ID)
		if !held {
			tx.UpsertConversationSummary(item.ConversationID, func(s *model.ConversationSummary) {
				if s.LastItem != nil && s.LastItem.ID == item.ID {
					return
				}
				older := item.CreatedAt.Before(s.UpdatedAt)
				// without a held thread an older item may be a redelivery
				if older && !tracked {
					return
				}
				if !older {
					last := item
					s.LastItem = &last
					s.LastDoodle = knownDoodle
					s.UpdatedAt = item.CreatedAt
				}
				if remote && item.SenderID != e.userID {
					s.UnreadCount++
				}
			})
		}

		tx.PatchThreadCache(item.ConversationID, func(c *model.ThreadCache) {
			c.InsertHead(item)
		})

		tx.PatchLive(item.ConversationID, func(c *model.ThreadCache) {
			c.InsertHead(item)
		})
	})

	e.notify(ConversationsChanged, item.ConversationID)
	e.notify(ThreadChanged, item.ConversationID)

	if needsDoodle {
		conversationID, doodleID := item.ConversationID, *item.DoodleID
		resolveCtx := context.WithoutCancel(ctx)
		e.goTask(func() {
			e.resolveDoodle(resolveCtx, conversationID, doodleID)
		})
	}
}

// heldItem reports whether the item is already in the cache or the live thread
// of its conversation. tracked is false when neither holds any items, so the
// answer says nothing about earlier deliveries.
func heldItem(tx *store.Tx, conversationID, itemID uuid.UUID) (held, tracked bool) {
	if live, ok := tx.LiveThread(); ok && live.ConversationID == conversationID && len(live.Items) > 0 {
		tracked = true
		if live.Items.Contains(itemID) {
			return true, true
		}
	}
	if cache, ok := tx.ThreadCache(conversationID); ok {
		tracked = true
		if cache.Items.Contains(itemID) {
			return true, true
		}
	}
	return false, tracked
}

// lookupDoodle finds an already resolved doodle in the live thread or cache.
func lookupDoodle(tx *store.Tx, conversationID, doodleID uuid.UUID) *model.Doodle {
	if live, ok := tx.LiveThread(); ok && live.ConversationID == conversationID {
		if d, found := live.Doodles[doodleID]; found {
			return &d
		}
	}
	if cache, ok := tx.ThreadCache(conversationID); ok {
		if d, found := cache.Doodles[doodleID]; found {
			return &d
		}
	}
	return nil
}

// resolveDoodle fetches a doodle and writes it into the cache, the live thread
// and the summary whose last item references it.
func (e *Engine) resolveDoodle(ctx context.Context, conversationID, doodleID uuid.UUID) {
	doodles, err := e.gateway.FetchDoodles(ctx, []uuid.UUID{doodleID})
	if err != nil {
		e.logger.Warn(fmt.Sprintf("failed to resolve doodle %s: %v", doodleID, err))
		return
	}
	if len(doodles) == 0 {
		e.logger.Warn(fmt.Sprintf("doodle %s not found", doodleID))
		return
	}
	doodle := doodles[0]

	e.store.Update(func(tx *store.Tx) {
		tx.PatchThreadCache(conversationID, func(c *model.ThreadCache) {
			c.MergeDoodles(doodles)
		})
		tx.PatchLive(conversationID, func(c *model.ThreadCache) {
			c.MergeDoodles(doodles)
		})
		tx.UpsertConversationSummary(conversationID, func(s *model.ConversationSummary) {
			if s.LastItem != nil && s.LastItem.DoodleID != nil && *s.LastItem.DoodleID == doodleID {
				s.LastDoodle = &doodle
			}
		})
	})

	e.notify(ThreadChanged, conversationID)
}

func (e *Engine) handleFriendshipInsert(_ context.Context, event model.RowEvent) {
	friendship, err := decodeFriendship(event.Record)
	if err != nil {
		e.logger.Error(fmt.Sprintf("failed to decode friendship event, dropping: %v", err))
		return
	}

	if friendship.FriendID != e.userID || friendship.Status != model.FriendshipPending {
		return
	}

	if e.store.AddFriendRequest(friendship) {
		e.notify(FriendRequestsChanged, uuid.Nil)
	}
}

func (e *Engine) handleFriendshipUpdate(_ context.Context, event model.RowEvent) {
	friendship, err := decodeFriendship(event.Record)
	if err != nil {
		e.logger.Error(fmt.Sprintf("failed to decode friendship update, dropping: %v", err))
		return
	}

	if friendship.FriendID != e.userID && friendship.UserID != e.userID {
		return
	}
	if friendship.Status == model.FriendshipPending {
		return
	}

	if e.store.RemoveFriendRequest(friendship.ID) {
		e.notify(FriendRequestsChanged, uuid.Nil)
	}
}

func (e *Engine) handleDoodleRecipientInsert(ctx context.Context, event model.RowEvent) {
	recipient, err := decodeDoodleRecipient(event.Record)
	if err != nil {
		e.logger.Error(fmt.Sprintf("failed to decode doodle recipient event, dropping: %v", err))
		return
	}

	// the doodle's recipient set changed whoever received it
	e.store.InvalidateRecipients(recipient.DoodleID)

	if recipient.RecipientID != e.userID {
		return
	}
	for _, d := range e.store.ReceivedDoodles() {
		if d.ID == recipient.DoodleID {
			return
		}
	}

	doodles, err := e.gateway.FetchDoodles(ctx, []uuid.UUID{recipient.DoodleID})
	if err != nil {
		e.logger.Warn(fmt.Sprintf("failed to fetch received doodle %s: %v", recipient.DoodleID, err))
		return
	}
	if len(doodles) == 0 {
		return
	}

	if e.store.AddReceivedDoodle(doodles[0]) {
		e.notify(ReceivedDoodlesChanged, uuid.Nil)
	}
}
