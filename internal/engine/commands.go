package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/reaction"
	"github.com/s21platform/doodle-sync/internal/store"
)

// LoadConversations rebuilds the summary list from one batched fetch. On
// failure the current list is kept.
func (e *Engine) LoadConversations(ctx context.Context) error {
	metadata, err := e.gateway.FetchConversationsWithMetadata(ctx, e.userID)
	if err != nil {
		return fmt.Errorf("failed to fetch conversations: %w", err)
	}

	summaries := make([]model.ConversationSummary, len(metadata))
	var doodleIDs []uuid.UUID
	for i, m := range metadata {
		summaries[i] = m.Summary()
		if last := summaries[i].LastItem; last != nil && last.DoodleID != nil {
			doodleIDs = append(doodleIDs, *last.DoodleID)
		}
	}

	if len(doodleIDs) > 0 {
		doodles, err := e.gateway.FetchDoodles(ctx, doodleIDs)
		if err != nil {
			e.logger.Warn(fmt.Sprintf("failed to resolve last doodles: %v", err))
		}
		byID := make(map[uuid.UUID]model.Doodle, len(doodles))
		for _, d := range doodles {
			byID[d.ID] = d
		}
		for i := range summaries {
			last := summaries[i].LastItem
			if last == nil || last.DoodleID == nil {
				continue
			}
			if d, ok := byID[*last.DoodleID]; ok {
				summaries[i].LastDoodle = &d
			}
		}
	}

	e.store.SetConversations(summaries)
	e.notify(ConversationsChanged, uuid.Nil)

	return nil
}

func (e *Engine) Conversations() []model.ConversationSummary {
	return e.store.Conversations()
}

func (e *Engine) ConversationsLoaded() bool {
	return e.store.ConversationsLoaded()
}

// OpenConversation makes the conversation the live one and loads its newest
// page. A failed load is not an error while an older copy is cached.
func (e *Engine) OpenConversation(ctx context.Context, conversationID uuid.UUID) error {
	e.store.Update(func(tx *store.Tx) {
		tx.OpenConversation(conversationID)
		tx.MarkThreadLoading(conversationID)
	})
	e.notify(ThreadChanged, conversationID)

	err := e.pager.LoadFirstPage(ctx, conversationID, e.pageSize)
	if err != nil {
		e.store.MarkThreadFailed(conversationID, err)
		e.notify(ThreadChanged, conversationID)

		if _, cached := e.store.ThreadCache(conversationID); cached {
			e.logger.Warn(fmt.Sprintf("failed to refresh conversation %s, showing cached items: %v", conversationID, err))
			return nil
		}
		return fmt.Errorf("%w: %v", ErrNoThreadCache, err)
	}

	e.notify(ThreadChanged, conversationID)
	return nil
}

// CloseConversation unbinds the live thread. The cache is kept.
func (e *Engine) CloseConversation() {
	e.store.CloseConversation()
}

func (e *Engine) LiveThread() (store.LiveThread, bool) {
	return e.store.LiveThread()
}

func (e *Engine) ThreadState(conversationID uuid.UUID) model.ThreadState {
	return e.store.ThreadState(conversationID)
}

func (e *Engine) HasMore(conversationID uuid.UUID) bool {
	return e.pager.HasMore(conversationID)
}

// LoadMore appends the next older page of the conversation.
func (e *Engine) LoadMore(ctx context.Context, conversationID uuid.UUID, limit int) error {
	if limit <= 0 {
		limit = e.pageSize
	}
	if err := e.pager.LoadOlderPage(ctx, conversationID, limit); err != nil {
		return err
	}
	e.notify(ThreadChanged, conversationID)
	return nil
}

func (e *Engine) SendText(ctx context.Context, conversationID uuid.UUID, text string, replyTo *uuid.UUID) (model.ThreadItem, error) {
	if err := e.validator.ValidateText(text); err != nil {
		return model.ThreadItem{}, err
	}

	item, err := e.gateway.CreateTextItem(ctx, conversationID, e.userID, text, replyTo)
	if err != nil {
		return model.ThreadItem{}, fmt.Errorf("failed to send text: %w", err)
	}

	e.applyItem(ctx, item, false)
	return item, nil
}

func (e *Engine) SendDoodle(ctx context.Context, conversationID uuid.UUID, doodleID uuid.UUID) (model.ThreadItem, error) {
	item, err := e.gateway.CreateDoodleItem(ctx, conversationID, e.userID, doodleID)
	if err != nil {
		return model.ThreadItem{}, fmt.Errorf("failed to send doodle: %w", err)
	}

	e.applyItem(ctx, item, false)
	return item, nil
}

// ToggleReaction adds, removes or replaces the user's reaction on a thread
// item. It returns the reaction now in place, or nil after a removal.
func (e *Engine) ToggleReaction(ctx context.Context, conversationID uuid.UUID, threadItemID uuid.UUID, emoji string) (*model.Reaction, error) {
	if err := e.validator.ValidateEmoji(emoji); err != nil {
		return nil, err
	}

	existing, found := e.userReaction(conversationID, threadItemID)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, threadItemID)
	}

	switch reaction.Decide(existing, emoji) {
	case reaction.ActionRemove:
		if err := e.gateway.DeleteReaction(ctx, threadItemID, e.userID); err != nil {
			return nil, fmt.Errorf("failed to remove reaction: %w", err)
		}
		e.patchThread(conversationID, func(c *model.ThreadCache) {
			c.RemoveReaction(threadItemID, e.userID)
		})
		return nil, nil
	default:
		r, err := e.gateway.UpsertReaction(ctx, threadItemID, e.userID, emoji)
		if err != nil {
			return nil, fmt.Errorf("failed to save reaction: %w", err)
		}
		e.patchThread(conversationID, func(c *model.ThreadCache) {
			c.PutReaction(r)
		})
		return &r, nil
	}
}

// userReaction looks the item up in the live thread first, then the cache.
func (e *Engine) userReaction(conversationID, threadItemID uuid.UUID) (*model.Reaction, bool) {
	var (
		existing *model.Reaction
		found    bool
	)
	e.store.View(func(tx *store.ReadTx) {
		if live, ok := tx.LiveThread(); ok && live.ConversationID == conversationID && live.Items.Contains(threadItemID) {
			c := model.ThreadCache{Items: live.Items, Reactions: live.Reactions}
			existing, found = c.UserReaction(threadItemID, e.userID), true
			return
		}
		if cache, ok := tx.ThreadCache(conversationID); ok && cache.Items.Contains(threadItemID) {
			existing, found = cache.UserReaction(threadItemID, e.userID), true
		}
	})
	return existing, found
}

func (e *Engine) patchThread(conversationID uuid.UUID, mutator func(*model.ThreadCache)) {
	e.store.Update(func(tx *store.Tx) {
		tx.PatchThreadCache(conversationID, mutator)
		tx.PatchLive(conversationID, mutator)
	})
	e.notify(ThreadChanged, conversationID)
}

func (e *Engine) MarkRead(ctx context.Context, conversationID uuid.UUID) error {
	if err := e.gateway.MarkConversationRead(ctx, conversationID, e.userID); err != nil {
		return fmt.Errorf("failed to mark conversation read: %w", err)
	}

	e.store.UpsertConversationSummary(conversationID, func(s *model.ConversationSummary) {
		s.UnreadCount = 0
	})
	e.notify(ConversationsChanged, conversationID)
	return nil
}

func (e *Engine) SetMuted(ctx context.Context, conversationID uuid.UUID, muted bool) error {
	if err := e.gateway.SetConversationMuted(ctx, conversationID, e.userID, muted); err != nil {
		return fmt.Errorf("failed to update mute: %w", err)
	}

	e.store.UpsertConversationSummary(conversationID, func(s *model.ConversationSummary) {
		s.Muted = muted
	})
	e.notify(ConversationsChanged, conversationID)
	return nil
}

// DoodleReactions summarizes reactions across every thread item that carries
// the doodle.
func (e *Engine) DoodleReactions(ctx context.Context, doodleID uuid.UUID) (model.ReactionSummary, error) {
	rows, err := e.gateway.FetchAggregatedReactions(ctx, []uuid.UUID{doodleID})
	if err != nil {
		return model.ReactionSummary{}, fmt.Errorf("failed to fetch doodle reactions: %w", err)
	}

	summary, ok := reaction.Summarize(rows)[doodleID]
	if !ok {
		return model.ReactionSummary{TopEmojis: []string{}, Reactions: []model.AggregatedReaction{}}, nil
	}
	return summary, nil
}

// Recipients returns who received the doodle, fetching on a cache miss.
func (e *Engine) Recipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error) {
	users, generation, ok := e.store.Recipients(doodleID)
	if ok {
		return users, nil
	}

	users, err := e.gateway.FetchDoodleRecipients(ctx, doodleID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doodle recipients: %w", err)
	}

	// an invalidation during the fetch makes the list stale for caching
	e.store.SetRecipients(doodleID, users, generation)
	return users, nil
}

func (e *Engine) ForwardDoodle(ctx context.Context, doodleID uuid.UUID, recipientIDs []uuid.UUID) error {
	if err := e.validator.ValidateForward(recipientIDs); err != nil {
		return err
	}

	if err := e.gateway.ForwardDoodle(ctx, doodleID, e.userID, recipientIDs); err != nil {
		return fmt.Errorf("failed to forward doodle: %w", err)
	}

	e.store.InvalidateRecipients(doodleID)
	return nil
}

// ApplyProfileUpdate refreshes the participant snapshot in every summary that
// shows the user.
func (e *Engine) ApplyProfileUpdate(user model.User) {
	changed := false
	e.store.Update(func(tx *store.Tx) {
		tx.UpdateSummaries(func(s *model.ConversationSummary) {
			if s.OtherParticipant.ID == user.ID {
				s.OtherParticipant = user
				changed = true
			}
		})
	})

	if changed {
		e.notify(ConversationsChanged, uuid.Nil)
	}
}

func (e *Engine) FriendRequests() []model.Friendship {
	return e.store.FriendRequests()
}

func (e *Engine) ReceivedDoodles() []model.Doodle {
	return e.store.ReceivedDoodles()
}
