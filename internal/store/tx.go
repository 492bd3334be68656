package store

import (
	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

// ReadTx gives read access inside View or Update.
type ReadTx struct {
	s *Store
}

// Tx gives write access inside Update.
type Tx struct {
	s *Store
}

func (tx *Tx) read() *ReadTx {
	return &ReadTx{s: tx.s}
}

func (tx *ReadTx) Conversations() []model.ConversationSummary {
	return append([]model.ConversationSummary(nil), tx.s.summaries...)
}

func (tx *ReadTx) Conversation(id uuid.UUID) (model.ConversationSummary, bool) {
	for _, summary := range tx.s.summaries {
		if summary.ConversationID == id {
			return summary, true
		}
	}
	return model.ConversationSummary{}, false
}

func (tx *ReadTx) ThreadState(id uuid.UUID) model.ThreadState {
	entry, ok := tx.s.threads[id]
	if !ok {
		return model.ThreadState{Status: model.ThreadNotLoaded}
	}
	state := model.ThreadState{Status: entry.status, Err: entry.err}
	if entry.cache != nil {
		c := entry.cache.Clone()
		state.Cache = &c
	}
	return state
}

func (tx *ReadTx) ThreadCache(id uuid.UUID) (model.ThreadCache, bool) {
	entry, ok := tx.s.threads[id]
	if !ok || entry.cache == nil {
		return model.ThreadCache{}, false
	}
	return entry.cache.Clone(), true
}

func (tx *ReadTx) OpenConversationID() (uuid.UUID, bool) {
	if tx.s.live == nil {
		return uuid.Nil, false
	}
	return tx.s.live.ConversationID, true
}

func (tx *ReadTx) LiveThread() (LiveThread, bool) {
	if tx.s.live == nil {
		return LiveThread{}, false
	}
	return tx.s.live.clone(), true
}

func (tx *Tx) Conversations() []model.ConversationSummary { return tx.read().Conversations() }

func (tx *Tx) Conversation(id uuid.UUID) (model.ConversationSummary, bool) {
	return tx.read().Conversation(id)
}

func (tx *Tx) ThreadCache(id uuid.UUID) (model.ThreadCache, bool) { return tx.read().ThreadCache(id) }

func (tx *Tx) OpenConversationID() (uuid.UUID, bool) { return tx.read().OpenConversationID() }

func (tx *Tx) LiveThread() (LiveThread, bool) { return tx.read().LiveThread() }

// SetConversations replaces the summary list wholesale.
func (tx *Tx) SetConversations(list []model.ConversationSummary) {
	summaries := append([]model.ConversationSummary(nil), list...)
	sortSummaries(summaries)
	tx.s.summaries = summaries
	tx.s.summariesLoaded = true
}

// UpsertConversationSummary applies updater to the summary with the given id
// and re-sorts the list. It reports false when no such summary exists.
func (tx *Tx) UpsertConversationSummary(id uuid.UUID, updater func(*model.ConversationSummary)) bool {
	for i := range tx.s.summaries {
		if tx.s.summaries[i].ConversationID != id {
			continue
		}
		updater(&tx.s.summaries[i])
		sortSummaries(tx.s.summaries)
		return true
	}
	return false
}

// UpdateSummaries applies fn to every summary and re-sorts the list.
func (tx *Tx) UpdateSummaries(fn func(*model.ConversationSummary)) {
	for i := range tx.s.summaries {
		fn(&tx.s.summaries[i])
	}
	sortSummaries(tx.s.summaries)
}

func (tx *Tx) SetThreadCache(id uuid.UUID, cache model.ThreadCache) {
	c := cache.Clone()
	if c.LoadedAt.IsZero() {
		c.LoadedAt = tx.s.now()
	}
	tx.s.threads[id] = &threadEntry{status: model.ThreadLoaded, cache: &c}
}

// PatchThreadCache edits the cache in place. Nothing happens, and false is
// returned, when the conversation has never been loaded.
func (tx *Tx) PatchThreadCache(id uuid.UUID, mutator func(*model.ThreadCache)) bool {
	entry, ok := tx.s.threads[id]
	if !ok || entry.cache == nil {
		return false
	}
	mutator(entry.cache)
	return true
}

func (tx *Tx) MarkThreadLoading(id uuid.UUID) {
	entry := tx.entry(id)
	entry.status = model.ThreadLoading
	entry.err = nil
}

// MarkThreadFailed records a failed load. A previously loaded cache is kept.
func (tx *Tx) MarkThreadFailed(id uuid.UUID, err error) {
	entry := tx.entry(id)
	entry.status = model.ThreadFailed
	entry.err = err
}

func (tx *Tx) entry(id uuid.UUID) *threadEntry {
	entry, ok := tx.s.threads[id]
	if !ok {
		entry = &threadEntry{status: model.ThreadNotLoaded}
		tx.s.threads[id] = entry
	}
	return entry
}

func (tx *Tx) OpenConversation(id uuid.UUID) {
	live := &LiveThread{
		ConversationID: id,
		Doodles:        make(map[uuid.UUID]model.Doodle),
		Reactions:      make(map[uuid.UUID][]model.Reaction),
	}
	if entry, ok := tx.s.threads[id]; ok && entry.cache != nil {
		live.fromCache(ptr(entry.cache.Clone()))
	}
	tx.s.live = live
}

// PatchLive edits the live thread if id is the open conversation right now.
func (tx *Tx) PatchLive(id uuid.UUID, mutator func(*model.ThreadCache)) bool {
	if tx.s.live == nil || tx.s.live.ConversationID != id {
		return false
	}
	c := tx.s.live.asCache()
	mutator(c)
	tx.s.live.fromCache(c)
	return true
}

// ReplaceLive swaps the live thread content if id is the open conversation.
func (tx *Tx) ReplaceLive(id uuid.UUID, cache model.ThreadCache) bool {
	if tx.s.live == nil || tx.s.live.ConversationID != id {
		return false
	}
	tx.s.live.fromCache(ptr(cache.Clone()))
	return true
}

func ptr[T any](v T) *T {
	return &v
}
