// Package store is the in-memory entity store of one user session.
//
// All reads and writes go through a single mutex. A logical operation that
// touches several entities runs inside Update, so callers never observe a
// half-applied change. Values handed out are copies.
package store

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

type threadEntry struct {
	status model.ThreadStatus
	cache  *model.ThreadCache
	err    error
}

// LiveThread is the thread bound to the UI for the open conversation.
type LiveThread struct {
	ConversationID uuid.UUID
	Items          model.ThreadItemList
	Doodles        map[uuid.UUID]model.Doodle
	Reactions      map[uuid.UUID][]model.Reaction
}

func (l LiveThread) clone() LiveThread {
	c := model.ThreadCache{Items: l.Items, Doodles: l.Doodles, Reactions: l.Reactions}.Clone()
	return LiveThread{
		ConversationID: l.ConversationID,
		Items:          c.Items,
		Doodles:        c.Doodles,
		Reactions:      c.Reactions,
	}
}

// asCache exposes the live thread through the ThreadCache helpers. The maps
// and slice are shared with the receiver.
func (l *LiveThread) asCache() *model.ThreadCache {
	return &model.ThreadCache{Items: l.Items, Doodles: l.Doodles, Reactions: l.Reactions}
}

func (l *LiveThread) fromCache(c *model.ThreadCache) {
	l.Items = c.Items
	l.Doodles = c.Doodles
	l.Reactions = c.Reactions
}

type Store struct {
	mu sync.RWMutex

	summaries       []model.ConversationSummary
	summariesLoaded bool

	threads    map[uuid.UUID]*threadEntry
	live       *LiveThread
	recipients map[uuid.UUID][]model.User
	// recipientsGen counts invalidations per doodle
	recipientsGen map[uuid.UUID]uint64

	friendRequests  []model.Friendship
	receivedDoodles []model.Doodle

	now func() time.Time
}

func New() *Store {
	return &Store{
		threads:       make(map[uuid.UUID]*threadEntry),
		recipients:    make(map[uuid.UUID][]model.User),
		recipientsGen: make(map[uuid.UUID]uint64),
		now:           time.Now,
	}
}

// Update runs fn with exclusive access to the store.
func (s *Store) Update(fn func(tx *Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&Tx{s: s})
}

// View runs fn with shared access to the store. fn must not retain tx.
func (s *Store) View(fn func(tx *ReadTx)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fn(&ReadTx{s: s})
}

func (s *Store) Conversations() []model.ConversationSummary {
	var out []model.ConversationSummary
	s.View(func(tx *ReadTx) { out = tx.Conversations() })
	return out
}

func (s *Store) ConversationsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summariesLoaded
}

func (s *Store) Conversation(id uuid.UUID) (model.ConversationSummary, bool) {
	var (
		out model.ConversationSummary
		ok  bool
	)
	s.View(func(tx *ReadTx) { out, ok = tx.Conversation(id) })
	return out, ok
}

func (s *Store) SetConversations(list []model.ConversationSummary) {
	s.Update(func(tx *Tx) { tx.SetConversations(list) })
}

func (s *Store) UpsertConversationSummary(id uuid.UUID, updater func(*model.ConversationSummary)) bool {
	var ok bool
	s.Update(func(tx *Tx) { ok = tx.UpsertConversationSummary(id, updater) })
	return ok
}

func (s *Store) ThreadState(id uuid.UUID) model.ThreadState {
	var out model.ThreadState
	s.View(func(tx *ReadTx) { out = tx.ThreadState(id) })
	return out
}

func (s *Store) ThreadCache(id uuid.UUID) (model.ThreadCache, bool) {
	var (
		out model.ThreadCache
		ok  bool
	)
	s.View(func(tx *ReadTx) { out, ok = tx.ThreadCache(id) })
	return out, ok
}

func (s *Store) SetThreadCache(id uuid.UUID, cache model.ThreadCache) {
	s.Update(func(tx *Tx) { tx.SetThreadCache(id, cache) })
}

func (s *Store) PatchThreadCache(id uuid.UUID, mutator func(*model.ThreadCache)) bool {
	var ok bool
	s.Update(func(tx *Tx) { ok = tx.PatchThreadCache(id, mutator) })
	return ok
}

func (s *Store) MarkThreadLoading(id uuid.UUID) {
	s.Update(func(tx *Tx) { tx.MarkThreadLoading(id) })
}

func (s *Store) MarkThreadFailed(id uuid.UUID, err error) {
	s.Update(func(tx *Tx) { tx.MarkThreadFailed(id, err) })
}

// OpenConversation binds the live thread to the conversation, seeded from
// its cache when one exists.
func (s *Store) OpenConversation(id uuid.UUID) {
	s.Update(func(tx *Tx) { tx.OpenConversation(id) })
}

func (s *Store) CloseConversation() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live = nil
}

func (s *Store) OpenConversationID() (uuid.UUID, bool) {
	var (
		id uuid.UUID
		ok bool
	)
	s.View(func(tx *ReadTx) { id, ok = tx.OpenConversationID() })
	return id, ok
}

func (s *Store) LiveThread() (LiveThread, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.live == nil {
		return LiveThread{}, false
	}
	return s.live.clone(), true
}

// Recipients returns the cached recipient list and the generation it was read
// at. A miss still reports the generation to pass to SetRecipients.
func (s *Store) Recipients(doodleID uuid.UUID) ([]model.User, uint64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gen := s.recipientsGen[doodleID]
	users, ok := s.recipients[doodleID]
	if !ok {
		return nil, gen, false
	}
	return append([]model.User(nil), users...), gen, true
}

// SetRecipients stores the list unless the doodle was invalidated after
// generation was read.
func (s *Store) SetRecipients(doodleID uuid.UUID, users []model.User, generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.recipientsGen[doodleID] != generation {
		return false
	}
	s.recipients[doodleID] = append([]model.User(nil), users...)
	return true
}

func (s *Store) InvalidateRecipients(doodleID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.recipients, doodleID)
	s.recipientsGen[doodleID]++
}

// AddFriendRequest appends the request unless one with the same id is listed.
func (s *Store) AddFriendRequest(f model.Friendship) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.friendRequests {
		if existing.ID == f.ID {
			return false
		}
	}
	s.friendRequests = append(s.friendRequests, f)
	return true
}

func (s *Store) RemoveFriendRequest(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.friendRequests {
		if existing.ID == id {
			s.friendRequests = append(s.friendRequests[:i], s.friendRequests[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) FriendRequests() []model.Friendship {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Friendship(nil), s.friendRequests...)
}

// AddReceivedDoodle prepends the doodle unless one with the same id is listed.
func (s *Store) AddReceivedDoodle(d model.Doodle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.receivedDoodles {
		if existing.ID == d.ID {
			return false
		}
	}
	s.receivedDoodles = append([]model.Doodle{d}, s.receivedDoodles...)
	return true
}

func (s *Store) ReceivedDoodles() []model.Doodle {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Doodle(nil), s.receivedDoodles...)
}

func sortSummaries(list []model.ConversationSummary) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].UpdatedAt.After(list[j].UpdatedAt)
	})
}
