package model

import (
	"time"

	"github.com/google/uuid"
)

// ThreadCache holds the newest-first items of one conversation together with
// the doodles and reactions resolved for them.
type ThreadCache struct {
	Items     ThreadItemList
	Doodles   map[uuid.UUID]Doodle
	Reactions map[uuid.UUID][]Reaction
	LoadedAt  time.Time
}

func NewThreadCache() ThreadCache {
	return ThreadCache{
		Doodles:   make(map[uuid.UUID]Doodle),
		Reactions: make(map[uuid.UUID][]Reaction),
	}
}

// Clone returns a deep copy that shares nothing with the receiver.
func (c ThreadCache) Clone() ThreadCache {
	out := ThreadCache{
		Items:     append(ThreadItemList(nil), c.Items...),
		Doodles:   make(map[uuid.UUID]Doodle, len(c.Doodles)),
		Reactions: make(map[uuid.UUID][]Reaction, len(c.Reactions)),
		LoadedAt:  c.LoadedAt,
	}
	for id, doodle := range c.Doodles {
		out.Doodles[id] = doodle
	}
	for id, reactions := range c.Reactions {
		out.Reactions[id] = append([]Reaction(nil), reactions...)
	}
	return out
}

// InsertHead puts the item first unless an item with the same id exists.
func (c *ThreadCache) InsertHead(item ThreadItem) bool {
	if c.Items.Contains(item.ID) {
		return false
	}
	c.Items = append(ThreadItemList{item}, c.Items...)
	return true
}

// AppendTail adds older items at the end, skipping ids already present.
func (c *ThreadCache) AppendTail(items []ThreadItem) int {
	added := 0
	for _, item := range items {
		if c.Items.Contains(item.ID) {
			continue
		}
		c.Items = append(c.Items, item)
		added++
	}
	return added
}

func (c *ThreadCache) MergeDoodles(doodles []Doodle) {
	if c.Doodles == nil {
		c.Doodles = make(map[uuid.UUID]Doodle)
	}
	for _, doodle := range doodles {
		c.Doodles[doodle.ID] = doodle
	}
}

// MergeReactions replaces the reaction list of every item present in the
// given map and leaves the other items untouched.
func (c *ThreadCache) MergeReactions(reactions map[uuid.UUID][]Reaction) {
	if c.Reactions == nil {
		c.Reactions = make(map[uuid.UUID][]Reaction)
	}
	for id, list := range reactions {
		c.Reactions[id] = list
	}
}

// PutReaction stores the reaction, replacing any earlier one by the same user.
func (c *ThreadCache) PutReaction(reaction Reaction) {
	if c.Reactions == nil {
		c.Reactions = make(map[uuid.UUID][]Reaction)
	}
	list := c.Reactions[reaction.ThreadItemID]
	for i := range list {
		if list[i].UserID == reaction.UserID {
			list[i] = reaction
			return
		}
	}
	c.Reactions[reaction.ThreadItemID] = append(list, reaction)
}

func (c *ThreadCache) RemoveReaction(threadItemID, userID uuid.UUID) {
	list := c.Reactions[threadItemID]
	kept := list[:0]
	for _, reaction := range list {
		if reaction.UserID != userID {
			kept = append(kept, reaction)
		}
	}
	if len(kept) == 0 {
		delete(c.Reactions, threadItemID)
		return
	}
	c.Reactions[threadItemID] = kept
}

// UserReaction returns the reaction the user left on the item, if any.
func (c ThreadCache) UserReaction(threadItemID, userID uuid.UUID) *Reaction {
	for _, reaction := range c.Reactions[threadItemID] {
		if reaction.UserID == userID {
			r := reaction
			return &r
		}
	}
	return nil
}

type ThreadStatus int

const (
	ThreadNotLoaded ThreadStatus = iota
	ThreadLoading
	ThreadLoaded
	ThreadFailed
)

func (s ThreadStatus) String() string {
	switch s {
	case ThreadLoading:
		return "loading"
	case ThreadLoaded:
		return "loaded"
	case ThreadFailed:
		return "failed"
	default:
		return "not_loaded"
	}
}

// ThreadState is the per-conversation cache state. Cache is set whenever a
// load has ever succeeded, including while a refresh is loading or failed.
type ThreadState struct {
	Status ThreadStatus
	Cache  *ThreadCache
	Err    error
}
