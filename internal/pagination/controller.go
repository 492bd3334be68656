// Package pagination loads thread items page by page, newest first.
package pagination

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/store"
)

type pageState struct {
	hasMore  bool
	inFlight bool
}

type Controller struct {
	fetcher Fetcher
	store   *store.Store
	now     func() time.Time

	mu    sync.Mutex
	pages map[uuid.UUID]*pageState
}

func New(fetcher Fetcher, st *store.Store) *Controller {
	return &Controller{
		fetcher: fetcher,
		store:   st,
		now:     time.Now,
		pages:   make(map[uuid.UUID]*pageState),
	}
}

// HasMore reports whether older items may exist. Unknown conversations report
// false until their first page is loaded.
func (c *Controller) HasMore(conversationID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.pages[conversationID]
	return ok && st.hasMore
}

// LoadFirstPage fetches the newest items and replaces the thread cache. On
// error the store is left as it was.
func (c *Controller) LoadFirstPage(ctx context.Context, conversationID uuid.UUID, limit int) error {
	items, err := c.fetcher.FetchThreadItems(ctx, conversationID, limit, nil)
	if err != nil {
		return fmt.Errorf("failed to fetch thread items: %w", err)
	}

	doodles, reactions, err := c.resolve(ctx, items)
	if err != nil {
		return err
	}

	cache := model.NewThreadCache()
	cache.Items = items
	cache.MergeDoodles(doodles)
	cache.MergeReactions(reactions)
	cache.LoadedAt = c.now()

	c.store.Update(func(tx *store.Tx) {
		if previous, ok := tx.ThreadCache(conversationID); ok {
			keepNewer(&cache, previous)
		}
		tx.SetThreadCache(conversationID, cache)
		tx.ReplaceLive(conversationID, cache)
	})

	// an older page still in flight keeps its guard across the reload
	c.mu.Lock()
	if st, ok := c.pages[conversationID]; ok {
		st.hasMore = true
	} else {
		c.pages[conversationID] = &pageState{hasMore: true}
	}
	c.mu.Unlock()

	return nil
}

// LoadOlderPage fetches items older than the oldest one held and appends them.
// It does nothing while another call for the same conversation is running or
// after a short page signalled the end.
func (c *Controller) LoadOlderPage(ctx context.Context, conversationID uuid.UUID, limit int) error {
	if !c.acquire(conversationID) {
		return nil
	}
	defer c.release(conversationID)

	oldest, ok := c.oldest(conversationID)
	if !ok {
		c.setHasMore(conversationID, false)
		return nil
	}

	items, err := c.fetcher.FetchThreadItems(ctx, conversationID, limit, &oldest)
	if err != nil {
		return fmt.Errorf("failed to fetch older thread items: %w", err)
	}

	doodles, reactions, err := c.resolve(ctx, items)
	if err != nil {
		return err
	}

	appendPage := func(tc *model.ThreadCache) {
		tc.AppendTail(items)
		tc.MergeDoodles(doodles)
		tc.MergeReactions(reactions)
	}
	c.store.Update(func(tx *store.Tx) {
		tx.PatchThreadCache(conversationID, appendPage)
		tx.PatchLive(conversationID, appendPage)
	})

	c.setHasMore(conversationID, len(items) >= limit)

	return nil
}

// keepNewer carries over items that reached the previous cache after the page
// was read, so a refresh never drops an item delivered in the meantime.
func keepNewer(page *model.ThreadCache, previous model.ThreadCache) {
	var newest time.Time
	if len(page.Items) > 0 {
		newest = page.Items[0].CreatedAt
	}

	var carried model.ThreadItemList
	for _, item := range previous.Items {
		if page.Items.Contains(item.ID) || !item.CreatedAt.After(newest) {
			continue
		}
		carried = append(carried, item)
		if d := item.DoodleID; d != nil {
			if doodle, ok := previous.Doodles[*d]; ok {
				page.Doodles[*d] = doodle
			}
		}
		if reactions, ok := previous.Reactions[item.ID]; ok {
			page.Reactions[item.ID] = reactions
		}
	}
	page.Items = append(carried, page.Items...)
}

func (c *Controller) acquire(conversationID uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	st, ok := c.pages[conversationID]
	if !ok || !st.hasMore || st.inFlight {
		return false
	}
	st.inFlight = true
	return true
}

func (c *Controller) release(conversationID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.pages[conversationID]; ok {
		st.inFlight = false
	}
}

func (c *Controller) setHasMore(conversationID uuid.UUID, hasMore bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if st, ok := c.pages[conversationID]; ok {
		st.hasMore = hasMore
	}
}

// oldest prefers the live list, which is what the user scrolls, and falls
// back to the cache when the conversation is not open.
func (c *Controller) oldest(conversationID uuid.UUID) (time.Time, bool) {
	var (
		oldest time.Time
		ok     bool
	)
	c.store.View(func(tx *store.ReadTx) {
		if live, open := tx.LiveThread(); open && live.ConversationID == conversationID {
			oldest, ok = live.Items.Oldest()
			return
		}
		if cache, cached := tx.ThreadCache(conversationID); cached {
			oldest, ok = cache.Items.Oldest()
		}
	})
	return oldest, ok
}

// resolve fetches the doodles and reactions referenced by items.
func (c *Controller) resolve(ctx context.Context, items []model.ThreadItem) ([]model.Doodle, map[uuid.UUID][]model.Reaction, error) {
	list := model.ThreadItemList(items)
	doodleIDs := list.DoodleIDs()
	itemIDs := list.IDs()

	var (
		doodles   []model.Doodle
		reactions []model.Reaction
	)

	g, gctx := errgroup.WithContext(ctx)
	if len(doodleIDs) > 0 {
		g.Go(func() error {
			var err error
			doodles, err = c.fetcher.FetchDoodles(gctx, doodleIDs)
			if err != nil {
				return fmt.Errorf("failed to fetch doodles: %w", err)
			}
			return nil
		})
	}
	if len(itemIDs) > 0 {
		g.Go(func() error {
			var err error
			reactions, err = c.fetcher.FetchReactions(gctx, itemIDs)
			if err != nil {
				return fmt.Errorf("failed to fetch reactions: %w", err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	byItem := make(map[uuid.UUID][]model.Reaction)
	for _, r := range reactions {
		byItem[r.ThreadItemID] = append(byItem[r.ThreadItemID], r)
	}

	return doodles, byItem, nil
}
