package engine

import (
	"context"
	"fmt"
	"sync"

	"github.com/s21platform/doodle-sync/internal/model"
)

type stream struct {
	name      string
	subscribe func(ctx context.Context) (Subscription, error)
	handle    func(ctx context.Context, event model.RowEvent)
}

func (e *Engine) streams() []stream {
	return []stream{
		{name: "thread_items:insert", subscribe: e.gateway.SubscribeThreadItemInserts, handle: e.handleThreadItemInsert},
		{name: "friendships:insert", subscribe: e.gateway.SubscribeFriendshipInserts, handle: e.handleFriendshipInsert},
		{name: "friendships:update", subscribe: e.gateway.SubscribeFriendshipUpdates, handle: e.handleFriendshipUpdate},
		{name: "doodle_recipients:insert", subscribe: e.gateway.SubscribeDoodleRecipientInserts, handle: e.handleDoodleRecipientInsert},
	}
}

// Connect starts consuming realtime events in the background. It returns at
// once; calling it while connected does nothing.
func (e *Engine) Connect(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cancel != nil {
		return
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})
	e.cancel = cancel
	e.done = done

	go func() {
		defer close(done)
		e.run(runCtx)
	}()
}

// Disconnect tears the subscriptions down and returns once the background
// loop, including any pending reconnect wait, has exited.
func (e *Engine) Disconnect() {
	e.mu.Lock()
	cancel, done := e.cancel, e.done
	e.cancel, e.done = nil, nil
	e.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (e *Engine) Connected() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.cancel != nil
}

// run resubscribes after a fixed backoff every time a stream ends, until ctx
// is cancelled.
func (e *Engine) run(ctx context.Context) {
	for {
		err := e.subscribeAndConsume(ctx)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			e.logger.Error(fmt.Sprintf("realtime subscription failed, retrying in %s: %v", e.backoff, err))
		} else {
			e.logger.Warn(fmt.Sprintf("realtime stream ended, resubscribing in %s", e.backoff))
		}

		select {
		case <-ctx.Done():
			return
		case <-e.after(e.backoff):
		}
	}
}

// subscribeAndConsume opens every stream and blocks until one of them ends or
// ctx is cancelled. All streams are closed before it returns.
func (e *Engine) subscribeAndConsume(ctx context.Context) error {
	streams := e.streams()

	subs := make([]Subscription, 0, len(streams))
	defer func() {
		for _, sub := range subs {
			_ = sub.Close()
		}
	}()

	for _, st := range streams {
		sub, err := st.subscribe(ctx)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", st.name, err)
		}
		subs = append(subs, sub)
	}

	e.logger.Info(fmt.Sprintf("realtime connected, %d streams", len(subs)))

	streamCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ended := make(chan string, len(subs))
	var wg sync.WaitGroup
	for i, sub := range subs {
		wg.Add(1)
		go func(st stream, sub Subscription) {
			defer wg.Done()
			if e.consume(streamCtx, sub, st.handle) {
				ended <- st.name
			}
		}(streams[i], sub)
	}

	select {
	case <-ctx.Done():
	case name := <-ended:
		e.logger.Warn(fmt.Sprintf("realtime stream %s terminated", name))
	}

	cancel()
	wg.Wait()

	return nil
}

// consume handles events one at a time in arrival order. It reports true when
// the stream itself ended.
func (e *Engine) consume(ctx context.Context, sub Subscription, handle func(context.Context, model.RowEvent)) bool {
	events := sub.Events()
	for {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-events:
			if !ok {
				return true
			}
			handle(ctx, event)
		}
	}
}
