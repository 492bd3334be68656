// Package engine reconciles fetch results, local writes and realtime events
// into the entity store of one user session.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/doodle-sync/internal/pagination"
	"github.com/s21platform/doodle-sync/internal/store"
)

const (
	defaultPageSize         = 30
	defaultReconnectBackoff = 2 * time.Second
	notificationBuffer      = 64
)

var (
	// ErrNoThreadCache is returned when a conversation could not be loaded and
	// there is no earlier copy to fall back to.
	ErrNoThreadCache = errors.New("conversation is not cached")
	ErrItemNotFound  = errors.New("thread item not found")
)

type NotificationKind int

const (
	ConversationsChanged NotificationKind = iota
	ThreadChanged
	FriendRequestsChanged
	ReceivedDoodlesChanged
)

func (k NotificationKind) String() string {
	switch k {
	case ConversationsChanged:
		return "conversations"
	case ThreadChanged:
		return "thread"
	case FriendRequestsChanged:
		return "friend_requests"
	case ReceivedDoodlesChanged:
		return "received_doodles"
	default:
		return "unknown"
	}
}

// Notification tells observers which part of the store changed.
type Notification struct {
	Kind           NotificationKind
	ConversationID uuid.UUID
}

type Options struct {
	UserID           uuid.UUID
	PageSize         int
	ReconnectBackoff time.Duration
}

type Engine struct {
	gateway   Gateway
	store     *store.Store
	pager     *pagination.Controller
	validator Validator
	logger    logger_lib.LoggerInterface

	userID   uuid.UUID
	pageSize int
	backoff  time.Duration
	after    func(time.Duration) <-chan time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	observersMu sync.Mutex
	observers   map[int]chan Notification
	nextID      int

	tasksMu   sync.Mutex
	tasksIdle *sync.Cond
	running   int
}

func New(
	gateway Gateway,
	st *store.Store,
	pager *pagination.Controller,
	validator Validator,
	logger logger_lib.LoggerInterface,
	opts Options,
) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}
	if opts.ReconnectBackoff <= 0 {
		opts.ReconnectBackoff = defaultReconnectBackoff
	}

	e := &Engine{
		gateway:   gateway,
		store:     st,
		pager:     pager,
		validator: validator,
		logger:    logger,
		userID:    opts.UserID,
		pageSize:  opts.PageSize,
		backoff:   opts.ReconnectBackoff,
		after:     time.After,
		observers: make(map[int]chan Notification),
	}
	e.tasksIdle = sync.NewCond(&e.tasksMu)
	return e
}

func (e *Engine) UserID() uuid.UUID {
	return e.userID
}

// Subscribe registers an observer. Notifications are dropped for an observer
// whose buffer is full; the store always holds the current state.
func (e *Engine) Subscribe() (<-chan Notification, func()) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()

	id := e.nextID
	e.nextID++
	ch := make(chan Notification, notificationBuffer)
	e.observers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			e.observersMu.Lock()
			defer e.observersMu.Unlock()

			delete(e.observers, id)
			close(ch)
		})
	}
}

func (e *Engine) notify(kind NotificationKind, conversationID uuid.UUID) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()

	n := Notification{Kind: kind, ConversationID: conversationID}
	for _, ch := range e.observers {
		select {
		case ch <- n:
		default:
		}
	}
}

// Wait blocks until no background doodle resolution is running. Tasks may
// still be started while it waits.
func (e *Engine) Wait() {
	e.tasksMu.Lock()
	defer e.tasksMu.Unlock()

	for e.running > 0 {
		e.tasksIdle.Wait()
	}
}

func (e *Engine) goTask(fn func()) {
	e.tasksMu.Lock()
	e.running++
	e.tasksMu.Unlock()

	go func() {
		defer func() {
			e.tasksMu.Lock()
			defer e.tasksMu.Unlock()

			e.running--
			if e.running == 0 {
				e.tasksIdle.Broadcast()
			}
		}()
		fn()
	}()
}
