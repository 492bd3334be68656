package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/doodle-sync/internal/config"
	"github.com/s21platform/doodle-sync/internal/model"
	"github.com/s21platform/doodle-sync/internal/pkg/tx"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction carried by ctx, or the pool.
func (r *Repository) Chk(ctx context.Context) tx.Querier {
	if t, ok := tx.FromContext(ctx); ok {
		return t
	}
	return r.connection
}

// WithTx runs fn inside a transaction. A transaction already carried by ctx
// is reused.
func (r *Repository) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := tx.FromContext(ctx); ok {
		return fn(ctx)
	}

	t, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}

	if err := fn(tx.WithTx(ctx, t)); err != nil {
		_ = t.Rollback()
		return err
	}

	if err := t.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *Repository) FetchConversationsWithMetadata(ctx context.Context, userID uuid.UUID) ([]model.ConversationMetadata, error) {
	query, args, err := conversationsQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.ConversationMetadata
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversations: %v", err)
	}

	return rows, nil
}

func (r *Repository) FetchThreadItems(ctx context.Context, conversationID uuid.UUID, limit int, before *time.Time) ([]model.ThreadItem, error) {
	query, args, err := threadItemsQuery(conversationID, limit, before).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var items []model.ThreadItem
	err = r.Chk(ctx).SelectContext(ctx, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread items: %v", err)
	}

	return items, nil
}

func (r *Repository) FetchDoodles(ctx context.Context, ids []uuid.UUID) ([]model.Doodle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("id", "sender_id", "image_url", "created_at").
		From("doodles").
		Where(sq.Eq{"id": uuidStrings(ids)}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var doodles []model.Doodle
	err = r.Chk(ctx).SelectContext(ctx, &doodles, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get doodles: %v", err)
	}

	return doodles, nil
}

func (r *Repository) FetchReactions(ctx context.Context, threadItemIDs []uuid.UUID) ([]model.Reaction, error) {
	if len(threadItemIDs) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("id", "thread_item_id", "user_id", "emoji", "created_at").
		From("reactions").
		Where(sq.Eq{"thread_item_id": uuidStrings(threadItemIDs)}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reactions []model.Reaction
	err = r.Chk(ctx).SelectContext(ctx, &reactions, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get reactions: %v", err)
	}

	return reactions, nil
}

func (r *Repository) FetchAggregatedReactions(ctx context.Context, doodleIDs []uuid.UUID) ([]model.AggregatedReaction, error) {
	if len(doodleIDs) == 0 {
		return nil, nil
	}

	query, args, err := aggregatedReactionsQuery(doodleIDs).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var rows []model.AggregatedReaction
	err = r.Chk(ctx).SelectContext(ctx, &rows, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get aggregated reactions: %v", err)
	}

	return rows, nil
}

func (r *Repository) FetchDoodleRecipients(ctx context.Context, doodleID uuid.UUID) ([]model.User, error) {
	query, args, err := sq.Select("u.id", "u.username", "u.display_name", "u.avatar_url").
		From("doodle_recipients dr").
		Join("users u ON u.id = dr.recipient_id").
		Where(sq.Eq{"dr.doodle_id": doodleID.String()}).
		OrderBy("dr.created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var users []model.User
	err = r.Chk(ctx).SelectContext(ctx, &users, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get doodle recipients: %v", err)
	}

	return users, nil
}

// InsertThreadItem stores the item and moves the conversation's updated_at to
// the item's created_at. The stored row is returned.
func (r *Repository) InsertThreadItem(ctx context.Context, item model.ThreadItem) (model.ThreadItem, error) {
	var stored model.ThreadItem

	err := r.WithTx(ctx, func(ctx context.Context) error {
		query, args, err := sq.Insert("thread_items").
			Columns("id", "conversation_id", "sender_id", "type", "doodle_id", "text_content", "reply_to_item_id").
			Values(
				item.ID.String(),
				item.ConversationID.String(),
				item.SenderID.String(),
				item.Type,
				optionalUUID(item.DoodleID),
				item.TextContent,
				optionalUUID(item.ReplyToItemID),
			).
			Suffix("RETURNING " + strings.Join(threadItemColumns, ", ")).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if err := r.Chk(ctx).GetContext(ctx, &stored, query, args...); err != nil {
			return fmt.Errorf("failed to save thread item: %v", err)
		}

		query, args, err = sq.Update("conversations").
			Set("updated_at", stored.CreatedAt).
			Where(sq.Eq{"id": stored.ConversationID.String()}).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to touch conversation: %v", err)
		}

		return nil
	})
	if err != nil {
		return model.ThreadItem{}, err
	}

	return stored, nil
}

// AddDoodleRecipients records the delivery of a doodle to every participant
// of the conversation except the sender.
func (r *Repository) AddDoodleRecipients(ctx context.Context, doodleID, conversationID, senderID uuid.UUID) ([]model.DoodleRecipient, error) {
	participants := sq.Select().
		Column("gen_random_uuid()").
		Column(sq.Expr("?::uuid", doodleID.String())).
		Column("cp.user_id").
		From("conversation_participants cp").
		Where(sq.Eq{"cp.conversation_id": conversationID.String()}).
		Where(sq.NotEq{"cp.user_id": senderID.String()})

	query, args, err := sq.Insert("doodle_recipients").
		Columns("id", "doodle_id", "recipient_id").
		Select(participants).
		Suffix("ON CONFLICT (doodle_id, recipient_id) DO NOTHING RETURNING id, doodle_id, recipient_id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var recipients []model.DoodleRecipient
	err = r.Chk(ctx).SelectContext(ctx, &recipients, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save doodle recipients: %v", err)
	}

	return recipients, nil
}

// EnsureDirectConversation returns the direct conversation between the two
// users, creating it when they have none.
func (r *Repository) EnsureDirectConversation(ctx context.Context, userID, otherID uuid.UUID) (uuid.UUID, error) {
	var conversationID uuid.UUID

	err := r.WithTx(ctx, func(ctx context.Context) error {
		query, args, err := directConversationQuery(userID, otherID).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		err = r.Chk(ctx).GetContext(ctx, &conversationID, query, args...)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("failed to find direct conversation: %v", err)
		}

		query, args, err = sq.Insert("conversations").
			Columns("id", "type").
			Values(uuid.New().String(), model.DirectConversation).
			Suffix("RETURNING id").
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if err := r.Chk(ctx).GetContext(ctx, &conversationID, query, args...); err != nil {
			return fmt.Errorf("failed to create conversation: %v", err)
		}

		query, args, err = sq.Insert("conversation_participants").
			Columns("conversation_id", "user_id").
			Values(conversationID.String(), userID.String()).
			Values(conversationID.String(), otherID.String()).
			PlaceholderFormat(sq.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build sql query: %v", err)
		}

		if _, err := r.Chk(ctx).ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to add conversation participants: %v", err)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return conversationID, nil
}

// UpsertReaction keeps at most one reaction per (thread item, user).
func (r *Repository) UpsertReaction(ctx context.Context, threadItemID, userID uuid.UUID, emoji string) (model.Reaction, error) {
	query, args, err := sq.Insert("reactions").
		Columns("id", "thread_item_id", "user_id", "emoji").
		Values(uuid.New().String(), threadItemID.String(), userID.String(), emoji).
		Suffix("ON CONFLICT (thread_item_id, user_id) DO UPDATE SET emoji = EXCLUDED.emoji, created_at = now() " +
			"RETURNING id, thread_item_id, user_id, emoji, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return model.Reaction{}, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reaction model.Reaction
	err = r.Chk(ctx).GetContext(ctx, &reaction, query, args...)
	if err != nil {
		return model.Reaction{}, fmt.Errorf("failed to save reaction: %v", err)
	}

	return reaction, nil
}

func (r *Repository) DeleteReaction(ctx context.Context, threadItemID, userID uuid.UUID) (*model.Reaction, error) {
	query, args, err := sq.Delete("reactions").
		Where(sq.Eq{
			"thread_item_id": threadItemID.String(),
			"user_id":        userID.String(),
		}).
		Suffix("RETURNING id, thread_item_id, user_id, emoji, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var reaction model.Reaction
	err = r.Chk(ctx).GetContext(ctx, &reaction, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete reaction: %v", err)
	}

	return &reaction, nil
}

func (r *Repository) MarkConversationRead(ctx context.Context, conversationID, userID uuid.UUID) error {
	query, args, err := sq.Update("conversation_participants").
		Set("last_read_at", sq.Expr("now()")).
		Where(sq.Eq{
			"conversation_id": conversationID.String(),
			"user_id":         userID.String(),
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to mark conversation read: %v", err)
	}

	return nil
}

func (r *Repository) SetConversationMuted(ctx context.Context, conversationID, userID uuid.UUID, muted bool) error {
	query, args, err := sq.Update("conversation_participants").
		Set("muted", muted).
		Where(sq.Eq{
			"conversation_id": conversationID.String(),
			"user_id":         userID.String(),
		}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update mute: %v", err)
	}

	return nil
}

func (r *Repository) FetchParticipantIDs(ctx context.Context, conversationID uuid.UUID) ([]uuid.UUID, error) {
	query, args, err := sq.Select("user_id").
		From("conversation_participants").
		Where(sq.Eq{"conversation_id": conversationID.String()}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var ids []uuid.UUID
	err = r.Chk(ctx).SelectContext(ctx, &ids, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation participants: %v", err)
	}

	return ids, nil
}
