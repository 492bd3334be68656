package postgres

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

var threadItemColumns = []string{
	"id",
	"conversation_id",
	"sender_id",
	"type",
	"doodle_id",
	"text_content",
	"reply_to_item_id",
	"created_at",
}

// uuidStrings converts ids for squirrel, which would otherwise expand a
// uuid.UUID as a byte list.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func optionalUUID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return id.String()
}

// conversationsQuery returns one row per conversation of the user with the
// other participant's profile, the newest item and the unread count.
func conversationsQuery(userID uuid.UUID) sq.SelectBuilder {
	other := sq.Select("cp.user_id").
		From("conversation_participants cp").
		Where("cp.conversation_id = c.id").
		Where("cp.user_id <> me.user_id").
		OrderBy("cp.joined_at ASC").
		Limit(1)

	lastItem := sq.Select(threadItemColumns...).
		From("thread_items t").
		Where("t.conversation_id = c.id").
		OrderBy("t.created_at DESC").
		Limit(1)

	unread := sq.Select("COUNT(*)").
		From("thread_items ti").
		Where("ti.conversation_id = c.id").
		Where("ti.sender_id <> me.user_id").
		Where("(me.last_read_at IS NULL OR ti.created_at > me.last_read_at)")

	return sq.Select(
		"c.id AS conversation_id",
		"c.type",
		"c.updated_at",
		"me.muted",
		"u.id AS other_user_id",
		"u.username AS other_username",
		"u.display_name AS other_display_name",
		"u.avatar_url AS other_avatar_url",
		"li.id AS last_item_id",
		"li.sender_id AS last_item_sender_id",
		"li.type AS last_item_type",
		"li.doodle_id AS last_item_doodle_id",
		"li.text_content AS last_item_text_content",
		"li.reply_to_item_id AS last_item_reply_to_item_id",
		"li.created_at AS last_item_created_at",
	).
		Column(sq.Alias(unread, "unread_count")).
		From("conversations c").
		Join("conversation_participants me ON me.conversation_id = c.id AND me.user_id = ?", userID.String()).
		JoinClause(other.Prefix("JOIN LATERAL (").Suffix(") other ON TRUE")).
		Join("users u ON u.id = other.user_id").
		JoinClause(lastItem.Prefix("LEFT JOIN LATERAL (").Suffix(") li ON TRUE")).
		OrderBy("c.updated_at DESC").
		PlaceholderFormat(sq.Dollar)
}

func threadItemsQuery(conversationID uuid.UUID, limit int, before *time.Time) sq.SelectBuilder {
	query := sq.Select(threadItemColumns...).
		From("thread_items").
		Where(sq.Eq{"conversation_id": conversationID.String()}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))

	if before != nil {
		query = query.Where(sq.Lt{"created_at": *before})
	}

	return query.PlaceholderFormat(sq.Dollar)
}

// aggregatedReactionsQuery keeps the newest reaction per (doodle, user) across
// every thread item carrying the doodle, oldest first.
func aggregatedReactionsQuery(doodleIDs []uuid.UUID) sq.SelectBuilder {
	latest := sq.Select(
		"ti.doodle_id",
		"r.user_id",
		"r.emoji",
		"r.created_at",
		"u.username",
		"u.display_name",
		"u.avatar_url",
	).
		Options("DISTINCT ON (ti.doodle_id, r.user_id)").
		From("reactions r").
		Join("thread_items ti ON ti.id = r.thread_item_id").
		Join("users u ON u.id = r.user_id").
		Where(sq.Eq{"ti.doodle_id": uuidStrings(doodleIDs)}).
		OrderBy("ti.doodle_id", "r.user_id", "r.created_at DESC")

	return sq.Select("*").
		FromSelect(latest, "agg").
		OrderBy("agg.created_at ASC").
		PlaceholderFormat(sq.Dollar)
}

func directConversationQuery(a, b uuid.UUID) sq.SelectBuilder {
	return sq.Select("c.id").
		From("conversations c").
		Join("conversation_participants pa ON pa.conversation_id = c.id AND pa.user_id = ?", a.String()).
		Join("conversation_participants pb ON pb.conversation_id = c.id AND pb.user_id = ?", b.String()).
		Where(sq.Eq{"c.type": "direct"}).
		Limit(1).
		PlaceholderFormat(sq.Dollar)
}
