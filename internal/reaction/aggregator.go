// Package reaction turns raw reaction rows into display summaries and decides
// what a reaction toggle does. Nothing here touches the network or the store.
package reaction

import (
	"sort"

	"github.com/google/uuid"

	"github.com/s21platform/doodle-sync/internal/model"
)

const maxTopEmojis = 3

// Summarize groups reactions by doodle and builds one summary per doodle.
func Summarize(reactions []model.AggregatedReaction) map[uuid.UUID]model.ReactionSummary {
	groups := make(map[uuid.UUID][]model.AggregatedReaction)
	for _, r := range reactions {
		groups[r.DoodleID] = append(groups[r.DoodleID], r)
	}

	summaries := make(map[uuid.UUID]model.ReactionSummary, len(groups))
	for doodleID, group := range groups {
		emojis := make([]string, len(group))
		for i, r := range group {
			emojis[i] = r.Emoji
		}
		summaries[doodleID] = model.ReactionSummary{
			TopEmojis:  TopEmojis(emojis),
			TotalCount: len(group),
			Reactions:  group,
		}
	}
	return summaries
}

// SummarizeItem builds the summary for the reactions of one thread item.
func SummarizeItem(doodleID uuid.UUID, reactions []model.Reaction) model.ReactionSummary {
	emojis := make([]string, len(reactions))
	rows := make([]model.AggregatedReaction, len(reactions))
	for i, r := range reactions {
		emojis[i] = r.Emoji
		rows[i] = model.AggregatedReaction{
			DoodleID:  doodleID,
			UserID:    r.UserID,
			Emoji:     r.Emoji,
			CreatedAt: r.CreatedAt,
		}
	}
	return model.ReactionSummary{
		TopEmojis:  TopEmojis(emojis),
		TotalCount: len(reactions),
		Reactions:  rows,
	}
}

// TopEmojis returns up to three emojis by descending frequency. Ties keep the
// order in which the emojis were first seen.
func TopEmojis(emojis []string) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range emojis {
		if _, ok := counts[e]; !ok {
			order = append(order, e)
		}
		counts[e]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxTopEmojis {
		order = order[:maxTopEmojis]
	}
	if order == nil {
		return []string{}
	}
	return order
}
