package reaction

import "github.com/s21platform/doodle-sync/internal/model"

type Action int

const (
	// ActionAdd creates the user's first reaction on the item.
	ActionAdd Action = iota
	// ActionRemove deletes the reaction because the same emoji was chosen again.
	ActionRemove
	// ActionReplace swaps the emoji with a single upsert.
	ActionReplace
)

func (a Action) String() string {
	switch a {
	case ActionRemove:
		return "remove"
	case ActionReplace:
		return "replace"
	default:
		return "add"
	}
}

// Decide picks what a toggle of emoji does given the user's current reaction.
func Decide(existing *model.Reaction, emoji string) Action {
	switch {
	case existing == nil:
		return ActionAdd
	case existing.Emoji == emoji:
		return ActionRemove
	default:
		return ActionReplace
	}
}
