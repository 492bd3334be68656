package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	maxTextLength   = 500
	maxEmojiRunes   = 16
	maxForwardCount = 50
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid input")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateText(text string) error {
	if strings.TrimSpace(text) == "" {
		return invalid("text cannot be empty")
	}

	if utf8.RuneCountInString(text) > maxTextLength {
		return invalid("text exceeds maximum length of %d characters", maxTextLength)
	}

	return nil
}

// ValidateEmoji accepts a single short grapheme sequence: no letters, digits
// or whitespace.
func (v *Validator) ValidateEmoji(emoji string) error {
	if emoji == "" {
		return invalid("emoji is required")
	}

	if utf8.RuneCountInString(emoji) > maxEmojiRunes {
		return invalid("emoji is too long")
	}

	for _, r := range emoji {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			return invalid("'%s' is not an emoji", emoji)
		}
	}

	return nil
}

func (v *Validator) ValidateForward(recipientIDs []uuid.UUID) error {
	if len(recipientIDs) == 0 {
		return invalid("at least one recipient is required")
	}

	if len(recipientIDs) > maxForwardCount {
		return invalid("cannot forward to more than %d recipients, got %d", maxForwardCount, len(recipientIDs))
	}

	seen := make(map[uuid.UUID]struct{}, len(recipientIDs))
	for _, id := range recipientIDs {
		if id == uuid.Nil {
			return invalid("recipient id is required")
		}
		if _, ok := seen[id]; ok {
			return invalid("recipient %s is listed twice", id)
		}
		seen[id] = struct{}{}
	}

	return nil
}
