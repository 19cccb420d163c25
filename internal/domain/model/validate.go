package model

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxIntentLength bounds the free-text intent statement.
const MaxIntentLength = 140

// ValidateIntent checks an intent statement. Intents may be empty but
// never longer than MaxIntentLength characters.
func ValidateIntent(intent string) error {
	if n := utf8.RuneCountInString(intent); n > MaxIntentLength {
		return fmt.Errorf("%w: intent is %d chars, max %d", ErrValidation, n, MaxIntentLength)
	}
	return nil
}

// ValidateMessageText checks a chat message body. Whitespace-only text
// is rejected; threads never carry empty messages.
func ValidateMessageText(text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: message text is empty", ErrValidation)
	}
	return nil
}

// ClampScore keeps a match score inside the [0,100] contract. Providers
// occasionally hand us raw scores outside the range; NaN collapses to 0.
func ClampScore(score float64) float64 {
	switch {
	case score != score: // NaN
		return 0
	case score < 0:
		return 0
	case score > 100:
		return 100
	}
	return score
}
