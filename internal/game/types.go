// internal/game/types.go
//
// Core type definitions for guess evaluation.
// Defines:
//   - Mark: per-letter classification of a guess (correct/present/absent).
//   - Keyboard: best classification seen per letter, derived from marks.

package game

import (
	"errors"
	"strings"
	"unicode"
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter matches the target at this exact position.
//   - "present": letter exists in the target at another, still unclaimed, position.
//   - "absent":  letter is not in the target, or all its occurrences are claimed.
type Mark string

const (
	MarkCorrect Mark = "correct"
	MarkPresent Mark = "present"
	MarkAbsent  Mark = "absent"
)

var (
	// ErrEmptyInput is returned when the target or the guess has no letters.
	ErrEmptyInput = errors.New("empty input")
	// ErrLengthMismatch is returned when target and guess differ in length.
	ErrLengthMismatch = errors.New("length mismatch")
)

// rank orders marks for keyboard aggregation; higher wins.
func (m Mark) rank() int {
	switch m {
	case MarkCorrect:
		return 3
	case MarkPresent:
		return 2
	case MarkAbsent:
		return 1
	}
	return 0
}

// Solved reports whether every mark is MarkCorrect.
func Solved(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// Keyboard tracks the strongest mark observed for each letter across guesses,
// keyed by the upper-case letter.
type Keyboard map[rune]Mark

// Apply folds one evaluated guess into the keyboard.
// A key is never downgraded: correct > present > absent.
func (k Keyboard) Apply(guess string, marks []Mark) {
	letters := []rune(strings.ToUpper(guess))
	for i, m := range marks {
		if i >= len(letters) {
			break
		}
		r := letters[i]
		if m.rank() > k[r].rank() {
			k[r] = m
		}
	}
}

// Status returns the mark for a letter, or "" if it has not been guessed.
func (k Keyboard) Status(r rune) Mark {
	return k[unicode.ToUpper(r)]
}

// Snapshot returns the keyboard as string keys, suitable for JSON.
func (k Keyboard) Snapshot() map[string]Mark {
	out := make(map[string]Mark, len(k))
	for r, m := range k {
		out[string(r)] = m
	}
	return out
}
