// internal/game/engine.go
//
// Guess evaluation using the two-pass, consume-once algorithm.
//
// Pass 1 runs over every position before pass 2 starts, so a present match
// early in the guess can never take a letter a later exact match needs.
//
// Evaluate has no package state and is safe for concurrent use.
package game

import (
	"fmt"
	"strings"
)

// Evaluate classifies each letter of guess against target.
//
// Both words are compared case-insensitively, rune by rune; any positive
// length works as long as the two are equal. The result is aligned with guess
// and owned by the caller.
//
// Errors:
//   - ErrEmptyInput when either word is empty.
//   - ErrLengthMismatch when the words differ in length.
func Evaluate(target, guess string) ([]Mark, error) {
	t := []rune(strings.ToUpper(target))
	g := []rune(strings.ToUpper(guess))
	if len(t) == 0 || len(g) == 0 {
		return nil, ErrEmptyInput
	}
	if len(t) != len(g) {
		return nil, fmt.Errorf("%w: target has %d letters, guess has %d", ErrLengthMismatch, len(t), len(g))
	}

	n := len(g)
	res := make([]Mark, n)

	// Available target letters, decremented as they are claimed.
	avail := make(map[rune]int, n)
	for _, r := range t {
		avail[r]++
	}

	// First pass: exact matches.
	for i := 0; i < n; i++ {
		if g[i] == t[i] {
			res[i] = MarkCorrect
			avail[g[i]]--
		}
	}

	// Second pass: present/absent for everything else, left to right.
	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if avail[g[i]] > 0 {
			res[i] = MarkPresent
			avail[g[i]]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res, nil
}
