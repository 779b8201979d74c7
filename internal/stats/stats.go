// Package stats tracks per-player game statistics and level progression.
package stats

import (
	"errors"
	"fmt"
)

// MaxGuesses is the number of guess-distribution buckets.
const MaxGuesses = 6

var (
	// ErrInvalidGuesses is returned for a win outside 1..MaxGuesses guesses.
	ErrInvalidGuesses = errors.New("stats: guesses out of range")
	// ErrLevelLocked is returned when completing a level that is not unlocked yet.
	ErrLevelLocked = errors.New("stats: level is locked")
)

// Stats is a player's record.
type Stats struct {
	Player            string          `json:"player"`
	GamesPlayed       int             `json:"gamesPlayed"`
	WinStreak         int             `json:"winStreak"`
	MaxStreak         int             `json:"maxStreak"`
	GuessDistribution [MaxGuesses]int `json:"guessDistribution"`
	UnlockedLevel     int             `json:"unlockedLevel"`
}

// New returns the zero record for player; level 1 is always unlocked.
func New(player string) Stats {
	return Stats{Player: player, UnlockedLevel: 1}
}

// Record applies one finished game.
// A win extends the streak and counts in the distribution bucket for guesses;
// a loss resets the streak.
func (s *Stats) Record(won bool, guesses int) error {
	if won && (guesses < 1 || guesses > MaxGuesses) {
		return fmt.Errorf("%w: %d", ErrInvalidGuesses, guesses)
	}
	s.GamesPlayed++
	if !won {
		s.WinStreak = 0
		return nil
	}
	s.WinStreak++
	if s.WinStreak > s.MaxStreak {
		s.MaxStreak = s.WinStreak
	}
	s.GuessDistribution[guesses-1]++
	return nil
}

// CompleteLevel marks level as beaten. Beating the highest unlocked level
// unlocks the next one; replaying an earlier level changes nothing.
// It reports whether a new level was unlocked.
func (s *Stats) CompleteLevel(level int) (bool, error) {
	if level < 1 || level > s.UnlockedLevel {
		return false, fmt.Errorf("%w: %d (unlocked %d)", ErrLevelLocked, level, s.UnlockedLevel)
	}
	if level < s.UnlockedLevel {
		return false, nil
	}
	s.UnlockedLevel++
	return true, nil
}

// WinRate returns wins/played as a percentage, 0 when nothing was played.
func (s Stats) WinRate() int {
	if s.GamesPlayed == 0 {
		return 0
	}
	wins := 0
	for _, n := range s.GuessDistribution {
		wins += n
	}
	return wins * 100 / s.GamesPlayed
}
