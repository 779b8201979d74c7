// Package match implements a local two-player match: players alternate
// guesses against their own hidden targets, and a running score is kept
// across rounds on the Match itself rather than in any global.
package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wordventure/word-api/internal/game"
)

// DefaultRows is the number of guesses each player gets per round.
const DefaultRows = 6

// Draw is the Winner value of a round nobody solved.
const Draw = -1

var (
	ErrRoundOver      = errors.New("match: round is over")
	ErrRoundRunning   = errors.New("match: round still in progress")
	ErrInvalidPlayers = errors.New("match: need two named players")
	ErrInvalidTargets = errors.New("match: targets must be non-empty")
)

// Player is one side of a match.
type Player struct {
	Name     string
	target   string
	Guesses  []string
	Marks    [][]game.Mark
	Keyboard game.Keyboard
}

// Match is the session context shared by both players' turns.
type Match struct {
	ID      string
	Players [2]*Player
	Score   [2]int
	Round   int
	Rows    int
	Active  int // index of the player whose turn it is
	Over    bool
	Winner  int // valid when Over: 0, 1 or Draw
}

// Turn is the outcome of one guess.
type Turn struct {
	Player   int         `json:"player"`
	Marks    []game.Mark `json:"marks"`
	Solved   bool        `json:"solved"`
	RoundEnd bool        `json:"roundOver"`
	Winner   *int        `json:"winner,omitempty"`
	Next     int         `json:"next"`
}

// New starts a match between two players. targets[i] is the word player i
// has to find.
func New(names [2]string, targets [2]string) (*Match, error) {
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, ErrInvalidPlayers
		}
	}
	m := &Match{ID: uuid.NewString(), Rows: DefaultRows}
	for i, n := range names {
		m.Players[i] = &Player{Name: strings.TrimSpace(n)}
	}
	if err := m.start(targets); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Match) start(targets [2]string) error {
	for _, t := range targets {
		if strings.TrimSpace(t) == "" {
			return ErrInvalidTargets
		}
	}
	for i, p := range m.Players {
		p.target = strings.ToLower(strings.TrimSpace(targets[i]))
		p.Guesses = nil
		p.Marks = nil
		p.Keyboard = game.Keyboard{}
	}
	m.Round++
	m.Active = 0
	m.Over = false
	m.Winner = 0
	return nil
}

// NewRound starts the next round with fresh targets, keeping the score.
func (m *Match) NewRound(targets [2]string) error {
	if !m.Over {
		return ErrRoundRunning
	}
	return m.start(targets)
}

// Reset zeroes the score.
func (m *Match) Reset() { m.Score = [2]int{} }

// Target returns player i's hidden word.
func (m *Match) Target(i int) string { return m.Players[i].target }

// Guess evaluates guess for the active player and advances the turn.
//
// The first player to solve their word wins the round. Otherwise turns
// alternate, and the round is a draw once both players have used all rows.
func (m *Match) Guess(guess string) (Turn, error) {
	if m.Over {
		return Turn{}, ErrRoundOver
	}
	p := m.Players[m.Active]
	marks, err := game.Evaluate(p.target, guess)
	if err != nil {
		return Turn{}, fmt.Errorf("player %d: %w", m.Active, err)
	}
	guess = strings.ToLower(guess)
	p.Guesses = append(p.Guesses, guess)
	p.Marks = append(p.Marks, marks)
	p.Keyboard.Apply(guess, marks)

	turn := Turn{Player: m.Active, Marks: marks, Solved: game.Solved(marks)}
	switch {
	case turn.Solved:
		m.finish(m.Active)
	case len(m.Players[0].Guesses) >= m.Rows && len(m.Players[1].Guesses) >= m.Rows:
		m.finish(Draw)
	default:
		m.Active = 1 - m.Active
	}

	turn.RoundEnd = m.Over
	if m.Over {
		w := m.Winner
		turn.Winner = &w
	}
	turn.Next = m.Active
	return turn, nil
}

func (m *Match) finish(winner int) {
	m.Over = true
	m.Winner = winner
	if winner != Draw {
		m.Score[winner]++
	}
}

// PlayerView is the JSON shape of a player. Target is revealed only once the
// round is over.
type PlayerView struct {
	Name     string               `json:"name"`
	Guesses  []string             `json:"guesses"`
	Marks    [][]game.Mark        `json:"marks"`
	Keyboard map[string]game.Mark `json:"keyboard"`
	Target   string               `json:"target,omitempty"`
}

// View is the JSON shape of a match.
type View struct {
	ID      string        `json:"id"`
	Round   int           `json:"round"`
	Rows    int           `json:"rows"`
	Active  int           `json:"active"`
	Over    bool          `json:"roundOver"`
	Winner  *int          `json:"winner,omitempty"`
	Score   [2]int        `json:"score"`
	Players [2]PlayerView `json:"players"`
}

// View returns a copy of the match safe to hand out after the lock is released.
func (m *Match) View() View {
	v := View{ID: m.ID, Round: m.Round, Rows: m.Rows, Active: m.Active, Over: m.Over, Score: m.Score}
	if m.Over {
		w := m.Winner
		v.Winner = &w
	}
	for i, p := range m.Players {
		pv := PlayerView{
			Name:     p.Name,
			Guesses:  append([]string{}, p.Guesses...),
			Marks:    make([][]game.Mark, len(p.Marks)),
			Keyboard: p.Keyboard.Snapshot(),
		}
		for j, row := range p.Marks {
			pv.Marks[j] = append([]game.Mark(nil), row...)
		}
		if m.Over {
			pv.Target = p.target
		}
		v.Players[i] = pv
	}
	return v
}
