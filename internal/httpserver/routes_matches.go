// internal/httpserver/routes_matches.go
//
// Local two-player matches:
//   - POST /matches               {"players":[a,b],"targets"?:[x,y]} → match
//   - GET  /matches/{id}          → match (targets hidden until the round ends)
//   - POST /matches/{id}/guess    {"guess"} → {"turn","match"}
//   - POST /matches/{id}/rounds   next round with random targets, score kept
//   - POST /matches/{id}/reset    zero the score
//
// Targets omitted on creation are drawn from the dictionary.

package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/match"
	"github.com/wordventure/word-api/internal/store"
)

func (s *Server) mountMatches() {
	s.r.Route("/matches", func(r chi.Router) {
		r.Post("/", s.handleNewMatch)
		r.Get("/{id}", s.handleGetMatch)
		r.Post("/{id}/guess", s.handleMatchGuess)
		r.Post("/{id}/rounds", s.handleMatchRound)
		r.Post("/{id}/reset", s.handleMatchReset)
	})
}

type newMatchReq struct {
	Players []string `json:"players" validate:"len=2,dive,required"`
	Targets []string `json:"targets" validate:"omitempty,len=2,dive,required"`
}

func (s *Server) handleNewMatch(w http.ResponseWriter, r *http.Request) {
	var req newMatchReq
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	targets := [2]string{s.dict.Random(), s.dict.Random()}
	if len(req.Targets) == 2 {
		for _, t := range req.Targets {
			if !s.dict.Contains(t) {
				writeError(w, http.StatusUnprocessableEntity, "not in word list")
				return
			}
		}
		targets = [2]string{req.Targets[0], req.Targets[1]}
	}

	m, err := match.New([2]string{req.Players[0], req.Players[1]}, targets)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.opts.Matches.Save(r.Context(), m); err != nil {
		internalError(w, r, err, "save match")
		return
	}
	writeJSON(w, http.StatusCreated, m.View())
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	v, err := s.opts.Matches.View(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.matchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

type matchGuessReq struct {
	Guess string `json:"guess" validate:"required"`
}

type matchGuessRes struct {
	Turn  match.Turn `json:"turn"`
	Match match.View `json:"match"`
}

func (s *Server) handleMatchGuess(w http.ResponseWriter, r *http.Request) {
	var req matchGuessReq
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	// One canonical form for the length check, the lookup and the stored row.
	guess := strings.ToLower(req.Guess)

	var res matchGuessRes
	err := s.opts.Matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		if m.Over {
			return match.ErrRoundOver
		}
		// Length first, so a short guess reads as "wrong length", not "not in word list".
		if _, err := game.Evaluate(m.Target(m.Active), guess); err != nil {
			return err
		}
		if !s.dict.Contains(guess) {
			return errNotInWordList
		}
		turn, err := m.Guess(guess)
		if err != nil {
			return err
		}
		res = matchGuessRes{Turn: turn, Match: m.View()}
		return nil
	})
	if err != nil {
		if !errors.Is(err, match.ErrRoundOver) && !errors.Is(err, store.ErrNotFound) {
			s.metrics.ObserveEvaluation("rejected")
		}
		s.matchError(w, r, err)
		return
	}

	if res.Turn.Solved {
		s.metrics.ObserveEvaluation("solved")
	} else {
		s.metrics.ObserveEvaluation("unsolved")
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleMatchRound(w http.ResponseWriter, r *http.Request) {
	var v match.View
	err := s.opts.Matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		if err := m.NewRound([2]string{s.dict.Random(), s.dict.Random()}); err != nil {
			return err
		}
		v = m.View()
		return nil
	})
	if err != nil {
		s.matchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (s *Server) handleMatchReset(w http.ResponseWriter, r *http.Request) {
	var v match.View
	err := s.opts.Matches.Update(r.Context(), chi.URLParam(r, "id"), func(m *match.Match) error {
		m.Reset()
		v = m.View()
		return nil
	})
	if err != nil {
		s.matchError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

var errNotInWordList = errors.New("not in word list")

// matchError maps match/store errors to responses.
func (s *Server) matchError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, match.ErrRoundOver):
		writeError(w, http.StatusConflict, "round_over")
	case errors.Is(err, match.ErrRoundRunning):
		writeError(w, http.StatusConflict, "round_in_progress")
	case errors.Is(err, game.ErrLengthMismatch), errors.Is(err, game.ErrEmptyInput):
		writeError(w, http.StatusUnprocessableEntity, "wrong length")
	case errors.Is(err, errNotInWordList):
		writeError(w, http.StatusUnprocessableEntity, errNotInWordList.Error())
	default:
		internalError(w, r, err, "match")
	}
}
