// internal/httpserver/routes_rounds.go
//
// Hidden-target rounds. The server keeps no round state: the target travels
// sealed inside the token returned by POST /rounds.
//   - POST /rounds        → {"roundId","token","length","expiresAt"}
//   - POST /rounds/guess  {"token","guess"} → {"roundId","marks","solved","word"?}

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/round"
)

func (s *Server) mountRounds() {
	s.r.Route("/rounds", func(r chi.Router) {
		r.Post("/", s.handleNewRound)
		r.Post("/guess", s.handleRoundGuess)
	})
}

func (s *Server) handleNewRound(w http.ResponseWriter, r *http.Request) {
	rd, err := s.opts.Rounds.Issue(s.dict.Random())
	if err != nil {
		internalError(w, r, err, "issue round")
		return
	}
	s.metrics.Rounds.Inc()
	hlog.FromRequest(r).Debug().Str("round", rd.ID).Msg("round issued")
	writeJSON(w, http.StatusCreated, rd)
}

type roundGuessReq struct {
	Token string `json:"token" validate:"required"`
	Guess string `json:"guess" validate:"required"`
}

type roundGuessRes struct {
	RoundID string      `json:"roundId"`
	Marks   []game.Mark `json:"marks"`
	Solved  bool        `json:"solved"`
	Word    string      `json:"word,omitempty"`
}

func (s *Server) handleRoundGuess(w http.ResponseWriter, r *http.Request) {
	var req roundGuessReq
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	id, target, err := s.opts.Rounds.Open(req.Token)
	if errors.Is(err, round.ErrInvalidToken) {
		writeError(w, http.StatusUnauthorized, "invalid_token")
		return
	}
	if err != nil {
		internalError(w, r, err, "open round")
		return
	}

	marks, ok := s.evaluate(w, target, req.Guess)
	if !ok {
		return
	}

	res := roundGuessRes{RoundID: id, Marks: marks, Solved: game.Solved(marks)}
	if res.Solved {
		res.Word = target
	}
	writeJSON(w, http.StatusOK, res)
}

// evaluate checks length and dictionary membership, then scores guess.
// On failure it writes a 422 and returns false.
func (s *Server) evaluate(w http.ResponseWriter, target, guess string) ([]game.Mark, bool) {
	marks, err := game.Evaluate(target, guess)
	if err != nil {
		// ErrLengthMismatch or ErrEmptyInput; both are the caller's fault.
		s.metrics.ObserveEvaluation("rejected")
		writeError(w, http.StatusUnprocessableEntity, "wrong length")
		return nil, false
	}
	if !s.dict.Contains(guess) {
		s.metrics.ObserveEvaluation("rejected")
		writeError(w, http.StatusUnprocessableEntity, "not in word list")
		return nil, false
	}
	if game.Solved(marks) {
		s.metrics.ObserveEvaluation("solved")
	} else {
		s.metrics.ObserveEvaluation("unsolved")
	}
	return marks, true
}
