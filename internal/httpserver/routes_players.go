// internal/httpserver/routes_players.go
//
// Player statistics and level progression:
//   - GET  /players/{player}/stats                  → stats plus "winRate" (percent)
//   - POST /players/{player}/results                 {"won","guesses"}
//   - POST /players/{player}/levels/{level}/complete → {"stats","unlocked"}

package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wordventure/word-api/internal/stats"
)

func (s *Server) mountPlayers() {
	s.r.Route("/players/{player}", func(r chi.Router) {
		r.Get("/stats", s.handlePlayerStats)
		r.Post("/results", s.handlePlayerResult)
		r.Post("/levels/{level}/complete", s.handleLevelComplete)
	})
}

// statsRes is a player's record plus derived figures.
type statsRes struct {
	stats.Stats
	WinRate int `json:"winRate"`
}

func newStatsRes(st stats.Stats) statsRes {
	return statsRes{Stats: st, WinRate: st.WinRate()}
}

func (s *Server) handlePlayerStats(w http.ResponseWriter, r *http.Request) {
	st, err := s.opts.Stats.Get(r.Context(), chi.URLParam(r, "player"))
	if err != nil {
		internalError(w, r, err, "get stats")
		return
	}
	writeJSON(w, http.StatusOK, newStatsRes(st))
}

type playerResultReq struct {
	Won     bool `json:"won"`
	Guesses int  `json:"guesses" validate:"min=0"`
}

func (s *Server) handlePlayerResult(w http.ResponseWriter, r *http.Request) {
	var req playerResultReq
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	st, err := s.opts.Stats.Record(r.Context(), chi.URLParam(r, "player"), req.Won, req.Guesses)
	switch {
	case errors.Is(err, stats.ErrInvalidGuesses):
		writeError(w, http.StatusBadRequest, "invalid_guesses")
	case err != nil:
		internalError(w, r, err, "record result")
	default:
		writeJSON(w, http.StatusOK, newStatsRes(st))
	}
}

type levelRes struct {
	Stats    statsRes `json:"stats"`
	Unlocked bool     `json:"unlocked"`
}

func (s *Server) handleLevelComplete(w http.ResponseWriter, r *http.Request) {
	level, err := strconv.Atoi(chi.URLParam(r, "level"))
	if err != nil || level < 1 {
		writeError(w, http.StatusBadRequest, "invalid_level")
		return
	}

	st, unlocked, err := s.opts.Stats.CompleteLevel(r.Context(), chi.URLParam(r, "player"), level)
	switch {
	case errors.Is(err, stats.ErrLevelLocked):
		writeError(w, http.StatusConflict, "level_locked")
	case err != nil:
		internalError(w, r, err, "complete level")
	default:
		writeJSON(w, http.StatusOK, levelRes{Stats: newStatsRes(st), Unlocked: unlocked})
	}
}
