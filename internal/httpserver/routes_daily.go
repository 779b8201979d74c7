// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily Challenge" mode:
//   - GET  /daily-word         → {"date","word"} for today (UTC)
//   - POST /daily/results      {"player","guesses","elapsedMs"} → {"recorded","date"}
//   - GET  /daily/played       ?player= → {"player","date","played"} for today
//   - GET  /daily/leaderboard  → top 20 results for today (or ?date=YYYY-MM-DD)
//
// Word selection is deterministic per date. Each player keeps only their first
// result per day (enforced by the daily_results unique key).

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/wordventure/word-api/internal/daily"
)

const leaderboardSize = 20

// mountDaily registers the daily routes. Results and leaderboard need a store.
func (s *Server) mountDaily() {
	s.r.Get("/daily-word", s.handleDailyWord)
	if s.opts.DailyStore == nil {
		return
	}
	s.r.Route("/daily", func(r chi.Router) {
		r.Post("/results", s.handleDailyResult)
		r.Get("/played", s.handleDailyPlayed)
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

type dailyWordRes struct {
	Date string `json:"date"`
	Word string `json:"word"`
}

func (s *Server) handleDailyWord(w http.ResponseWriter, r *http.Request) {
	date, _, word := s.opts.Daily.Pick(time.Now())
	writeJSON(w, http.StatusOK, dailyWordRes{Date: date, Word: word})
}

type dailyResultReq struct {
	Player    string `json:"player" validate:"required,max=64"`
	Guesses   int    `json:"guesses" validate:"min=1,max=6"`
	ElapsedMs int    `json:"elapsedMs" validate:"min=0"`
}

type dailyResultRes struct {
	Recorded bool   `json:"recorded"`
	Date     string `json:"date"`
}

// handleDailyResult stores today's result for a player. A second submission
// on the same day is accepted but not recorded.
func (s *Server) handleDailyResult(w http.ResponseWriter, r *http.Request) {
	var req dailyResultReq
	if err := s.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	date, idx, _ := s.opts.Daily.Pick(time.Now())
	recorded, err := s.opts.DailyStore.InsertResult(r.Context(), daily.Result{
		Player:    req.Player,
		Date:      date,
		WordIndex: idx,
		Guesses:   req.Guesses,
		ElapsedMs: req.ElapsedMs,
	})
	if err != nil {
		internalError(w, r, err, "insert daily result")
		return
	}
	if !recorded {
		hlog.FromRequest(r).Debug().Str("player", req.Player).Str("date", date).Msg("daily already played")
	}
	writeJSON(w, http.StatusOK, dailyResultRes{Recorded: recorded, Date: date})
}

type dailyPlayedRes struct {
	Player string `json:"player"`
	Date   string `json:"date"`
	Played bool   `json:"played"`
}

// handleDailyPlayed lets a client skip today's puzzle once a result is stored.
func (s *Server) handleDailyPlayed(w http.ResponseWriter, r *http.Request) {
	player := r.URL.Query().Get("player")
	if player == "" {
		writeError(w, http.StatusBadRequest, "missing_player")
		return
	}

	date := daily.DateKey(time.Now())
	played, err := s.opts.DailyStore.AlreadyPlayed(r.Context(), player, date)
	if err != nil {
		internalError(w, r, err, "daily played")
		return
	}
	writeJSON(w, http.StatusOK, dailyPlayedRes{Player: player, Date: date, Played: played})
}

type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

// handleLeaderboard returns the leaderboard for the given date (default today).
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(time.Now())
	} else if _, err := daily.ParseDateKey(date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_date")
		return
	}

	rows, err := s.opts.DailyStore.Leaderboard(r.Context(), date, leaderboardSize)
	if err != nil {
		internalError(w, r, err, "leaderboard")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
