// internal/httpserver/routes_words.go
//
// Word endpoints:
//   - GET  /             plaintext liveness message
//   - GET  /health       {"ok":true}
//   - GET  /random-word  {"word": "..."} drawn uniformly from the dictionary
//   - POST /check-word   {"guess": "..."} → {"valid": bool}
//
// /check-word keeps the {"valid":false,"message":...} shape on 400 because
// clients read "valid" regardless of status.

package httpserver

import (
	"errors"
	"net/http"
)

const noWordMessage = "No word provided"

func (s *Server) mountWords() {
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Word API is running and ready!"))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "words": s.dict.Len()})
	})
	s.r.Get("/random-word", s.handleRandomWord)
	s.r.Post("/check-word", s.handleCheckWord)
}

type randomWordRes struct {
	Word string `json:"word"`
}

func (s *Server) handleRandomWord(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, randomWordRes{Word: s.dict.Random()})
}

type checkWordReq struct {
	Guess string `json:"guess" validate:"required"`
}

type checkWordRes struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

func (s *Server) handleCheckWord(w http.ResponseWriter, r *http.Request) {
	var req checkWordReq
	if err := s.decode(w, r, &req); err != nil {
		msg := noWordMessage
		if errors.Is(err, errBadBody) {
			msg = errBadBody.Error()
		}
		writeJSON(w, http.StatusBadRequest, checkWordRes{Valid: false, Message: msg})
		return
	}

	valid := s.dict.Contains(req.Guess)
	s.metrics.ObserveCheck(valid)
	writeJSON(w, http.StatusOK, checkWordRes{Valid: valid})
}
