package httpserver

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/match"
)

func TestMatches_Flow(t *testing.T) {
	h := newServer(t, Options{})

	rec := do(t, h, http.MethodPost, "/matches", `{"players":["ana","ben"],"targets":["crane","robot"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var v match.View
	decodeBody(t, rec, &v)
	require.NotEmpty(t, v.ID)
	assert.Equal(t, 1, v.Round)
	assert.Equal(t, match.DefaultRows, v.Rows)
	assert.Empty(t, v.Players[0].Target, "targets stay hidden while the round runs")
	base := "/matches/" + v.ID

	var res matchGuessRes
	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"apple"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &res)
	assert.Equal(t, 0, res.Turn.Player)
	assert.Equal(t, 1, res.Turn.Next)
	assert.False(t, res.Turn.Solved)
	assert.Equal(t, []game.Mark{
		game.MarkPresent, game.MarkAbsent, game.MarkAbsent, game.MarkAbsent, game.MarkCorrect,
	}, res.Turn.Marks)

	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"cat"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"wrong length"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"robot "}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, "padding is not trimmed")
	assert.JSONEq(t, `{"error":"wrong length"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"zzzzz"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"error":"not in word list"}`, rec.Body.String())

	rec = do(t, h, http.MethodPost, base+"/rounds", "")
	assert.Equal(t, http.StatusConflict, rec.Code, "no new round while one is running")

	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"ROBOT"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &res)
	assert.Equal(t, 1, res.Turn.Player)
	assert.True(t, res.Turn.Solved)
	assert.True(t, res.Turn.RoundEnd)
	require.NotNil(t, res.Turn.Winner)
	assert.Equal(t, 1, *res.Turn.Winner)
	assert.Equal(t, [2]int{0, 1}, res.Match.Score)
	assert.Equal(t, "crane", res.Match.Players[0].Target)
	assert.Equal(t, game.MarkCorrect, res.Match.Players[1].Keyboard["R"])

	rec = do(t, h, http.MethodPost, base+"/guess", `{"guess":"crane"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/rounds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &v)
	assert.Equal(t, 2, v.Round)
	assert.False(t, v.Over)
	assert.Equal(t, [2]int{0, 1}, v.Score)
	assert.Empty(t, v.Players[1].Guesses)

	rec = do(t, h, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &v)
	assert.Equal(t, [2]int{}, v.Score)

	rec = do(t, h, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &v)
	assert.Equal(t, 2, v.Round)
}

func TestMatches_Create(t *testing.T) {
	h := newServer(t, Options{})

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"random targets", `{"players":["ana","ben"]}`, http.StatusCreated},
		{"one player", `{"players":["ana"]}`, http.StatusBadRequest},
		{"blank player", `{"players":["ana",""]}`, http.StatusBadRequest},
		{"three targets", `{"players":["ana","ben"],"targets":["crane","robot","apple"]}`, http.StatusBadRequest},
		{"target not in word list", `{"players":["ana","ben"],"targets":["crane","zzzzz"]}`, http.StatusUnprocessableEntity},
		{"malformed", `{"players":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/matches", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
		})
	}
}

func TestMatches_NotFound(t *testing.T) {
	h := newServer(t, Options{})

	rec := do(t, h, http.MethodGet, "/matches/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodPost, "/matches/missing/guess", `{"guess":"crane"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
