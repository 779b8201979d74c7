package wordclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/httpserver"
	"github.com/wordventure/word-api/internal/round"
	"github.com/wordventure/word-api/internal/words"
)

func newAPI(t *testing.T, list ...string) *Client {
	t.Helper()
	dict, err := words.New(list)
	require.NoError(t, err)
	issuer, err := round.NewIssuer("client-test", time.Hour)
	require.NoError(t, err)
	nop := zerolog.Nop()

	srv := httptest.NewServer(httpserver.New(httpserver.Options{
		Dict:   dict,
		Rounds: issuer,
		Logger: &nop,
	}).Router())
	t.Cleanup(srv.Close)

	return New(Config{BaseURL: srv.URL, RetryMax: 1, RetryWaitMin: time.Millisecond, RetryWaitMax: time.Millisecond})
}

func TestRandomWordIsValid(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t, "apple", "crane", "robot")

	for i := 0; i < 10; i++ {
		w, err := c.RandomWord(ctx)
		require.NoError(t, err)
		assert.Contains(t, []string{"apple", "crane", "robot"}, w)

		ok, err := c.CheckWord(ctx, w)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestCheckWord(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t, "apple")

	ok, err := c.CheckWord(ctx, "APPLE")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.CheckWord(ctx, "zzzzz")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = c.CheckWord(ctx, "")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "No word provided", apiErr.Message)
}

func TestRound(t *testing.T) {
	ctx := context.Background()
	c := newAPI(t, "robot", "bloom")

	rd, err := c.NewRound(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, rd.Length)

	res, err := c.Guess(ctx, rd.Token, "bloom")
	require.NoError(t, err)
	if !res.Solved {
		// target is robot
		assert.Equal(t, []game.Mark{
			game.MarkPresent, game.MarkAbsent, game.MarkPresent, game.MarkCorrect, game.MarkAbsent,
		}, res.Marks)
		res, err = c.Guess(ctx, rd.Token, "robot")
		require.NoError(t, err)
	}
	assert.True(t, res.Solved)
	assert.NotEmpty(t, res.Word)

	_, err = c.Guess(ctx, rd.Token, "cat")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "wrong length", apiErr.Message)
}

func TestRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"word":"crane"}`))
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, RetryMax: 3, RetryWaitMin: time.Millisecond, RetryWaitMax: time.Millisecond})
	w, err := c.RandomWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "crane", w)
	assert.Equal(t, int32(3), calls.Load())
}

func TestGivesUpAfterRetryMax(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(Config{BaseURL: srv.URL, RetryMax: 2, RetryWaitMin: time.Millisecond, RetryWaitMax: time.Millisecond})
	_, err := c.RandomWord(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Equal(t, int32(3), calls.Load())
}
