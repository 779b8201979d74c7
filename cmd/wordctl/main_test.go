package main

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wordventure/word-api/internal/game"
	"github.com/wordventure/word-api/internal/httpserver"
	"github.com/wordventure/word-api/internal/round"
	"github.com/wordventure/word-api/internal/words"
)

func noColor(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func startServer(t *testing.T, list ...string) string {
	t.Helper()
	dict, err := words.New(list)
	require.NoError(t, err)
	issuer, err := round.NewIssuer("wordctl-test", time.Hour)
	require.NoError(t, err)
	nop := zerolog.Nop()
	srv := httptest.NewServer(httpserver.New(httpserver.Options{Dict: dict, Rounds: issuer, Logger: &nop}).Router())
	t.Cleanup(srv.Close)
	return srv.URL
}

func TestPrintTiles(t *testing.T) {
	noColor(t)
	var buf bytes.Buffer
	require.NoError(t, printTiles(&buf, "bloom", []game.Mark{
		game.MarkPresent, game.MarkAbsent, game.MarkPresent, game.MarkCorrect, game.MarkAbsent,
	}))
	assert.Equal(t, " B  L  O  O  M \n ~  .  ~  =  . \n", buf.String())
}

func TestEvalCommand(t *testing.T) {
	noColor(t)

	out, err := run(t, "", "eval", "robot", "BLOOM")
	require.NoError(t, err)
	assert.Contains(t, out, " ~  .  ~  =  . ")

	_, err = run(t, "", "eval", "cat", "cats")
	assert.ErrorIs(t, err, game.ErrLengthMismatch)

	_, err = run(t, "", "eval", "cat")
	assert.Error(t, err)
}

func TestRemoteCommands(t *testing.T) {
	url := startServer(t, "crane")

	out, err := run(t, "", "--server", url, "random")
	require.NoError(t, err)
	assert.Equal(t, "crane\n", out)

	out, err = run(t, "", "--server", url, "check", "CRANE")
	require.NoError(t, err)
	assert.Equal(t, "CRANE: valid\n", out)

	out, err = run(t, "", "--server", url, "check", "zzzzz")
	require.NoError(t, err)
	assert.Equal(t, "zzzzz: not in word list\n", out)
}

func TestPlayCommand(t *testing.T) {
	noColor(t)
	url := startServer(t, "crane", "apple")

	// Rejected guesses don't cost a row, so the round always ends solved.
	out, err := run(t, "cat\nzzzzz\napple\ncrane\n", "--server", url, "play")
	require.NoError(t, err)
	assert.Contains(t, out, "Guess the 5-letter word.")
	assert.Contains(t, out, "cat: wrong length")
	assert.Contains(t, out, "zzzzz: not in word list")
	assert.Contains(t, out, "Solved in ")
}

func TestPlayCommand_InputAndRows(t *testing.T) {
	noColor(t)
	url := startServer(t, "crane")

	_, err := run(t, "", "--server", url, "play")
	assert.Error(t, err)

	out, err := run(t, "crane\n", "--server", url, "play", "--rows", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Solved in 1!")
}
