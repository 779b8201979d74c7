package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wordventure/word-api/internal/game"
)

var tileColors = map[game.Mark]*color.Color{
	game.MarkCorrect: color.New(color.BgGreen, color.FgBlack, color.Bold),
	game.MarkPresent: color.New(color.BgYellow, color.FgBlack, color.Bold),
	game.MarkAbsent:  color.New(color.BgHiBlack, color.FgWhite, color.Bold),
}

// markSymbols is the colourless rendering: = correct, ~ present, . absent.
var markSymbols = map[game.Mark]string{
	game.MarkCorrect: "=",
	game.MarkPresent: "~",
	game.MarkAbsent:  ".",
}

// printTiles writes one row of coloured letter tiles followed by a symbol row,
// so the result stays readable when colour is off.
func printTiles(w io.Writer, guess string, marks []game.Mark) error {
	letters := []rune(strings.ToUpper(guess))
	var symbols strings.Builder
	for i, m := range marks {
		if _, err := tileColors[m].Fprintf(w, " %c ", letters[i]); err != nil {
			return fmt.Errorf("failed to write tiles: %w", err)
		}
		symbols.WriteString(" " + markSymbols[m] + " ")
	}
	_, err := fmt.Fprintf(w, "\n%s\n", symbols.String())
	return err
}
