package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wordventure/word-api/internal/wordclient"
)

const maxRows = 6

func newPlayCommand() *cobra.Command {
	rows := maxRows
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one hidden-word round against the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return play(cmd, newClient(cmd), rows)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", maxRows, "number of guesses allowed")
	return cmd
}

func play(cmd *cobra.Command, c *wordclient.Client, rows int) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	rd, err := c.NewRound(ctx)
	if err != nil {
		return fmt.Errorf("failed to start a round: %w", err)
	}
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d tries.\n", rd.Length, rows)

	in := bufio.NewScanner(cmd.InOrStdin())
	for used := 0; used < rows; {
		fmt.Fprintf(out, "%d> ", used+1)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return err
			}
			return io.ErrUnexpectedEOF
		}
		guess := strings.TrimSpace(in.Text())
		if guess == "" {
			continue
		}

		res, err := c.Guess(ctx, rd.Token, guess)
		var apiErr *wordclient.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity {
			// Rejected guesses don't use up a row.
			fmt.Fprintf(out, "%s: %s\n", guess, apiErr.Message)
			continue
		}
		if err != nil {
			return err
		}
		used++

		if err := printTiles(out, guess, res.Marks); err != nil {
			return err
		}
		if res.Solved {
			fmt.Fprintf(out, "Solved in %d!\n", used)
			return nil
		}
	}
	fmt.Fprintln(out, "Out of guesses.")
	return nil
}
