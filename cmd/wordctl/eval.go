package main

import (
	"github.com/spf13/cobra"

	"github.com/wordventure/word-api/internal/game"
)

func newEvalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "eval TARGET GUESS",
		Short: "Score GUESS against TARGET without a server",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			marks, err := game.Evaluate(args[0], args[1])
			if err != nil {
				return err
			}
			return printTiles(cmd.OutOrStdout(), args[1], marks)
		},
	}
}
