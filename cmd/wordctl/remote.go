package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRandomCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "random",
		Short: "Fetch a random word from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := newClient(cmd).RandomWord(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), w)
			return err
		},
	}
}

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check WORD",
		Short: "Ask the server whether WORD is in its dictionary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := newClient(cmd).CheckWord(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			verdict := "not in word list"
			if ok {
				verdict = "valid"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], verdict)
			return err
		},
	}
}
