// Command wordctl evaluates guesses locally and talks to a running word API.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wordventure/word-api/internal/wordclient"
)

var serverURL string

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wordctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:           "wordctl",
		Short:         "Play and inspect the word API from a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&serverURL, "server", envOr("WORDCTL_SERVER", "http://localhost:5175"), "word API base URL")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "log HTTP retries")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
		if debug {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	root.AddCommand(
		newEvalCommand(),
		newRandomCommand(),
		newCheckCommand(),
		newPlayCommand(),
	)
	return root
}

// newClient builds a client for --server that logs retries to stderr.
func newClient(cmd *cobra.Command) *wordclient.Client {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	return wordclient.New(wordclient.Config{BaseURL: serverURL, Logger: &logger})
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
