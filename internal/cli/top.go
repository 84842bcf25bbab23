package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall/internal/store"
)

// TopOptions holds flags for the top command.
type TopOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewTopCommand creates the top command.
func NewTopCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TopOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Print the leaderboard",
		Long: `Print the highest recorded scores.

Example:
  blockfall top --db ./scores.db
  blockfall top --db ./scores.db --limit 25 --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", store.DefaultTopLimit, "maximum number of entries")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runTop(cmd *cobra.Command, opts *TopOptions) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	entries, err := st.TopScores(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to load scores", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	if opts.Format == "json" {
		return formatter.Success(entries)
	}
	return formatter.Success(leaderboardText(entries))
}

// leaderboardText renders entries as a fixed-width table.
func leaderboardText(entries []store.ScoreEntry) string {
	if len(entries) == 0 {
		return "no scores recorded"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-4s %-20s %8s %6s %6s\n", "#", "PLAYER", "SCORE", "LINES", "LEVEL")
	for i, e := range entries {
		fmt.Fprintf(&b, "%-4d %-20s %8d %6d %6d\n", i+1, e.Username, e.Score, e.LinesCleared, e.Level)
	}
	return strings.TrimRight(b.String(), "\n")
}
