package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/blockfall/blockfall/internal/game"
	"github.com/blockfall/blockfall/internal/store"
	"github.com/blockfall/blockfall/internal/tui"
	"github.com/blockfall/blockfall/internal/tuning"
)

// PlayOptions holds flags for the play command.
type PlayOptions struct {
	*RootOptions
	Database string
	Username string
	Seed     int64
	Tuning   string
}

// GameSummary is the final state printed after a session ends.
type GameSummary struct {
	Score int    `json:"score"`
	Lines int    `json:"lines"`
	Level int    `json:"level"`
	Saved bool   `json:"saved"`
	As    string `json:"username,omitempty"`
}

func (s GameSummary) String() string {
	out := fmt.Sprintf("score %d  lines %d  level %d", s.Score, s.Lines, s.Level)
	if s.Saved {
		out += fmt.Sprintf("  (saved as %s)", s.As)
	}
	return out
}

// NewPlayCommand creates the play command.
func NewPlayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Long: `Play a game in the terminal.

With --db and --username the final score is recorded on the leaderboard.

Example:
  blockfall play
  blockfall play --db ./scores.db --username alice
  blockfall play --seed 42 --tuning ./slow.cue`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database for score recording")
	cmd.Flags().StringVar(&opts.Username, "username", "", "username to record the score under")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "piece sequence seed (0 = time-based)")
	cmd.Flags().StringVar(&opts.Tuning, "tuning", "", "path to a CUE tuning file")

	return cmd
}

func runPlay(cmd *cobra.Command, opts *PlayOptions) error {
	tun := tuning.Default()
	if opts.Tuning != "" {
		var err error
		tun, err = tuning.Load(opts.Tuning)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load tuning", err)
		}
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(
		game.WithSource(game.NewRandomSource(seed)),
		game.WithTuning(tun),
	)

	screen, err := tcell.NewScreen()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to create screen", err)
	}
	if err := screen.Init(); err != nil {
		return WrapExitError(ExitCommandError, "failed to initialize screen", err)
	}

	runErr := tui.NewClient(g, screen).Run(cmd.Context())
	screen.Fini()
	if runErr != nil && runErr != context.Canceled {
		return WrapExitError(ExitFailure, "game session error", runErr)
	}

	summary := GameSummary{Score: g.Score(), Lines: g.Lines(), Level: g.Level()}
	if opts.Database != "" && opts.Username != "" {
		if err := saveSummary(opts, &summary); err != nil {
			return err
		}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
	return formatter.Success(summary)
}

func saveSummary(opts *PlayOptions, summary *GameSummary) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()

	if err := st.SaveScore(context.Background(), opts.Username, summary.Score, summary.Lines, summary.Level); err != nil {
		return WrapExitError(ExitFailure, "failed to save score", err)
	}

	summary.Saved = true
	summary.As = store.NormalizeUsername(opts.Username)
	return nil
}
