package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/session"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stats",
		Short:         "Show totals across all sessions",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(opts, cmd)
		},
	}
	return cmd
}

func runStats(opts *RootOptions, cmd *cobra.Command) error {
	configureLogging(opts)
	formatter := newFormatter(opts, cmd)

	cfg, err := opts.resolve()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve configuration", err)
	}

	store, err := session.Open(cfg.Sessions)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to open session journal", err)
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to read session stats", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(stats)
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "relay statistics:")
	fmt.Fprintf(w, "  sessions: %d\n", stats.TotalSessions)
	fmt.Fprintf(w, "  messages: %d\n", stats.TotalMessages)
	if stats.FirstStarted != "" {
		fmt.Fprintf(w, "  first session: %s\n", stats.FirstStarted)
	}
	if stats.LastStarted != "" {
		fmt.Fprintf(w, "  last session: %s\n", stats.LastStarted)
	}
	return nil
}
