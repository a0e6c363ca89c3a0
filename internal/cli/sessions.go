package cli

import (
	"context"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/session"
)

// NewSessionsCommand creates the sessions command.
func NewSessionsCommand(opts *RootOptions) *cobra.Command {
	var withNotes bool

	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Show session history",
		Long: `Show every recorded session: when it started, when it was last
active, and how many messages and notes it holds.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSessions(opts, withNotes, cmd)
		},
	}

	cmd.Flags().BoolVar(&withNotes, "notes", false, "include each session's notes")

	return cmd
}

func runSessions(opts *RootOptions, withNotes bool, cmd *cobra.Command) error {
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

	sessions, err := store.List(ctx)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to list sessions", err)
	}

	if formatter.Format == "json" {
		if sessions == nil {
			sessions = []session.Session{}
		}
		return formatter.Success(sessions)
	}

	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(w, "no sessions recorded yet")
		return nil
	}

	table := tablewriter.NewWriter(w)
	table.Header("Session", "Started", "Last Active", "Messages", "Notes")
	for _, s := range sessions {
		table.Append(
			fmt.Sprintf("%d", s.Number),
			s.Started,
			s.LastActive,
			fmt.Sprintf("%d", s.MessageCount),
			fmt.Sprintf("%d", s.NoteCount),
		)
	}
	table.Render()

	if withNotes {
		for _, s := range sessions {
			if s.NoteCount == 0 {
				continue
			}
			notes, err := store.Notes(ctx, s.ID)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to list notes", err)
			}
			fmt.Fprintf(w, "\nSession %d notes:\n", s.Number)
			for _, n := range notes {
				fmt.Fprintf(w, "  - %s\n", n.Note)
			}
		}
	}
	return nil
}
