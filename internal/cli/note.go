package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/session"
)

// NewNoteCommand creates the note command.
func NewNoteCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note <text>...",
		Short: "Attach a note to the current session",
		Long: `Attach a free-text note to the current session. The session is
started if this terminal has not relayed anything yet. Notes appear in
"relay sessions --notes".`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNote(opts, strings.Join(args, " "), cmd)
		},
	}
	return cmd
}

func runNote(opts *RootOptions, text string, cmd *cobra.Command) error {
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

	// Ensure the session exists before attaching to it.
	now := opts.now()
	if _, err := store.Start(ctx, opts.sessionKey(), now); err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to start session", err)
	}

	note, err := store.AddNote(ctx, opts.sessionKey(), text, now)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to add note", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(note)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "note added: %s\n", note.Note)
	return nil
}
