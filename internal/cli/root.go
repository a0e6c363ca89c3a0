package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/config"
	"github.com/roach88/relay/internal/session"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Path overrides; empty means "use config / defaults".
	ConfigPath string
	Chain      string
	Sessions   string
	Tail       int

	// Now allows overriding the time source (for testing).
	// If nil, defaults to time.Now.
	Now func() time.Time

	// SessionKey overrides the parent-PID session key (for testing).
	SessionKey string
}

func (o *RootOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o *RootOptions) sessionKey() string {
	if o.SessionKey != "" {
		return o.SessionKey
	}
	return session.CurrentKey()
}

// resolve merges the config file with flag overrides.
func (o *RootOptions) resolve() (config.Config, error) {
	path := o.ConfigPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.Config{}, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if o.Chain != "" {
		cfg.Chain = o.Chain
	}
	if o.Sessions != "" {
		cfg.Sessions = o.Sessions
	}
	if o.Tail > 0 {
		cfg.Tail = o.Tail
	}
	return cfg, nil
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the relay CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	var (
		show bool
		last int
	)

	cmd := &cobra.Command{
		Use:   "relay [message]",
		Short: "relay - messages passed across time",
		Long: `relay maintains an append-only chain of messages in a JSON file.

Each run reads the chain, composes a new message referencing what came
before, appends it, and rewrites the file. Pass a message argument to
relay your own words instead of the composed ones.

Examples:
  relay                        # append a composed message
  relay "hello, next one"      # append a custom message
  relay --show                 # print the whole chain, no append
  relay --last 5               # print the final 5 entries, no append
  relay --chain /tmp/c.json    # use a different chain file`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,  // Don't print usage on errors
		SilenceErrors: true,  // Don't print errors - we handle our own error output
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if show || cmd.Flags().Changed("last") {
				n := 0
				if cmd.Flags().Changed("last") {
					n = last
				}
				return runShow(opts, n, cmd)
			}
			custom := ""
			if len(args) == 1 {
				custom = args[0]
			}
			return runRelay(opts, custom, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file (default ~/.relay.yaml)")
	cmd.PersistentFlags().StringVar(&opts.Chain, "chain", "", "path to chain file (default ~/.relay-chain.json)")
	cmd.PersistentFlags().StringVar(&opts.Sessions, "sessions-db", "", "path to session journal (default ~/.relay-sessions.db)")

	// Root-only flags
	cmd.Flags().BoolVar(&show, "show", false, "print the chain without appending")
	cmd.Flags().IntVar(&last, "last", 0, "print only the final N entries, without appending")
	cmd.Flags().IntVar(&opts.Tail, "tail", 0, "entries shown in the confirmation view (default from config)")

	// Add subcommands
	cmd.AddCommand(NewSessionsCommand(opts))
	cmd.AddCommand(NewStatsCommand(opts))
	cmd.AddCommand(NewNoteCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
