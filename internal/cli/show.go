package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/chain"
)

// runShow prints the chain without mutating it. n > 0 limits the view to
// the final n entries; n == 0 shows everything.
func runShow(opts *RootOptions, n int, cmd *cobra.Command) error {
	configureLogging(opts)
	formatter := newFormatter(opts, cmd)

	cfg, err := opts.resolve()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve configuration", err)
	}

	entries, err := chain.Load(cfg.Chain)
	if err != nil {
		return failChain(formatter, err)
	}

	view := entries
	if n > 0 {
		view = chain.Tail(entries, n)
	}

	if formatter.Format == "json" {
		if view == nil {
			view = []chain.Entry{}
		}
		return formatter.Success(view)
	}

	w := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(w, "the chain is empty. nothing has been relayed yet.")
		return nil
	}
	renderChain(w, view)
	return nil
}

// renderChain writes entries in the chain's display form:
//
//	[run] (timestamp)
//	    message
func renderChain(w io.Writer, entries []chain.Entry) {
	for _, e := range entries {
		fmt.Fprintf(w, "[%d] (%s)\n", e.Run, e.Timestamp)
		fmt.Fprintf(w, "    %s\n", e.Message)
		fmt.Fprintln(w)
	}
}
