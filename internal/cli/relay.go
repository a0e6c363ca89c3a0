package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/relay/internal/chain"
	"github.com/roach88/relay/internal/compose"
	"github.com/roach88/relay/internal/session"
)

// relayResult is the JSON payload for a default-mode run.
type relayResult struct {
	Entry       chain.Entry     `json:"entry"`
	ChainLength int             `json:"chain_length"`
	Session     session.Session `json:"session"`
	Path        string          `json:"path"`
}

// runRelay performs the default append mode: load the chain, start or
// continue the session, compose (or take the custom) message, append one
// entry, save, and print a confirmation with the tail view.
func runRelay(opts *RootOptions, custom string, cmd *cobra.Command) error {
	configureLogging(opts)
	formatter := newFormatter(opts, cmd)

	cfg, err := opts.resolve()
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve configuration", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	slog.Debug("loading chain", "path", cfg.Chain)
	entries, err := chain.Load(cfg.Chain)
	if err != nil {
		return failChain(formatter, err)
	}
	slog.Debug("chain loaded", "length", len(entries))

	store, err := session.Open(cfg.Sessions)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to open session journal", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("error closing session journal", "error", closeErr)
		}
	}()

	now := opts.now()
	sess, err := store.Start(ctx, opts.sessionKey(), now)
	if err != nil {
		_ = formatter.Error("SESSION_STORE", err.Error())
		return WrapExitError(ExitCommandError, "failed to start session", err)
	}
	slog.Debug("session started", "number", sess.Number, "messages", sess.MessageCount)

	message := custom
	if message == "" {
		message = compose.Compose(len(entries))
	}

	entries = chain.Append(entries, message, now, sess.Number)
	if err := chain.Save(cfg.Chain, entries); err != nil {
		return failChain(formatter, err)
	}
	slog.Debug("chain saved", "path", cfg.Chain, "length", len(entries))

	latest := entries[len(entries)-1]
	if formatter.Format == "json" {
		return formatter.Success(relayResult{
			Entry:       latest,
			ChainLength: len(entries),
			Session:     sess,
			Path:        cfg.Chain,
		})
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "--- recent chain ---")
	renderChain(w, chain.Tail(entries, cfg.Tail))
	fmt.Fprintf(w, "chain length: %d\n", len(entries))
	fmt.Fprintf(w, "session: %d (message #%d in this session)\n", sess.Number, sess.MessageCount)
	fmt.Fprintf(w, "stored at: %s\n", cfg.Chain)
	return nil
}

// failChain emits the error in the configured format and wraps it with
// the right exit code: corrupt chains are data failures, everything else
// is a command error.
func failChain(f *OutputFormatter, err error) error {
	var se *chain.StoreError
	if errors.As(err, &se) {
		_ = f.Error(string(se.Code), se.Error())
		code := ExitCommandError
		if se.Code == chain.CodeCorrupt {
			code = ExitFailure
		}
		return WrapExitError(code, string(se.Code), err)
	}
	_ = f.Error("CHAIN", err.Error())
	return WrapExitError(ExitCommandError, "chain error", err)
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
}

// configureLogging routes slog to stderr, at debug level under --verbose.
func configureLogging(opts *RootOptions) {
	logLevel := slog.LevelInfo
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
