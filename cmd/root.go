// Package cmd implements the command line of faktorial.
package cmd

import (
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/vadiminshakov/faktorial/internal/ctxlog"
	"github.com/vadiminshakov/faktorial/terminal"
)

const version = "0.1.0"

type options struct {
	plain     bool
	color     bool
	verbose   bool
	logLevel  string
	logFormat string
}

// NewRootCmd builds the faktorial command.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "faktorial",
		Short: "Compute the factorial of one integer",
		Long: `faktorial asks for one integer on standard input and prints its factorial.

Negative numbers and input that is not an integer are reported with a message.
Results use 64-bit signed arithmetic and wrap on overflow.`,
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.plain, "plain", false, "read a plain line even on a terminal")
	flags.BoolVar(&opts.color, "color", false, "colorize the outcome line")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging, same as --log-level=debug")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text, json")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	level := opts.logLevel
	if opts.verbose {
		level = "debug"
	}
	logger := newLogger(level, opts.logFormat, cmd.ErrOrStderr())
	ctx := ctxlog.WithLogger(cmd.Context(), logger)

	reader, err := newReader(cmd.InOrStdin(), cmd.OutOrStdout(), opts.plain)
	if err != nil {
		return err
	}
	defer reader.Close()

	q, err := terminal.Run(ctx, reader, cmd.OutOrStdout(), terminal.Options{Color: opts.color})
	if err != nil {
		return err
	}

	logger.Info("done", "state", q.State().String())
	return nil
}

// newReader picks readline for an interactive stdin and a plain stream
// reader otherwise.
func newReader(in io.Reader, out io.Writer, plain bool) (terminal.LineReader, error) {
	if !plain && in == io.Reader(os.Stdin) && readline.DefaultIsTerminal() {
		r, err := terminal.NewInteractiveReader()
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return terminal.NewStreamReader(in, out), nil
}

// Execute runs the root command and exits 1 on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
