package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"regexfsm/internal/config"
	"regexfsm/internal/logging"
)

// errNoMatch makes the process exit with status 1 without printing anything.
var errNoMatch = errors.New("no match")

// app carries what every subcommand needs once the root has loaded it.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:   "regexviz",
		Short: "Compile regular expressions into epsilon-NFAs, match and draw them",
		Long: `regexviz compiles patterns built from literals, '|', '*' and '(...)' into
Thompson-style epsilon-NFAs. It can test strings against them and export the
automaton as Graphviz DOT, Mermaid, YAML or JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				lvl, _ := cmd.Flags().GetString("log-level")
				if err := cfg.LogLevel.UnmarshalText([]byte(lvl)); err != nil {
					return fmt.Errorf("--log-level: %w", err)
				}
			}
			a.cfg = cfg
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newGraphCmd(a),
		newMatchCmd(a),
		newReplCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree on the process streams and returns the exit code.
func Execute(ctx context.Context, args []string) int {
	return run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	err := root.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errNoMatch):
		return 1
	default:
		root.PrintErrln("Error:", err)
		return 2
	}
}
