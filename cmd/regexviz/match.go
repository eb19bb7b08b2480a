package main

import (
	"bufio"
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"regexfsm/regexlib"
)

func newMatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "match PATTERN [TEXT...]",
		Short: "Test whole strings against a pattern",
		Long: `Prints "match" or "no match" for every TEXT. Without TEXT arguments each
line of standard input is tested. Exits with status 1 if any text does not match.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout := a.cfg.MatchTimeout
			if cmd.Flags().Changed("timeout") {
				timeout, _ = cmd.Flags().GetDuration("timeout")
			}

			re, err := regexlib.Compile(args[0])
			if err != nil {
				return err
			}

			texts := args[1:]
			if len(texts) == 0 {
				sc := bufio.NewScanner(cmd.InOrStdin())
				for sc.Scan() {
					texts = append(texts, sc.Text())
				}
				if err := sc.Err(); err != nil {
					return err
				}
			}

			allMatched := true
			for _, text := range texts {
				ok, err := matchOne(cmd.Context(), re, text, timeout)
				if err != nil {
					return fmt.Errorf("match %q: %w", text, err)
				}
				a.logger.Debug("matched", "pattern", args[0], "text", text, "result", ok)
				verdict := "match"
				if !ok {
					verdict = "no match"
					allMatched = false
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", text, verdict)
			}
			if !allMatched {
				return errNoMatch
			}
			return nil
		},
	}
	cmd.Flags().Duration("timeout", 0, "per-text match timeout, 0 for none (default from REGEXVIZ_MATCH_TIMEOUT)")
	return cmd
}

func matchOne(ctx context.Context, re *regexlib.Automaton, text string, timeout time.Duration) (bool, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return re.MatchContext(ctx, text)
}
