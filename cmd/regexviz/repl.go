package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"regexfsm/regexlib"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively compile patterns and test strings",
		Long:  `Asks for a pattern, then for a text to test against it. An empty pattern line exits.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewScanner(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			for {
				fmt.Fprint(out, "pattern> ")
				if !in.Scan() || in.Text() == "" {
					break
				}
				pat := in.Text()
				re, err := regexlib.Compile(pat)
				if err != nil {
					a.logger.Debug("compile failed", "pattern", pat, "error", err)
					fmt.Fprintln(out, "error:", err)
					continue
				}
				fmt.Fprint(out, "text> ")
				if !in.Scan() {
					break
				}
				ok, err := matchOne(cmd.Context(), re, in.Text(), a.cfg.MatchTimeout)
				if err != nil {
					a.logger.Debug("match aborted", "pattern", pat, "error", err)
					fmt.Fprintln(out, "error:", err)
					continue
				}
				fmt.Fprintln(out, ok)
			}
			fmt.Fprintln(out)
			return in.Err()
		},
	}
}
