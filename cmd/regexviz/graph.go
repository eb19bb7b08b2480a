package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"regexfsm/internal/render"
	"regexfsm/regexlib"
)

func newGraphCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph PATTERN",
		Short: "Export the automaton of a pattern",
		Long: `Compiles PATTERN and writes its epsilon-NFA in the chosen format.
With --png the DOT output is piped through Graphviz (dot -Tpng) into the -o file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatName, _ := cmd.Flags().GetString("format")
			if !cmd.Flags().Changed("format") {
				formatName = a.cfg.Format
			}
			outFile, _ := cmd.Flags().GetString("output")
			png, _ := cmd.Flags().GetBool("png")

			format, err := render.ParseFormat(formatName)
			if err != nil {
				return err
			}
			if png && outFile == "-" {
				return errors.New("--png needs an output file (-o)")
			}

			re, err := regexlib.Compile(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("compiled pattern", "pattern", args[0],
				"states", re.NumStates(), "transitions", re.NumTransitions())

			var buf bytes.Buffer
			if png {
				format = render.FormatDOT
			}
			if err := render.Write(&buf, re, format); err != nil {
				return err
			}

			if png {
				dot := exec.CommandContext(cmd.Context(), "dot", "-Tpng", "-o", outFile)
				dot.Stdin = &buf
				dot.Stderr = cmd.ErrOrStderr()
				if err := dot.Run(); err != nil {
					return fmt.Errorf("dot failed: %w", err)
				}
				a.logger.Info("PNG written", "file", outFile)
				return nil
			}

			if outFile == "-" {
				_, err := io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(outFile, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("cannot write %s: %w", outFile, err)
			}
			a.logger.Info("graph written", "file", outFile, "format", format)
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "dot", "output format: dot, mermaid, yaml or json")
	cmd.Flags().StringP("output", "o", "-", "output file, - for stdout")
	cmd.Flags().Bool("png", false, "render PNG via dot -Tpng")
	return cmd
}
