package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/cayley/analysis"
)

// Output formats.
const (
	outText = "text"
	outJSON = "json"
	outYAML = "yaml"
)

func newAnalyzeCmd(a *app) *cobra.Command {
	var (
		output   string
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Classify the structure in FILE (YAML or JSON; - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("parallel") {
				parallel = a.cfg.Analysis.Parallel
			}

			rep, err := analysis.Analyze(in,
				analysis.WithLogger(a.log),
				analysis.WithParallel(parallel),
				analysis.WithMaxElements(a.cfg.Analysis.MaxElements),
			)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", args[0], err)
			}

			return writeReport(cmd.OutOrStdout(), output, rep)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", outText, "output format: text, json, yaml")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "workers for independent checks (default from config)")

	return cmd
}

// readInput decodes a structure file. YAML is a superset of JSON, so one
// decoder serves both.
func readInput(stdin io.Reader, path string) (analysis.Input, error) {
	var (
		data []byte
		err  error
		in   analysis.Input
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return in, fmt.Errorf("read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("decode %s: %w", path, err)
	}

	return in, nil
}

func writeReport(w io.Writer, format string, rep *analysis.Report) error {
	if format == outText {
		renderText(w, rep)
		return nil
	}

	return writeValue(w, format, rep)
}

// writeValue encodes v as indented JSON or YAML.
func writeValue(w io.Writer, format string, v interface{}) error {
	switch format {
	case outJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
