package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/hrutik5321/dhumal/internal/source"
)

type renderOptions struct {
	style   styleOptions
	input   string
	heading bool
	rawText bool
}

func newRenderCommand(g *globalOptions) *cobra.Command {
	o := &renderOptions{}
	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render CSV or a table snapshot as a text table",
		Long: `Render reads CSV, TSV or a JSON/YAML table snapshot from a file, or from
stdin when no file (or "-") is given, and prints it as a fixed-width table.

The input format follows the file extension unless --input is set.`,
		Example: `  dhumal render --heading --title Stats stats.csv
  dhumal render --input yaml --justify --align 1=right < table.yaml
  dhumal render --snapshot=yaml data.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd, g, args)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&o.input, "input", "i", "", "input format: csv, tsv, json, yaml")
	fs.BoolVar(&o.heading, "heading", false, "use the first CSV record as the heading")
	fs.BoolVar(&o.rawText, "raw-text", false, "keep numeric CSV fields as text")
	o.style.addFlags(fs)
	return cmd
}

func (o *renderOptions) run(cmd *cobra.Command, g *globalOptions, args []string) error {
	var (
		in   io.Reader = cmd.InOrStdin()
		name string
	)
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in, name = f, args[0]
	}

	format := o.input
	if format == "" {
		format = source.DetectFormat(name)
	}

	t, err := source.Read(in, format, source.CSVOptions{Heading: o.heading, RawText: o.rawText})
	if err != nil {
		return fmt.Errorf("%s: %w", displayName(name), err)
	}
	g.log.Debug().Str("input", displayName(name)).Str("format", format).
		Int("rows", len(t.Rows())).Int("columns", t.MaxCells()).Msg("table loaded")

	if err := o.style.apply(cmd, g.cfg.Render, t); err != nil {
		return err
	}
	return o.style.write(cmd, t)
}

func displayName(name string) string {
	if name == "" {
		return "stdin"
	}
	return name
}
