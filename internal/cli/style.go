package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hrutik5321/dhumal/internal/config"
	"github.com/hrutik5321/dhumal/internal/source"
	"github.com/hrutik5321/dhumal/internal/ui/table"
)

// styleOptions are the output flags shared by render and query. They override
// the render section of the config file when set.
type styleOptions struct {
	title        string
	titleAlign   string
	headingAlign string
	aligns       []string
	justify      bool
	noBorder     bool
	borderGlyph  string
	prefix       string
	strict       bool
	snapshot     string
}

func (o *styleOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.title, "title", "", "table title")
	fs.StringVar(&o.titleAlign, "title-align", "", "title alignment: left, center, right")
	fs.StringVar(&o.headingAlign, "heading-align", "", "heading alignment: left, center, right, auto")
	fs.StringArrayVar(&o.aligns, "align", nil, "column alignment as col=mode, e.g. 0=left (repeatable)")
	fs.BoolVar(&o.justify, "justify", false, "give every column the width of the widest")
	fs.BoolVar(&o.noBorder, "no-border", false, "blank the frame and drop the top and bottom lines")
	fs.StringVar(&o.borderGlyph, "border-glyph", "", "draw the whole frame with one character")
	fs.StringVar(&o.prefix, "prefix", "", "string prepended to every line")
	fs.BoolVar(&o.strict, "strict", false, "fail on settings that break the uniform line width")
	fs.StringVar(&o.snapshot, "snapshot", "", "print the table snapshot (json or yaml) instead of the grid")
	fs.Lookup("snapshot").NoOptDefVal = source.FormatJSON
}

// apply configures t from the config file and then from the flags that were set.
func (o *styleOptions) apply(cmd *cobra.Command, cfg config.RenderConfig, t *table.Table) error {
	if err := cfg.Apply(t); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		t.SetTitle(o.title)
	}
	if flags.Changed("title-align") {
		a, err := parseAlign("title-align", o.titleAlign)
		if err != nil {
			return err
		}
		t.SetTitleAlign(a)
	}
	if flags.Changed("heading-align") {
		a, err := parseAlign("heading-align", o.headingAlign)
		if err != nil {
			return err
		}
		t.SetHeadingAlign(a)
	}
	for _, spec := range o.aligns {
		col, mode, ok := strings.Cut(spec, "=")
		if !ok {
			return fmt.Errorf("align: %q is not col=mode", spec)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(col))
		if err != nil {
			return fmt.Errorf("align: bad column %q", col)
		}
		a, err := parseAlign("align", strings.TrimSpace(mode))
		if err != nil {
			return err
		}
		t.SetAlign(idx, a)
	}
	if flags.Changed("justify") {
		t.SetJustify(o.justify)
	}

	noBorder := cfg.NoBorder
	if flags.Changed("no-border") {
		noBorder = o.noBorder
	}
	switch {
	case flags.Changed("border-glyph"):
		t.SetUniformBorder(o.borderGlyph)
	case !noBorder && !t.Bordered():
		t.SetBorder(table.Border{
			Edge:   cfg.Border.Edge,
			Fill:   cfg.Border.Fill,
			Top:    cfg.Border.Top,
			Bottom: cfg.Border.Bottom,
		})
	}
	if noBorder {
		t.RemoveBorder()
	}

	if flags.Changed("prefix") {
		t.SetPrefix(o.prefix)
	}
	return nil
}

func parseAlign(flag, name string) (table.Align, error) {
	a, ok := table.ParseAlign(name)
	if !ok {
		return a, fmt.Errorf("%s: unknown alignment %q", flag, name)
	}
	return a, nil
}

// write prints t as a snapshot or as a grid.
func (o *styleOptions) write(cmd *cobra.Command, t *table.Table) error {
	out := cmd.OutOrStdout()
	if o.snapshot != "" {
		switch o.snapshot {
		case source.FormatJSON, source.FormatYAML:
		default:
			return fmt.Errorf("snapshot: unknown format %q", o.snapshot)
		}
		return source.WriteSnapshot(out, t, o.snapshot)
	}

	if o.strict {
		s, err := t.RenderStrict()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, s)
		return err
	}
	_, err := t.WriteTo(out)
	return err
}
