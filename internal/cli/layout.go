package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
	"github.com/matzehuels/steprepeat/pkg/render/sink"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// layoutCommand creates the layout command for computing the best grid.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		in           layoutInputs
		asJSON       bool
		noPreview    bool
		previewWidth int
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute how many items fit on a sheet",
		Long: `Compute how many items fit on a sheet.

The document is tried in landscape and in portrait (once if it is square) and
the orientation holding more items is marked as preferred. Lengths accept
arithmetic and a unit suffix:

  steprepeat layout --document SRA3+ --item business-card-eu
  steprepeat layout --width 12in --height 18in --margin 0.25in --item-width 3.5 --item-height 2 -u in
  steprepeat layout --width 330 --height 488 --item-width "(90+3)" --item-height 53`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := in.options(c.Config)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), opts, asJSON, noPreview, previewWidth)
		},
	}

	in.addFlags(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the outcome as JSON")
	cmd.Flags().BoolVar(&noPreview, "no-preview", false, "skip the ASCII preview")
	cmd.Flags().IntVar(&previewWidth, "preview-width", sink.DefaultTextWidth, "ASCII preview width in characters")

	return cmd
}

// runLayout selects an orientation and prints the outcome.
func (c *CLI) runLayout(ctx context.Context, opts pipeline.Options, asJSON, noPreview bool, previewWidth int) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	defer runner.Close()

	outcome, err := runner.Layout(ctx, opts)
	if err != nil {
		return err
	}

	if asJSON {
		data, err := sink.RenderJSON(outcome, sink.WithJSONUnit(opts.Unit))
		if err != nil {
			return fmt.Errorf("encode outcome: %w", err)
		}
		_, err = fmt.Fprintln(os.Stdout, string(data))
		return err
	}

	printLayout(outcome, units.Unit(opts.Unit))
	if !noPreview {
		printNewline()
		fmt.Println(indent(sink.RenderText(outcome.Best().Result, sink.WithTextWidth(previewWidth)), "  "))
	}
	printNewline()
	printNextStep("Render", "steprepeat render "+renderHint(opts))
	return nil
}

// printLayout prints the summary line and candidate table.
func printLayout(o layout.Outcome, u units.Unit) {
	best := o.Best()
	printSuccess("%s fits %s items",
		StyleHighlight.Render(best.Orientation.String()),
		StyleNumber.Render(fmt.Sprintf("%d", best.Result.Count())))
	printStats(best.Result, false)
	if !o.IsSquare() && o.Candidates[0].Result.Count() == o.Candidates[1].Result.Count() {
		printDetail("both orientations hold the same count; landscape is kept")
	}
	printNewline()
	fmt.Println(outcomeTable(o, u))
}

// renderHint rebuilds the numeric flags of opts for the next-step hint.
func renderHint(opts pipeline.Options) string {
	f := func(p *float64) string {
		if p == nil {
			return "?"
		}
		return units.FormatValue(*p)
	}
	s := fmt.Sprintf("--width %s --height %s --item-width %s --item-height %s",
		f(opts.Width), f(opts.Height), f(opts.ItemWidth), f(opts.ItemHeight))
	if opts.Margin != nil {
		s += " --margin " + f(opts.Margin)
	}
	if opts.Unit != string(units.Default) {
		s += " -u " + opts.Unit
	}
	return s + " -f svg,png"
}
