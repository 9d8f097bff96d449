package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/preset"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// presetsCommand creates the presets command for listing size presets.
func (c *CLI) presetsCommand() *cobra.Command {
	var (
		kind   string
		unit   string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List document and item size presets",
		Long: `List document and item size presets.

Built-in presets cover ISO A, SRA and US paper plus common print items.
Presets from the [[presets]] tables of the config file are listed too and
may replace built-ins of the same name.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := parseKind(kind)
			if err != nil {
				return err
			}
			u := c.Config.Unit()
			if unit != "" {
				if u, err = units.Parse(unit); err != nil {
					return err
				}
			}
			reg, err := c.Config.Registry()
			if err != nil {
				return err
			}
			return runPresets(reg.List(k), u, asJSON)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "only list this kind: document or item")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "show sizes in this unit")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print presets as JSON")
	_ = cmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{string(preset.Document), string(preset.Item)}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("unit", completeUnits)

	return cmd
}

// parseKind accepts "", "document" or "item".
func parseKind(s string) (preset.Kind, error) {
	switch k := preset.Kind(s); k {
	case "", preset.Document, preset.Item:
		return k, nil
	default:
		return "", errors.NewField(errors.ErrCodeInvalidInput, "kind",
			"invalid kind %q (must be %q or %q)", s, preset.Document, preset.Item)
	}
}

func runPresets(list []preset.Preset, u units.Unit, asJSON bool) error {
	if asJSON {
		converted := make([]preset.Preset, len(list))
		for i, p := range list {
			converted[i] = p.In(u)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(converted)
	}

	if len(list) == 0 {
		printInfo("No presets")
		return nil
	}
	fmt.Println(presetTable(list, u))
	printNewline()
	printNextStep("Use one", "steprepeat layout --document "+firstOf(list, preset.Document, "A4")+
		" --item "+firstOf(list, preset.Item, "business-card-eu"))
	return nil
}

// presetTable renders presets as a table with sizes in u.
func presetTable(list []preset.Preset, u units.Unit) string {
	rows := make([][]string, 0, len(list))
	for _, p := range list {
		w, h := p.Size(u)
		rows = append(rows, []string{
			p.Name,
			string(p.Kind),
			units.FormatValue(w) + " × " + units.Format(h, u),
			p.Description,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Name", "Kind", "Size", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styleHeader.Padding(0, 1)
			case col == 0:
				return styleCell.Foreground(colorCyan)
			default:
				return styleCell.Foreground(colorGray)
			}
		}).
		Render()
}

// firstOf returns the first preset name of kind in list, or fallback.
func firstOf(list []preset.Preset, kind preset.Kind, fallback string) string {
	for _, p := range list {
		if p.Kind == kind {
			return p.Name
		}
	}
	return fallback
}
