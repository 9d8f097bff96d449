package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/steprepeat/pkg/config"
	"github.com/matzehuels/steprepeat/pkg/errors"
	"github.com/matzehuels/steprepeat/pkg/layout"
	"github.com/matzehuels/steprepeat/pkg/pipeline"
	"github.com/matzehuels/steprepeat/pkg/render/sink"
	"github.com/matzehuels/steprepeat/pkg/units"
)

// Editor styles
var (
	editLabelStyle   = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	editFocusedStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true).Width(16)
	editHelpStyle    = lipgloss.NewStyle().Foreground(colorDim)
	editErrorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	editBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

// editCommand creates the interactive editor command.
func (c *CLI) editCommand() *cobra.Command {
	var in layoutInputs

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit layout inputs interactively",
		Long: `Edit layout inputs interactively.

Fields accept the same expressions and unit suffixes as the flags. Press
enter to recompute; if the inputs are invalid the previous layout stays on
screen with the error below it. Flags pre-fill the fields.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := in.options(c.Config)
			if err != nil {
				return err
			}
			runner := pipeline.NewRunner(nil, nil, c.Logger)
			defer runner.Close()

			m := newEditModel(cmd.Context(), runner, c.Config, opts)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	in.addFlags(cmd)
	return cmd
}

// =============================================================================
// EditModel - Interactive layout editor
// =============================================================================

// Field indices, in tab order.
const (
	fieldWidth = iota
	fieldHeight
	fieldMargin
	fieldItemWidth
	fieldItemHeight
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldWidth:      "Document width",
	fieldHeight:     "Document height",
	fieldMargin:     "Margin",
	fieldItemWidth:  "Item width",
	fieldItemHeight: "Item height",
}

// editModel is the bubbletea model for the layout editor. Field text is
// only read on commit, when all five values are copied into one request.
type editModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	cfg    *config.Config
	opts   pipeline.Options
	unit   units.Unit

	inputs [fieldCount]textinput.Model
	focus  int

	outcome *layout.Outcome // last successful outcome
	err     error           // error of the last commit, if it failed
	commits int
	width   int
}

// newEditModel builds an editor pre-filled from opts and computes the
// initial outcome if the inputs allow it. A cleared margin field falls back
// to the margin configured in cfg.
func newEditModel(ctx context.Context, runner *pipeline.Runner, cfg *config.Config, opts pipeline.Options) editModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := editModel{
		ctx:    ctx,
		runner: runner,
		cfg:    cfg,
		opts:   opts,
		unit:   units.Unit(opts.Unit),
		width:  80,
	}
	values := [fieldCount]*float64{opts.Width, opts.Height, opts.Margin, opts.ItemWidth, opts.ItemHeight}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 24
		if i == fieldMargin {
			ti.Placeholder = "default"
		}
		if v := values[i]; v != nil {
			ti.SetValue(units.FormatValue(*v))
		}
		m.inputs[i] = ti
	}
	m.inputs[0].Focus()

	if hasAll(values) {
		m = m.commit()
	}
	return m
}

func hasAll(values [fieldCount]*float64) bool {
	for i, v := range values {
		if v == nil && i != fieldMargin {
			return false
		}
	}
	return true
}

func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m.moveFocus(1), nil
		case "shift+tab", "up":
			return m.moveFocus(-1), nil
		case "enter":
			return m.commit(), nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// moveFocus shifts focus by delta, wrapping around.
func (m editModel) moveFocus(delta int) editModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	m.inputs[m.focus].Focus()
	return m
}

// snapshot copies every field into a request in one step.
func (m editModel) snapshot() (layout.Request, error) {
	var vals [fieldCount]*float64
	names := [fieldCount]string{
		layout.FieldDocumentWidth, layout.FieldDocumentHeight, layout.FieldDocumentMargin,
		layout.FieldItemWidth, layout.FieldItemHeight,
	}
	for i := range m.inputs {
		v, err := length(names[i], m.inputs[i].Value(), m.unit)
		if err != nil {
			return layout.Request{}, err
		}
		vals[i] = v
	}
	if vals[fieldMargin] == nil {
		vals[fieldMargin] = defaultMargin(m.cfg, m.unit)
	}
	return layout.Request{
		DocumentWidth:  vals[fieldWidth],
		DocumentHeight: vals[fieldHeight],
		DocumentMargin: vals[fieldMargin],
		ItemWidth:      vals[fieldItemWidth],
		ItemHeight:     vals[fieldItemHeight],
	}, nil
}

// commit recomputes the outcome from the current fields. On failure the
// previous outcome is kept and the error is shown instead.
func (m editModel) commit() editModel {
	m.commits++
	req, err := m.snapshot()
	if err != nil {
		m.err = err
		return m
	}
	opts := m.opts
	opts.SetRequest(req)
	outcome, err := m.runner.Layout(m.ctx, opts)
	if err != nil {
		m.err = err
		return m
	}
	m.err = nil
	m.outcome = &outcome
	return m
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Step and repeat"))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  (lengths in %s)", m.unit)))
	b.WriteString("\n\n")

	var form strings.Builder
	for i := range m.inputs {
		label := editLabelStyle.Render(fieldLabels[i])
		if i == m.focus {
			label = editFocusedStyle.Render(iconInfo + " " + fieldLabels[i])
		}
		form.WriteString(label + " " + m.inputs[i].View())
		if i < fieldCount-1 {
			form.WriteString("\n")
		}
	}
	b.WriteString(editBoxStyle.Render(form.String()))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(editErrorStyle.Render(iconError + " " + errors.UserMessage(m.err)))
		if f := errors.Field(m.err); f != "" {
			b.WriteString(StyleDim.Render(" (" + f + ")"))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.outcome != nil {
		b.WriteString(outcomeTable(*m.outcome, m.unit))
		b.WriteString("\n\n")
		previewWidth := max(16, min(m.width-6, sink.DefaultTextWidth))
		b.WriteString(indent(sink.RenderText(m.outcome.Best().Result, sink.WithTextWidth(previewWidth)), "  "))
		b.WriteString("\n\n")
	} else {
		b.WriteString(StyleDim.Render("Fill in every size and press enter."))
		b.WriteString("\n\n")
	}

	b.WriteString(editHelpStyle.Render("tab/shift+tab move  enter compute  esc quit"))
	return b.String()
}
