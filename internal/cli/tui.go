package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/printworks/rainbowpress/pkg/paper"
	"github.com/printworks/rainbowpress/pkg/rainbow"
)

// formField identifies one adjustable row in the parameter form.
type formField int

const (
	fieldWidth formField = iota
	fieldHeight
	fieldSpacing
	fieldMinInner
	fieldMargin
	fieldPaper
	fieldOrientation
	fieldAutoPaper
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Width (short axis)",
	"Height (long axis)",
	"Band spacing",
	"Min inner prints",
	"Margin",
	"Paper",
	"Orientation",
	"Auto paper",
}

// ParamsFormModel is the bubbletea model for interactive parameter
// adjustment. Left/right tweak the selected value, enter accepts the
// form, and the allocation preview updates live.
type ParamsFormModel struct {
	Opts     generateOpts
	Cursor   formField
	Accepted bool

	paperIdx int // index into paper.Catalog
}

// NewParamsFormModel builds the form seeded with the given options.
func NewParamsFormModel(opts generateOpts) ParamsFormModel {
	m := ParamsFormModel{Opts: opts}
	for i, s := range paper.Catalog {
		if s.Name == opts.paperName {
			m.paperIdx = i
			break
		}
	}
	return m
}

func (m ParamsFormModel) Init() tea.Cmd {
	return nil
}

func (m ParamsFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < fieldCount-1 {
			m.Cursor++
		}
	case "left", "h":
		m.adjust(-1)
	case "right", "l":
		m.adjust(1)
	case "enter":
		m.Accepted = true
		return m, tea.Quit
	}
	return m, nil
}

// adjust tweaks the selected field by one step in the given direction,
// clamping at each parameter's valid range.
func (m *ParamsFormModel) adjust(dir int) {
	d := float64(dir)
	switch m.Cursor {
	case fieldWidth:
		m.Opts.width = clamp(m.Opts.width+d*0.05, 0.05, 5)
	case fieldHeight:
		m.Opts.height = clamp(m.Opts.height+d*0.05, 0.05, 5)
	case fieldSpacing:
		m.Opts.spacing = clamp(m.Opts.spacing+d*5, 5, 300)
	case fieldMinInner:
		n := m.Opts.minInner + dir
		if n < 1 {
			n = 1
		}
		if n > 50 {
			n = 50
		}
		m.Opts.minInner = n
	case fieldMargin:
		m.Opts.margin = clamp(m.Opts.margin+d*0.25, 0, 5)
	case fieldPaper:
		m.paperIdx = (m.paperIdx + dir + len(paper.Catalog)) % len(paper.Catalog)
		m.Opts.paperName = paper.Catalog[m.paperIdx].Name
	case fieldOrientation:
		if m.Opts.orientation == string(paper.Portrait) {
			m.Opts.orientation = string(paper.Landscape)
		} else {
			m.Opts.orientation = string(paper.Portrait)
		}
	case fieldAutoPaper:
		m.Opts.autoPaper = !m.Opts.autoPaper
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fieldValue formats the current value of a form field.
func (m ParamsFormModel) fieldValue(f formField) string {
	switch f {
	case fieldWidth:
		return fmt.Sprintf("%.2f\"", m.Opts.width)
	case fieldHeight:
		return fmt.Sprintf("%.2f\"", m.Opts.height)
	case fieldSpacing:
		return fmt.Sprintf("%.0f%%", m.Opts.spacing)
	case fieldMinInner:
		return fmt.Sprintf("%d", m.Opts.minInner)
	case fieldMargin:
		return fmt.Sprintf("%.2f\"", m.Opts.margin)
	case fieldPaper:
		return m.Opts.paperName
	case fieldOrientation:
		return m.Opts.orientation
	case fieldAutoPaper:
		if m.Opts.autoPaper {
			return "on"
		}
		return "off"
	}
	return ""
}

func (m ParamsFormModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Fingerprint Rainbow"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ select  ←/→ adjust  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	for f := formField(0); f < fieldCount; f++ {
		cursor := "  "
		line := fmt.Sprintf("%s%-20s %s", cursor, fieldLabels[f], m.fieldValue(f))
		if f == m.Cursor {
			line = fmt.Sprintf("▸ %-20s %s", fieldLabels[f], m.fieldValue(f))
			b.WriteString(StyleSuccess.Render(line))
		} else {
			b.WriteString(StyleValue.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.preview())
	return b.String()
}

// preview computes the layout for the current values and shows the
// allocation plus the fit verdict. Invalid intermediate values render
// as a dim error line instead of aborting the form.
func (m ParamsFormModel) preview() string {
	params := rainbow.Params{
		Width:          m.Opts.width,
		Height:         m.Opts.height,
		SpacingPercent: m.Opts.spacing,
		MinInner:       m.Opts.minInner,
	}
	layout, err := rainbow.New(params)
	if err != nil {
		return StyleDim.Render(err.Error())
	}

	orient, err := paper.ParseOrientation(m.Opts.orientation)
	if err != nil {
		return StyleDim.Render(err.Error())
	}

	size := paper.Catalog[m.paperIdx]
	if m.Opts.autoPaper {
		size = paper.FindSmallest(layout.Bounds, m.Opts.margin, orient, paper.Catalog)
	}
	fit := paper.Check(layout.Bounds, m.Opts.margin, size, orient)

	var b strings.Builder
	b.WriteString(allocationTable(layout.Allocation))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("rainbow %.2f\" x %.2f\" on %s",
		layout.Bounds.Width, layout.Bounds.Height, size.Name)))
	b.WriteString("\n")
	if fit.Oversized {
		b.WriteString(StyleWarning.Render("! does not fit the page"))
	} else {
		b.WriteString(StyleSuccess.Render("✓ fits the page"))
	}
	return b.String()
}

// newTUICmd creates the tui command: adjust parameters interactively,
// then run the same pipeline as generate when the form is accepted.
func newTUICmd() *cobra.Command {
	var formatsStr, output, configPath string

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Adjust parameters interactively and generate",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := generateOpts{
				width:       rainbow.PresetChild.Width,
				height:      rainbow.PresetChild.Height,
				spacing:     rainbow.PresetChild.SpacingPercent,
				minInner:    rainbow.PresetChild.MinInner,
				margin:      defaultMargin,
				paperName:   defaultPaper,
				orientation: string(paper.Portrait),
				ppi:         defaultPPI,
				output:      output,
				configPath:  configPath,
				formats:     parseFormats(formatsStr),
			}
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}

			final, err := tea.NewProgram(NewParamsFormModel(opts)).Run()
			if err != nil {
				return err
			}
			model, ok := final.(ParamsFormModel)
			if !ok || !model.Accepted {
				return nil
			}
			if model.Opts.output == "" {
				// The terminal is occupied by the summary; never write
				// image bytes to stdout from the TUI path.
				model.Opts.output = "rainbow"
			}
			return runGenerate(cmd.Context(), &model.Opts)
		},
	}

	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file or base path")
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default: user config dir)")

	return cmd
}
