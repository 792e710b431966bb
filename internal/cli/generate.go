package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/printworks/rainbowpress/pkg/errors"
	"github.com/printworks/rainbowpress/pkg/paper"
	"github.com/printworks/rainbowpress/pkg/rainbow"
	"github.com/printworks/rainbowpress/pkg/render"
	"github.com/printworks/rainbowpress/pkg/render/sink"
)

const (
	presetChild = "child"
	presetAdult = "adult"

	defaultMargin = 1.5
	defaultPaper  = "Letter (US)"
	defaultPPI    = 96.0
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	width       float64  // fingerprint short axis in inches
	height      float64  // fingerprint long axis in inches
	preset      string   // child or adult dimension preset
	spacing     float64  // band spacing as % of fingerprint height
	minInner    int      // minimum fingerprints in the innermost band
	margin      float64  // page margin in inches
	paperName   string   // catalog paper name, or "Custom"
	paperWidth  float64  // custom paper width in inches
	paperHeight float64  // custom paper height in inches
	autoPaper   bool     // pick the smallest catalog size that fits
	orientation string   // portrait or landscape
	formats     []string // output formats
	output      string   // output file (single format) or base path
	ppi         float64  // SVG pixel density
	configPath  string   // explicit config file path
}

// newGenerateCmd creates the generate command: compute the allocation,
// place every fingerprint, pick or validate the paper, and render.
func newGenerateCmd() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		width:       rainbow.PresetChild.Width,
		height:      rainbow.PresetChild.Height,
		spacing:     rainbow.PresetChild.SpacingPercent,
		minInner:    rainbow.PresetChild.MinInner,
		margin:      defaultMargin,
		paperName:   defaultPaper,
		orientation: string(paper.Portrait),
		ppi:         defaultPPI,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fingerprint rainbow and render it",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			if err := applyConfig(cmd, &opts); err != nil {
				return err
			}
			if err := applyPreset(cmd, &opts); err != nil {
				return err
			}
			return runGenerate(cmd.Context(), &opts)
		},
	}

	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "fingerprint width in inches (short axis)")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "fingerprint height in inches (long axis)")
	cmd.Flags().StringVar(&opts.preset, "preset", "", "fingerprint dimension preset: child (0.4x0.6), adult (0.5x0.8)")
	cmd.Flags().Float64Var(&opts.spacing, "spacing", opts.spacing, "band spacing as % of fingerprint height (100 = just touching)")
	cmd.Flags().IntVar(&opts.minInner, "min-inner", opts.minInner, "minimum fingerprints in the innermost (violet) band")
	cmd.Flags().Float64Var(&opts.margin, "margin", opts.margin, "page margin in inches")
	cmd.Flags().StringVar(&opts.paperName, "paper", opts.paperName, "paper size name (see 'rainbowpress papers')")
	cmd.Flags().Float64Var(&opts.paperWidth, "paper-width", 0, "custom paper width in inches (implies --paper=Custom)")
	cmd.Flags().Float64Var(&opts.paperHeight, "paper-height", 0, "custom paper height in inches (implies --paper=Custom)")
	cmd.Flags().BoolVar(&opts.autoPaper, "auto-paper", false, "pick the smallest catalog paper that fits")
	cmd.Flags().StringVar(&opts.orientation, "orientation", opts.orientation, "page orientation: portrait or landscape")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().Float64Var(&opts.ppi, "ppi", opts.ppi, "SVG pixel density (pixels per inch)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default: user config dir)")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// applyConfig loads the TOML defaults file and fills in every option the
// user did not set explicitly on the command line.
func applyConfig(cmd *cobra.Command, opts *generateOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil || cfg == nil {
		return err
	}

	changed := cmd.Flags().Changed
	if cfg.Fingerprint.Width > 0 && !changed("width") {
		opts.width = cfg.Fingerprint.Width
	}
	if cfg.Fingerprint.Height > 0 && !changed("height") {
		opts.height = cfg.Fingerprint.Height
	}
	if cfg.Fingerprint.Spacing > 0 && !changed("spacing") {
		opts.spacing = cfg.Fingerprint.Spacing
	}
	if cfg.Fingerprint.MinInner > 0 && !changed("min-inner") {
		opts.minInner = cfg.Fingerprint.MinInner
	}
	if cfg.Page.Paper != "" && !changed("paper") {
		opts.paperName = cfg.Page.Paper
	}
	if cfg.Page.Orientation != "" && !changed("orientation") {
		opts.orientation = cfg.Page.Orientation
	}
	if cfg.Page.Margin != nil && !changed("margin") {
		opts.margin = *cfg.Page.Margin
	}
	if cfg.Page.Auto && !changed("auto-paper") {
		opts.autoPaper = true
	}
	if cfg.Page.Width > 0 && !changed("paper-width") {
		opts.paperWidth = cfg.Page.Width
	}
	if cfg.Page.Height > 0 && !changed("paper-height") {
		opts.paperHeight = cfg.Page.Height
	}
	return nil
}

// applyPreset overrides the fingerprint dimensions with a named preset
// unless the user set them explicitly.
func applyPreset(cmd *cobra.Command, opts *generateOpts) error {
	if opts.preset == "" {
		return nil
	}

	var p rainbow.Params
	switch opts.preset {
	case presetChild:
		p = rainbow.PresetChild
	case presetAdult:
		p = rainbow.PresetAdult
	default:
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid preset: %s (must be 'child' or 'adult')", opts.preset)
	}

	if !cmd.Flags().Changed("width") {
		opts.width = p.Width
	}
	if !cmd.Flags().Changed("height") {
		opts.height = p.Height
	}
	return nil
}

// runGenerate executes the full pipeline: allocate, place, pick paper,
// check fit, render every requested format, and print the summary.
func runGenerate(ctx context.Context, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	params := rainbow.Params{
		Width:          opts.width,
		Height:         opts.height,
		SpacingPercent: opts.spacing,
		MinInner:       opts.minInner,
	}
	if err := errors.ValidateMargin(opts.margin); err != nil {
		return err
	}
	orient, err := paper.ParseOrientation(opts.orientation)
	if err != nil {
		return err
	}

	layout, err := rainbow.New(params)
	if err != nil {
		return err
	}
	logger.Debugf("Allocated %d fingerprints across %d bands", layout.Allocation.Sum(), rainbow.NumBands)

	size, err := pickPaper(layout.Bounds, opts, orient)
	if err != nil {
		return err
	}

	fit := paper.Check(layout.Bounds, opts.margin, size, orient)
	if fit.Oversized {
		printWarning("rainbow %.2f\" x %.2f\" plus %.2f\" margins exceeds %s (%.2f\" x %.2f\" %s)",
			layout.Bounds.Width, layout.Bounds.Height, opts.margin,
			size.Name, fit.PageWidth, fit.PageHeight, orient)
	}

	plan := render.BuildPlan(layout, fit)

	prog := newProgress(logger)
	for _, format := range opts.formats {
		if err := renderAndWrite(plan, format, opts); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(opts.formats)))

	printSummary(layout, fit)
	return nil
}

// pickPaper resolves the target page: auto-selection, a custom size, or
// a catalog lookup.
func pickPaper(b rainbow.Bounds, opts *generateOpts, orient paper.Orientation) (paper.Size, error) {
	if opts.autoPaper {
		return paper.FindSmallest(b, opts.margin, orient, paper.Catalog), nil
	}

	custom := opts.paperWidth > 0 || opts.paperHeight > 0 ||
		strings.EqualFold(opts.paperName, paper.CustomName)
	if custom {
		if opts.paperWidth <= 0 || opts.paperHeight <= 0 {
			return paper.Size{}, errors.New(errors.ErrCodeInvalidPaper,
				"custom paper requires positive --paper-width and --paper-height")
		}
		return paper.Custom(opts.paperWidth, opts.paperHeight), nil
	}

	size, ok := paper.Lookup(opts.paperName)
	if !ok {
		return paper.Size{}, errors.New(errors.ErrCodeInvalidPaper,
			"unknown paper size: %s (see 'rainbowpress papers')", opts.paperName)
	}
	return size, nil
}

// renderAndWrite renders one format and writes it to the derived path.
func renderAndWrite(plan render.Plan, format string, opts *generateOpts) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "svg":
		data = sink.RenderSVG(plan, sink.WithPPI(opts.ppi), sink.WithTitle(planTitle(plan)))
	case "png":
		data, err = sink.RenderPNG(plan, sink.WithPNGSVGOptions(sink.WithPPI(opts.ppi), sink.WithTitle(planTitle(plan))))
	case "pdf":
		data, err = sink.RenderPDF(plan, sink.WithPDFPNGOptions(sink.WithPNGSVGOptions(sink.WithPPI(opts.ppi), sink.WithTitle(planTitle(plan)))))
	case "json":
		data, err = sink.RenderJSON(plan)
	default:
		err = errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
	if err != nil {
		return err
	}

	path := outputPath(opts.output, format, len(opts.formats) > 1)
	out, err := openOutput(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "failed to open %s", path)
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeFileWrite, err, "failed to write %s", path)
	}
	if path != "" {
		printFile(path)
	}
	return nil
}

// planTitle builds the caption drawn above the rainbow, mirroring the
// summary the CLI prints.
func planTitle(plan render.Plan) string {
	l := plan.Layout
	parts := make([]string, 0, rainbow.NumBands)
	for b := rainbow.Band(0); b < rainbow.NumBands; b++ {
		parts = append(parts, fmt.Sprintf("%s: %d", b.Name()[:3], l.Allocation[b]))
	}
	return fmt.Sprintf("Fingerprint Rainbow (Spacing: %.0f%%, Min Inner: %d) - %s",
		l.Params.SpacingPercent, l.Params.MinInner, strings.Join(parts, " | "))
}

// outputPath derives the output file path for a format. An empty output
// with a single format writes to stdout; multiple formats always write
// files, deriving names from the base path.
func outputPath(output, format string, multiple bool) string {
	if output == "" {
		if !multiple {
			return ""
		}
		return "rainbow." + format
	}

	ext := filepath.Ext(output)
	base := output
	if validFormats[strings.TrimPrefix(ext, ".")] {
		base = strings.TrimSuffix(output, ext)
	}
	if !multiple && base == output && ext != "" {
		// Respect an explicit non-format extension for a single file.
		return output
	}
	return base + "." + format
}

// printSummary prints the rainbow dimensions, paper choice, and the
// per-band allocation table.
func printSummary(l *rainbow.Layout, fit paper.FitReport) {
	printNewline()
	fmt.Println(StyleTitle.Render("Fingerprint Rainbow"))
	printKeyValue("Rainbow", fmt.Sprintf("%.2f\" x %.2f\"", l.Bounds.Width, l.Bounds.Height))
	printKeyValue("Paper", fmt.Sprintf("%s (%.2f\" x %.2f\", %s)",
		fit.Paper.Name, fit.PageWidth, fit.PageHeight, fit.Orientation))
	printKeyValue("Margin", fmt.Sprintf("%.2f\"", fit.Margin))
	printKeyValue("Spacing", fmt.Sprintf("%.0f%%", l.Params.SpacingPercent))
	printKeyValue("Min inner", fmt.Sprintf("%d", l.Params.MinInner))
	printNewline()
	fmt.Println(allocationTable(l.Allocation))

	if fit.Oversized {
		printWarning("layout exceeds the page; consider --auto-paper or a larger size")
	} else {
		printSuccess("layout fits the page")
	}
}

// allocationTable renders the per-band counts as a bordered table.
func allocationTable(alloc rainbow.Allocation) string {
	rows := make([][]string, 0, rainbow.NumBands)
	for b := rainbow.Band(0); b < rainbow.NumBands; b++ {
		rows = append(rows, []string{fmt.Sprintf("%d", int(b)), b.Name(), fmt.Sprintf("%d", alloc[b])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Band", "Color", "Count").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		}).
		Render()
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
