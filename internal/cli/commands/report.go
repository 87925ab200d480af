package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/leapstack-labs/nuclide/internal/cli/output"
	"github.com/leapstack-labs/nuclide/internal/report"
)

// ReportOptions holds options for the report command.
type ReportOptions struct {
	Lines bool // One sentence per nuclide instead of a table
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	opts := &ReportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print nuclear properties for the configured nuclides",
		Long: `Evaluate every configured nuclide and print its atomic mass, nuclear
radius, binding energy per nucleon, beta-decay stability and even-even
fission feasibility, in input order.

Output adapts to environment:
  - Terminal: Styled table
  - Piped/Scripted: Markdown table
  
Use --output to override: auto, text, markdown, json, yaml`,
		Example: `  # Report the built-in reference nuclides
  nuclide report

  # Report specific nuclides
  nuclide report --nuclide 238:92 --nuclide 4:2

  # One line per nuclide
  nuclide report --lines

  # Machine-readable output
  nuclide report -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := runReport(cmd, opts)
			return err
		},
	}

	cmd.Flags().BoolVar(&opts.Lines, "lines", false, "Print one line per nuclide instead of a table")

	return cmd
}

// runReport evaluates the configured nuclides and renders the result. The
// report is returned even when some rows failed so callers can chart it.
func runReport(cmd *cobra.Command, opts *ReportOptions) (*report.Report, error) {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	rep, evalErr := report.Evaluate(cmd.Context(), cmdCtx.Cfg.Nuclides, cmdCtx.Logger)
	if rep == nil {
		return nil, evalErr
	}
	if ctxErr := cmd.Context().Err(); ctxErr != nil {
		return nil, ctxErr
	}

	var renderErr error
	switch r.EffectiveMode() {
	case output.ModeJSON:
		renderErr = r.JSON(rep)
	case output.ModeYAML:
		renderErr = r.YAML(rep)
	default:
		if opts.Lines {
			renderLines(r, rep)
		} else {
			renderReportTable(r, rep)
		}
	}
	if renderErr != nil {
		return rep, fmt.Errorf("failed to render report: %w", renderErr)
	}

	if evalErr != nil {
		return rep, fmt.Errorf("%d of %d nuclides could not be evaluated: %w", rep.Failed(), len(rep.Rows), evalErr)
	}
	return rep, nil
}

var reportHeaders = []string{
	"Nuclide", "Z", "A", "N",
	"Atomic Mass (u)", "Radius (fm)", "B/A (MeV)",
	"Beta-stable", "Even-even Fission",
}

func renderReportTable(r *output.Renderer, rep *report.Report) {
	r.Header(1, fmt.Sprintf("Nuclear Properties (%d nuclides)", len(rep.Rows)))

	rows := make([][]string, 0, len(rep.Rows))
	for _, row := range rep.Rows {
		mass, binding := "n/a", "n/a"
		if row.OK() {
			mass = fmt.Sprintf("%.4f", row.AtomicMass)
			binding = fmt.Sprintf("%.2f", row.BindingPerNucleon)
		}
		rows = append(rows, []string{
			row.Label,
			fmt.Sprintf("%d", row.Z),
			fmt.Sprintf("%d", row.A),
			fmt.Sprintf("%d", row.N),
			mass,
			fmt.Sprintf("%.2f", row.Radius),
			binding,
			r.Bool(row.BetaStable),
			r.Bool(row.EvenEvenFission),
		})
	}
	r.Table(reportHeaders, rows, 2, 3, 4, 5, 6, 7)

	for _, row := range rep.Rows {
		if !row.OK() {
			r.Warning(fmt.Sprintf("%s (Z=%d, A=%d): %v", row.Label, row.Z, row.A, row.Err))
		}
	}
}

func renderLines(r *output.Renderer, rep *report.Report) {
	for _, row := range rep.Rows {
		r.Println(row.Line())
	}
}

// parityTitle renders "even-odd" as "Even-Odd".
func parityTitle(p string) string {
	return cases.Title(language.English).String(p)
}
