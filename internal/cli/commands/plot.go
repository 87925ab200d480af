package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nuclide/internal/chart"
	"github.com/leapstack-labs/nuclide/internal/cli/config"
	"github.com/leapstack-labs/nuclide/internal/cli/output"
	"github.com/leapstack-labs/nuclide/internal/report"
)

// PlotOptions holds options for the plot command.
type PlotOptions struct {
	Dir    string // Overrides charts.dir
	Format string // Overrides charts.format
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render radius and binding energy charts",
		Long: `Render two line charts against atomic number Z, in input order:
nuclear radius (fm) and binding energy per nucleon (MeV).

Charts are written as nuclear_radius.<format> and binding_energy.<format>
into the charts directory.`,
		Example: `  # Write PNG charts into ./charts
  nuclide plot

  # Write SVG charts elsewhere
  nuclide plot --dir out --format svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", "", "Directory to write charts into")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Image format: png, svg, pdf")

	return cmd
}

func runPlot(cmd *cobra.Command, opts *PlotOptions) error {
	cmdCtx := NewCommandContext(cmd)

	charts := cmdCtx.Cfg.Charts
	if opts.Dir != "" {
		charts.Dir = opts.Dir
	}
	if opts.Format != "" {
		charts.Format = opts.Format
	}
	if err := charts.ChartOptions().Validate(); err != nil {
		return fmt.Errorf("invalid plot options: %w", err)
	}

	rep, evalErr := report.Evaluate(cmd.Context(), cmdCtx.Cfg.Nuclides, cmdCtx.Logger)
	if rep == nil {
		return evalErr
	}
	if rep.Failed() == len(rep.Rows) {
		return fmt.Errorf("no nuclide could be evaluated, charts not written: %w", evalErr)
	}
	if err := writeCharts(cmdCtx, charts, rep); err != nil {
		return err
	}
	if evalErr != nil {
		return fmt.Errorf("%d of %d nuclides were left off the charts: %w", rep.Failed(), len(rep.Rows), evalErr)
	}
	return nil
}

func writeCharts(cmdCtx *CommandContext, charts config.ChartsConfig, rep *report.Report) error {
	paths, err := chart.WriteFiles(charts.Dir, rep.Rows, charts.ChartOptions(), cmdCtx.Logger.With("run_id", rep.RunID))
	if err != nil {
		return fmt.Errorf("failed to write charts: %w", err)
	}
	r := cmdCtx.Renderer
	for _, p := range paths {
		switch r.EffectiveMode() {
		case output.ModeJSON, output.ModeYAML:
			cmdCtx.Logger.Info("wrote chart", "path", p)
		default:
			r.Success("Wrote " + p)
		}
	}
	return nil
}

// RunDefault evaluates the configured nuclides, prints the one-line-per-
// nuclide report and, when enabled, writes both charts.
func RunDefault(cmd *cobra.Command) error {
	rep, reportErr := runReport(cmd, &ReportOptions{Lines: true})
	if rep == nil {
		return reportErr
	}

	cmdCtx := NewCommandContext(cmd)
	if !cmdCtx.Cfg.Charts.Enabled {
		return reportErr
	}
	if rep.Failed() == len(rep.Rows) {
		switch cmdCtx.Renderer.EffectiveMode() {
		case output.ModeJSON, output.ModeYAML:
			cmdCtx.Logger.Info("charts not written", "reason", "no nuclide could be evaluated")
		default:
			cmdCtx.Renderer.Muted("No nuclide could be evaluated; charts not written.")
		}
		return reportErr
	}
	if err := writeCharts(cmdCtx, cmdCtx.Cfg.Charts, rep); err != nil {
		return errors.Join(reportErr, err)
	}
	return reportErr
}
