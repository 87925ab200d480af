// Package chart draws line/marker plots of evaluated nuclides against
// atomic number.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/leapstack-labs/nuclide/internal/report"
)

// ErrNoData is returned when a series has no points to draw.
var ErrNoData = errors.New("chart: series has no data points")

// Supported image formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

// Formats lists the accepted values for Options.Format.
var Formats = []string{FormatPNG, FormatSVG, FormatPDF}

// IsFormat reports whether f is a supported image format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if strings.EqualFold(f, known) {
			return true
		}
	}
	return false
}

// Series is one chart: a titled sequence of (x, y) points with a legend entry.
type Series struct {
	Name   string
	Title  string
	XLabel string
	YLabel string
	Legend string
	X      []float64
	Y      []float64
}

// Len implements plotter.XYer.
func (s Series) Len() int { return len(s.X) }

// XY implements plotter.XYer.
func (s Series) XY(i int) (x, y float64) { return s.X[i], s.Y[i] }

// Options controls the rendered image.
type Options struct {
	// Width and Height in inches.
	Width  float64
	Height float64
	// Format is one of Formats.
	Format string
}

// DefaultOptions returns a 6x4 inch PNG.
func DefaultOptions() Options {
	return Options{Width: 6, Height: 4, Format: FormatPNG}
}

var lineColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// RadiusSeries plots nuclear radius against Z, in input order. The radius is
// defined for every row, including rows whose binding evaluation failed.
func RadiusSeries(rows []report.Row) Series {
	s := Series{
		Name:   "nuclear_radius",
		Title:  "Nuclear Radius vs Atomic Number",
		XLabel: "Atomic Number (Z)",
		YLabel: "Nuclear Radius (fm)",
		Legend: "Nuclear Radius",
	}
	for _, r := range rows {
		s.X = append(s.X, float64(r.Z))
		s.Y = append(s.Y, r.Radius)
	}
	return s
}

// BindingSeries plots binding energy per nucleon against Z, in input order,
// skipping rows that carry an error.
func BindingSeries(rows []report.Row) Series {
	s := Series{
		Name:   "binding_energy",
		Title:  "Binding Energy per Nucleon vs Atomic Number",
		XLabel: "Atomic Number (Z)",
		YLabel: "Binding Energy per Nucleon (MeV)",
		Legend: "Binding Energy per Nucleon",
	}
	for _, r := range rows {
		if !r.OK() {
			continue
		}
		s.X = append(s.X, float64(r.Z))
		s.Y = append(s.Y, r.BindingPerNucleon)
	}
	return s
}

// Build assembles the plot for s without rendering it.
func Build(s Series) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, ErrNoData
	}
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("chart: %d x values but %d y values", len(s.X), len(s.Y))
	}

	p := plot.New()
	p.Title.Text = s.Title
	p.X.Label.Text = s.XLabel
	p.Y.Label.Text = s.YLabel
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(s)
	if err != nil {
		return nil, fmt.Errorf("chart: %s: %w", s.Name, err)
	}
	line.Color = lineColor
	points.Color = lineColor
	points.Shape = draw.CircleGlyph{}

	p.Add(line, points)
	p.Legend.Add(s.Legend, line, points)
	p.Legend.Top = true

	return p, nil
}

// Validate reports whether opts names a supported format and a positive size.
func (o Options) Validate() error {
	if !IsFormat(o.Format) {
		return fmt.Errorf("chart: unsupported format %q (want one of %s)", o.Format, strings.Join(Formats, ", "))
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("chart: invalid size %gx%g", o.Width, o.Height)
	}
	return nil
}

// Render draws s to w in the format and size given by opts.
func Render(w io.Writer, s Series, opts Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	p, err := Build(s)
	if err != nil {
		return err
	}
	return encode(w, p, s.Name, opts)
}

func encode(w io.Writer, p *plot.Plot, name string, opts Options) error {
	wt, err := p.WriterTo(vg.Length(opts.Width)*vg.Inch, vg.Length(opts.Height)*vg.Inch, strings.ToLower(opts.Format))
	if err != nil {
		return fmt.Errorf("chart: %s: %w", name, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("chart: writing %s: %w", name, err)
	}
	return nil
}

// WriteFiles renders both charts for rows into dir and returns the paths
// written, in radius, binding order. Options and both plots are checked
// before anything touches dir, so a rejected call leaves no files behind.
func WriteFiles(dir string, rows []report.Row, opts Options, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	series := []Series{RadiusSeries(rows), BindingSeries(rows)}
	plots := make([]*plot.Plot, len(series))
	for i, s := range series {
		p, err := Build(s)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		plots[i] = p
	}

	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create chart directory: %w", err)
	}

	var written []string
	for i, s := range series {
		path := filepath.Join(dir, s.Name+"."+strings.ToLower(opts.Format))
		if err := writeFile(path, plots[i], s.Name, opts); err != nil {
			return written, err
		}
		logger.Debug("wrote chart", "path", path, "points", s.Len())
		written = append(written, path)
	}
	return written, nil
}

// writeFile encodes into a temporary file next to path and renames it into
// place once the image is complete.
func writeFile(path string, p *plot.Plot, name string, opts Options) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if err = encode(f, p, name, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
