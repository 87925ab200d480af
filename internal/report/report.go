// Package report evaluates an ordered list of nuclei into display rows.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

// ReferenceScenario is the default input list, in display order.
var ReferenceScenario = []nuclide.Pair{
	{A: 238, Z: 92},
	{A: 239, Z: 94},
	{A: 252, Z: 98},
	{A: 135, Z: 52},
	{A: 16, Z: 8},
	{A: 60, Z: 28},
}

// Row holds every evaluated quantity for one nuclide.
type Row struct {
	Label             string  `json:"label" yaml:"label"`
	A                 int     `json:"a" yaml:"a"`
	Z                 int     `json:"z" yaml:"z"`
	N                 int     `json:"n" yaml:"n"`
	AtomicMass        float64 `json:"atomic_mass_u" yaml:"atomic_mass_u"`
	Radius            float64 `json:"radius_fm" yaml:"radius_fm"`
	BindingPerNucleon float64 `json:"binding_energy_per_nucleon_mev" yaml:"binding_energy_per_nucleon_mev"`
	PairingTerm       float64 `json:"pairing_term_mev" yaml:"pairing_term_mev"`
	BetaStable        bool    `json:"beta_stable" yaml:"beta_stable"`
	EvenEvenFission   bool    `json:"even_even_fission" yaml:"even_even_fission"`
	Parity            string  `json:"parity" yaml:"parity"`
	Err               error   `json:"-" yaml:"-"`
	Error             string  `json:"error,omitempty" yaml:"error,omitempty"`
}

// OK reports whether the row's energy and mass quantities were computed.
func (r Row) OK() bool {
	return r.Err == nil
}

// Line formats the row as a single human-readable sentence.
func (r Row) Line() string {
	if r.Err != nil {
		return fmt.Sprintf("Z=%d, A=%d: error: %v", r.Z, r.A, r.Err)
	}
	return fmt.Sprintf("Z=%d, A=%d: mass=%.4f u, radius=%.2f fm, B/A=%.2f MeV/nucleon, beta-stable=%t, even-even fission=%t",
		r.Z, r.A, r.AtomicMass, r.Radius, r.BindingPerNucleon, r.BetaStable, r.EvenEvenFission)
}

// Report is the result of one evaluation pass.
type Report struct {
	RunID string `json:"run_id" yaml:"run_id"`
	Rows  []Row  `json:"nuclides" yaml:"nuclides"`
}

// Failed returns the number of rows that carry an error.
func (r *Report) Failed() int {
	count := 0
	for _, row := range r.Rows {
		if row.Err != nil {
			count++
		}
	}
	return count
}

// EvaluateOne computes a single row. Quantities that cannot fail are always
// populated; on error the energy and mass fields are left at zero.
func EvaluateOne(n nuclide.Nuclide) Row {
	row := Row{
		Label:           n.String(),
		A:               n.A(),
		Z:               n.Z(),
		N:               n.N(),
		Radius:          n.NuclearRadius(),
		BetaStable:      n.IsStableToBetaDecay(),
		EvenEvenFission: n.IsEvenEvenFissionPossible(),
		Parity:          n.Parity().String(),
	}

	perNucleon, err := n.BindingEnergyPerNucleon()
	if err != nil {
		return row.withErr(err)
	}
	mass, err := n.AtomicMass()
	if err != nil {
		return row.withErr(err)
	}
	delta, err := n.PairingTerm()
	if err != nil {
		return row.withErr(err)
	}

	row.BindingPerNucleon = perNucleon
	row.AtomicMass = mass
	row.PairingTerm = delta
	return row
}

func (r Row) withErr(err error) Row {
	r.Err = err
	r.Error = err.Error()
	return r
}

// Evaluate computes one row per pair, preserving input order. Rows that fail
// are kept with Err set; the returned error joins every row error so callers
// can still display the partial result.
func Evaluate(ctx context.Context, pairs []nuclide.Pair, logger *slog.Logger) (*Report, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rep := &Report{
		RunID: uuid.NewString(),
		Rows:  make([]Row, 0, len(pairs)),
	}
	logger = logger.With("run_id", rep.RunID)
	logger.Debug("evaluating nuclides", "count", len(pairs))

	var errs []error
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		row := EvaluateOne(nuclide.FromPair(p))
		if row.Err != nil {
			logger.Warn("nuclide evaluation failed", "index", i, "a", p.A, "z", p.Z, "error", row.Err)
			errs = append(errs, fmt.Errorf("nuclide %d (A=%d, Z=%d): %w", i, p.A, p.Z, row.Err))
		} else {
			logger.Debug("evaluated nuclide", "nuclide", row.Label, "binding_per_nucleon", row.BindingPerNucleon)
		}
		rep.Rows = append(rep.Rows, row)
	}

	return rep, errors.Join(errs...)
}
