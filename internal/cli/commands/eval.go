package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/nuclide/internal/cli/output"
	"github.com/leapstack-labs/nuclide/internal/report"
	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <A> <Z>",
		Short: "Show every computed property of a single nuclide",
		Long: `Evaluate one nuclide given its mass number A and atomic number Z.

Besides the report columns this shows the total binding energy, the pairing
term, the Z/N parity class and the neutron/proton ratio.`,
		Example: `  # Uranium-238
  nuclide eval 238 92

  # As JSON
  nuclide eval 60 28 -o json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid mass number %q: %w", args[0], err)
			}
			z, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid atomic number %q: %w", args[1], err)
			}
			return runEval(cmd, nuclide.New(a, z))
		},
	}

	return cmd
}

func runEval(cmd *cobra.Command, n nuclide.Nuclide) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	row := report.EvaluateOne(n)
	cmdCtx.Logger.Debug("evaluated nuclide", "nuclide", row.Label, "ok", row.OK())

	var err error
	switch r.EffectiveMode() {
	case output.ModeJSON:
		err = r.JSON(row)
	case output.ModeYAML:
		err = r.YAML(row)
	default:
		renderEval(r, n, row)
	}
	if err != nil {
		return fmt.Errorf("failed to render nuclide: %w", err)
	}

	if row.Err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", row.Label, row.Err)
	}
	return nil
}

func renderEval(r *output.Renderer, n nuclide.Nuclide, row report.Row) {
	r.Header(1, row.Label)

	r.KeyValue("Mass number (A)", strconv.Itoa(row.A))
	r.KeyValue("Atomic number (Z)", strconv.Itoa(row.Z))
	r.KeyValue("Neutrons (N)", strconv.Itoa(row.N))
	r.KeyValue("Parity", parityTitle(row.Parity))
	if ratio, ok := n.NeutronProtonRatio(); ok {
		r.KeyValue("N/Z", fmt.Sprintf("%.3f", ratio))
	}
	r.KeyValue("Nuclear radius", fmt.Sprintf("%.2f fm", row.Radius))

	if row.OK() {
		total, _ := n.BindingEnergy()
		r.KeyValue("Binding energy", fmt.Sprintf("%.2f MeV", total))
		r.KeyValue("Binding energy per nucleon", fmt.Sprintf("%.2f MeV", row.BindingPerNucleon))
		r.KeyValue("Pairing term", fmt.Sprintf("%.4f MeV", row.PairingTerm))
		r.KeyValue("Atomic mass", fmt.Sprintf("%.4f u", row.AtomicMass))
	}

	r.KeyValue("Beta-stable", r.Bool(row.BetaStable))
	r.KeyValue("Even-even fission", r.Bool(row.EvenEvenFission))
}
