package commands

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nuclide/internal/cli/config"
	"github.com/leapstack-labs/nuclide/internal/cli/testutil"
	"github.com/leapstack-labs/nuclide/internal/report"
	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewReportCommand(t *testing.T) {
	cmd := NewReportCommand()

	assert.Equal(t, "report", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
	assert.NotNil(t, cmd.Flags().Lookup("lines"))
}

func TestNewEvalCommand(t *testing.T) {
	cmd := NewEvalCommand()

	assert.Equal(t, "eval <A> <Z>", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Error(t, cmd.Args(cmd, []string{"238"}))
	assert.NoError(t, cmd.Args(cmd, []string{"238", "92"}))
}

func TestNewPlotCommand(t *testing.T) {
	cmd := NewPlotCommand()

	assert.Equal(t, "plot", cmd.Use)
	for _, flag := range []string{"dir", "format"} {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestReportCommand_DefaultsToReferenceScenario(t *testing.T) {
	out, _, err := execute(t, NewReportCommand())
	require.NoError(t, err)

	testutil.AssertNoANSI(t, out)
	testutil.AssertValidMarkdown(t, out)
	assert.Contains(t, out, "# Nuclear Properties (6 nuclides)")
	assert.Contains(t, out, "| U-238 | 92 | 238 | 146 | 238.0521 | 7.44 | 7.56 | true | true |")
	assert.Contains(t, out, "| O-16 | 8 | 16 | 8 |")
}

func TestReportCommand_Lines(t *testing.T) {
	out, _, err := execute(t, NewReportCommand(), "--lines")
	require.NoError(t, err)

	assert.Contains(t, out, "Z=92, A=238: mass=238.0521 u, radius=7.44 fm, B/A=7.56 MeV/nucleon, beta-stable=true, even-even fission=true")
	assert.Contains(t, out, "Z=8, A=16:")
}

func TestEvalCommand(t *testing.T) {
	out, _, err := execute(t, NewEvalCommand(), "135", "52")
	require.NoError(t, err)

	assert.Contains(t, out, "# Te-135")
	assert.Contains(t, out, "- **Neutrons (N):** 83")
	assert.Contains(t, out, "- **Parity:** Even-Odd")
	assert.Contains(t, out, "- **Pairing term:** 0.0000 MeV")
	assert.Contains(t, out, "- **Even-even fission:** false")
}

func TestEvalCommand_InvalidNuclide(t *testing.T) {
	out, _, err := execute(t, NewEvalCommand(), "0", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, nuclide.ErrInvalidNuclide)

	assert.Contains(t, out, "- **Nuclear radius:** 0.00 fm")
	assert.NotContains(t, out, "Atomic mass")
}

func TestEvalCommand_BadArgs(t *testing.T) {
	_, _, err := execute(t, NewEvalCommand(), "abc", "92")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid mass number")
}

func TestPlotCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	out, _, err := execute(t, NewPlotCommand(), "--dir", dir, "--format", "svg")
	require.NoError(t, err)

	radius := filepath.Join(dir, "nuclear_radius.svg")
	binding := filepath.Join(dir, "binding_energy.svg")
	testutil.AssertFileExists(t, radius)
	testutil.AssertFileExists(t, binding)
	assert.Contains(t, out, "Wrote "+radius)
}

func TestPlotCommand_UnsupportedFormat(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	_, _, err := execute(t, NewPlotCommand(), "--dir", dir, "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, statErr := os.Stat(filepath.Join(dir, "nuclear_radius.gif"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReportCommand_Cancelled(t *testing.T) {
	config.ResetConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := NewReportCommand()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(nil)

	err := cmd.ExecuteContext(ctx)
	require.Error(t, err)
	assert.Equal(t, context.Canceled, err)
	assert.Empty(t, out.String())
}

func TestRenderReportTable_Text(t *testing.T) {
	rep, err := report.Evaluate(context.Background(), []nuclide.Pair{{A: 60, Z: 28}, {A: 0, Z: 0}}, nil)
	require.Error(t, err)

	tr := testutil.NewTestRendererText()
	renderReportTable(tr.Renderer, rep)

	assert.Contains(t, tr.Output(), "Nuclear Properties (2 nuclides)")
	assert.Contains(t, tr.Output(), "Ni-60")
	assert.Contains(t, tr.Output(), "n/a")
	assert.Contains(t, tr.ErrorOutput(), "invalid nuclide")
}

func TestRenderLines_Markdown(t *testing.T) {
	rep, err := report.Evaluate(context.Background(), report.ReferenceScenario, nil)
	require.NoError(t, err)

	tr := testutil.NewTestRendererMarkdown()
	renderLines(tr.Renderer, rep)

	testutil.AssertNoANSI(t, tr.Output())
	assert.Len(t, bytes.Split(bytes.TrimSpace(tr.Out.Bytes()), []byte("\n")), 6)
}

func TestParityTitle(t *testing.T) {
	assert.Equal(t, "Even-Even", parityTitle("even-even"))
	assert.Equal(t, "Odd-Even", parityTitle("odd-even"))
}
