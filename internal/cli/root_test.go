package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/nuclide/internal/chart"
	"github.com/leapstack-labs/nuclide/internal/cli/config"
	"github.com/leapstack-labs/nuclide/internal/cli/testutil"
	"github.com/leapstack-labs/nuclide/internal/report"
	"github.com/leapstack-labs/nuclide/pkg/nuclide"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	config.ResetConfig()

	cmd := NewRootCmd()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHelp(t *testing.T) {
	testutil.ChdirTemp(t)

	out, _, err := run(t, "--help")
	require.NoError(t, err)

	for _, sub := range []string{"report", "eval", "plot", "version", "completion"} {
		assert.Contains(t, out, sub)
	}
}

func TestDefaultRun(t *testing.T) {
	dir := testutil.ChdirTemp(t)

	out, _, err := run(t, "--charts-format", "svg")
	require.NoError(t, err)

	assert.Contains(t, out, "Z=92, A=238: mass=238.0521 u, radius=7.44 fm, B/A=7.56 MeV/nucleon, beta-stable=true, even-even fission=true")
	assert.Contains(t, out, "Z=28, A=60:")
	testutil.AssertFileExists(t, filepath.Join(dir, "charts", "nuclear_radius.svg"))
	testutil.AssertFileExists(t, filepath.Join(dir, "charts", "binding_energy.svg"))
}

func TestDefaultRun_NoCharts(t *testing.T) {
	dir := testutil.ChdirTemp(t)

	out, _, err := run(t, "--no-charts")
	require.NoError(t, err)

	assert.NotContains(t, out, "Wrote")
	_, statErr := os.Stat(filepath.Join(dir, "charts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDefaultRun_ConfigFile(t *testing.T) {
	dir := testutil.ChdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nuclide.yaml"), []byte(`charts:
  enabled: false
nuclides:
  - a: 4
    z: 2
`), 0644))

	out, _, err := run(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Z=2, A=4:")
	assert.NotContains(t, out, "A=238")
}

func TestDefaultRun_AllInvalid(t *testing.T) {
	dir := testutil.ChdirTemp(t)

	out, _, err := run(t, "--nuclide", "0:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, nuclide.ErrInvalidNuclide)
	assert.NotErrorIs(t, err, chart.ErrNoData)

	assert.Contains(t, out, "error: ")
	assert.Contains(t, out, "charts not written")
	_, statErr := os.Stat(filepath.Join(dir, "charts", "nuclear_radius.png"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPlot_UnsupportedFormat(t *testing.T) {
	dir := testutil.ChdirTemp(t)

	_, _, err := run(t, "plot", "--format", "gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")

	_, statErr := os.Stat(filepath.Join(dir, "charts", "nuclear_radius.gif"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestPlot_AllInvalid(t *testing.T) {
	dir := testutil.ChdirTemp(t)

	_, _, err := run(t, "plot", "--nuclide", "0:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, nuclide.ErrInvalidNuclide)

	_, statErr := os.Stat(filepath.Join(dir, "charts"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestReport_JSON(t *testing.T) {
	testutil.ChdirTemp(t)

	out, _, err := run(t, "report", "-o", "json")
	require.NoError(t, err)
	testutil.AssertNoANSI(t, out)

	var rep report.Report
	require.NoError(t, json.Unmarshal([]byte(out), &rep))
	assert.NotEmpty(t, rep.RunID)
	require.Len(t, rep.Rows, 6)
	assert.Equal(t, 238, rep.Rows[0].A)
	assert.Equal(t, 28, rep.Rows[5].Z)
	assert.InDelta(t, 238.0, rep.Rows[0].AtomicMass, 0.5)
}

func TestReport_InvalidNuclide(t *testing.T) {
	testutil.ChdirTemp(t)

	out, errOut, err := run(t, "report", "--nuclide", "16:8", "--nuclide", "0:0")
	require.Error(t, err)
	assert.ErrorIs(t, err, nuclide.ErrInvalidNuclide)
	assert.Contains(t, err.Error(), "1 of 2 nuclides")

	assert.Contains(t, out, "| O-16 |")
	assert.Contains(t, out, "| n-0 |")
	assert.Contains(t, errOut, "invalid nuclide")
}

func TestEval_YAML(t *testing.T) {
	testutil.ChdirTemp(t)

	out, _, err := run(t, "eval", "60", "28", "-o", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "label: Ni-60")
	assert.Contains(t, out, "even_even_fission: true")
	assert.Contains(t, out, "parity: even-even")
}

func TestInvalidOutputFlag(t *testing.T) {
	testutil.ChdirTemp(t)

	_, _, err := run(t, "report", "-o", "csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestVersionCommand(t *testing.T) {
	testutil.ChdirTemp(t)

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "nuclide v"+Version)
	assert.Contains(t, out, "commit: "+GitCommit)
	assert.Contains(t, out, "built:  "+BuildDate)
}

func TestCompletionCommand(t *testing.T) {
	out, _, err := run(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "nuclide")

	_, _, err = run(t, "completion", "tcsh")
	assert.Error(t, err)
}
