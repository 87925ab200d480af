package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leapstack-labs/nuclide/internal/cli"
	"github.com/leapstack-labs/nuclide/internal/cli/config"
)

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())
	config.ResetConfig()

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("version command error = %v", err)
	}

	if output := buf.String(); !strings.Contains(output, "nuclide") {
		t.Errorf("version output should contain 'nuclide', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Errorf("help command error = %v", err)
	}

	output := buf.String()
	for _, expected := range []string{"report", "eval", "plot"} {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}
