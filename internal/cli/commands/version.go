package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// BuildInfo describes the binary, usually stamped with -ldflags.
type BuildInfo struct {
	Version   string
	BuildDate string
	GitCommit string
}

// NewVersionCommand creates the version command.
func NewVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display nuclide version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "nuclide v%s\n", info.Version)
			_, _ = fmt.Fprintln(w, "Semi-empirical nuclear property calculator")
			_, _ = fmt.Fprintf(w, "  commit: %s\n", info.GitCommit)
			_, _ = fmt.Fprintf(w, "  built:  %s\n", info.BuildDate)
		},
	}
}
