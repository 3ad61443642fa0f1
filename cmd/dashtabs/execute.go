package dashtabs

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/dashtabs/pkg/modules/builtin"
	"github.com/arthur-debert/dashtabs/pkg/render"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6B6B"})

// Execute runs dashtabs with the built-in modules and returns the exit code
func Execute() int {
	rootCmd, a := newRoot(builtin.Catalog())
	return execute(rootCmd, a, os.Stderr)
}

func execute(rootCmd *cobra.Command, a *app, stderr io.Writer) int {
	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	a.reportError(rootCmd.OutOrStdout(), stderr, err)
	return 1
}

// reportError writes err as JSON to out when JSON output was requested, and
// as a styled message to stderr otherwise
func (a *app) reportError(out, stderr io.Writer, err error) {
	if a.errorFormat() == render.FormatJSON {
		if jsonErr := render.NewJSON(out).RenderError(err); jsonErr == nil {
			return
		}
	}
	fmt.Fprintln(stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
}

// errorFormat is the configured format, or the --format flag when the
// configuration never loaded
func (a *app) errorFormat() render.Format {
	value := a.flags.format
	if a.cfg != nil {
		value = a.cfg.Output.Format
	}
	format, err := render.ParseFormat(value)
	if err != nil {
		return render.FormatText
	}
	return format
}
