package openHelp

import (
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/state"
)

func NewCmdOpenHelp(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open-help",
		Short: "Open the bundled help file in the default browser.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			help := filepath.Join(s.WorkflowDir, "README.html")
			return exec.Command("open", help).Run()
		},
	}
	return cmd
}
