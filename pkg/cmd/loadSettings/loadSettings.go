package loadSettings

import (
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/state"
)

func NewCmdLoadSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load-settings <profile>",
		Short: "Open a profile's settings in Alfred.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return alfred.RunTrigger("set", args[0])
		},
	}
	return cmd
}
