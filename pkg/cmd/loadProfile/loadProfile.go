package loadProfile

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/state"
)

func NewCmdLoadProfile(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load-profile <profile>",
		Short: "Activate a profile's keyword in Alfred.",
		Long: "Opens the Alfred search box pre-filled with the profile's " +
			"keyword. Profile 0 opens the profile manager instead.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			if id == config.DefaultsID {
				return alfred.RunTrigger("fuzzy-folders", "")
			}

			p, err := s.Settings.Profile(id)
			if errors.Is(err, config.ErrProfileNotFound) {
				s.Log.Debugw("no such profile", "id", id)
				fmt.Fprintln(cmd.OutOrStdout(), "No such keyword / Fuzzy Folder")
				return nil
			}
			if err != nil {
				return err
			}
			return alfred.Search(p.Keyword + " ")
		},
	}
	return cmd
}
