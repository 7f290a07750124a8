package remove

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/state"
	"fuzzyfolders/internal/trigger"
)

func NewCmdRemove(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <profile>",
		Short: "Delete a keyword / Fuzzy Folder profile.",
		Long: "Removes the saved profile and rewrites the workflow's " +
			"Script Filters so the trigger disappears too.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, id string) error {
	err := s.Settings.RemoveProfile(id)
	if errors.Is(err, config.ErrProfileNotFound) {
		s.Log.Debugw("no such profile", "id", id)
		fmt.Fprintln(w, "No such keyword / Fuzzy Folder")
		return nil
	}
	if err != nil {
		return err
	}

	reg := trigger.NewRegistry(filepath.Join(s.WorkflowDir, "info.plist"), s.Log)
	if err := reg.Rewrite(s.Settings); err != nil {
		return err
	}

	fmt.Fprintln(w, "Deleted keyword / Fuzzy Folder")
	return nil
}
