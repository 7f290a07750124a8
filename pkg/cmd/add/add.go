package add

import (
	"fmt"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/state"
)

func NewCmdAdd(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <dir>",
		Short: "Start registering a directory as a Fuzzy Folder.",
		Long: "Fires the keyword trigger so Alfred asks which keyword " +
			"should search the directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := pathutil.New(args[0])
			s.Log.Debugw("add", "dir", d.String())
			arg := fmt.Sprintf("%s %s ", d.AbbrNoSlash(), constants.Delimiter)
			return alfred.RunTrigger("key", arg)
		},
	}
	return cmd
}
