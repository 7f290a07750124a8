package alfredSearch

import (
	"fmt"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/state"
)

func NewCmdAlfredSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alfred-search <query>",
		Short: "Start an ad-hoc fuzzy search on a directory in Alfred.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := pathutil.New(args[0])
			s.Log.Debugw("alfred-search", "dir", d.String())
			arg := fmt.Sprintf("%s %s ", d.AbbrNoSlash(), constants.Delimiter)
			return alfred.RunTrigger("search", arg)
		},
	}
	return cmd
}
