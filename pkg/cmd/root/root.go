package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/state"
	"fuzzyfolders/pkg/cmd/add"
	"fuzzyfolders/pkg/cmd/alfredSearch"
	"fuzzyfolders/pkg/cmd/choose"
	"fuzzyfolders/pkg/cmd/keyword"
	"fuzzyfolders/pkg/cmd/loadProfile"
	"fuzzyfolders/pkg/cmd/loadSettings"
	"fuzzyfolders/pkg/cmd/manage"
	"fuzzyfolders/pkg/cmd/openHelp"
	"fuzzyfolders/pkg/cmd/remove"
	"fuzzyfolders/pkg/cmd/search"
	"fuzzyfolders/pkg/cmd/settings"
	"fuzzyfolders/pkg/cmd/updateSetting"
	"fuzzyfolders/pkg/cmd/updateTriggers"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "ff",
		Version: constants.Version,
		Short:   "Fuzzy search across a folder hierarchy, driven by Alfred.",
		Long: heredoc.Doc(`
			ff is the script behind the Fuzzy Folders Alfred workflow. Alfred
			invokes it with an action verb per keystroke; it queries the
			Spotlight index, narrows the hits by fuzzy path-segment matching,
			and prints a Script Filter JSON document to stdout.

			Saved profiles bind a keyword to a root folder. Each profile is
			registered as its own Script Filter in the workflow's info.plist.
		`),
		SilenceUsage: true,
	}

	cmd.AddCommand(
		choose.NewCmdChoose(s),
		add.NewCmdAdd(s),
		keyword.NewCmdKeyword(s),
		updateTriggers.NewCmdUpdate(s),
		remove.NewCmdRemove(s),
		search.NewCmdSearch(s),
		manage.NewCmdManage(s),
		loadProfile.NewCmdLoadProfile(s),
		loadSettings.NewCmdLoadSettings(s),
		settings.NewCmdSettings(s),
		updateSetting.NewCmdUpdateSetting(s),
		alfredSearch.NewCmdAlfredSearch(s),
		openHelp.NewCmdOpenHelp(s),
	)

	return cmd, nil
}
