package manage

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/filter"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/state"
)

func NewCmdManage(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manage [query]",
		Short: "List saved Fuzzy Folder profiles.",
		Long: heredoc.Doc(`
			Shows every saved keyword / Fuzzy Folder pair plus an entry for
			the default settings. A query narrows the list by fuzzy matching
			against keyword and path. Selecting an entry loads its settings.
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := ""
			if len(args) > 0 {
				q = args[0]
			}
			return run(s, cmd.OutOrStdout(), q)
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, q string) error {
	fb := feedback.New()
	fb.Add(feedback.Item{
		Title:    "Default Fuzzy Folder settings",
		Subtitle: "View / change settings",
		Arg:      config.DefaultsID,
		Valid:    true,
		Icon:     &feedback.Icon{Path: feedback.IconSettings},
	})

	ids := s.Settings.ProfileIDs()
	if q != "" {
		narrowed := ids[:0]
		for _, id := range ids {
			p := s.Settings.Profiles[id]
			if filter.Fuzzy(q, p.Keyword+" "+p.Dirpath) {
				narrowed = append(narrowed, id)
			}
		}
		ids = narrowed
	}

	if len(ids) == 0 {
		fb.Warning(
			"No Fuzzy Folders defined",
			"Use the 'Add Fuzzy Folder' File Action to add some",
		)
	}
	for _, id := range ids {
		p := s.Settings.Profiles[id]
		fb.Add(feedback.Item{
			Title: fmt.Sprintf(
				"%s %s %s",
				p.Keyword, constants.Delimiter, pathutil.New(p.Dirpath).AbbrNoSlash(),
			),
			Subtitle:     "View / change settings",
			Arg:          id,
			Autocomplete: p.Keyword,
			Valid:        true,
			Icon:         &feedback.Icon{Path: feedback.IconWorkflow},
		})
	}

	return fb.Send(w)
}
