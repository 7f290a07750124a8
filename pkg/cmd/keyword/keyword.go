package keyword

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/query"
	"fuzzyfolders/internal/state"
)

func NewCmdKeyword(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keyword <query>",
		Short: "Choose a keyword for a new Fuzzy Folder.",
		Long: heredoc.Doc(`
			The query is a "directory ➣ keyword" combination. Shows the
			pending keyword assignment along with warnings about keywords or
			folders that are already taken; selecting the offer commits it
			via the update action.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, rawQuery string) error {
	dirStr, kw, err := query.SplitDelimited(rawQuery)
	if err != nil {
		return err
	}
	dir := pathutil.New(dirStr)
	s.Log.Debugw("keyword", "dir", dir.String(), "keyword", kw)

	profileExists := false
	var keywordWarnings, dirpathWarnings []string
	for _, id := range s.Settings.ProfileIDs() {
		p := s.Settings.Profiles[id]
		if kw == p.Keyword && dir.AbsNoSlash() == p.Dirpath {
			profileExists = true
		}
		if kw == p.Keyword {
			keywordWarnings = append(keywordWarnings, fmt.Sprintf(
				"'%s' searches %s",
				p.Keyword, pathutil.New(p.Dirpath).AbbrNoSlash(),
			))
		} else if dir.AbsNoSlash() == p.Dirpath {
			dirpathWarnings = append(dirpathWarnings, fmt.Sprintf(
				"Folder already linked to '%s'", p.Keyword,
			))
		}
	}

	// A trailing delimiter means the user deleted the space after it:
	// back up one level in the file tree.
	if strings.HasSuffix(rawQuery, constants.Delimiter) {
		parent := pathutil.New(filepath.Dir(dir.AbsNoSlash()))
		return alfred.RunTrigger("choose-folder", parent.AbbrSlash())
	}

	fb := feedback.New()
	if kw == "" {
		fb.Note("Enter a keyword for the Folder", dir.String(), feedback.IconNote)
		for _, warning := range dirpathWarnings {
			fb.Note(warning, "But you can set multiple keywords per folder", feedback.IconInfo)
		}
		return fb.Send(w)
	}

	if profileExists {
		fb.Warning(
			"This keyword > Fuzzy Folder already exists",
			fmt.Sprintf("'%s' already linked to %s", kw, dir.AbbrNoSlash()),
		)
	} else {
		fb.Add(feedback.Item{
			Title:    fmt.Sprintf("Set '%s' as keyword for %s", kw, dir.AbbrNoSlash()),
			Subtitle: dir.String(),
			Arg:      fmt.Sprintf("%s %s %s", dir, constants.Delimiter, kw),
			Valid:    true,
			Icon:     &feedback.Icon{Path: feedback.IconWorkflow},
		})
		for _, warning := range dirpathWarnings {
			fb.Note(warning, "But you can set multiple keywords per folder", feedback.IconInfo)
		}
		for _, warning := range keywordWarnings {
			fb.Note(warning, "But you can use the same keyword for multiple folders", feedback.IconInfo)
		}
	}
	return fb.Send(w)
}
