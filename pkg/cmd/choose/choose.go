package choose

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/filter"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/state"
)

func NewCmdChoose(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "choose <dir>",
		Short: "Browse a directory's subfolders to pick a new Fuzzy Folder.",
		Long: heredoc.Doc(`
			Lists the directory and its immediate subdirectories as feedback
			items. Anything typed past the last existing directory narrows
			the listing. Selecting an item hands the folder to the add
			action.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, raw string) error {
	dir, q := pathutil.New(raw).SplitQuery()
	s.Log.Debugw("choose", "dir", dir.String(), "query", q)

	fi, err := os.Stat(dir.AbsNoSlash())
	if err != nil || !fi.IsDir() {
		s.Log.Debugw("does not exist or not a directory", "dir", dir.String())
		return nil
	}

	fb := feedback.New()
	if q == "" {
		fb.Add(feedback.Item{
			Title:        dir.AbbrNoSlash(),
			Subtitle:     fmt.Sprintf("Add %s as a new Fuzzy Folder", dir.AbbrNoSlash()),
			Arg:          dir.AbsSlash(),
			Autocomplete: dir.AbbrSlash(),
			Valid:        true,
			Type:         "file",
			Icon:         &feedback.Icon{Path: dir.AbsNoSlash(), Type: "fileicon"},
		})
	}

	entries, err := os.ReadDir(dir.AbsNoSlash())
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if q != "" && !filter.Fuzzy(q, name) {
			continue
		}

		p := pathutil.New(filepath.Join(dir.AbsNoSlash(), name))
		fb.Add(feedback.Item{
			Title:        name,
			Subtitle:     fmt.Sprintf("Add %s as a new Fuzzy Folder", p.AbbrNoSlash()),
			Arg:          p.AbsNoSlash(),
			Autocomplete: p.AbbrSlash(),
			Valid:        true,
			Type:         "file",
			Icon:         &feedback.Icon{Path: p.AbsNoSlash(), Type: "fileicon"},
		})
	}

	return fb.Send(w)
}
