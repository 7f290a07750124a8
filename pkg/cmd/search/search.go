package search

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/filter"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/query"
	"fuzzyfolders/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query> [profile]",
		Short: "Search a Fuzzy Folder and print result feedback.",
		Long: heredoc.Doc(`
			With a profile id, searches that profile's folder using its
			options. Without one, the query must be an ad-hoc
			"directory ➣ phrase" combination searched with the default
			options.

			The last word of the phrase is matched against filenames by
			Spotlight; any preceding words must appear, in order, in the
			directory segments above each hit.
		`),
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			profileID := ""
			if len(args) > 1 {
				profileID = args[1]
			}
			return run(s, cmd.OutOrStdout(), args[0], profileID)
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, rawQuery, profileID string) error {
	if profileID == "" {
		return runAdHoc(s, w, rawQuery)
	}

	p, err := s.Settings.Profile(profileID)
	if errors.Is(err, config.ErrProfileNotFound) {
		s.Log.Debugw("profile not found", "id", profileID)
		fb := feedback.New()
		fb.Warning("No such keyword / Fuzzy Folder", "")
		return fb.Send(w)
	}
	if err != nil {
		return err
	}

	return doSearch(s, w, p.Dirpath, rawQuery,
		s.Settings.ScopeFor(p), s.Settings.MinFor(p), s.Settings.ExcludesFor(p))
}

func runAdHoc(s *state.State, w io.Writer, rawQuery string) error {
	if !strings.Contains(rawQuery, constants.Delimiter) {
		// Not one of ours; hand the query back to the launcher.
		s.Log.Debugw("no delimiter found, bouncing to Alfred")
		return alfred.Search(rawQuery)
	}

	rootStr, phrase, err := query.SplitDelimited(rawQuery)
	if err != nil {
		return err
	}
	root := pathutil.New(rootStr)

	d := s.Settings.Defaults
	return doSearch(s, w, root.AbsNoSlash(), phrase, d.Scope, d.Min, d.Excludes)
}

func doSearch(
	s *state.State,
	w io.Writer,
	root, phrase string,
	scope config.Scope,
	min int,
	excludes []string,
) error {
	fb := feedback.New()

	index, refinements := query.Tokenize(phrase)
	if index == "" || utf8.RuneCountInString(index) < min {
		s.Log.Debugw("query too short", "min", min, "index", index)
		fb.Warning("Query too short", fmt.Sprintf("minimum length is %d", min))
		return fb.Send(w)
	}

	paths, err := s.Indexer.Search(root, index, scope)
	if err != nil {
		return fmt.Errorf("spotlight search: %w", err)
	}

	if len(excludes) > 0 {
		paths, err = filter.Excludes(paths, root, excludes)
		if err != nil {
			return err
		}
	}
	if len(refinements) > 0 {
		paths = filter.Paths(refinements, paths, root)
	}

	if len(paths) == 0 {
		fb.Warning("No results found", "Try a different query")
	}
	for _, p := range paths {
		fb.Add(feedback.Item{
			Title:    filepath.Base(p),
			Subtitle: pathutil.Abbreviate(p),
			Arg:      p,
			UID:      p,
			Valid:    true,
			Type:     "file",
			Icon:     &feedback.Icon{Path: p, Type: "fileicon"},
		})
	}

	return fb.Send(w)
}
