package updateTriggers

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/pathutil"
	"fuzzyfolders/internal/query"
	"fuzzyfolders/internal/state"
	"fuzzyfolders/internal/trigger"
)

func NewCmdUpdate(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [query]",
		Short: "Save a new profile and regenerate the workflow's triggers.",
		Long: heredoc.Doc(`
			With a "directory ➣ keyword" query, stores a new profile and
			rewrites the Script Filters in info.plist to match the saved
			profiles. Without a query, only the rewrite happens, which
			repairs triggers after a manual edit or an update of the
			workflow itself.
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

func run(s *state.State, w io.Writer, rawQuery string) error {
	reg := trigger.NewRegistry(filepath.Join(s.WorkflowDir, "info.plist"), s.Log)

	if rawQuery == "" {
		if err := reg.Rewrite(s.Settings); err != nil {
			return err
		}
		return alfred.ReloadWorkflow()
	}

	dirStr, kw, err := query.SplitDelimited(rawQuery)
	if err != nil {
		return err
	}
	dir := pathutil.New(dirStr)

	id, err := s.Settings.AddProfile(kw, dir.AbsNoSlash())
	if err != nil {
		return err
	}
	s.Log.Debugw("profile added", "id", id, "keyword", kw, "dirpath", dir.String())

	if err := reg.Rewrite(s.Settings); err != nil {
		return err
	}

	fmt.Fprintf(w, "Keyword '%s' searches %s\n", kw, dir.AbbrNoSlash())
	return alfred.ReloadWorkflow()
}
