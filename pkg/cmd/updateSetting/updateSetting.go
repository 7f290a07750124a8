package updateSetting

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/query"
	"fuzzyfolders/internal/state"
)

var settingNames = map[string]string{
	"min":   "minimum query length",
	"scope": "search scope",
}

func NewCmdUpdateSetting(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update-setting <query>",
		Short: "Store a new value for a profile or default setting.",
		Long: "The query is a full \"profile ➣ setting ➣ value\" triple. " +
			"A value of 0 clears a profile override so the default applies.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s, cmd.OutOrStdout(), args[0])
		},
	}
	return cmd
}

func run(s *state.State, w io.Writer, rawQuery string) error {
	sq, err := query.ParseSettings(rawQuery)
	if err != nil {
		return err
	}
	s.Log.Debugw("update setting",
		"profile", sq.Profile, "setting", sq.Setting, "value", sq.Value)

	err = s.Settings.SetOption(sq.Profile, sq.Setting, sq.Value)
	switch {
	case errors.Is(err, config.ErrUnknownSetting):
		fmt.Fprintf(w, "Invalid setting: %s\n", sq.Setting)
		return nil
	case errors.Is(err, config.ErrProfileNotFound):
		fmt.Fprintln(w, "No such keyword / Fuzzy Folder")
		return nil
	case err != nil:
		return err
	}

	valuestr := strconv.Itoa(sq.Value)
	if sq.Value == 0 {
		valuestr = "default"
	} else if sq.Setting == "scope" {
		valuestr = config.Scope(sq.Value).String()
	}

	fmt.Fprintf(w, "%s set to %s\n", settingNames[sq.Setting], valuestr)
	return nil
}
