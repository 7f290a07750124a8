package settings

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/alfred"
	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/query"
	"fuzzyfolders/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings <query>",
		Short: "Show and edit a profile's search options.",
		Long: heredoc.Doc(`
			The query is "profile ➣ setting ➣ value", filled in step by step
			as the user drills down in Alfred. With only a profile, lists its
			settings; with a setting, prompts for a value; with a value,
			offers the update. Profile 0 addresses the defaults.
		`),
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
	s.Log.Debugw("settings",
		"profile", sq.Profile, "setting", sq.Setting,
		"value", sq.Value, "hasValue", sq.HasValue)

	// Trailing delimiter: the user deleted the space after it, back up
	// one level.
	if strings.HasSuffix(rawQuery, constants.Delimiter) {
		return alfred.RunTrigger("set", sq.Profile)
	}

	if sq.Profile == "" {
		return alfred.RunTrigger("search", "")
	}

	fb := feedback.New()

	var p config.Profile
	isDefaults := sq.Profile == config.DefaultsID
	if !isDefaults {
		p, err = s.Settings.Profile(sq.Profile)
		if errors.Is(err, config.ErrProfileNotFound) {
			fb.Warning("No such keyword / Fuzzy Folder", "")
			return fb.Send(w)
		}
		if err != nil {
			return err
		}
	}

	if sq.Setting == "" {
		title, subtitle := p.Keyword, p.Dirpath
		if isDefaults {
			title = "Fuzzy Folder Defaults"
			subtitle = "Overridden by Folder-specific settings"
		}
		fb.Note(title, subtitle, feedback.IconWorkflow)
	}

	switch {
	case sq.HasValue:
		confirmUpdate(fb, sq)
	case sq.Setting != "":
		promptValue(fb, sq)
	default:
		listSettings(fb, s, sq.Profile, p, isDefaults)
	}
	return fb.Send(w)
}

// confirmUpdate offers a single actionable item committing the new value.
func confirmUpdate(fb *feedback.Feedback, sq query.SettingsQuery) {
	var name, valuestr string
	switch sq.Setting {
	case "min":
		name = "minimum query length"
		valuestr = strconv.Itoa(sq.Value)
	case "scope":
		name = "search scope"
		valuestr = config.Scope(sq.Value).String()
	default:
		fb.Note(
			fmt.Sprintf("Unknown setting : %s", sq.Setting),
			"Hit ⌫ to choose again",
			feedback.IconError,
		)
		return
	}
	if sq.Value == 0 {
		valuestr = "default"
	}

	arg := fmt.Sprintf("%s %s %s %s %d",
		sq.Profile, constants.Delimiter, sq.Setting, constants.Delimiter, sq.Value)
	fb.Add(feedback.Item{
		Title:    fmt.Sprintf("Set %s to %s", name, valuestr),
		Subtitle: "↩ to update",
		Arg:      arg,
		Valid:    true,
		Icon:     &feedback.Icon{Path: feedback.IconSettings},
	})
}

// promptValue asks for a value for the chosen setting.
func promptValue(fb *feedback.Feedback, sq query.SettingsQuery) {
	switch sq.Setting {
	case "min":
		fb.Note("Enter a minimum query length", "Enter 0 to use default", feedback.IconInfo)
	case "scope":
		options := []struct {
			scope    config.Scope
			title    string
			subtitle string
		}{
			{config.ScopeFolders, "Folders only", "Only search for folders"},
			{config.ScopeFiles, "Files only", "Only search for files"},
			{config.ScopeAll, "Folders and files", "Search for folders and files"},
			{config.ScopeUnset, "Default", "Use default setting"},
		}
		for _, opt := range options {
			arg := fmt.Sprintf("%s %s scope %s %d",
				sq.Profile, constants.Delimiter, constants.Delimiter, opt.scope)
			fb.Add(feedback.Item{
				Title:    opt.title,
				Subtitle: opt.subtitle,
				Arg:      arg,
				Valid:    true,
				Icon:     &feedback.Icon{Path: feedback.IconSettings},
			})
		}
	default:
		fb.Note(
			fmt.Sprintf("Unknown setting : %s", sq.Setting),
			"Hit ⌫ to choose again",
			feedback.IconError,
		)
	}
}

// listSettings shows the current min and scope with autocomplete into the
// per-setting prompt.
func listSettings(
	fb *feedback.Feedback,
	s *state.State,
	profileID string,
	p config.Profile,
	isDefaults bool,
) {
	minValue := "default"
	if isDefaults {
		minValue = strconv.Itoa(s.Settings.Defaults.Min)
	} else if p.Min > 0 {
		minValue = strconv.Itoa(p.Min)
	}
	arg := fmt.Sprintf("%s %s min %s ", profileID, constants.Delimiter, constants.Delimiter)
	fb.Add(feedback.Item{
		Title:        fmt.Sprintf("Minimum query length : %s", minValue),
		Subtitle:     "The last part of your query must be this long to trigger a search",
		Arg:          arg,
		Autocomplete: arg,
		Icon:         &feedback.Icon{Path: feedback.IconSettings},
	})

	scopeValue := "default"
	if isDefaults {
		scopeValue = s.Settings.Defaults.Scope.String()
	} else if p.Scope.Valid() {
		scopeValue = p.Scope.String()
	}
	arg = fmt.Sprintf("%s %s scope %s ", profileID, constants.Delimiter, constants.Delimiter)
	fb.Add(feedback.Item{
		Title:        fmt.Sprintf("Search scope : %s", scopeValue),
		Subtitle:     "Should results be folders and/or files?",
		Arg:          arg,
		Autocomplete: arg,
		Icon:         &feedback.Icon{Path: feedback.IconSettings},
	})
}
