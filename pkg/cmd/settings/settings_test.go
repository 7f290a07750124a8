package settings

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/state"
)

func newTestState() *state.State {
	return &state.State{
		Settings: &config.Settings{
			Defaults: config.Defaults{Min: 2, Scope: config.ScopeFolders},
			Profiles: map[string]config.Profile{
				"1": {Keyword: "proj", Dirpath: "/tmp/projects", Min: 4},
			},
		},
		Log: zap.NewNop().Sugar(),
	}
}

func decodeItems(t *testing.T, buf *bytes.Buffer) []feedback.Item {
	t.Helper()

	var fb feedback.Feedback
	if err := json.Unmarshal(buf.Bytes(), &fb); err != nil {
		t.Fatalf("invalid feedback JSON: %v", err)
	}
	return fb.Items
}

func TestSettingsListsProfileOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 3 {
		t.Fatalf("expected header plus two settings, got %+v", items)
	}
	if items[0].Title != "proj" || items[0].Subtitle != "/tmp/projects" {
		t.Fatalf("unexpected header: %+v", items[0])
	}
	if !strings.Contains(items[1].Title, "Minimum query length : 4") {
		t.Fatalf("min row should show the override, got %q", items[1].Title)
	}
	if !strings.Contains(items[2].Title, "Search scope : default") {
		t.Fatalf("scope row should fall back to default, got %q", items[2].Title)
	}
	if items[1].Autocomplete != "1 ➣ min ➣ " {
		t.Fatalf("min row autocomplete should drill down, got %q", items[1].Autocomplete)
	}
}

func TestSettingsListsDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 3 {
		t.Fatalf("expected header plus two settings, got %+v", items)
	}
	if items[0].Title != "Fuzzy Folder Defaults" {
		t.Fatalf("unexpected header: %+v", items[0])
	}
	if !strings.Contains(items[1].Title, "Minimum query length : 2") {
		t.Fatalf("defaults min row wrong: %q", items[1].Title)
	}
	if !strings.Contains(items[2].Title, "Search scope : folders only") {
		t.Fatalf("defaults scope row wrong: %q", items[2].Title)
	}
}

func TestSettingsPromptsScopeOptions(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1 ➣ scope ➣ "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 4 {
		t.Fatalf("expected four scope options, got %+v", items)
	}
	if items[0].Arg != "1 ➣ scope ➣ 1" {
		t.Fatalf("unexpected first option arg: %q", items[0].Arg)
	}
	if items[3].Title != "Default" || items[3].Arg != "1 ➣ scope ➣ 0" {
		t.Fatalf("last option should clear the override, got %+v", items[3])
	}
}

func TestSettingsConfirmsUpdate(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1 ➣ min ➣ 3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 1 {
		t.Fatalf("expected a single confirmation, got %+v", items)
	}
	if items[0].Title != "Set minimum query length to 3" {
		t.Fatalf("unexpected confirmation: %q", items[0].Title)
	}
	if items[0].Arg != "1 ➣ min ➣ 3" || !items[0].Valid {
		t.Fatalf("confirmation should be actionable: %+v", items[0])
	}
}

func TestSettingsConfirmsScopeByName(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1 ➣ scope ➣ 2"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 1 || items[0].Title != "Set search scope to files only" {
		t.Fatalf("scope confirmation should use the scope name, got %+v", items)
	}
}

func TestSettingsZeroValueMeansDefault(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1 ➣ min ➣ 0"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 1 || items[0].Title != "Set minimum query length to default" {
		t.Fatalf("zero should read as default, got %+v", items)
	}
}

func TestSettingsUnknownProfile(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "9"); err != nil {
		t.Fatalf("missing profiles are not fatal, got %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 1 || items[0].Title != "No such keyword / Fuzzy Folder" {
		t.Fatalf("expected the missing-profile warning, got %+v", items)
	}
}

func TestSettingsUnknownSetting(t *testing.T) {
	var buf bytes.Buffer
	if err := run(newTestState(), &buf, "1 ➣ bogus ➣ "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 1 || !strings.Contains(items[0].Title, "Unknown setting : bogus") {
		t.Fatalf("expected the unknown-setting note, got %+v", items)
	}
}
