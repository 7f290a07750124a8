package updateSetting

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"go.uber.org/zap"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	dir := t.TempDir()
	if err := config.EnsureSettingsExist(dir); err != nil {
		t.Fatalf("failed to create settings: %v", err)
	}
	settings, err := config.Load(dir)
	if err != nil {
		t.Fatalf("failed to load settings: %v", err)
	}
	return &state.State{Settings: settings, DataDir: dir, Log: zap.NewNop().Sugar()}
}

func TestUpdateProfileSetting(t *testing.T) {
	s := newTestState(t)
	id, err := s.Settings.AddProfile("proj", "/Users/x/Projects")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	q := fmt.Sprintf("%s %s min %s 3", id, constants.Delimiter, constants.Delimiter)
	if err := run(s, &buf, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Settings.Profiles[id].Min != 3 {
		t.Fatalf("expected min 3, got %d", s.Settings.Profiles[id].Min)
	}
	if !strings.Contains(buf.String(), "minimum query length set to 3") {
		t.Fatalf("unexpected output: %q", buf.String())
	}

	// Persisted, not just in memory.
	reloaded, err := config.Load(s.DataDir)
	if err != nil {
		t.Fatalf("failed to reload: %v", err)
	}
	if reloaded.Profiles[id].Min != 3 {
		t.Fatalf("expected persisted min 3, got %d", reloaded.Profiles[id].Min)
	}
}

func TestUpdateScopeSetting(t *testing.T) {
	s := newTestState(t)

	var buf bytes.Buffer
	q := fmt.Sprintf("0 %s scope %s 2", constants.Delimiter, constants.Delimiter)
	if err := run(s, &buf, q); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if s.Settings.Defaults.Scope != config.ScopeFiles {
		t.Fatalf("expected default scope files, got %v", s.Settings.Defaults.Scope)
	}
	if !strings.Contains(buf.String(), "search scope set to files only") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestUpdateUnknownSetting(t *testing.T) {
	s := newTestState(t)

	var buf bytes.Buffer
	q := fmt.Sprintf("0 %s color %s 1", constants.Delimiter, constants.Delimiter)
	if err := run(s, &buf, q); err != nil {
		t.Fatalf("unknown setting must not be a process error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Invalid setting: color") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestUpdateSettingProfileNotFound(t *testing.T) {
	s := newTestState(t)

	var buf bytes.Buffer
	q := fmt.Sprintf("99 %s min %s 3", constants.Delimiter, constants.Delimiter)
	if err := run(s, &buf, q); err != nil {
		t.Fatalf("missing profile must not be a process error, got %v", err)
	}
	if !strings.Contains(buf.String(), "No such keyword / Fuzzy Folder") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
