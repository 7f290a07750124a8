package manage

import (
	"bytes"
	"encoding/json"
	"testing"

	"go.uber.org/zap"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/feedback"
	"fuzzyfolders/internal/state"
)

func newTestState(profiles map[string]config.Profile) *state.State {
	return &state.State{
		Settings: &config.Settings{
			Defaults: config.Defaults{Min: 1, Scope: config.ScopeFolders},
			Profiles: profiles,
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

func TestListProfiles(t *testing.T) {
	s := newTestState(map[string]config.Profile{
		"2":  {Keyword: "docs", Dirpath: "/Users/x/Documents"},
		"1":  {Keyword: "proj", Dirpath: "/Users/x/Projects"},
		"10": {Keyword: "dl", Dirpath: "/Users/x/Downloads"},
	})

	var buf bytes.Buffer
	if err := run(s, &buf, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 4 {
		t.Fatalf("expected defaults entry plus 3 profiles, got %+v", items)
	}
	if items[0].Title != "Default Fuzzy Folder settings" || items[0].Arg != "0" {
		t.Fatalf("unexpected defaults entry: %+v", items[0])
	}
	// Numeric id order, not lexicographic.
	if items[1].Arg != "1" || items[2].Arg != "2" || items[3].Arg != "10" {
		t.Fatalf("expected numeric id order, got %q %q %q",
			items[1].Arg, items[2].Arg, items[3].Arg)
	}
	if items[1].Autocomplete != "proj" {
		t.Fatalf("expected keyword autocomplete, got %q", items[1].Autocomplete)
	}
}

func TestListProfilesFiltered(t *testing.T) {
	s := newTestState(map[string]config.Profile{
		"1": {Keyword: "proj", Dirpath: "/Users/x/Projects"},
		"2": {Keyword: "docs", Dirpath: "/Users/x/Documents"},
	})

	var buf bytes.Buffer
	if err := run(s, &buf, "proj"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 2 {
		t.Fatalf("expected defaults entry plus 1 match, got %+v", items)
	}
	if items[1].Arg != "1" {
		t.Fatalf("expected profile 1, got %+v", items[1])
	}
}

func TestListProfilesEmpty(t *testing.T) {
	s := newTestState(map[string]config.Profile{})

	var buf bytes.Buffer
	if err := run(s, &buf, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := decodeItems(t, &buf)
	if len(items) != 2 {
		t.Fatalf("expected defaults entry plus placeholder, got %+v", items)
	}
	if items[1].Title != "No Fuzzy Folders defined" || items[1].Valid {
		t.Fatalf("unexpected placeholder: %+v", items[1])
	}
}
