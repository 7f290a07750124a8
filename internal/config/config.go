// Package config owns the workflow's persisted settings document: the
// default search options and the map of keyword / Fuzzy Folder profiles.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultsID is the pseudo profile id that addresses the default settings
// in settings and update-setting queries.
const DefaultsID = "0"

var (
	ErrProfileNotFound = errors.New("no such profile")
	ErrUnknownSetting  = errors.New("unknown setting")
)

// Profile binds a trigger keyword to a root directory plus search options.
// Min and Scope are overrides; their zero values defer to the defaults.
type Profile struct {
	Keyword  string   `yaml:"keyword"           json:"keyword"`
	Dirpath  string   `yaml:"dirpath"           json:"dirpath"`
	Excludes []string `yaml:"excludes"          json:"excludes"`
	Min      int      `yaml:"min,omitempty"     json:"min,omitempty"`
	Scope    Scope    `yaml:"scope,omitempty"   json:"scope,omitempty"`
}

// Defaults are the fallback search options for profiles without overrides
// and for ad-hoc searches.
type Defaults struct {
	Min      int      `yaml:"min"                json:"min"`
	Scope    Scope    `yaml:"scope"              json:"scope"`
	Excludes []string `yaml:"excludes,omitempty" json:"excludes,omitempty"`
}

// Settings is the persisted settings document. Profile ids are
// string-typed sequential integers.
type Settings struct {
	Defaults Defaults           `yaml:"defaults" json:"defaults"`
	Profiles map[string]Profile `yaml:"profiles" json:"profiles"`

	path string `yaml:"-"`
}

// Load reads the settings document from dataDir, installing the stock
// defaults when the document is empty or has none.
func Load(dataDir string) (*Settings, error) {
	path := GetSettingsPath(dataDir)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := &Settings{path: path}
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse settings: %w", err)
		}
	}
	s.ensureDefaults()
	return s, nil
}

func (s *Settings) ensureDefaults() {
	if s.Profiles == nil {
		s.Profiles = make(map[string]Profile)
	}
	if s.Defaults.Min == 0 {
		s.Defaults.Min = 1
	}
	if !s.Defaults.Scope.Valid() {
		s.Defaults.Scope = ScopeFolders
	}
}

// Save writes the document to a sibling temp file and renames it over the
// original, so a crash mid-write never leaves a torn document behind.
func (s *Settings) Save() error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

// AddProfile stores a new keyword / directory profile under the next free
// id (max existing numeric id + 1) and saves. Ids are strings because the
// settings document requires string keys.
func (s *Settings) AddProfile(keyword, dirpath string) (string, error) {
	last := 0
	for id := range s.Profiles {
		if n, err := strconv.Atoi(id); err == nil && n > last {
			last = n
		}
	}

	id := strconv.Itoa(last + 1)
	s.Profiles[id] = Profile{
		Keyword:  keyword,
		Dirpath:  dirpath,
		Excludes: []string{},
	}
	return id, s.Save()
}

// Profile returns the profile stored under id.
func (s *Settings) Profile(id string) (Profile, error) {
	p, ok := s.Profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, id)
	}
	return p, nil
}

// RemoveProfile deletes the profile stored under id and saves.
func (s *Settings) RemoveProfile(id string) error {
	if _, ok := s.Profiles[id]; !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, id)
	}
	delete(s.Profiles, id)
	return s.Save()
}

// ProfileIDs returns the profile ids in numeric order.
func (s *Settings) ProfileIDs() []string {
	ids := make([]string, 0, len(s.Profiles))
	for id := range s.Profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, _ := strconv.Atoi(ids[i])
		b, _ := strconv.Atoi(ids[j])
		return a < b
	})
	return ids
}

// MinFor resolves the effective minimum query length for a profile.
func (s *Settings) MinFor(p Profile) int {
	if p.Min > 0 {
		return p.Min
	}
	return s.Defaults.Min
}

// ScopeFor resolves the effective search scope for a profile.
func (s *Settings) ScopeFor(p Profile) Scope {
	if p.Scope.Valid() {
		return p.Scope
	}
	return s.Defaults.Scope
}

// ExcludesFor returns the default exclude patterns followed by the
// profile's own. Pattern order only affects short-circuiting, never the
// surviving set.
func (s *Settings) ExcludesFor(p Profile) []string {
	excludes := append([]string(nil), s.Defaults.Excludes...)
	return append(excludes, p.Excludes...)
}

// SetOption updates the min or scope setting on a profile, or on the
// defaults when id is DefaultsID, and saves. A value of 0 clears a profile
// override so the default applies again.
func (s *Settings) SetOption(id, setting string, value int) error {
	if setting != "min" && setting != "scope" {
		return fmt.Errorf("%w: %q", ErrUnknownSetting, setting)
	}

	if id == DefaultsID {
		switch setting {
		case "min":
			s.Defaults.Min = value
		case "scope":
			s.Defaults.Scope = Scope(value)
		}
		s.ensureDefaults()
		return s.Save()
	}

	p, ok := s.Profiles[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, id)
	}
	switch setting {
	case "min":
		p.Min = value
	case "scope":
		p.Scope = Scope(value)
	}
	s.Profiles[id] = p
	return s.Save()
}
