// Package trigger maintains the Script Filter entries the workflow
// registers in Alfred's info.plist, one per saved profile.
package trigger

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"howett.net/plist"

	"fuzzyfolders/internal/config"
	"fuzzyfolders/internal/constants"
	"fuzzyfolders/internal/pathutil"
)

const scriptFilterType = "alfred.workflow.input.scriptfilter"

// scriptPattern identifies Script Filters generated by this workflow, as
// opposed to hand-made ones that merely share the object type.
var scriptPattern = regexp.MustCompile(`ff search ".+?" (\d+)`)

// Every generated Script Filter connects to the same two downstream
// actions: browse-in-Alfred (cmd held) and the plain keyword search.
func connectionActions() []interface{} {
	return []interface{}{
		map[string]interface{}{
			"destinationuid":  "3AC082E0-F48F-4094-8B54-E039CDBC418B",
			"modifiers":       1048576,
			"modifiersubtext": "Browse in Alfred",
		},
		map[string]interface{}{
			"destinationuid":  "8DA965F1-FBE5-4283-A66A-05789AA78758",
			"modifiers":       "",
			"modifiersubtext": "",
		},
	}
}

// Registry mutates the workflow's info.plist.
type Registry struct {
	Path string
	Log  *zap.SugaredLogger
}

func NewRegistry(path string, log *zap.SugaredLogger) *Registry {
	return &Registry{Path: path, Log: log}
}

// Rewrite replaces the workflow's generated Script Filters with one fresh
// entry per profile. The pre-mutation document is copied to a .bak sibling
// first, and the new document is written to a temp path and renamed into
// place.
func (r *Registry) Rewrite(s *config.Settings) error {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", r.Path, err)
	}
	if err := os.WriteFile(r.Path+".bak", data, 0o644); err != nil {
		return fmt.Errorf("failed to back up %s: %w", r.Path, err)
	}

	var doc map[string]interface{}
	if _, err := plist.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", r.Path, err)
	}

	r.reset(doc)
	r.add(doc, s)

	out, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.Path, err)
	}

	tmp := r.Path + ".temp"
	if err := os.WriteFile(tmp, out, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, r.Path); err != nil {
		return err
	}

	// Touch so Alfred notices the workflow changed.
	now := time.Now()
	return os.Chtimes(r.Path, now, now)
}

// reset drops every Script Filter this workflow generated, along with its
// position and connection entries. Reserved keywords and foreign Script
// Filters are kept.
func (r *Registry) reset(doc map[string]interface{}) {
	objects, _ := doc["objects"].([]interface{})

	removed := make(map[string]struct{})
	keep := make([]interface{}, 0, len(objects))
	for _, o := range objects {
		obj, ok := o.(map[string]interface{})
		if !ok || obj["type"] != scriptFilterType {
			keep = append(keep, o)
			continue
		}

		conf, _ := obj["config"].(map[string]interface{})
		keyword, _ := conf["keyword"].(string)
		if _, reserved := constants.ReservedKeywords[keyword]; reserved {
			keep = append(keep, o)
			continue
		}

		script, _ := conf["script"].(string)
		if !scriptPattern.MatchString(script) {
			keep = append(keep, o)
			continue
		}

		if uid, ok := obj["uid"].(string); ok {
			removed[uid] = struct{}{}
		}
	}
	doc["objects"] = keep

	if uidata, ok := doc["uidata"].(map[string]interface{}); ok {
		for uid := range removed {
			delete(uidata, uid)
		}
	}
	if connections, ok := doc["connections"].(map[string]interface{}); ok {
		for uid := range removed {
			delete(connections, uid)
		}
	}

	r.Log.Debugw("script filters removed", "count", len(removed))
}

// add appends one Script Filter per profile, in numeric profile order so
// the editor layout is stable across rewrites.
func (r *Registry) add(doc map[string]interface{}, s *config.Settings) {
	objects, _ := doc["objects"].([]interface{})
	uidata, ok := doc["uidata"].(map[string]interface{})
	if !ok {
		uidata = make(map[string]interface{})
	}
	connections, ok := doc["connections"].(map[string]interface{})
	if !ok {
		connections = make(map[string]interface{})
	}

	ypos := constants.TriggerYPosStart
	for _, id := range s.ProfileIDs() {
		p := s.Profiles[id]
		uid := strings.ToUpper(uuid.NewString())
		dirname := pathutil.New(p.Dirpath).AbbrNoSlash()

		objects = append(objects, map[string]interface{}{
			"type":    scriptFilterType,
			"uid":     uid,
			"version": 0,
			"config": map[string]interface{}{
				"argumenttype":     0,
				"escaping":         102,
				"keyword":          p.Keyword,
				"runningsubtext":   "Loading files…",
				"queuedelaycustom": 3,
				"script":           fmt.Sprintf(`./ff search "$1" %s`, id),
				"subtext":          fmt.Sprintf("Fuzzy search across subdirectories of %s", dirname),
				"title":            fmt.Sprintf("Fuzzy Search %s", dirname),
				"scriptargtype":    1,
				"type":             0,
				"withspace":        true,
			},
		})
		uidata[uid] = map[string]interface{}{"ypos": float64(ypos)}
		connections[uid] = connectionActions()
		ypos += constants.TriggerYStep
	}

	doc["objects"] = objects
	doc["uidata"] = uidata
	doc["connections"] = connections

	r.Log.Debugw("script filters written", "count", len(s.Profiles))
}
