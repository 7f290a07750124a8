// Package filter narrows Spotlight hits to the paths the user meant.
package filter

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"
)

// Excludes returns the subset of paths whose root-relative form matches
// none of the shell-style glob patterns. Patterns are compiled without a
// separator, so * crosses directory boundaries the way fnmatch does.
// The first matching pattern drops the path; original order is preserved.
func Excludes(paths []string, root string, patterns []string) ([]string, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, pat := range patterns {
		g, err := glob.Compile(pat)
		if err != nil {
			return nil, fmt.Errorf("bad exclude pattern %q: %w", pat, err)
		}
		globs = append(globs, g)
	}

	var hits []string
	for _, p := range paths {
		rel := strings.TrimPrefix(p, root)
		excluded := false
		for _, g := range globs {
			if g.Match(rel) {
				excluded = true
				break
			}
		}
		if !excluded {
			hits = append(hits, p)
		}
	}
	return hits, nil
}

// Paths returns the subset of paths whose directory segments contain every
// token as a case-insensitive substring, in the order given.
//
// For each path the root prefix is stripped, the remainder lower-cased and
// split on /, and the final segment dropped: Spotlight already matched the
// filename, so counting it again would let a path through on the strength
// of its basename alone. Tokens are then matched against a shrinking
// window over the segments. A hit at index j moves the window start to j
// (inclusive), so the next token must match at that segment or later; a
// token that matches nowhere in the window leaves it untouched and later
// tokens still get their chance. A path survives only when every token
// found a segment.
func Paths(tokens []string, paths []string, root string) []string {
	lowered := make([]string, len(tokens))
	for i, t := range tokens {
		lowered[i] = strings.ToLower(t)
	}

	var hits []string
	for _, p := range paths {
		rel := strings.ToLower(strings.TrimPrefix(p, root))
		segments := strings.Split(rel, "/")
		if len(segments) > 0 {
			segments = segments[:len(segments)-1]
		}

		window := segments
		matched := 0
		for _, tok := range lowered {
			for j, seg := range window {
				if strings.Contains(seg, tok) {
					matched++
					window = window[j:]
					break
				}
			}
		}
		if matched == len(lowered) {
			hits = append(hits, p)
		}
	}
	return hits
}

// Fuzzy reports whether every rune of query appears in s in order,
// ignoring case. Used to narrow the choose and manage listings as the
// user types.
func Fuzzy(query, s string) bool {
	want := []rune(strings.ToLower(query))
	i := 0
	for _, r := range strings.ToLower(s) {
		if i < len(want) && r == want[i] {
			i++
		}
	}
	return i == len(want)
}
