// Package spotlight queries the macOS desktop-search index.
package spotlight

import (
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"fuzzyfolders/internal/config"
)

// Indexer finds paths under a root whose filename contains query,
// optionally restricted to folders or files.
type Indexer interface {
	Search(root, query string, scope config.Scope) ([]string, error)
}

// MDFind shells out to the mdfind command line tool. A non-zero exit is
// fatal to the invocation; there are no retries or timeouts.
type MDFind struct {
	Log *zap.SugaredLogger
}

func (m MDFind) Search(root, query string, scope config.Scope) ([]string, error) {
	clauses := []string{fmt.Sprintf("(kMDItemFSName == '*%s*'c)", query)}
	switch scope {
	case config.ScopeFolders:
		clauses = append(clauses, "(kMDItemContentType == 'public.folder')")
	case config.ScopeFiles:
		clauses = append(clauses, "(kMDItemContentType != 'public.folder')")
	}

	cmd := exec.Command("mdfind", "-onlyin", root, strings.Join(clauses, " && "))
	m.Log.Debugw("running mdfind", "args", cmd.Args)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("mdfind failed: %w", err)
	}

	// mdfind emits decomposed Unicode; normalize so substring matching
	// against typed queries behaves.
	text := norm.NFC.String(string(out))

	var paths []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	m.Log.Debugw("spotlight hits", "count", len(paths))
	return paths, nil
}
