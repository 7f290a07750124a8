package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Dirpath is a directory path with helpers for the four forms the workflow
// needs: absolute with/without a trailing slash, and the home-abbreviated
// (~/) variants used for display and autocompletion. Comparisons always
// operate on the absolute forms; the abbreviated forms are cosmetic.
type Dirpath string

// New expands a leading ~ and resolves p to an absolute path.
func New(p string) Dirpath {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = home + strings.TrimPrefix(p, "~")
		}
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return Dirpath(filepath.Clean(p))
	}
	return Dirpath(abs)
}

func (d Dirpath) String() string {
	return string(d)
}

// AbsSlash returns the absolute path with a trailing slash.
func (d Dirpath) AbsSlash() string {
	p := string(d)
	if !strings.HasSuffix(p, "/") {
		return p + "/"
	}
	return p
}

// AbsNoSlash returns the absolute path without a trailing slash. The root
// directory keeps its slash.
func (d Dirpath) AbsNoSlash() string {
	p := string(d)
	if strings.HasSuffix(p, "/") && p != "/" {
		return p[:len(p)-1]
	}
	return p
}

// AbbrSlash returns the home-abbreviated path with a trailing slash.
func (d Dirpath) AbbrSlash() string {
	p := Abbreviate(d.AbsSlash())
	if !strings.HasSuffix(p, "/") {
		return p + "/"
	}
	return p
}

// AbbrNoSlash returns the home-abbreviated path without a trailing slash.
func (d Dirpath) AbbrNoSlash() string {
	p := Abbreviate(d.AbsSlash())
	if strings.HasSuffix(p, "/") && p != "/" && p != "~/" {
		return p[:len(p)-1]
	}
	return p
}

// SplitQuery splits the path into an existing directory and a residual
// query. If the slash-terminated path exists as a directory on disk it is
// returned unchanged with an empty query; otherwise the split is purely
// lexical at the last slash. Nonexistent roots are not an error.
func (d Dirpath) SplitQuery() (Dirpath, string) {
	if fi, err := os.Stat(d.AbsSlash()); err == nil && fi.IsDir() {
		return d, ""
	}

	p := d.AbsNoSlash()
	pos := strings.LastIndex(p, "/")
	if pos < 0 {
		return d, ""
	}

	query := p[pos+1:]
	if pos == 0 {
		return New("/"), query
	}
	return New(p[:pos]), query
}

// Abbreviate replaces the home-directory prefix of p with ~/ for display.
func Abbreviate(p string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return p
	}
	if !strings.HasSuffix(home, "/") {
		home += "/"
	}
	if strings.HasPrefix(p, home) {
		return "~/" + p[len(home):]
	}
	return p
}
