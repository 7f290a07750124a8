package filter

import (
	"reflect"
	"testing"
)

func TestPathsVacuousMatch(t *testing.T) {
	paths := []string{"/root/a/b/c.txt"}

	got := Paths(nil, paths, "/root")
	if !reflect.DeepEqual(got, paths) {
		t.Fatalf("expected all paths retained for empty token list, got %v", got)
	}
}

func TestPathsOrderedTokens(t *testing.T) {
	root := "/root"
	paths := []string{"/root/src/lib/test/file.go"}

	got := Paths([]string{"lib", "test"}, paths, root)
	if len(got) != 1 {
		t.Fatalf("expected path retained for in-order tokens, got %v", got)
	}

	got = Paths([]string{"test", "lib"}, paths, root)
	if len(got) != 0 {
		t.Fatalf("expected path dropped for out-of-order tokens, got %v", got)
	}
}

func TestPathsTokenCanRematchSameSegment(t *testing.T) {
	// The window advances to the matched segment, not past it, so a later
	// token may hit the same segment again.
	paths := []string{"/root/library/file.go"}

	got := Paths([]string{"lib", "rary"}, paths, "/root")
	if len(got) != 1 {
		t.Fatalf("expected both tokens to match the same segment, got %v", got)
	}
}

func TestPathsMissedTokenDropsPath(t *testing.T) {
	paths := []string{"/root/src/lib/file.go"}

	got := Paths([]string{"nothere", "lib"}, paths, "/root")
	if len(got) != 0 {
		t.Fatalf("expected path dropped when a token matches nothing, got %v", got)
	}
}

func TestPathsCaseInsensitive(t *testing.T) {
	paths := []string{"/root/Documents/Work/notes.md"}

	got := Paths([]string{"DOCU", "work"}, paths, "/root")
	if len(got) != 1 {
		t.Fatalf("expected case-insensitive match, got %v", got)
	}
}

func TestPathsIgnoresFinalSegment(t *testing.T) {
	// Spotlight already matched the filename; a token only present there
	// must not count.
	paths := []string{"/root/a/b/report.txt"}

	got := Paths([]string{"report"}, paths, "/root")
	if len(got) != 0 {
		t.Fatalf("expected filename-only match to be dropped, got %v", got)
	}
}

func TestPathsPreservesOrder(t *testing.T) {
	root := "/root"
	paths := []string{
		"/root/app/z/file.go",
		"/root/other/file.go",
		"/root/app/a/file.go",
	}

	got := Paths([]string{"app"}, paths, root)
	want := []string{"/root/app/z/file.go", "/root/app/a/file.go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected original order preserved, want %v, got %v", want, got)
	}
}

func TestExcludesConcrete(t *testing.T) {
	root := "/Users/x/Projects"
	paths := []string{
		"/Users/x/Projects/web/app/main.py",
		"/Users/x/Projects/web/app/test_main.py",
	}

	got, err := Excludes(paths, root, []string{"*/web/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected all paths excluded by */web/*, got %v", got)
	}
}

func TestExcludesOrderIndependent(t *testing.T) {
	root := "/root"
	paths := []string{
		"/root/build/out.o",
		"/root/src/main.go",
		"/root/tmp/x",
	}
	patterns := []string{"*build*", "*tmp*"}
	reversed := []string{"*tmp*", "*build*"}

	a, err := Excludes(paths, root, patterns)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Excludes(paths, root, reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"/root/src/main.go"}
	if !reflect.DeepEqual(a, want) || !reflect.DeepEqual(b, want) {
		t.Fatalf("expected %v regardless of pattern order, got %v and %v", want, a, b)
	}
}

func TestExcludesGlobSyntax(t *testing.T) {
	root := "/root"
	paths := []string{
		"/root/cache/a.pyc",
		"/root/src/b.py",
	}

	got, err := Excludes(paths, root, []string{"*.py?"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"/root/src/b.py"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestExcludesBadPattern(t *testing.T) {
	if _, err := Excludes([]string{"/root/a"}, "/root", []string{"["}); err == nil {
		t.Fatal("expected error for unterminated character class")
	}
}

func TestEndToEnd(t *testing.T) {
	root := "/Users/x/Projects"
	paths := []string{
		"/Users/x/Projects/web/app/main.py",
		"/Users/x/Projects/web/app/test_main.py",
	}

	got := Paths([]string{"app"}, paths, root)
	if !reflect.DeepEqual(got, paths) {
		t.Fatalf("expected both paths retained for token 'app', got %v", got)
	}

	remaining, err := Excludes(paths, root, []string{"*/web/*"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := Paths([]string{"app"}, remaining, root); len(got) != 0 {
		t.Fatalf("expected no survivors after exclude, got %v", got)
	}
}

func TestFuzzy(t *testing.T) {
	cases := []struct {
		query string
		s     string
		want  bool
	}{
		{"prj", "Projects", true},
		{"PRJ", "projects", true},
		{"xyz", "Projects", false},
		{"", "anything", true},
		{"stcejorp", "Projects", false},
	}
	for _, tc := range cases {
		if got := Fuzzy(tc.query, tc.s); got != tc.want {
			t.Fatalf("Fuzzy(%q, %q) = %v, want %v", tc.query, tc.s, got, tc.want)
		}
	}
}
