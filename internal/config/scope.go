package config

// Scope restricts what kind of filesystem entries a search returns. The
// zero value means "unset" and falls back to the defaults.
type Scope int

const (
	ScopeUnset   Scope = 0
	ScopeFolders Scope = 1
	ScopeFiles   Scope = 2
	ScopeAll     Scope = 3
)

var scopeNames = map[Scope]string{
	ScopeFolders: "folders only",
	ScopeFiles:   "files only",
	ScopeAll:     "folders and files",
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return "default"
}

func (s Scope) Valid() bool {
	return s >= ScopeFolders && s <= ScopeAll
}
