package constants

const (
	Version = `0.1.0`

	SettingsFile     = `settings`
	SettingsFileType = `yaml`
	DataDir          = `/.fuzzyfolders/`

	// Delimiter separates the directory part of a query from the keyword
	// or search phrase. It never appears in a POSIX path and is unlikely
	// to be typed by accident.
	Delimiter = `➣`

	// Vertical layout of generated Script Filter objects on the workflow
	// editor canvas.
	TriggerYPosStart = 1360
	TriggerYStep     = 135
)

// ReservedKeywords belong to the workflow's own Script Filters and must
// survive a trigger regeneration.
var ReservedKeywords = map[string]struct{}{
	"fzyup":   {},
	"fzyhelp": {},
	"fuzzy":   {},
}
