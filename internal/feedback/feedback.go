// Package feedback builds the Script Filter JSON document Alfred reads
// from stdout. Expected failure states (query too short, no results,
// unknown setting) become non-selectable items rather than process errors,
// because the launcher has no other channel for "nothing happened".
package feedback

import (
	"encoding/json"
	"io"
)

// System icons for informational items.
const (
	IconWorkflow = "icon.png"
	IconWarning  = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertCautionIcon.icns"
	IconNote     = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertNoteIcon.icns"
	IconInfo     = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/ToolbarInfo.icns"
	IconSettings = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/ToolbarAdvanced.icns"
	IconError    = "/System/Library/CoreServices/CoreTypes.bundle/Contents/Resources/AlertStopIcon.icns"
)

type Icon struct {
	Path string `json:"path"`
	// Type "fileicon" makes Alfred show the icon of the file at Path.
	Type string `json:"type,omitempty"`
}

type Item struct {
	UID          string `json:"uid,omitempty"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle,omitempty"`
	Arg          string `json:"arg,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty"`
	Type         string `json:"type,omitempty"`
	Valid        bool   `json:"valid"`
	Icon         *Icon  `json:"icon,omitempty"`
}

type Feedback struct {
	Items []Item `json:"items"`
}

func New() *Feedback {
	return &Feedback{Items: []Item{}}
}

func (fb *Feedback) Add(item Item) {
	fb.Items = append(fb.Items, item)
}

// Warning adds a non-selectable caution item.
func (fb *Feedback) Warning(title, subtitle string) {
	fb.Add(Item{
		Title:    title,
		Subtitle: subtitle,
		Icon:     &Icon{Path: IconWarning},
	})
}

// Note adds a non-selectable informational item.
func (fb *Feedback) Note(title, subtitle, icon string) {
	fb.Add(Item{
		Title:    title,
		Subtitle: subtitle,
		Icon:     &Icon{Path: icon},
	})
}

// Send writes the item list to w as a Script Filter JSON document.
func (fb *Feedback) Send(w io.Writer) error {
	enc := json.NewEncoder(w)
	return enc.Encode(fb)
}
