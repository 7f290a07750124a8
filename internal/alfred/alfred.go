// Package alfred drives the Alfred application from the outside, via the
// JXA scripting bridge. Used to bounce queries back into the launcher and
// to fire the workflow's own external triggers.
package alfred

import (
	"fmt"
	"os"
	"os/exec"
)

const appID = "com.runningwithcrayons.Alfred"

// BundleID returns the workflow bundle identifier Alfred exports to
// subprocesses.
func BundleID() string {
	return os.Getenv("alfred_workflow_bundleid")
}

// RunTrigger fires an external trigger of this workflow with an argument.
func RunTrigger(name, arg string) error {
	script := fmt.Sprintf(
		`Application(%q).runTrigger(%q, {inWorkflow: %q, withArgument: %q});`,
		appID, name, BundleID(), arg,
	)
	return runJS(script)
}

// Search opens the Alfred search box pre-filled with query.
func Search(query string) error {
	return runJS(fmt.Sprintf(`Application(%q).search(%q);`, appID, query))
}

// ReloadWorkflow makes Alfred re-read the workflow's info.plist after a
// trigger rewrite.
func ReloadWorkflow() error {
	script := fmt.Sprintf(
		`Application(%q).reloadWorkflow(%q);`,
		appID, BundleID(),
	)
	return runJS(script)
}

func runJS(script string) error {
	cmd := exec.Command("/usr/bin/osascript", "-l", "JavaScript", "-e", script)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("osascript failed: %v: %s", err, out)
	}
	return nil
}
