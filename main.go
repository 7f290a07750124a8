package main

import (
	"github.com/spf13/cobra"

	"fuzzyfolders/internal/state"
	"fuzzyfolders/pkg/cmd/root"
)

func main() {
	s, err := state.New()
	cobra.CheckErr(err)

	cmd, err := root.NewCmdRoot(s)
	cobra.CheckErr(err)

	cobra.CheckErr(cmd.Execute())
}
