package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/renderer"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "displays the profile store ranked by net worth" }
func (*summaryCmd) Usage() string {
	return `tn summary

  Displays every profile in the store as a table ranked by declared net
  worth.
`
}

func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	profiles, err := transparence.FindProfiles(*profilesDir, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if len(profiles) == 0 {
		fmt.Printf("The profile store %q is empty. Run 'tn update' first.\n", *profilesDir)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(profiles))
	return subcommands.ExitSuccess
}
