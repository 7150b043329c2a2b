package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/renderer"
)

type reportCmd struct {
	asJSON bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "displays one person's consolidated profile" }
func (*reportCmd) Usage() string {
	return `tn report [-json] "<person>"

  Displays the consolidated profile of one person from the profile store:
  totals, records per kind, family situation and source declarations.
  The person is matched by name (case, accents and hyphens ignored) or by
  profile id.

Usage Examples:
$ tn report "Jean Dupont"
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the profile as JSON instead of markdown.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a person name or profile id is expected.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	profile, err := transparence.FindProfile(*profilesDir, query)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	if c.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(profile); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.ProfileMarkdown(profile))
	return subcommands.ExitSuccess
}
