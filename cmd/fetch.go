package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/google/subcommands"

	"github.com/tlecomte/transparence/hatvp"
)

type fetchCmd struct {
	refresh bool
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetches a person's declarations from the registry" }
func (*fetchCmd) Usage() string {
	return `tn fetch [-refresh] "<given-name> <family-name>"

  Looks the person up in the published declaration index and downloads
  every declaration document into the local cache. Name matching ignores
  case, accents and hyphens.

  The index itself is cached for a day; -refresh forces a new download.

Usage Examples:
$ tn fetch "Jean Dupont"
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Force a fresh download of the declaration index.")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: a person name is expected.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	given, family, ok := splitName(strings.Join(f.Args(), " "))
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: expected a given name and a family name.")
		return subcommands.ExitUsageError
	}

	client := appClient()
	index, err := client.Index(ctx, c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the declaration index: %v\n", err)
		return subcommands.ExitFailure
	}

	entries := hatvp.FindEntries(index, given, family)
	if len(entries) == 0 {
		fmt.Printf("No declaration published for %s %s.\n", given, family)
		return subcommands.ExitSuccess
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		status := "cached"
		if _, err := client.Document(ctx, entry); err != nil {
			status = "error"
			if errors.Is(err, hatvp.ErrNotFound) {
				status = "not published"
			}
			fmt.Fprintf(os.Stderr, "Warning: could not fetch %s: %v\n", entry.File, err)
		}
		rows = append(rows, []string{string(entry.Category), entry.FilingDate.String(), entry.File, status})
	}

	var buf strings.Builder
	doc := md.NewMarkdown(&buf)
	doc.H1(fmt.Sprintf("Declarations of %s %s (%d)", given, family, len(entries)))
	doc.Table(md.TableSet{Header: []string{"Category", "Filed", "Document", "Status"}, Rows: rows})
	printMarkdown(doc.String())

	return subcommands.ExitSuccess
}

// splitName splits a free-form full name into given and family parts. The
// last word is the family name, except when trailing words are fully
// upper-cased, the registry's convention for family names.
func splitName(full string) (given, family string, ok bool) {
	words := strings.Fields(full)
	if len(words) < 2 {
		return "", "", false
	}
	cut := len(words) - 1
	for cut > 1 && words[cut-1] == strings.ToUpper(words[cut-1]) && words[cut-1] != strings.ToLower(words[cut-1]) {
		cut--
	}
	return strings.Join(words[:cut], " "), strings.Join(words[cut:], " "), true
}
