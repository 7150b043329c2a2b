package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/renderer"
)

type extractCmd struct {
	asJSON bool
}

func (*extractCmd) Name() string     { return "extract" }
func (*extractCmd) Synopsis() string { return "extracts the records of local declaration documents" }
func (*extractCmd) Usage() string {
	return `tn extract [-json] <document.xml>...

  Parses declaration documents from local files and prints the extracted
  records, one report per document. Use -json for machine-readable output.

  A document that fails to parse is reported and skipped; the remaining
  documents are still processed.
`
}

func (c *extractCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.asJSON, "json", false, "Print the parsed declarations as JSON instead of markdown.")
}

func (c *extractCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one document file is expected.")
		f.Usage()
		return subcommands.ExitUsageError
	}

	schema, err := appSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load schema: %v\n", err)
		return subcommands.ExitFailure
	}

	status := subcommands.ExitSuccess
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	for _, path := range f.Args() {
		body, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		decl, err := transparence.ParseDeclaration(transparence.RawDocument{Body: body, Locator: path}, schema)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		if c.asJSON {
			if err := enc.Encode(decl); err != nil {
				fmt.Fprintf(os.Stderr, "Error encoding %s: %v\n", path, err)
				status = subcommands.ExitFailure
			}
			continue
		}
		printMarkdown(renderer.DeclarationMarkdown(decl))
	}

	return status
}
