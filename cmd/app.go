// Package cmd implements the CLI application to fetch, extract and
// consolidate public declarations.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/hatvp"
)

// Commands lists the subcommands a main package registers.
var Commands = []subcommands.Command{
	&fetchCmd{},
	&extractCmd{},
	&updateCmd{},
	&reportCmd{},
	&summaryCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var profilesDir = flag.String("profiles", "profiles", "Directory holding the consolidated profile store")
var cacheDir = flag.String("cache", defaultCacheDir(), "Directory caching downloaded index and documents")
var schemaFile = flag.String("schema", "", "Path to a custom extraction schema (TOML). Uses the built-in schema by default.")

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "transparence")
	}
	return filepath.Join(dir, "transparence")
}

// appSchema loads the schema the extraction commands run against.
func appSchema() (*transparence.Schema, error) {
	if *schemaFile == "" {
		return transparence.DefaultSchema(), nil
	}
	return transparence.LoadSchema(*schemaFile)
}

// appClient returns the registry client all fetching commands share.
func appClient() *hatvp.Client {
	return hatvp.NewClient(*cacheDir)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. output is not a terminal style glamour
// knows).
func printMarkdown(markdown string) {
	out, err := glamour.Render(markdown, "auto")
	if err != nil {
		fmt.Print(markdown)
		return
	}
	fmt.Print(out)
}
