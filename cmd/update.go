package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/hatvp"
)

type updateCmd struct {
	refresh      bool
	force        bool
	skipExisting bool
	limit        int
	personsFile  string
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetches, extracts and consolidates declarations into the profile store"
}
func (*updateCmd) Usage() string {
	return `tn update [-persons <file>] [-refresh] [-force] [-skip-existing] [-limit <n>] ["<person>"...]

  Runs the whole pipeline: downloads the declaration index, fetches the
  documents, extracts their records, attributes them to persons and writes
  one consolidated profile per person into the profile store.

  Target persons come from the arguments and from -persons, a JSON array of
  {"given_name", "family_name", "external_id"} objects; the external id
  disambiguates homonyms. Without any target every declarant in the index
  is processed.

  Existing profiles are merged with the new data. -force rebuilds them
  from the declarations alone; -skip-existing leaves them untouched.
  A document that cannot be fetched or parsed is reported and skipped;
  the batch continues.

Usage Examples:
$ tn update "Jean Dupont"
$ tn update -persons elus.json -skip-existing
$ tn update -limit 100
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Force a fresh download of the declaration index.")
	f.BoolVar(&c.force, "force", false, "Rebuild profiles from scratch instead of merging with the store.")
	f.BoolVar(&c.skipExisting, "skip-existing", false, "Do not touch persons that already have a profile in the store.")
	f.IntVar(&c.limit, "limit", 0, "Process at most n documents (0 means no limit).")
	f.StringVar(&c.personsFile, "persons", "", "JSON file listing the target persons.")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	schema, err := appSchema()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load schema: %v\n", err)
		return subcommands.ExitFailure
	}

	client := appClient()
	index, err := client.Index(ctx, c.refresh)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load the declaration index: %v\n", err)
		return subcommands.ExitFailure
	}

	targets, entries, err := c.plan(index, f.Args())
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	if len(entries) == 0 {
		fmt.Println("No declaration to process.")
		return subcommands.ExitSuccess
	}

	// Fetch and extract. Per-document failures are logged and skipped so
	// one bad document never aborts the batch.
	var pool []*transparence.Declaration
	var skipped int
	for _, entry := range entries {
		doc, err := client.Document(ctx, entry)
		if err != nil {
			skipped++
			fmt.Fprintf(os.Stderr, "Warning: could not fetch %s: %v\n", entry.File, err)
			continue
		}
		decl, err := transparence.ParseDeclaration(doc, schema)
		if err != nil {
			skipped++
			fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", entry.File, err)
			continue
		}
		pool = append(pool, decl)
	}

	attribution, err := transparence.ResolveIdentities(pool, targets)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	if n := len(attribution.Unattributed); n > 0 {
		fmt.Fprintf(os.Stderr, "Warning: %d declarations matched no target person.\n", n)
	}

	var written int
	for _, pd := range attribution.People {
		selected := transparence.SelectLatest(pd.Declarations)
		if len(selected) == 0 {
			continue
		}
		profile := transparence.Consolidate(pd.Person, selected)
		if c.skipExisting {
			if existing, err := transparence.FindProfiles(*profilesDir, profile.ID); err == nil && len(existing) > 0 {
				continue
			}
		}
		if !c.force {
			if existing, err := transparence.FindProfiles(*profilesDir, profile.ID); err == nil && len(existing) == 1 {
				profile = transparence.MergeProfiles(existing[0], profile)
			}
		}
		if err := transparence.SaveProfile(*profilesDir, profile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving profile of %s: %v\n", pd.Person, err)
			return subcommands.ExitFailure
		}
		written++
	}

	fmt.Printf("✅ Consolidated %d profiles from %d declarations (%d documents skipped).\n", written, len(pool), skipped)
	return subcommands.ExitSuccess
}

// plan turns the command arguments and the -persons file into the target
// persons and the index entries worth downloading.
func (c *updateCmd) plan(index []hatvp.IndexEntry, args []string) ([]transparence.Person, []hatvp.IndexEntry, error) {
	var targets []transparence.Person
	for _, arg := range args {
		given, family, ok := splitName(arg)
		if !ok {
			return nil, nil, fmt.Errorf("%q: expected a given name and a family name", arg)
		}
		targets = append(targets, transparence.Person{GivenName: given, FamilyName: family})
	}
	if c.personsFile != "" {
		raw, err := os.ReadFile(c.personsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("could not read persons file: %w", err)
		}
		var listed []transparence.Person
		if err := json.Unmarshal(raw, &listed); err != nil {
			return nil, nil, fmt.Errorf("could not parse persons file %s: %w", c.personsFile, err)
		}
		targets = append(targets, listed...)
	}

	var entries []hatvp.IndexEntry
	if len(targets) == 0 {
		entries = index
	}
	for _, p := range targets {
		found := hatvp.FindEntries(index, p.GivenName, p.FamilyName)
		if len(found) == 0 {
			fmt.Fprintf(os.Stderr, "Warning: no declaration published for %s.\n", p)
		}
		entries = append(entries, found...)
	}

	if c.limit > 0 && len(entries) > c.limit {
		entries = entries[:c.limit]
	}
	return targets, entries, nil
}
