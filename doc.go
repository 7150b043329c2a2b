// Package transparence extracts, consolidates and aggregates the public
// financial-disclosure declarations filed by French officeholders with the
// HATVP (Haute Autorité pour la Transparence de la Vie Publique).
//
// The published documents are semi-structured and schema-drifted: the same
// logical record appears under different tag names, nesting depths and field
// names across years and document-type variants. The engine resolves sections
// and fields through ordered tables of known name variants (see Schema),
// turns each document into a typed Declaration, matches declarations to
// persons, selects the authoritative declaration per category group, and
// consolidates the result into one Profile per person with derived aggregate
// totals.
//
// The package is pure: it transforms already-fetched document bytes and never
// performs I/O. Fetching and caching live in the hatvp subpackage, rendering
// in renderer, and the command line in cmd.
package transparence
