package hatvp

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/date"
)

// Index column names drift like everything else in this source: casing
// changes and columns get renamed between publications. Each logical column
// has an ordered list of accepted header names, compared case-insensitively.
var indexColumns = map[string][]string{
	"given_name":  {"prenom", "prenomdeclarant"},
	"family_name": {"nom", "nomdeclarant"},
	"category":    {"typedeclaration", "type", "typedocument"},
	"filing_date": {"datedepot", "date_depot", "datepublication"},
	"file":        {"fichier", "nomfichier"},
	"url":         {"url", "urlfichier"},
}

// ParseIndex reads the declaration index CSV. The feed is semicolon
// delimited and has been published both as UTF-8 (with or without BOM) and
// as Latin-1; all three decode. Rows that are too short or carry no
// declarant name are skipped, not fatal.
func ParseIndex(r io.Reader) ([]IndexEntry, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading index: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte{0xef, 0xbb, 0xbf})
	if !utf8.Valid(raw) {
		raw, err = charmap.ISO8859_1.NewDecoder().Bytes(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding index: %w", err)
		}
	}

	cr := csv.NewReader(bytes.NewReader(raw))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading index header: %w", err)
	}
	cols := resolveColumns(header)
	if cols["family_name"] < 0 {
		return nil, fmt.Errorf("index header lists no declarant name column: %v", header)
	}

	var entries []IndexEntry
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading index row: %w", err)
		}
		at := func(col string) string {
			i := cols[col]
			if i < 0 || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		e := IndexEntry{
			GivenName:  at("given_name"),
			FamilyName: at("family_name"),
			File:       at("file"),
			URL:        at("url"),
		}
		if e.GivenName == "" && e.FamilyName == "" {
			continue
		}
		if c, ok := transparence.ParseCategory(at("category")); ok {
			e.Category = c
		}
		// an unparseable filing date degrades to zero, sorting oldest
		e.FilingDate, _ = date.ParseFiling(at("filing_date"))
		entries = append(entries, e)
	}
	return entries, nil
}

// resolveColumns maps each logical column to its index in the header, -1
// when absent.
func resolveColumns(header []string) map[string]int {
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(strings.TrimSpace(h))
	}
	cols := make(map[string]int, len(indexColumns))
	for col, names := range indexColumns {
		cols[col] = -1
		for _, name := range names {
			for i, h := range lower {
				if h == name {
					cols[col] = i
					break
				}
			}
			if cols[col] >= 0 {
				break
			}
		}
	}
	return cols
}

// FindEntries returns the index entries whose declarant folds to the same
// name key as the given person, most recently filed first.
func FindEntries(entries []IndexEntry, givenName, familyName string) []IndexEntry {
	key := transparence.NameKey(givenName + " " + familyName)
	var matched []IndexEntry
	for _, e := range entries {
		if transparence.NameKey(e.GivenName+" "+e.FamilyName) == key {
			matched = append(matched, e)
		}
	}
	sortEntries(matched)
	return matched
}

// sortEntries orders entries by filing date, most recent first, keeping the
// index order for equal dates.
func sortEntries(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[j].FilingDate.Before(entries[i].FilingDate)
	})
}
