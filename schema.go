package transparence

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Field value types. Text is the default.
const (
	FieldText   = "text"
	FieldAmount = "amount"
	FieldBool   = "bool"
)

// FieldSpec maps one output attribute to the ordered list of source field
// names that may carry it. The first non-empty source wins.
type FieldSpec struct {
	Attr    string   `toml:"attr"`
	Sources []string `toml:"sources"`
	Type    string   `toml:"type"`
}

// SectionSpec describes one logical section concept: the tag names it has
// been published under, the record kind its items become, and its field map.
type SectionSpec struct {
	Concept string      `toml:"concept"`
	Kind    Kind        `toml:"kind"`
	Tags    []string    `toml:"tags"`
	Fields  []FieldSpec `toml:"fields"`
}

// MetadataSpec holds the ordered source lists for document-level metadata.
type MetadataSpec struct {
	UID          []string `toml:"uid"`
	FilingDate   []string `toml:"filing_date"`
	Category     []string `toml:"category"`
	GivenName    []string `toml:"given_name"`
	FamilyName   []string `toml:"family_name"`
	Office       []string `toml:"office"`
	Body         []string `toml:"body"`
	Mandate      []string `toml:"mandate"`
	Observations []string `toml:"observations"`
}

// HintSpec classifies an unrecognized section tag into a kind hint for the
// catch-all bucket.
type HintSpec struct {
	Contains string `toml:"contains"`
	Hint     string `toml:"hint"`
}

// Schema is the static configuration table driving section and field
// resolution. It is the compatibility surface with source schema drift:
// tolerating a new revision means adding names to the table.
type Schema struct {
	Metadata MetadataSpec  `toml:"metadata"`
	Sections []SectionSpec `toml:"section"`
	Hints    []HintSpec    `toml:"hint"`
}

//go:embed schema.toml
var defaultSchemaTOML []byte

var defaultSchema = sync.OnceValue(func() *Schema {
	s, err := parseSchema(defaultSchemaTOML)
	if err != nil {
		panic("transparence: embedded schema: " + err.Error())
	}
	return s
})

// DefaultSchema returns the built-in schema table.
func DefaultSchema() *Schema { return defaultSchema() }

// LoadSchema reads a schema table from a TOML file, for users tracking
// source revisions ahead of a release.
func LoadSchema(path string) (*Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	return parseSchema(b)
}

func parseSchema(b []byte) (*Schema, error) {
	var s Schema
	if err := toml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parsing schema: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate rejects unusable tables. An empty section table is a startup
// error: running extraction with it would silently produce nothing.
func (s *Schema) Validate() error {
	if len(s.Sections) == 0 {
		return errors.New("schema defines no sections")
	}
	for _, sec := range s.Sections {
		if sec.Concept == "" {
			return errors.New("schema section without a concept name")
		}
		if len(sec.Tags) == 0 {
			return fmt.Errorf("schema section %q lists no tags", sec.Concept)
		}
		if sec.Kind == "" {
			return fmt.Errorf("schema section %q has no record kind", sec.Concept)
		}
		for _, f := range sec.Fields {
			switch f.Type {
			case "", FieldText, FieldAmount, FieldBool:
			default:
				return fmt.Errorf("schema section %q field %q: unknown type %q", sec.Concept, f.Attr, f.Type)
			}
			if f.Attr == "" || len(f.Sources) == 0 {
				return fmt.Errorf("schema section %q has an incomplete field entry", sec.Concept)
			}
		}
	}
	return nil
}

// knownTag reports whether tag belongs to a configured section concept.
func (s *Schema) knownTag(tag string) bool {
	for _, sec := range s.Sections {
		for _, t := range sec.Tags {
			if t == tag {
				return true
			}
		}
	}
	return false
}

// classify returns the catch-all kind hint for an unrecognized section tag.
// First matching keyword wins; tags matching no keyword report ok=false and
// are still captured, just without a hint.
func (s *Schema) classify(tag string) (hint string, ok bool) {
	lower := strings.ToLower(tag)
	for _, h := range s.Hints {
		if strings.Contains(lower, h.Contains) {
			return h.Hint, true
		}
	}
	return "", false
}
