package transparence

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tlecomte/transparence/date"
)

// Declarant identifies the person a declaration belongs to, as stated in the
// document itself.
type Declarant struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Office     string `json:"office,omitempty"`
	Body       string `json:"body,omitempty"`
	Mandate    string `json:"mandate,omitempty"`
	// ExternalID is the registry's stable person identifier when the source
	// provides one. It disambiguates homonyms.
	ExternalID string `json:"external_id,omitempty"`
}

// Key returns the folded name key used for identity matching.
func (d Declarant) Key() string {
	return NameKey(d.GivenName + " " + d.FamilyName)
}

// Spouse is the declared spouse or partner.
type Spouse struct {
	GivenName  string `json:"given_name,omitempty"`
	FamilyName string `json:"family_name,omitempty"`
	Profession string `json:"profession,omitempty"`
	Employer   string `json:"employer,omitempty"`
	Sector     string `json:"sector,omitempty"`
}

func (s Spouse) empty() bool { return s == Spouse{} }

// Child is one declared child; only the birth date and dependency flag are
// published.
type Child struct {
	Born      string `json:"born,omitempty"`
	Dependent bool   `json:"dependent,omitempty"`
}

// FamilyInfo is the singleton family block of a declaration. Unlike records
// it is not concatenated across declarations; consolidation keeps the
// later-filed non-empty value per field.
type FamilyInfo struct {
	Status   string  `json:"status,omitempty"`
	Spouse   Spouse  `json:"spouse"`
	Children []Child `json:"children,omitempty"`
}

// Empty reports whether the block carries no information at all.
func (f FamilyInfo) Empty() bool {
	return f.Status == "" && f.Spouse.empty() && len(f.Children) == 0
}

// Declaration is one parsed declaration document. It is immutable after
// parsing; consolidation across declarations happens on profiles, never
// here.
type Declaration struct {
	Declarant    Declarant  `json:"declarant"`
	Category     Category   `json:"category"`
	FilingDate   date.Date  `json:"filing_date"`
	UID          string     `json:"uid"`
	Locator      string     `json:"locator"`
	Records      RecordSet  `json:"records"`
	Family       FamilyInfo `json:"family"`
	Observations string     `json:"observations,omitempty"`
}

// ParseDeclaration interprets one raw document against the schema table. A
// document that is not well-formed markup is a parse failure for that
// document only; callers skip it and continue with the rest of their batch.
func ParseDeclaration(doc RawDocument, schema *Schema) (*Declaration, error) {
	root, err := parseDocument(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", doc.Locator, err)
	}

	md := schema.Metadata
	decl := &Declaration{
		Declarant: Declarant{
			GivenName:  resolveField(root, md.GivenName),
			FamilyName: resolveField(root, md.FamilyName),
			Office:     resolveField(root, md.Office),
			Body:       resolveField(root, md.Body),
			Mandate:    resolveField(root, md.Mandate),
		},
		Locator: doc.Locator,
		Records: RecordSet{},
	}

	decl.Category = doc.Category
	if c, ok := ParseCategory(resolveField(root, md.Category)); ok {
		decl.Category = c
	}

	// An unparseable filing date degrades to the zero date rather than
	// failing the document; selection then treats it as oldest.
	if d, err := date.ParseFiling(resolveField(root, md.FilingDate)); err == nil {
		decl.FilingDate = d
	}

	decl.UID = resolveField(root, md.UID)
	if decl.UID == "" {
		// deterministic so refetching the same document never forks identity
		decl.UID = uuid.NewSHA1(uuid.NameSpaceURL, []byte(doc.Locator)).String()
	}

	for _, spec := range schema.Sections {
		sec := resolveSection(root, spec)
		for _, r := range extractRecords(sec, spec) {
			decl.Records.Add(r)
		}
	}
	captureUnknownSections(decl, root, schema)

	decl.Family = parseFamily(root)
	decl.Observations = parseObservations(root, md.Observations)

	return decl, nil
}

// captureUnknownSections walks the full tree for item-shaped sections that
// matched no configured concept and funnels them into the catch-all bucket,
// so an unseen schema revision degrades to coarser typing instead of data
// loss. Known sections and the family block are not descended into.
func captureUnknownSections(decl *Declaration, root *node, schema *Schema) {
	skip := map[string]bool{"enfantsDto": true, "conjoint": true}
	var visit func(n *node)
	visit = func(n *node) {
		for _, c := range n.children {
			if schema.knownTag(c.name) || skip[c.name] {
				continue
			}
			if c.name != "items" && c.child("items") != nil {
				for _, r := range extractOther(c, schema, c.name) {
					decl.Records.Add(r)
				}
				continue
			}
			visit(c)
		}
	}
	visit(root)
}

// parseFamily extracts the family block. All of it is optional.
func parseFamily(root *node) FamilyInfo {
	var fam FamilyInfo
	if sit := root.find("situationFamiliale"); sit != nil {
		fam.Status = resolveField(sit, []string{"label", "id"})
		if fam.Status == "" && sit.text != redactedMarker {
			fam.Status = sit.text
		}
	}
	if cj := root.find("conjoint"); cj != nil {
		fam.Spouse = Spouse{
			GivenName:  cj.textAt("prenom"),
			FamilyName: cj.textAt("nom"),
			Profession: resolveField(cj, []string{"profession", "activiteProfessionnelle"}),
			Employer:   resolveField(cj, []string{"employeur", "nomEmployeur"}),
			Sector:     cj.textAt("secteurActivite"),
		}
	}
	if kids := root.find("enfantsDto"); !sectionEmpty(kids) {
		for _, item := range itemNodes(kids) {
			born := resolveField(item, []string{"dateNaissance", "anneeNaissance"})
			if born == "" {
				continue
			}
			fam.Children = append(fam.Children, Child{Born: born, Dependent: item.boolAt("aCharge")})
		}
	}
	return fam
}

// parseObservations collects the declaration-level free-text remarks. Each
// source name contributes its first occurrence; non-empty values are joined
// with " | " the way downstream consumers expect them.
func parseObservations(root *node, sources []string) string {
	var parts []string
	for _, src := range sources {
		n := root.find(src)
		if n == nil || n.text == "" || n.text == redactedMarker {
			continue
		}
		parts = append(parts, n.text)
	}
	return strings.Join(parts, " | ")
}
