package transparence

import (
	"sort"

	"github.com/google/uuid"

	"github.com/tlecomte/transparence/date"
)

// DeclarationRef is the reference a profile retains to one of the
// declarations it was consolidated from.
type DeclarationRef struct {
	UID        string    `json:"uid"`
	Category   Category  `json:"category"`
	FilingDate date.Date `json:"filing_date"`
	Locator    string    `json:"locator,omitempty"`
	Declarant  Declarant `json:"declarant"`
}

// Profile is the consolidated view of one person's retained declarations.
type Profile struct {
	ID           string           `json:"id"`
	Person       Person           `json:"person"`
	Declarations []DeclarationRef `json:"declarations,omitempty"`
	Records      RecordSet        `json:"records"`
	Family       FamilyInfo       `json:"family"`
	Observations []string         `json:"observations,omitempty"`
	Aggregates   Aggregates       `json:"aggregates"`
}

// Consolidate builds a person's profile from their selected declarations,
// at most one per document family. Records are concatenated per kind: a
// holding disclosed in both the patrimony and the interests filing is two
// disclosure instances and both are retained. Family data is a singleton;
// the later-filed non-empty value wins per field.
func Consolidate(person Person, selected []*Declaration) *Profile {
	p := &Profile{
		ID:      profileID(person),
		Person:  person,
		Records: RecordSet{},
	}
	ordered := make([]*Declaration, len(selected))
	copy(ordered, selected)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].FilingDate.Before(ordered[j].FilingDate)
	})
	for _, d := range ordered {
		p.Records.Append(d.Records)
		p.Family = mergeFamily(p.Family, d.Family)
		if d.Observations != "" {
			p.Observations = append(p.Observations, d.Observations)
		}
		p.Declarations = append(p.Declarations, DeclarationRef{
			UID:        d.UID,
			Category:   d.Category,
			FilingDate: d.FilingDate,
			Locator:    d.Locator,
			Declarant:  d.Declarant,
		})
	}
	p.Aggregates = Aggregate(p.Records)
	return p
}

// profileID returns a stable identifier for a person: the registry
// identifier when known, a name-derived UUID otherwise, so re-running
// consolidation never forks a profile.
func profileID(person Person) string {
	if person.ExternalID != "" {
		return person.ExternalID
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("person:"+person.Key())).String()
}

// mergeFamily applies the non-destructive overwrite rule field by field: an
// incoming empty value never erases a previously set one.
func mergeFamily(old, incoming FamilyInfo) FamilyInfo {
	out := old
	if incoming.Status != "" {
		out.Status = incoming.Status
	}
	if incoming.Spouse.GivenName != "" {
		out.Spouse.GivenName = incoming.Spouse.GivenName
	}
	if incoming.Spouse.FamilyName != "" {
		out.Spouse.FamilyName = incoming.Spouse.FamilyName
	}
	if incoming.Spouse.Profession != "" {
		out.Spouse.Profession = incoming.Spouse.Profession
	}
	if incoming.Spouse.Employer != "" {
		out.Spouse.Employer = incoming.Spouse.Employer
	}
	if incoming.Spouse.Sector != "" {
		out.Spouse.Sector = incoming.Spouse.Sector
	}
	if len(incoming.Children) > 0 {
		out.Children = incoming.Children
	}
	return out
}

// MergeProfiles folds a freshly consolidated profile into an existing one
// (incremental update). The rule mirrors mergeFamily across the whole
// profile: an existing non-empty value is replaced only by a non-empty
// incoming value, so a thinner refetch never erases previously captured
// data. Merging the same incoming profile twice yields the same result.
func MergeProfiles(existing, incoming *Profile) *Profile {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	out := *existing
	if incoming.Person.GivenName != "" {
		out.Person.GivenName = incoming.Person.GivenName
	}
	if incoming.Person.FamilyName != "" {
		out.Person.FamilyName = incoming.Person.FamilyName
	}
	if incoming.Person.ExternalID != "" {
		out.Person.ExternalID = incoming.Person.ExternalID
	}

	out.Declarations = mergeRefs(existing.Declarations, incoming.Declarations)

	// records are replaced per kind, never blanked by an empty incoming kind
	out.Records = RecordSet{}
	for _, kind := range existing.Records.Kinds() {
		out.Records[kind] = existing.Records[kind]
	}
	for _, kind := range incoming.Records.Kinds() {
		if len(incoming.Records[kind]) > 0 {
			out.Records[kind] = incoming.Records[kind]
		}
	}

	out.Family = mergeFamily(existing.Family, incoming.Family)
	out.Observations = mergeObservations(existing.Observations, incoming.Observations)
	out.Aggregates = Aggregate(out.Records)
	return &out
}

// mergeRefs unions declaration references by UID; an incoming reference
// replaces the existing entry with the same UID.
func mergeRefs(existing, incoming []DeclarationRef) []DeclarationRef {
	out := make([]DeclarationRef, len(existing))
	copy(out, existing)
	index := make(map[string]int, len(out))
	for i, ref := range out {
		index[ref.UID] = i
	}
	for _, ref := range incoming {
		if i, ok := index[ref.UID]; ok {
			out[i] = ref
			continue
		}
		index[ref.UID] = len(out)
		out = append(out, ref)
	}
	return out
}

func mergeObservations(existing, incoming []string) []string {
	out := make([]string, len(existing))
	copy(out, existing)
	seen := make(map[string]bool, len(out))
	for _, o := range out {
		seen[o] = true
	}
	for _, o := range incoming {
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}
