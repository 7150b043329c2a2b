package transparence

import (
	"fmt"
	"strings"
)

// Person is a target individual that declarations get attributed to.
type Person struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	// ExternalID is the registry's stable person identifier, when known.
	ExternalID string `json:"external_id,omitempty"`
}

// Key returns the folded name key used for matching.
func (p Person) Key() string { return NameKey(p.GivenName + " " + p.FamilyName) }

func (p Person) String() string {
	return strings.TrimSpace(p.GivenName + " " + p.FamilyName)
}

// PersonDeclarations groups the declarations attributed to one person, in
// pool order.
type PersonDeclarations struct {
	Person       Person
	Declarations []*Declaration
}

// Attribution is the result of identity resolution over a declaration pool.
type Attribution struct {
	People []PersonDeclarations
	// Unattributed holds declarations no target claimed. They are kept, not
	// discarded, so a later run with an updated target list can claim them.
	Unattributed []*Declaration
}

// AmbiguityError reports target persons whose names fold to the same key
// with no external identifier to tell them apart. Resolution refuses to
// pick one: a silent guess would attribute financial data to the wrong
// person.
type AmbiguityError struct {
	Key     string
	Persons []Person
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("name key %q is shared by %d target persons and cannot be disambiguated", e.Key, len(e.Persons))
}

// ResolveIdentities attributes each declaration in the pool to a target
// person. A declaration matches on the external identifier when both sides
// carry one, and on the folded name key otherwise. With an empty target
// list resolution runs in discovery mode: every distinct declarant in the
// pool becomes a person.
func ResolveIdentities(pool []*Declaration, targets []Person) (*Attribution, error) {
	if len(targets) == 0 {
		targets = discoverPersons(pool)
	}

	byExt := make(map[string]int)
	byKey := make(map[string]int)
	shared := make(map[string]bool)
	for i, p := range targets {
		if p.ExternalID != "" {
			byExt[p.ExternalID] = i
		}
		key := p.Key()
		if key == "" {
			continue
		}
		if prev, dup := byKey[key]; dup {
			if p.ExternalID == "" || targets[prev].ExternalID == "" {
				return nil, &AmbiguityError{Key: key, Persons: []Person{targets[prev], p}}
			}
			// both carry identifiers; the key alone is no longer safe
			shared[key] = true
			continue
		}
		byKey[key] = i
	}

	attr := &Attribution{People: make([]PersonDeclarations, len(targets))}
	for i, p := range targets {
		attr.People[i] = PersonDeclarations{Person: p}
	}

	for _, d := range pool {
		idx, ok := -1, false
		if id := d.Declarant.ExternalID; id != "" {
			idx, ok = indexOf(byExt, id)
		}
		if !ok {
			if key := d.Declarant.Key(); key != "" && !shared[key] {
				idx, ok = indexOf(byKey, key)
			}
		}
		if !ok {
			attr.Unattributed = append(attr.Unattributed, d)
			continue
		}
		attr.People[idx].Declarations = append(attr.People[idx].Declarations, d)
	}
	return attr, nil
}

func indexOf(m map[string]int, k string) (int, bool) {
	i, ok := m[k]
	if !ok {
		return -1, false
	}
	return i, true
}

// discoverPersons derives a target list from the pool itself, one person
// per distinct declarant name key, in order of first appearance.
func discoverPersons(pool []*Declaration) []Person {
	seen := make(map[string]bool)
	var persons []Person
	for _, d := range pool {
		key := d.Declarant.Key()
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		persons = append(persons, Person{
			GivenName:  d.Declarant.GivenName,
			FamilyName: d.Declarant.FamilyName,
			ExternalID: d.Declarant.ExternalID,
		})
	}
	return persons
}
