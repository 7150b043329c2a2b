package transparence

import (
	"errors"
	"testing"
)

func declBy(given, family, extID string) *Declaration {
	return &Declaration{
		Declarant: Declarant{GivenName: given, FamilyName: family, ExternalID: extID},
		Category:  PatrimonyInitial,
		Records:   RecordSet{},
	}
}

func TestResolveIdentitiesByNameKey(t *testing.T) {
	pool := []*Declaration{
		declBy("Yaël", "Braun-Pivet", ""),
		declBy("jean", "DUPONT", ""),
		declBy("Inconnu", "Mystère", ""),
	}
	targets := []Person{
		{GivenName: "Yael", FamilyName: "Braun Pivet"},
		{GivenName: "Jean", FamilyName: "Dupont"},
	}
	attr, err := ResolveIdentities(pool, targets)
	if err != nil {
		t.Fatal(err)
	}
	if len(attr.People[0].Declarations) != 1 {
		t.Errorf("accent and hyphen variants must match the same person")
	}
	if len(attr.People[1].Declarations) != 1 {
		t.Errorf("case variants must match the same person")
	}
	if len(attr.Unattributed) != 1 {
		t.Fatalf("got %d unattributed, want 1", len(attr.Unattributed))
	}
	if attr.Unattributed[0].Declarant.FamilyName != "Mystère" {
		t.Errorf("unattributed = %+v", attr.Unattributed[0].Declarant)
	}
}

func TestResolveIdentitiesExternalID(t *testing.T) {
	pool := []*Declaration{declBy("Jean", "Dupont", "H123")}
	targets := []Person{
		{GivenName: "Jean", FamilyName: "Dupont", ExternalID: "H999"},
		{GivenName: "J.", FamilyName: "Dupont-Martin", ExternalID: "H123"},
	}
	attr, err := ResolveIdentities(pool, targets)
	if err != nil {
		t.Fatal(err)
	}
	if len(attr.People[1].Declarations) != 1 {
		t.Error("external identifier must override name matching")
	}
	if len(attr.People[0].Declarations) != 0 {
		t.Error("name match must not win over a differing external identifier")
	}
}

func TestResolveIdentitiesAmbiguity(t *testing.T) {
	targets := []Person{
		{GivenName: "Jean", FamilyName: "Dupont"},
		{GivenName: "Jean", FamilyName: "DUPONT"},
	}
	_, err := ResolveIdentities(nil, targets)
	var ambiguous *AmbiguityError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("err = %v, want an AmbiguityError", err)
	}
	if ambiguous.Key != "jean dupont" {
		t.Errorf("key = %q", ambiguous.Key)
	}

	// with distinct external identifiers the same pair is fine
	targets[0].ExternalID = "H1"
	targets[1].ExternalID = "H2"
	if _, err := ResolveIdentities(nil, targets); err != nil {
		t.Errorf("identified homonyms must not be ambiguous: %v", err)
	}
}

func TestResolveIdentitiesHomonymsNeedID(t *testing.T) {
	targets := []Person{
		{GivenName: "Jean", FamilyName: "Dupont", ExternalID: "H1"},
		{GivenName: "Jean", FamilyName: "Dupont", ExternalID: "H2"},
	}
	pool := []*Declaration{declBy("Jean", "Dupont", "")}
	attr, err := ResolveIdentities(pool, targets)
	if err != nil {
		t.Fatal(err)
	}
	if len(attr.Unattributed) != 1 {
		t.Error("a name-only declaration matching two identified homonyms must stay unattributed")
	}
}

func TestResolveIdentitiesDiscovery(t *testing.T) {
	pool := []*Declaration{
		declBy("Jean", "Dupont", ""),
		declBy("JEAN", "DUPONT", ""),
		declBy("Marie", "Curie", ""),
	}
	attr, err := ResolveIdentities(pool, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(attr.People) != 2 {
		t.Fatalf("discovered %d persons, want 2", len(attr.People))
	}
	if len(attr.People[0].Declarations) != 2 {
		t.Errorf("both Dupont filings must group under one discovered person")
	}
	if len(attr.Unattributed) != 0 {
		t.Errorf("discovery mode leaves nothing unattributed, got %d", len(attr.Unattributed))
	}
}
