package transparence

import (
	"reflect"
	"testing"
	"time"

	"github.com/tlecomte/transparence/date"
)

func patrimonyDecl(category Category, filed date.Date, uid string, records ...Record) *Declaration {
	d := &Declaration{
		Declarant:  Declarant{GivenName: "Jean", FamilyName: "Dupont"},
		Category:   category,
		FilingDate: filed,
		UID:        uid,
		Records:    RecordSet{},
	}
	for _, r := range records {
		d.Records.Add(r)
	}
	return d
}

func TestConsolidate(t *testing.T) {
	person := Person{GivenName: "Jean", FamilyName: "Dupont"}

	instrument := &FinancialInstrument{Base: Base{RecordKind: KindFinancialInstrument, LabelText: "PEA", ValueEUR: AmountOf(5000)}}
	estate := &RealEstate{Base: Base{RecordKind: KindRealEstate, LabelText: "Appartement", ValueEUR: AmountOf(250000)}}

	initial := patrimonyDecl(PatrimonyInitial, date.New(2022, time.January, 10), "d1", instrument)
	amended := patrimonyDecl(PatrimonyAmended, date.New(2023, time.June, 1), "d2", instrument, estate)
	amended.Family = FamilyInfo{Status: "Marié"}
	interests := patrimonyDecl(InterestsInitial, date.New(2022, time.March, 5), "d3",
		&Income{Base: Base{RecordKind: KindIncome, LabelText: "Indemnité parlementaire"}, Annual: AmountOf(85200)})
	interests.Family = FamilyInfo{Spouse: Spouse{Profession: "Médecin"}}

	selected := SelectLatest([]*Declaration{initial, amended, interests})
	profile := Consolidate(person, selected)

	// the superseded initial filing contributes nothing
	if n := len(profile.Records[KindFinancialInstrument]); n != 1 {
		t.Errorf("got %d instruments, want exactly 1", n)
	}
	if n := len(profile.Records[KindRealEstate]); n != 1 {
		t.Errorf("got %d real estate records, want 1", n)
	}
	if n := len(profile.Records[KindIncome]); n != 1 {
		t.Errorf("got %d income records, want 1", n)
	}
	if len(profile.Declarations) != 2 {
		t.Fatalf("got %d declaration refs, want 2", len(profile.Declarations))
	}

	// family merges across filings, later-filed non-empty values winning
	if profile.Family.Status != "Marié" || profile.Family.Spouse.Profession != "Médecin" {
		t.Errorf("family = %+v", profile.Family)
	}

	if profile.Aggregates.GrossAssets != 255000 {
		t.Errorf("gross = %v, want 255000", profile.Aggregates.GrossAssets)
	}
	if profile.Aggregates.AnnualIncome != 85200 {
		t.Errorf("income = %v, want 85200", profile.Aggregates.AnnualIncome)
	}
	if profile.ID == "" {
		t.Error("profile must carry a stable id")
	}
	if other := Consolidate(person, selected); other.ID != profile.ID {
		t.Error("re-consolidating must not fork the profile id")
	}
}

func TestMergeProfilesNonDestructive(t *testing.T) {
	existing := &Profile{
		ID:     "p1",
		Person: Person{GivenName: "Jean", FamilyName: "Dupont"},
		Records: RecordSet{
			KindRealEstate: {&RealEstate{Base: Base{RecordKind: KindRealEstate, LabelText: "Maison", ValueEUR: AmountOf(300000)}}},
			KindIncome:     {&Income{Base: Base{RecordKind: KindIncome, LabelText: "Salaire"}, Annual: AmountOf(50000)}},
		},
		Family:       FamilyInfo{Status: "Marié", Spouse: Spouse{Profession: "Médecin"}},
		Observations: []string{"première note"},
	}
	existing.Aggregates = Aggregate(existing.Records)

	// a thinner refetch: no income this time, no family block
	incoming := &Profile{
		ID:     "p1",
		Person: Person{GivenName: "Jean", FamilyName: "Dupont", ExternalID: "H123"},
		Records: RecordSet{
			KindRealEstate: {&RealEstate{Base: Base{RecordKind: KindRealEstate, LabelText: "Maison", ValueEUR: AmountOf(320000)}}},
		},
		Observations: []string{"première note", "seconde note"},
	}

	merged := MergeProfiles(existing, incoming)

	if merged.Person.ExternalID != "H123" {
		t.Error("non-empty incoming identifier must be taken")
	}
	if v, _ := merged.Records[KindRealEstate][0].Value().Float64(); v != 320000 {
		t.Errorf("real estate value = %v, want the refreshed 320000", v)
	}
	if len(merged.Records[KindIncome]) != 1 {
		t.Error("a kind absent from the incoming profile must not be erased")
	}
	if merged.Family.Status != "Marié" {
		t.Error("an empty incoming family block must not erase the existing one")
	}
	if !reflect.DeepEqual(merged.Observations, []string{"première note", "seconde note"}) {
		t.Errorf("observations = %v", merged.Observations)
	}
	if merged.Aggregates.GrossAssets != 320000 {
		t.Errorf("gross = %v, want recomputed 320000", merged.Aggregates.GrossAssets)
	}

	// merging the same profile again changes nothing
	again := MergeProfiles(merged, incoming)
	if !reflect.DeepEqual(again, merged) {
		t.Error("merging the same incoming profile twice must be idempotent")
	}
}

func TestMergeProfilesNil(t *testing.T) {
	p := &Profile{ID: "p1", Records: RecordSet{}}
	if MergeProfiles(nil, p) != p {
		t.Error("merging into nothing yields the incoming profile")
	}
	if MergeProfiles(p, nil) != p {
		t.Error("merging nothing changes nothing")
	}
}
