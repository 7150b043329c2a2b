package renderer

import (
	"strings"
	"testing"

	"github.com/tlecomte/transparence"
)

func sampleProfile() *transparence.Profile {
	records := transparence.RecordSet{}
	records.Add(&transparence.RealEstate{Base: transparence.Base{
		RecordKind: transparence.KindRealEstate,
		LabelText:  "Appartement",
		ValueEUR:   transparence.AmountOf(300000),
	}})
	records.Add(&transparence.FinancialInstrument{Base: transparence.Base{
		RecordKind: transparence.KindFinancialInstrument,
		LabelText:  "Assurance-vie",
	}})
	records.Add(&transparence.Loan{
		Base:        transparence.Base{RecordKind: transparence.KindLoan, LabelText: "Prêt immobilier", ValueEUR: transparence.AmountOf(150000)},
		Outstanding: transparence.AmountOf(100000),
	})
	p := &transparence.Profile{
		ID:      "p1",
		Person:  transparence.Person{GivenName: "Jean", FamilyName: "Dupont"},
		Records: records,
		Family:  transparence.FamilyInfo{Status: "Marié"},
	}
	p.Aggregates = transparence.Aggregate(p.Records)
	return p
}

func TestProfileMarkdown(t *testing.T) {
	out := ProfileMarkdown(sampleProfile())

	for _, want := range []string{
		"# Jean Dupont",
		"## Totals",
		"Net worth",
		"## Real estate (1)",
		"Appartement",
		"## Loans (1)",
		"## Family",
		"Status: Marié",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q:\n%s", want, out)
		}
	}
	// an instrument of unknown value renders as "?", never as zero
	if !strings.Contains(out, "?") {
		t.Errorf("absent value must render as ?:\n%s", out)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	rich := sampleProfile()
	poor := &transparence.Profile{
		ID:      "p2",
		Person:  transparence.Person{GivenName: "Marie", FamilyName: "Curie"},
		Records: transparence.RecordSet{},
	}
	out := SummaryMarkdown([]*transparence.Profile{poor, rich})

	if !strings.Contains(out, "# Profiles (2)") {
		t.Errorf("missing title:\n%s", out)
	}
	jean := strings.Index(out, "Jean Dupont")
	marie := strings.Index(out, "Marie Curie")
	if jean < 0 || marie < 0 || jean > marie {
		t.Errorf("profiles must rank by net worth, highest first:\n%s", out)
	}
}
