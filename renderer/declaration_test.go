package renderer

import (
	"strings"
	"testing"

	"github.com/tlecomte/transparence"
	"github.com/tlecomte/transparence/date"
)

func TestDeclarationMarkdown(t *testing.T) {
	records := transparence.RecordSet{}
	records.Add(&transparence.Income{
		Base:   transparence.Base{RecordKind: transparence.KindIncome, LabelText: "Indemnité parlementaire"},
		Annual: transparence.AmountOf(85200),
	})
	d := &transparence.Declaration{
		Declarant:    transparence.Declarant{GivenName: "Jean", FamilyName: "Dupont", Office: "Député"},
		Category:     transparence.PatrimonyInitial,
		FilingDate:   date.New(2023, 6, 15),
		Records:      records,
		Observations: "RAS",
	}

	out := DeclarationMarkdown(d)
	for _, want := range []string{
		"# Jean Dupont",
		"DSP, 2023-06-15, Député",
		"## Income (1)",
		"Indemnité parlementaire",
		"## Observations",
		"RAS",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report misses %q:\n%s", want, out)
		}
	}
}
