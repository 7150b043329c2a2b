package transparence

import "testing"

func mustParse(t *testing.T, markup string) *node {
	t.Helper()
	n, err := parseDocument([]byte(markup))
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestSectionEmpty(t *testing.T) {
	testCases := []struct {
		name   string
		markup string
		want   bool
	}{
		{name: "nil marker true", markup: "<s><neant>true</neant><items/></s>", want: true},
		{name: "nil marker false", markup: "<s><neant>false</neant><items><items><valeur>1</valeur></items></items></s>", want: false},
		{name: "alternate marker", markup: "<s><none>true</none></s>", want: true},
		{name: "no children", markup: "<s></s>", want: true},
		{name: "with items", markup: "<s><items><items><valeur>1</valeur></items></items></s>", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sectionEmpty(mustParse(t, tc.markup)); got != tc.want {
				t.Errorf("sectionEmpty = %v, want %v", got, tc.want)
			}
		})
	}
	if !sectionEmpty(nil) {
		t.Error("a missing section is empty")
	}
}

func TestResolveSectionVariants(t *testing.T) {
	spec := SectionSpec{Concept: "real-estate", Kind: KindRealEstate, Tags: []string{"biensImmobiliersDto", "biensImmobiliers"}}
	root := mustParse(t, "<d><contenu><biensImmobiliers><items/></biensImmobiliers></contenu></d>")
	sec := resolveSection(root, spec)
	if sec == nil {
		t.Fatal("second tag variant not resolved")
	}
	if sec.name != "biensImmobiliers" {
		t.Errorf("resolved %q", sec.name)
	}
	if resolveSection(mustParse(t, "<d><autre/></d>"), spec) != nil {
		t.Error("absent concept must resolve to nil")
	}
}

func TestItemNodesLayouts(t *testing.T) {
	nested := mustParse(t, "<s><items><items><a>1</a></items><items><a>2</a></items></items></s>")
	if got := len(itemNodes(nested)); got != 2 {
		t.Errorf("nested layout: %d items, want 2", got)
	}
	flat := mustParse(t, "<s><items><a>1</a></items><items><a>2</a></items><items><a>3</a></items></s>")
	if got := len(itemNodes(flat)); got != 3 {
		t.Errorf("flat layout: %d items, want 3", got)
	}
}

func TestResolveFieldOrder(t *testing.T) {
	item := mustParse(t, "<items><valeurEstimee>200</valeurEstimee><montant>300</montant></items>")
	if got := resolveField(item, []string{"valeur", "valeurEstimee", "montant"}); got != "200" {
		t.Errorf("resolveField = %q, want first non-empty source", got)
	}
	if got := resolveField(item, []string{"absent"}); got != "" {
		t.Errorf("resolveField = %q, want empty", got)
	}
}

func TestExtractRecordsDiscardsPlaceholders(t *testing.T) {
	spec := SectionSpec{
		Concept: "loans",
		Kind:    KindLoan,
		Tags:    []string{"pretsBancairesDto"},
		Fields: []FieldSpec{
			{Attr: "label", Sources: []string{"nature/label"}},
			{Attr: "outstanding", Sources: []string{"capitalRestantDu", "solde"}, Type: FieldAmount},
		},
	}
	sec := mustParse(t, `<pretsBancairesDto><items>
		<items><nature><label>Prêt immobilier</label></nature><solde>100 000</solde></items>
		<items><nature><label></label></nature><capitalRestantDu></capitalRestantDu></items>
	</items></pretsBancairesDto>`)
	records := extractRecords(sec, spec)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	loan := records[0].(*Loan)
	if loan.Label() != "Prêt immobilier" {
		t.Errorf("label = %q", loan.Label())
	}
	if v, _ := loan.Outstanding.Float64(); v != 100000 {
		t.Errorf("outstanding = %v, want 100000", v)
	}
}
