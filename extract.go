package transparence

import "strings"

// fieldValues holds one item's resolved attributes, keyed by output
// attribute name.
type fieldValues struct {
	text    map[string]string
	amounts map[string]Amount
	flags   map[string]bool
}

// label returns the item's display label: the resolved label attribute,
// falling back to its nature.
func (fv fieldValues) label() string {
	if l := fv.text["label"]; l != "" {
		return l
	}
	return fv.text["nature"]
}

// itemNodes enumerates a section's item elements. Depending on the schema
// revision the items sit one level deeper than the section (items/items) or
// directly below it; the nested layout is tried first and the flat one used
// only when it yields nothing.
func itemNodes(sec *node) []*node {
	var nested []*node
	sec.walk(func(n *node) {
		if n.name != "items" {
			return
		}
		for _, c := range n.children {
			if c.name == "items" {
				nested = append(nested, c)
			}
		}
	})
	if len(nested) > 0 {
		return nested
	}
	var flat []*node
	sec.walk(func(n *node) {
		if n != sec && n.name == "items" {
			flat = append(flat, n)
		}
	})
	return flat
}

// resolveField returns the first non-empty source text for an attribute.
func resolveField(item *node, sources []string) string {
	for _, src := range sources {
		if v := item.textAt(src); v != "" {
			return v
		}
	}
	return ""
}

// resolveItem resolves every configured attribute of one item. found is
// false when every attribute came back empty or absent; such items are
// placeholders, not data.
func resolveItem(item *node, fields []FieldSpec) (fv fieldValues, found bool) {
	fv = fieldValues{
		text:    make(map[string]string),
		amounts: make(map[string]Amount),
		flags:   make(map[string]bool),
	}
	for _, f := range fields {
		raw := resolveField(item, f.Sources)
		switch f.Type {
		case FieldAmount:
			a := ParseAmount(raw)
			fv.amounts[f.Attr] = a
			if !a.IsAbsent() {
				found = true
			}
		case FieldBool:
			fv.flags[f.Attr] = strings.EqualFold(raw, "true")
			if raw != "" {
				found = true
			}
		default:
			fv.text[f.Attr] = raw
			if raw != "" {
				found = true
			}
		}
	}
	return fv, found
}

// extractRecords turns a resolved section subtree into typed records,
// preserving document order. An explicitly empty section yields none even
// when residual item placeholders remain in its subtree.
func extractRecords(sec *node, spec SectionSpec) []Record {
	if sectionEmpty(sec) {
		return nil
	}
	var records []Record
	for _, item := range itemNodes(sec) {
		if !item.hasContent() {
			continue
		}
		fv, found := resolveItem(item, spec.Fields)
		if !found {
			continue
		}
		records = append(records, buildRecord(spec.Kind, "", "", fv))
	}
	return records
}

// catchAllFields is the generic field map applied to sections that match no
// configured concept but still carry item-shaped children.
var catchAllFields = []FieldSpec{
	{Attr: "label", Sources: []string{"nature/label", "libelle", "description", "denomination", "nomSociete", "nom"}},
	{Attr: "value", Sources: []string{"valeur", "valeurEstimee", "montant", "capitalRestantDu", "solde"}, Type: FieldAmount},
	{Attr: "note", Sources: []string{"commentaire", "observation"}},
}

// extractOther captures an unrecognized section into the catch-all bucket,
// tagged with the classifier's kind hint and the tag the data sat under.
func extractOther(sec *node, schema *Schema, tag string) []Record {
	if sectionEmpty(sec) {
		return nil
	}
	hint, _ := schema.classify(tag)
	var records []Record
	for _, item := range itemNodes(sec) {
		if !item.hasContent() {
			continue
		}
		fv, found := resolveItem(item, catchAllFields)
		if !found {
			continue
		}
		records = append(records, buildRecord(KindOther, hint, tag, fv))
	}
	return records
}

// buildRecord constructs the concrete record type for a kind from resolved
// attribute values. Kinds the builder does not know, which can only come
// from a user-extended schema table, land in the catch-all so their data is
// kept rather than dropped.
func buildRecord(kind Kind, hint, sourceTag string, fv fieldValues) Record {
	base := Base{
		RecordKind: kind,
		LabelText:  fv.label(),
		ValueEUR:   fv.amounts["value"],
		NoteText:   fv.text["note"],
	}
	switch kind {
	case KindFinancialInstrument:
		return &FinancialInstrument{
			Base:        base,
			Nature:      fv.text["nature"],
			NatureCode:  fv.text["nature_code"],
			HoldingMode: fv.text["holding_mode"],
			ShareCount:  fv.text["share_count"],
			UnitValue:   fv.amounts["unit_value"],
			ISIN:        fv.text["isin"],
			Currency:    fv.text["currency"],
			Acquired:    fv.text["acquired"],
			Institution: fv.text["institution"],
		}
	case KindCompanyParticipation:
		return &CompanyParticipation{
			Base:        base,
			LegalForm:   fv.text["legal_form"],
			ShareCount:  fv.text["share_count"],
			Ownership:   fv.text["ownership_pct"],
			HoldingMode: fv.text["holding_mode"],
			Activity:    fv.text["activity"],
			Address:     fv.text["address"],
			SIREN:       fv.text["siren"],
			Acquired:    fv.text["acquired"],
		}
	case KindRealEstate:
		return &RealEstate{
			Base:            base,
			NatureCode:      fv.text["nature_code"],
			Address:         fv.text["address"],
			Surface:         fv.text["surface"],
			HoldingMode:     fv.text["holding_mode"],
			Acquired:        fv.text["acquired"],
			AcquisitionMode: fv.text["acquisition_mode"],
			Usage:           fv.text["usage"],
		}
	case KindBankAccount:
		return &BankAccount{
			Base:        base,
			Institution: fv.text["institution"],
			Opened:      fv.text["opened"],
		}
	case KindVehicle:
		return &Vehicle{
			Base:     base,
			Nature:   fv.text["nature"],
			Acquired: fv.text["acquired"],
		}
	case KindOtherValuable:
		return &OtherValuable{
			Base:     base,
			Nature:   fv.text["nature"],
			Acquired: fv.text["acquired"],
		}
	case KindLoan:
		return &Loan{
			Base:        base,
			Lender:      fv.text["lender"],
			Outstanding: fv.amounts["outstanding"],
			Subscribed:  fv.text["subscribed"],
			Term:        fv.text["term"],
			Rate:        fv.text["rate"],
			Purpose:     fv.text["purpose"],
		}
	case KindIncome:
		return &Income{
			Base:     base,
			Annual:   fv.amounts["annual"],
			Source:   fv.text["source"],
			Activity: fv.text["activity"],
			Sector:   fv.text["sector"],
			Since:    fv.text["since"],
			Until:    fv.text["until"],
		}
	case KindElectiveMandate:
		return &ElectiveMandate{
			Base:         base,
			Nature:       fv.text["nature"],
			Body:         fv.text["body"],
			Constituency: fv.text["constituency"],
			Since:        fv.text["since"],
			Until:        fv.text["until"],
			Current:      fv.flags["current"],
		}
	case KindLeadershipRole:
		return &LeadershipRole{
			Base:         base,
			Organization: fv.text["organization"],
			OrgNature:    fv.text["org_nature"],
			Sector:       fv.text["sector"],
			Paid:         fv.flags["paid"],
			Annual:       fv.amounts["annual"],
			Since:        fv.text["since"],
			Until:        fv.text["until"],
			Current:      fv.flags["current"],
		}
	case KindAssociationInvolvement:
		return &AssociationInvolvement{
			Base:         base,
			Organization: fv.text["organization"],
			Sector:       fv.text["sector"],
			Paid:         fv.flags["paid"],
			Since:        fv.text["since"],
			Until:        fv.text["until"],
		}
	case KindOtherInterestLink:
		return &OtherInterestLink{
			Base:   base,
			Nature: fv.text["nature"],
			Party:  fv.text["party"],
		}
	case KindOther:
		return &Other{Base: base, KindHint: hint, SourceTag: sourceTag}
	}
	base.RecordKind = KindOther
	return &Other{Base: base, KindHint: string(kind), SourceTag: sourceTag}
}
