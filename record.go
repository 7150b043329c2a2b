package transparence

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind identifies the variant of a disclosed asset or interest record.
type Kind string

const (
	KindFinancialInstrument    Kind = "financial-instrument"
	KindCompanyParticipation   Kind = "company-participation"
	KindRealEstate             Kind = "real-estate"
	KindBankAccount            Kind = "bank-account"
	KindVehicle                Kind = "vehicle"
	KindOtherValuable          Kind = "other-valuable"
	KindLoan                   Kind = "loan"
	KindIncome                 Kind = "income"
	KindElectiveMandate        Kind = "elective-mandate"
	KindLeadershipRole         Kind = "leadership-role"
	KindAssociationInvolvement Kind = "association-involvement"
	KindOtherInterestLink      Kind = "other-interest-link"
	KindOther                  Kind = "other"
)

// Record is one disclosed asset, liability, income stream or interest. The
// concrete type determines the kind; every record exposes the shared trio of
// display label, declared value and free-text note.
type Record interface {
	Kind() Kind
	Label() string
	Value() Amount
	Note() string
}

// Base carries the attributes every record variant shares. Concrete record
// types embed it and add their kind-specific fields.
type Base struct {
	RecordKind Kind   `json:"kind"`
	LabelText  string `json:"label,omitempty"`
	ValueEUR   Amount `json:"value_eur"`
	NoteText   string `json:"note,omitempty"`
}

func (b Base) Kind() Kind    { return b.RecordKind }
func (b Base) Label() string { return b.LabelText }
func (b Base) Value() Amount { return b.ValueEUR }
func (b Base) Note() string  { return b.NoteText }

// FinancialInstrument is a listed security, fund, savings plan or life
// insurance contract. The label is the declared description, falling back to
// the instrument nature.
type FinancialInstrument struct {
	Base
	Nature      string `json:"nature,omitempty"`
	NatureCode  string `json:"nature_code,omitempty"`
	HoldingMode string `json:"holding_mode,omitempty"`
	ShareCount  string `json:"share_count,omitempty"`
	UnitValue   Amount `json:"unit_value_eur"`
	ISIN        string `json:"isin,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Acquired    string `json:"acquired,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// CompanyParticipation is an equity stake in an unlisted company. The label
// is the company name.
type CompanyParticipation struct {
	Base
	LegalForm   string `json:"legal_form,omitempty"`
	ShareCount  string `json:"share_count,omitempty"`
	Ownership   string `json:"ownership_pct,omitempty"`
	HoldingMode string `json:"holding_mode,omitempty"`
	Activity    string `json:"activity,omitempty"`
	Address     string `json:"address,omitempty"`
	SIREN       string `json:"siren,omitempty"`
	Acquired    string `json:"acquired,omitempty"`
}

// RealEstate is a real property holding. The label is the property nature.
type RealEstate struct {
	Base
	NatureCode      string `json:"nature_code,omitempty"`
	Address         string `json:"address,omitempty"`
	Surface         string `json:"surface_m2,omitempty"`
	HoldingMode     string `json:"holding_mode,omitempty"`
	Acquired        string `json:"acquired,omitempty"`
	AcquisitionMode string `json:"acquisition_mode,omitempty"`
	Usage           string `json:"usage,omitempty"`
}

// BankAccount is a deposit or savings account; the value is the declared
// balance.
type BankAccount struct {
	Base
	Institution string `json:"institution,omitempty"`
	Opened      string `json:"opened,omitempty"`
}

// Vehicle is a declared vehicle.
type Vehicle struct {
	Base
	Nature   string `json:"nature,omitempty"`
	Acquired string `json:"acquired,omitempty"`
}

// OtherValuable covers art, jewellery, furniture and other valuables.
type OtherValuable struct {
	Base
	Nature   string `json:"nature,omitempty"`
	Acquired string `json:"acquired,omitempty"`
}

// Loan is a declared liability. The base value is the borrowed principal;
// Outstanding is the remaining balance and is what debt aggregation sums.
type Loan struct {
	Base
	Lender      string `json:"lender,omitempty"`
	Outstanding Amount `json:"outstanding_eur"`
	Subscribed  string `json:"subscribed,omitempty"`
	Term        string `json:"term,omitempty"`
	Rate        string `json:"rate,omitempty"`
	Purpose     string `json:"purpose,omitempty"`
}

// Income is a declared income stream or paid activity.
type Income struct {
	Base
	Annual   Amount `json:"annual_eur"`
	Source   string `json:"source,omitempty"`
	Activity string `json:"activity,omitempty"`
	Sector   string `json:"sector,omitempty"`
	Since    string `json:"since,omitempty"`
	Until    string `json:"until,omitempty"`
}

// Value returns the annual amount; income has no point-in-time valuation.
func (i Income) Value() Amount { return i.Annual }

// ElectiveMandate is an elective office held by the declarant.
type ElectiveMandate struct {
	Base
	Nature       string `json:"nature,omitempty"`
	Body         string `json:"body,omitempty"`
	Constituency string `json:"constituency,omitempty"`
	Since        string `json:"since,omitempty"`
	Until        string `json:"until,omitempty"`
	Current      bool   `json:"current,omitempty"`
}

// LeadershipRole is a governing or executive function in a public or private
// body.
type LeadershipRole struct {
	Base
	Organization string `json:"organization,omitempty"`
	OrgNature    string `json:"org_nature,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Paid         bool   `json:"paid,omitempty"`
	Annual       Amount `json:"annual_eur"`
	Since        string `json:"since,omitempty"`
	Until        string `json:"until,omitempty"`
	Current      bool   `json:"current,omitempty"`
}

// AssociationInvolvement is a voluntary role in an association or
// non-profit body.
type AssociationInvolvement struct {
	Base
	Organization string `json:"organization,omitempty"`
	Sector       string `json:"sector,omitempty"`
	Paid         bool   `json:"paid,omitempty"`
	Since        string `json:"since,omitempty"`
	Until        string `json:"until,omitempty"`
}

// OtherInterestLink is a declared interest that fits none of the structured
// categories but was published under a recognized section.
type OtherInterestLink struct {
	Base
	Nature string `json:"nature,omitempty"`
	Party  string `json:"party,omitempty"`
}

// Other holds records from sections whose tag matched no configured concept.
// KindHint is the classifier's guess at what the section holds; SourceTag is
// the tag the data was found under, so the schema table can be extended.
type Other struct {
	Base
	KindHint  string `json:"kind_hint,omitempty"`
	SourceTag string `json:"source_tag,omitempty"`
}

// RecordSet groups records by kind, preserving extraction order within each
// kind.
type RecordSet map[Kind][]Record

// Add appends a record under its own kind.
func (rs RecordSet) Add(r Record) { rs[r.Kind()] = append(rs[r.Kind()], r) }

// Append merges all records of other into rs, preserving order.
func (rs RecordSet) Append(other RecordSet) {
	for _, kind := range other.Kinds() {
		rs[kind] = append(rs[kind], other[kind]...)
	}
}

// Count returns the total number of records across kinds.
func (rs RecordSet) Count() int {
	n := 0
	for _, records := range rs {
		n += len(records)
	}
	return n
}

// Kinds returns the kinds present in the set, sorted for deterministic
// iteration.
func (rs RecordSet) Kinds() []Kind {
	kinds := make([]Kind, 0, len(rs))
	for k := range rs {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// UnmarshalJSON rebuilds the concrete record types from the kind the set is
// keyed by.
func (rs *RecordSet) UnmarshalJSON(data []byte) error {
	var raw map[Kind][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	set := make(RecordSet, len(raw))
	for kind, items := range raw {
		for _, item := range items {
			r, err := decodeRecord(kind, item)
			if err != nil {
				return err
			}
			set[kind] = append(set[kind], r)
		}
	}
	*rs = set
	return nil
}

// kindSetter lets the decoder stamp the authoritative kind (the map key)
// onto a freshly decoded record, whatever its embedded kind field said.
type kindSetter interface{ setKind(Kind) }

func (b *Base) setKind(k Kind) { b.RecordKind = k }

// decodeRecord decodes one record of a known kind.
func decodeRecord(kind Kind, data []byte) (Record, error) {
	var r Record
	switch kind {
	case KindFinancialInstrument:
		r = &FinancialInstrument{}
	case KindCompanyParticipation:
		r = &CompanyParticipation{}
	case KindRealEstate:
		r = &RealEstate{}
	case KindBankAccount:
		r = &BankAccount{}
	case KindVehicle:
		r = &Vehicle{}
	case KindOtherValuable:
		r = &OtherValuable{}
	case KindLoan:
		r = &Loan{}
	case KindIncome:
		r = &Income{}
	case KindElectiveMandate:
		r = &ElectiveMandate{}
	case KindLeadershipRole:
		r = &LeadershipRole{}
	case KindAssociationInvolvement:
		r = &AssociationInvolvement{}
	case KindOtherInterestLink:
		r = &OtherInterestLink{}
	case KindOther:
		r = &Other{}
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
	if err := json.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("decoding %s record: %w", kind, err)
	}
	r.(kindSetter).setKind(kind)
	return r, nil
}
