package transparence

import "github.com/shopspring/decimal"

// Aggregates are the derived totals of a profile's consolidated records.
type Aggregates struct {
	GrossAssets  float64      `json:"gross_assets_eur"`
	TotalDebt    float64      `json:"total_debt_eur"`
	NetWorth     float64      `json:"net_worth_eur"`
	AnnualIncome float64      `json:"annual_income_eur"`
	Counts       map[Kind]int `json:"counts"`
}

// grossKinds are the kinds whose declared values sum into gross assets.
var grossKinds = map[Kind]bool{
	KindFinancialInstrument:  true,
	KindCompanyParticipation: true,
	KindRealEstate:           true,
	KindVehicle:              true,
	KindOtherValuable:        true,
}

// Aggregate computes the derived totals. An absent amount contributes zero
// to the sums but the record still counts: a disclosed instrument of
// unknown value is disclosed all the same. Accumulation is exact decimal
// arithmetic; rounding to 2 decimals happens once, here at output.
func Aggregate(records RecordSet) Aggregates {
	var gross, debt, income decimal.Decimal
	counts := make(map[Kind]int)
	for kind, list := range records {
		counts[kind] = len(list)
		for _, r := range list {
			switch {
			case grossKinds[kind]:
				gross = gross.Add(r.Value().Decimal())
			case kind == KindLoan:
				debt = debt.Add(loanOutstanding(r).Decimal())
			case kind == KindIncome:
				income = income.Add(r.Value().Decimal())
			}
		}
	}
	round := func(d decimal.Decimal) float64 { return d.Round(2).InexactFloat64() }
	return Aggregates{
		GrossAssets:  round(gross),
		TotalDebt:    round(debt),
		NetWorth:     round(gross.Sub(debt)),
		AnnualIncome: round(income),
		Counts:       counts,
	}
}

// loanOutstanding returns the remaining balance of a loan record. Records
// of loan kind that are not Loan values, which only the catch-all bucket
// can produce, contribute nothing.
func loanOutstanding(r Record) Amount {
	switch l := r.(type) {
	case *Loan:
		return l.Outstanding
	case Loan:
		return l.Outstanding
	}
	return Amount{}
}
