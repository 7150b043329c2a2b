// Package renderer turns consolidated profiles into markdown reports.
package renderer

import (
	"math"

	"github.com/Rhymond/go-money"

	"github.com/tlecomte/transparence"
)

// kindOrder fixes the display order of record kinds in reports: assets
// first, then liabilities, income and interests.
var kindOrder = []transparence.Kind{
	transparence.KindRealEstate,
	transparence.KindFinancialInstrument,
	transparence.KindCompanyParticipation,
	transparence.KindBankAccount,
	transparence.KindVehicle,
	transparence.KindOtherValuable,
	transparence.KindLoan,
	transparence.KindIncome,
	transparence.KindElectiveMandate,
	transparence.KindLeadershipRole,
	transparence.KindAssociationInvolvement,
	transparence.KindOtherInterestLink,
	transparence.KindOther,
}

var kindTitles = map[transparence.Kind]string{
	transparence.KindRealEstate:             "Real estate",
	transparence.KindFinancialInstrument:    "Financial instruments",
	transparence.KindCompanyParticipation:   "Company participations",
	transparence.KindBankAccount:            "Bank accounts",
	transparence.KindVehicle:                "Vehicles",
	transparence.KindOtherValuable:          "Other valuables",
	transparence.KindLoan:                   "Loans",
	transparence.KindIncome:                 "Income",
	transparence.KindElectiveMandate:        "Elective mandates",
	transparence.KindLeadershipRole:         "Leadership roles",
	transparence.KindAssociationInvolvement: "Associations",
	transparence.KindOtherInterestLink:      "Other interests",
	transparence.KindOther:                  "Uncategorized",
}

// eur formats a declared amount for display; an absent value renders as "?"
// so a reader can tell "not provided" from zero.
func eur(a transparence.Amount) string {
	v, ok := a.Float64()
	if !ok {
		return "?"
	}
	return eurf(v)
}

func eurf(v float64) string {
	return money.New(int64(math.Round(v*100)), money.EUR).Display()
}
