package transparence

import "testing"

func TestAggregate(t *testing.T) {
	records := RecordSet{}
	records.Add(&RealEstate{Base: Base{RecordKind: KindRealEstate, LabelText: "Appartement", ValueEUR: AmountOf(300000)}})
	records.Add(&Loan{
		Base:        Base{RecordKind: KindLoan, LabelText: "Prêt immobilier", ValueEUR: AmountOf(150000)},
		Outstanding: AmountOf(100000),
	})
	records.Add(&Income{Base: Base{RecordKind: KindIncome, LabelText: "Indemnité"}, Annual: AmountOf(85200.5)})
	// an instrument of unknown value counts but adds nothing
	records.Add(&FinancialInstrument{Base: Base{RecordKind: KindFinancialInstrument, LabelText: "Assurance-vie"}})

	agg := Aggregate(records)
	if agg.GrossAssets != 300000 {
		t.Errorf("gross = %v, want 300000", agg.GrossAssets)
	}
	if agg.TotalDebt != 100000 {
		t.Errorf("debt = %v, want the outstanding balance, not the borrowed principal", agg.TotalDebt)
	}
	if agg.NetWorth != 200000 {
		t.Errorf("net worth = %v, want 200000", agg.NetWorth)
	}
	if agg.AnnualIncome != 85200.5 {
		t.Errorf("income = %v, want 85200.5", agg.AnnualIncome)
	}
	if agg.Counts[KindFinancialInstrument] != 1 {
		t.Errorf("counts = %v; a record with absent amount still counts", agg.Counts)
	}
}

func TestAggregateRounding(t *testing.T) {
	records := RecordSet{}
	// three thirds accumulate exactly before the single rounding at output
	for range 3 {
		records.Add(&RealEstate{Base: Base{RecordKind: KindRealEstate, ValueEUR: ParseAmount("0,335")}})
	}
	agg := Aggregate(records)
	if agg.GrossAssets != 1.01 {
		t.Errorf("gross = %v, want 1.01 (rounded once at output)", agg.GrossAssets)
	}
}

func TestAggregateEmpty(t *testing.T) {
	agg := Aggregate(RecordSet{})
	if agg.GrossAssets != 0 || agg.TotalDebt != 0 || agg.NetWorth != 0 || agg.AnnualIncome != 0 {
		t.Errorf("empty set must aggregate to zeros, got %+v", agg)
	}
}
