package main

import (
	"strings"

	"github.com/shopspring/decimal"
)

// normalizeCategory merges case and whitespace variants of a category name
// so "Food" and "food " land in the same bucket.
func normalizeCategory(category string) string {
	c := strings.ToLower(strings.TrimSpace(category))
	if c == "" {
		return "uncategorized"
	}
	return c
}

// aggregateRecords groups records that fall inside the period into
// per-category expense totals plus the period's income, expense, and debt
// figures. Pure function: identical inputs always produce an identical
// Aggregate.
//
// Any record with a negative amount fails the whole aggregation with a
// DataError; no partial analysis is attempted on invalid data.
func aggregateRecords(records []FinancialRecord, period Period) (Aggregate, error) {
	if !period.Valid() {
		return Aggregate{}, dataErrorf("invalid period %s: start must precede end", period)
	}

	agg := Aggregate{
		Period:     period,
		ByCategory: make(map[string]decimal.Decimal),
	}

	for _, rec := range records {
		if rec.Amount.IsNegative() {
			return Aggregate{}, dataErrorf("record %d: negative amount %s", rec.ID, rec.Amount)
		}
		if rec.MinimumPayment.IsNegative() {
			return Aggregate{}, dataErrorf("record %d: negative minimum payment %s", rec.ID, rec.MinimumPayment)
		}
	}

	for _, rec := range records {
		if !period.Contains(rec.Date) {
			continue
		}

		switch rec.Kind {
		case RecordIncome:
			agg.TotalIncome = agg.TotalIncome.Add(rec.Amount)
		case RecordExpense:
			cat := normalizeCategory(rec.Category)
			agg.ByCategory[cat] = agg.ByCategory[cat].Add(rec.Amount)
			agg.TotalExpense = agg.TotalExpense.Add(rec.Amount)
		case RecordDebt:
			agg.TotalDebt = agg.TotalDebt.Add(rec.Amount)
			agg.DebtService = agg.DebtService.Add(rec.MinimumPayment)
		default:
			return Aggregate{}, dataErrorf("record %d: unknown kind %q", rec.ID, rec.Kind)
		}
	}

	return agg, nil
}
