package pricing

import "github.com/shopspring/decimal"

// Row is one optimized listing price derived from a base price and a tier.
type Row struct {
	Condition  Condition
	Label      string
	Multiplier decimal.Decimal
	Optimized  decimal.Decimal
}

// ComputeRows applies the built-in tier tables to the two base prices and
// returns all New rows followed by all Used rows, in table order.
//
// Each optimized price is base*multiplier rounded to 2 decimal places,
// half away from zero.
func ComputeRows(newPrice, usedPrice decimal.Decimal) []Row {
	rows := make([]Row, 0, len(newTiers)+len(usedTiers))
	for _, t := range newTiers {
		rows = append(rows, Row{
			Condition:  New,
			Label:      t.Label,
			Multiplier: t.Multiplier,
			Optimized:  newPrice.Mul(t.Multiplier).Round(2),
		})
	}
	for _, t := range usedTiers {
		rows = append(rows, Row{
			Condition:  Used,
			Label:      t.Label,
			Multiplier: t.Multiplier,
			Optimized:  usedPrice.Mul(t.Multiplier).Round(2),
		})
	}
	return rows
}
