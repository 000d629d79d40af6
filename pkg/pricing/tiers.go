package pricing

import "github.com/shopspring/decimal"

// Condition is the product state that selects which tier table applies.
type Condition int

const (
	New Condition = iota
	Used
)

func (c Condition) Title() string {
	switch c {
	case New:
		return "Produto Novo"
	case Used:
		return "Produto Usado"
	default:
		return "Desconhecido"
	}
}

// Tier is a named multiplier applied to a base price.
type Tier struct {
	Label      string
	Multiplier decimal.Decimal
}

var newTiers = []Tier{
	{"Competitive", decimal.RequireFromString("0.95")},
	{"Very Competitive", decimal.RequireFromString("0.87")},
	{"Extremely Competitive", decimal.RequireFromString("0.75")},
	{"Moderate Urgency", decimal.RequireFromString("0.62")},
	{"High Urgency", decimal.RequireFromString("0.49")},
	{"Extreme Urgency+Moderate Desperation", decimal.RequireFromString("0.40")},
	{"Extreme Urgency+Extreme Desperation", decimal.RequireFromString("0.3333")},
}

var usedTiers = []Tier{
	{"Very Competitive", decimal.RequireFromString("0.95")},
	{"Extremely Competitive", decimal.RequireFromString("0.85")},
	{"Moderate Urgency", decimal.RequireFromString("0.75")},
	{"High Urgency", decimal.RequireFromString("0.66")},
	{"Extreme Urgency+Desperation", decimal.RequireFromString("0.50")},
}

// TiersFor returns the ordered tier table for a condition. Callers must not
// mutate the returned slice.
func TiersFor(c Condition) []Tier {
	switch c {
	case New:
		return newTiers
	case Used:
		return usedTiers
	default:
		return nil
	}
}
