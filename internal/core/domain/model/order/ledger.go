package order

import (
	"roadside/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ExtraCostLedger is the ordered list of extra costs of one order.
type ExtraCostLedger struct {
	items []*ExtraCost
}

// Items returns the costs in insertion order.
func (l ExtraCostLedger) Items() []*ExtraCost {
	out := make([]*ExtraCost, len(l.items))
	copy(out, l.items)
	return out
}

func (l ExtraCostLedger) Len() int {
	return len(l.items)
}

func (l ExtraCostLedger) Find(id kernel.UUID) (*ExtraCost, bool) {
	for _, item := range l.items {
		if item.id.IsEqual(id) {
			return item, true
		}
	}
	return nil, false
}

// ActiveAmounts returns the prices that count towards the total.
func (l ExtraCostLedger) ActiveAmounts() []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(l.items))
	for _, item := range l.items {
		if item.isActive {
			amounts = append(amounts, item.price)
		}
	}
	return amounts
}

// amountsWith returns the active amounts as if the cost with the given id had
// the given active flag.
func (l ExtraCostLedger) amountsWith(id kernel.UUID, active bool) []decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(l.items))
	for _, item := range l.items {
		isActive := item.isActive
		if item.id.IsEqual(id) {
			isActive = active
		}
		if isActive {
			amounts = append(amounts, item.price)
		}
	}
	return amounts
}

func (l *ExtraCostLedger) append(e *ExtraCost) {
	l.items = append(l.items, e)
}
