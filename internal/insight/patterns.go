package insight

import (
	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/model"
)

// Peak names the largest bucket of a breakdown.
type Peak struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// SpendingPatterns breaks expenses down by category, weekday and calendar month.
type SpendingPatterns struct {
	ByCategory            map[string]decimal.Decimal `json:"byCategory"`
	ByWeekday             map[string]decimal.Decimal `json:"byDayOfWeek"`
	ByMonthName           map[string]decimal.Decimal `json:"byMonth"`
	AverageTransaction    decimal.Decimal            `json:"averageTransaction"`
	MostExpensiveCategory *Peak                      `json:"mostExpensiveCategory,omitempty"`
	MostExpensiveDay      *Peak                      `json:"mostExpensiveDay,omitempty"`
}

// orderedSums accumulates named totals and remembers first-seen order.
type orderedSums struct {
	order []string
	sums  map[string]decimal.Decimal
}

func newOrderedSums() *orderedSums {
	return &orderedSums{sums: make(map[string]decimal.Decimal)}
}

func (o *orderedSums) add(name string, v decimal.Decimal) {
	if _, ok := o.sums[name]; !ok {
		o.order = append(o.order, name)
	}
	o.sums[name] = o.sums[name].Add(v)
}

// peak returns the largest total; ties go to the name seen first.
func (o *orderedSums) peak() *Peak {
	var p *Peak
	for _, name := range o.order {
		if p == nil || o.sums[name].GreaterThan(p.Amount) {
			p = &Peak{Name: name, Amount: o.sums[name]}
		}
	}
	return p
}

// AnalyzeSpendingPatterns summarises expense transactions. Income is ignored.
// Transactions without a usable date still count toward ByCategory and the average.
func AnalyzeSpendingPatterns(txns []model.Transaction) SpendingPatterns {
	byCategory := newOrderedSums()
	byWeekday := newOrderedSums()
	byMonth := newOrderedSums()

	total := decimal.Zero
	count := 0
	for _, t := range txns {
		if t.IsIncome() {
			continue
		}
		amount := t.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}
		count++
		total = total.Add(amount)
		byCategory.add(t.CategoryKey(), amount)

		if d, ok := t.ParsedDate(); ok {
			byWeekday.add(d.Weekday().String(), amount)
			byMonth.add(d.Month().String(), amount)
		}
	}

	avg := decimal.Zero
	if count > 0 {
		avg = total.Div(decimal.NewFromInt(int64(count))).Round(2)
	}

	return SpendingPatterns{
		ByCategory:            byCategory.sums,
		ByWeekday:             byWeekday.sums,
		ByMonthName:           byMonth.sums,
		AverageTransaction:    avg,
		MostExpensiveCategory: byCategory.peak(),
		MostExpensiveDay:      byWeekday.peak(),
	}
}
