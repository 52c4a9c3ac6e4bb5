// Package snapshot loads the records the insight engine works from and
// checks them at the boundary. Numeric fields are parsed permissively;
// budgets and goals that break their invariants are reported, never
// silently accepted.
package snapshot

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/financely/financely/internal/model"
)

// Amount accepts numbers, numeric strings, or junk (read as zero).
type Amount struct {
	decimal.Decimal
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (a *Amount) UnmarshalYAML(n *yaml.Node) error {
	a.Decimal = decimal.Zero
	if n.Kind == yaml.ScalarNode && n.Tag != "!!null" {
		a.Decimal = model.ParseAmount(n.Value)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		a.Decimal = model.ParseAmount(s)
		return nil
	}
	// Number literal; null, booleans and objects fall through to zero.
	a.Decimal = model.ParseAmount(string(b))
	return nil
}

// Transaction is a transaction as written in a snapshot file.
type Transaction struct {
	Type     string `json:"type" yaml:"type"`
	Amount   Amount `json:"amount" yaml:"amount"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Date     string `json:"date" yaml:"date"`
}

// Budget is a budget as written in a snapshot file.
type Budget struct {
	Category string `json:"category" yaml:"category"`
	Limit    Amount `json:"limit" yaml:"limit"`
	Period   string `json:"period" yaml:"period"`
}

// Goal is a goal as written in a snapshot file.
type Goal struct {
	Name          string `json:"name" yaml:"name"`
	TargetAmount  Amount `json:"targetAmount" yaml:"target_amount"`
	CurrentAmount Amount `json:"currentAmount" yaml:"current_amount"`
	Priority      string `json:"priority" yaml:"priority"`
	Category      string `json:"category" yaml:"category"`
	Completed     bool   `json:"completed" yaml:"completed"`
}

// Document is the on-disk (or on-wire) shape of a snapshot.
type Document struct {
	Transactions []Transaction `json:"transactions" yaml:"transactions"`
	Budgets      []Budget      `json:"budgets" yaml:"budgets"`
	Goals        []Goal        `json:"goals" yaml:"goals"`
}

// Snapshot converts the document, applying defaults: types and enums are
// lower-cased and trimmed, an empty budget period is monthly, and an empty
// goal priority is medium.
func (d Document) Snapshot() model.Snapshot {
	snap := model.Snapshot{
		Transactions: make([]model.Transaction, 0, len(d.Transactions)),
		Budgets:      make([]model.Budget, 0, len(d.Budgets)),
		Goals:        make([]model.Goal, 0, len(d.Goals)),
	}
	for _, t := range d.Transactions {
		snap.Transactions = append(snap.Transactions, model.Transaction{
			Type:     model.TransactionType(normalize(t.Type)),
			Amount:   t.Amount.Decimal,
			Name:     strings.TrimSpace(t.Name),
			Category: strings.TrimSpace(t.Category),
			Date:     strings.TrimSpace(t.Date),
		})
	}
	for _, b := range d.Budgets {
		period := model.Period(normalize(b.Period))
		if period == "" {
			period = model.PeriodMonthly
		}
		snap.Budgets = append(snap.Budgets, model.Budget{
			Category: strings.TrimSpace(b.Category),
			Limit:    b.Limit.Decimal,
			Period:   period,
		})
	}
	for _, g := range d.Goals {
		priority := model.Priority(normalize(g.Priority))
		if priority == "" {
			priority = model.PriorityMedium
		}
		snap.Goals = append(snap.Goals, model.Goal{
			Name:          strings.TrimSpace(g.Name),
			TargetAmount:  g.TargetAmount.Decimal,
			CurrentAmount: g.CurrentAmount.Decimal,
			Priority:      priority,
			Category:      strings.TrimSpace(g.Category),
			Completed:     g.Completed,
		})
	}
	return snap
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
