package model

import "github.com/shopspring/decimal"

// Priority ranks savings goals.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is a known priority.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Goal is a savings target.
type Goal struct {
	Name          string          `json:"name" yaml:"name"`
	TargetAmount  decimal.Decimal `json:"targetAmount" yaml:"target_amount"`
	CurrentAmount decimal.Decimal `json:"currentAmount" yaml:"current_amount"`
	Priority      Priority        `json:"priority,omitempty" yaml:"priority,omitempty"`
	Category      string          `json:"category,omitempty" yaml:"category,omitempty"`
	Completed     bool            `json:"completed" yaml:"completed"` // as stored; see Achieved
}

// Achieved derives completion from the amounts. The stored Completed flag is not consulted.
func (g Goal) Achieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns saved/target as a percentage rounded to one decimal.
// A non-positive target reports zero progress.
func (g Goal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(1)
}

// Remaining is how much is still to be saved, never below zero.
func (g Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}
