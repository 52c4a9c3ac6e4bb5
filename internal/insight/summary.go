package insight

import (
	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/model"
)

// BudgetTier grades how close a budget is to its limit.
type BudgetTier string

const (
	BudgetGood    BudgetTier = "good"
	BudgetWarning BudgetTier = "warning"
	BudgetOver    BudgetTier = "over"
)

var budgetWarningPercent = decimal.NewFromInt(80)

// tierFor grades spending: over the limit, at 80% or more of it, or below.
func tierFor(spent, limit, percentage decimal.Decimal) BudgetTier {
	switch {
	case spent.GreaterThan(limit):
		return BudgetOver
	case percentage.GreaterThanOrEqual(budgetWarningPercent):
		return BudgetWarning
	default:
		return BudgetGood
	}
}

// BudgetSummary totals every budget.
type BudgetSummary struct {
	TotalLimit decimal.Decimal `json:"totalLimit"`
	TotalSpent decimal.Decimal `json:"totalSpent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Over       int             `json:"over"`
	Warning    int             `json:"warning"`
}

func summarizeBudgets(statuses []BudgetStatus) BudgetSummary {
	var s BudgetSummary
	for _, b := range statuses {
		s.TotalLimit = s.TotalLimit.Add(b.Limit)
		s.TotalSpent = s.TotalSpent.Add(b.Spent)
		switch b.Tier {
		case BudgetOver:
			s.Over++
		case BudgetWarning:
			s.Warning++
		}
	}
	s.Remaining = s.TotalLimit.Sub(s.TotalSpent)
	return s
}

// GoalProgress is one goal's standing.
type GoalProgress struct {
	Name       string          `json:"name"`
	Target     decimal.Decimal `json:"target"`
	Current    decimal.Decimal `json:"current"`
	Remaining  decimal.Decimal `json:"remaining"` // never below zero
	Percentage decimal.Decimal `json:"percentage"`
	Achieved   bool            `json:"achieved"`
}

// GoalSummary totals every goal. Completion is derived from the amounts.
type GoalSummary struct {
	Completed    int             `json:"completed"`
	Active       int             `json:"active"`
	TotalTarget  decimal.Decimal `json:"totalTarget"`
	TotalCurrent decimal.Decimal `json:"totalCurrent"`
	Goals        []GoalProgress  `json:"goals"`
}

func summarizeGoals(goals []model.Goal) GoalSummary {
	s := GoalSummary{Goals: make([]GoalProgress, 0, len(goals))}
	for _, g := range goals {
		achieved := g.Achieved()
		if achieved {
			s.Completed++
		} else {
			s.Active++
		}
		s.TotalTarget = s.TotalTarget.Add(g.TargetAmount)
		s.TotalCurrent = s.TotalCurrent.Add(g.CurrentAmount)
		s.Goals = append(s.Goals, GoalProgress{
			Name:       g.Name,
			Target:     g.TargetAmount,
			Current:    g.CurrentAmount,
			Remaining:  g.Remaining(),
			Percentage: g.Progress(),
			Achieved:   achieved,
		})
	}
	return s
}
