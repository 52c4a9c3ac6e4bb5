package insight

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecommendationType tags the severity of a recommendation.
type RecommendationType string

const (
	RecWarning    RecommendationType = "warning"
	RecInfo       RecommendationType = "info"
	RecSuggestion RecommendationType = "suggestion"
	RecAlert      RecommendationType = "alert"
	RecCritical   RecommendationType = "critical"
)

// Recommendation is one advisory message.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Title   string             `json:"title"`
	Message string             `json:"message"`
}

var topCategoryShare = decimal.RequireFromString("0.3")

// Recommend evaluates every rule in a fixed order and returns all that match.
// Callers display them in the returned order.
func Recommend(c Context, healthScore int) []Recommendation {
	recs := []Recommendation{}

	if c.SavingsRate.LessThan(twenty) {
		recs = append(recs, Recommendation{
			Type:    RecWarning,
			Title:   "Low Savings Rate",
			Message: fmt.Sprintf("Your savings rate is %s%%. Aim for at least 20%% to build a strong financial foundation.", c.SavingsRate.StringFixed(1)),
		})
	}

	if c.ExpenseTrend.IsPositive() {
		recs = append(recs, Recommendation{
			Type:    RecInfo,
			Title:   "Increasing Expenses",
			Message: "Your expenses are trending upward. Review your spending patterns to identify areas for optimization.",
		})
	}

	if len(c.TopCategories) > 0 {
		top := c.TopCategories[0]
		if top.Amount.GreaterThan(c.TotalExpense.Mul(topCategoryShare)) {
			share := top.Amount.Div(c.TotalExpense).Mul(hundred).Round(1)
			recs = append(recs, Recommendation{
				Type:    RecSuggestion,
				Title:   "High Spending Category",
				Message: fmt.Sprintf("%s accounts for %s%% of your expenses. Consider reviewing this category.", top.Name, share.StringFixed(1)),
			})
		}
	}

	if len(c.OverBudget()) > 0 {
		recs = append(recs, Recommendation{
			Type:    RecAlert,
			Title:   "Budget Overrun",
			Message: "You have exceeded budgets in some categories. Review and adjust your spending.",
		})
	}

	if healthScore < 60 {
		recs = append(recs, Recommendation{
			Type:    RecCritical,
			Title:   "Financial Health Alert",
			Message: "Your financial health score is below optimal. Focus on reducing expenses and increasing savings.",
		})
	}

	return recs
}
