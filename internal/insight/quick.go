package insight

import "fmt"

// NoInsightsMessage is returned by QuickInsights when no banner applies.
const NoInsightsMessage = "💡 Add more transactions and set up budgets to get personalized insights!"

// QuickInsights lists short banners for a dashboard. Each banner has its own
// threshold; the order is health, savings, budgets, trend, top category, goals.
func QuickInsights(c Context, p PredictiveInsight, cur Currency) []string {
	var out []string

	switch {
	case p.HealthScore >= 80:
		out = append(out, fmt.Sprintf("✅ Excellent Financial Health Score: %d/100!", p.HealthScore))
	case p.HealthScore < 60:
		out = append(out, fmt.Sprintf("⚠️ Financial Health Score: %d/100 - Focus on improving your savings rate", p.HealthScore))
	}

	switch {
	case c.SavingsRate.GreaterThanOrEqual(twenty):
		out = append(out, fmt.Sprintf("💪 Great savings rate of %s%%! You're on track.", c.SavingsRate.StringFixed(1)))
	case c.SavingsRate.LessThan(ten):
		out = append(out, fmt.Sprintf("⚠️ Your savings rate is %s%%. Aim for at least 20%% to build wealth.", c.SavingsRate.StringFixed(1)))
	}

	if n := len(c.OverBudget()); n > 0 {
		out = append(out, fmt.Sprintf("🚨 You've exceeded budget in %d %s", n, plural(n, "category", "categories")))
	}

	if c.ExpenseTrend.IsPositive() {
		out = append(out, "📈 Your expenses are trending upward. Consider reviewing your spending.")
	}

	if len(c.TopCategories) > 0 {
		top := c.TopCategories[0]
		out = append(out, fmt.Sprintf("🎯 Top spending: %s (%s)", top.Name, cur.Format(top.Amount)))
	}

	if n := len(c.ActiveGoals()); n > 0 {
		out = append(out, fmt.Sprintf("🎯 %d active financial %s to track", n, plural(n, "goal", "goals")))
	}

	if len(out) == 0 {
		return []string{NoInsightsMessage}
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
