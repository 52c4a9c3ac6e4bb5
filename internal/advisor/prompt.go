package advisor

import (
	"fmt"
	"strings"

	"github.com/financely/financely/internal/insight"
)

const assistantBrief = `You are a personal finance assistant for Financely. Give specific, actionable, data-driven advice.

Guidelines:
- Reference the categories, amounts and trends in the profile below
- Take the health score and risk level into account
- Give step-by-step guidance when it helps
- Use the %s symbol for all currency amounts
- Be encouraging but realistic
- For investment questions give general guidance and suggest a certified financial advisor for complex decisions

Answer in a friendly, professional, conversational tone.`

// BuildPrompt embeds the full context and insight snapshot plus the user's question.
func BuildPrompt(c insight.Context, p insight.PredictiveInsight, message string, cur insight.Currency) string {
	var b strings.Builder
	fmt.Fprintf(&b, assistantBrief, cur)

	b.WriteString("\n\nUser's Financial Profile:\n")
	fmt.Fprintf(&b, "- Total Income: %s\n", cur.Format(c.TotalIncome))
	fmt.Fprintf(&b, "- Total Expenses: %s\n", cur.Format(c.TotalExpense))
	fmt.Fprintf(&b, "- Current Balance: %s\n", cur.Format(c.CurrentBalance))
	fmt.Fprintf(&b, "- Savings Rate: %s%%\n", c.SavingsRate.StringFixed(1))
	fmt.Fprintf(&b, "- Financial Health Score: %d/100 (%s Risk)\n", p.HealthScore, p.RiskLevel)
	fmt.Fprintf(&b, "- Total Transactions: %d\n", c.TransactionCount)

	b.WriteString("\nTop Spending Categories:\n")
	if len(c.TopCategories) == 0 {
		b.WriteString("No spending recorded yet\n")
	}
	for i, tc := range c.TopCategories {
		fmt.Fprintf(&b, "%d. %s: %s\n", i+1, tc.Name, cur.Format(tc.Amount))
	}

	b.WriteString("\nMonthly Totals:\n")
	if len(c.Months) == 0 {
		b.WriteString("No monthly data yet\n")
	}
	for _, m := range c.Months {
		mt := c.MonthlyData[m]
		fmt.Fprintf(&b, "- %s: income %s, expenses %s\n", m, cur.Format(mt.Income), cur.Format(mt.Expense))
	}

	b.WriteString("\nBudget Status:\n")
	if len(c.BudgetStatus) == 0 {
		b.WriteString("No budgets set yet\n")
	}
	for _, bs := range c.BudgetStatus {
		fmt.Fprintf(&b, "- %s: %s/%s (%s%%)\n", bs.Category, cur.Format(bs.Spent), cur.Format(bs.Limit), bs.Percentage.StringFixed(1))
	}

	b.WriteString("\nFinancial Goals:\n")
	if len(c.Goals) == 0 {
		b.WriteString("No goals set yet\n")
	}
	for _, g := range c.Goals {
		fmt.Fprintf(&b, "- %s: %s (%s saved)\n", g.Name, cur.Format(g.TargetAmount), cur.Format(g.CurrentAmount))
	}

	b.WriteString("\nPredictive Insights:\n")
	fmt.Fprintf(&b, "- Predicted Next Month Expense: %s\n", cur.Format(p.PredictedExpense))
	fmt.Fprintf(&b, "- Expense Trend: %s\n", trendWord(c))
	for _, r := range p.Recommendations {
		fmt.Fprintf(&b, "- [%s] %s: %s\n", r.Type, r.Title, r.Message)
	}

	fmt.Fprintf(&b, "\nUser Question: %s", message)
	return b.String()
}

func trendWord(c insight.Context) string {
	switch c.ExpenseTrend.Sign() {
	case 1:
		return "Increasing"
	case -1:
		return "Decreasing"
	default:
		return "Stable"
	}
}
