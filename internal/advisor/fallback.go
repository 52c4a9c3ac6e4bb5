package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/insight"
)

var healthySavingsRate = decimal.NewFromInt(20)

// Topic is the subject a message was matched to.
type Topic string

const (
	TopicBudget   Topic = "budget"
	TopicSavings  Topic = "savings"
	TopicForecast Topic = "forecast"
	TopicHealth   Topic = "health"
	TopicOverview Topic = "overview"
)

// topicKeywords is checked in order; the first topic with a matching keyword wins.
var topicKeywords = []struct {
	topic    Topic
	keywords []string
}{
	{TopicBudget, []string{"budget", "spending limit"}},
	{TopicSavings, []string{"save", "saving"}},
	{TopicForecast, []string{"predict", "forecast", "future"}},
	{TopicHealth, []string{"health", "score", "status"}},
}

// MatchTopic lower-cases message and picks the first topic whose keyword it contains.
func MatchTopic(message string) Topic {
	msg := strings.ToLower(message)
	for _, tk := range topicKeywords {
		for _, kw := range tk.keywords {
			if strings.Contains(msg, kw) {
				return tk.topic
			}
		}
	}
	return TopicOverview
}

// Render fills the fallback template for topic.
func Render(topic Topic, c insight.Context, p insight.PredictiveInsight, cur insight.Currency) string {
	var b strings.Builder
	switch topic {
	case TopicBudget:
		renderBudget(&b, c, cur)
	case TopicSavings:
		renderSavings(&b, c, cur)
	case TopicForecast:
		renderForecast(&b, c, p, cur)
	case TopicHealth:
		renderHealth(&b, c, p, cur)
	default:
		renderOverview(&b, c, p, cur)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderBudget(b *strings.Builder, c insight.Context, cur insight.Currency) {
	b.WriteString("Based on your financial data, here's a budgeting analysis:\n\n")
	b.WriteString("💰 Current Financial Status:\n")
	writeTotals(b, c, cur)
	fmt.Fprintf(b, "- Savings Rate: %s%%\n\n", c.SavingsRate.StringFixed(1))

	if len(c.BudgetStatus) > 0 {
		b.WriteString("📊 Your Budget Status:\n")
		for _, bs := range c.BudgetStatus {
			fmt.Fprintf(b, "- %s: %s/%s (%s%% used)\n", bs.Category, cur.Format(bs.Spent), cur.Format(bs.Limit), bs.Percentage.StringFixed(1))
		}
	} else {
		b.WriteString("💡 Tip: Set up budgets for different categories to better control your spending!\n")
	}

	b.WriteString("\n🎯 Recommendation: Follow the 50/30/20 rule - allocate 50% for needs, 30% for wants, and 20% for savings.\n")
}

func renderSavings(b *strings.Builder, c insight.Context, cur insight.Currency) {
	b.WriteString("Great question about saving! Here's your savings analysis:\n\n")
	fmt.Fprintf(b, "📈 Current Savings Rate: %s%%\n", c.SavingsRate.StringFixed(1))

	if c.SavingsRate.LessThan(healthySavingsRate) {
		b.WriteString("⚠️ Your savings rate is below the recommended 20%. Here are some strategies:\n\n")
		b.WriteString("1. Automate your savings - set up automatic transfers\n")
		b.WriteString("2. Review your top spending categories and find areas to cut\n")
		b.WriteString("3. Use the 50/30/20 budgeting rule\n")
		b.WriteString("4. Track every expense to identify unnecessary spending\n")
	} else {
		b.WriteString("✅ Great job! You're maintaining a healthy savings rate.\n")
	}

	b.WriteString("\n💰 Your Financial Goals:\n")
	if len(c.Goals) > 0 {
		for _, g := range c.Goals {
			fmt.Fprintf(b, "- %s: %s/%s (%s%%)\n", g.Name, cur.Format(g.CurrentAmount), cur.Format(g.TargetAmount), g.Progress().StringFixed(1))
		}
	} else {
		b.WriteString("💡 Set up financial goals to stay motivated and track your progress!\n")
	}
}

func renderForecast(b *strings.Builder, c insight.Context, p insight.PredictiveInsight, cur insight.Currency) {
	b.WriteString("🔮 Financial Forecast Based on Your Data:\n\n")
	fmt.Fprintf(b, "Predicted Next Month Expense: %s\n", cur.Format(p.PredictedExpense))
	fmt.Fprintf(b, "Expense Trend: %s\n\n", TrendLabel(c))
	fmt.Fprintf(b, "📊 Financial Health Score: %d/100 (%s Risk)\n\n", p.HealthScore, p.RiskLevel)

	b.WriteString("💡 Recommendations:\n")
	for _, r := range p.Recommendations {
		fmt.Fprintf(b, "- %s: %s\n", r.Title, r.Message)
	}
	if len(p.Recommendations) == 0 {
		b.WriteString("- No concerns found in your recent activity.\n")
	}

	b.WriteString("\nBased on your spending patterns, I recommend focusing on maintaining or improving your current savings rate.\n")
}

func renderHealth(b *strings.Builder, c insight.Context, p insight.PredictiveInsight, cur insight.Currency) {
	b.WriteString("🏥 Your Financial Health Report:\n\n")
	fmt.Fprintf(b, "Score: %d/100 (%s Risk Level)\n\n", p.HealthScore, p.RiskLevel)
	b.WriteString("📊 Breakdown:\n")
	writeTotals(b, c, cur)
	fmt.Fprintf(b, "- Savings Rate: %s%%\n\n", c.SavingsRate.StringFixed(1))

	switch {
	case p.HealthScore >= 80:
		b.WriteString("✅ Excellent! You're in great financial shape. Keep up the good work!\n")
	case p.HealthScore >= 60:
		b.WriteString("⚠️ Good, but there's room for improvement. Focus on increasing your savings rate.\n")
	default:
		b.WriteString("🚨 Your financial health needs attention. Consider reducing expenses and increasing savings.\n")
	}

	recs := p.Recommendations
	if len(recs) > 3 {
		recs = recs[:3]
	}
	if len(recs) > 0 {
		b.WriteString("\n💡 Action Items:\n")
		for _, r := range recs {
			fmt.Fprintf(b, "- %s\n", r.Message)
		}
	}
}

func renderOverview(b *strings.Builder, c insight.Context, p insight.PredictiveInsight, cur insight.Currency) {
	b.WriteString("I'm here to help with your personal finance! Based on your data:\n\n")
	b.WriteString("💰 Financial Overview:\n")
	writeTotals(b, c, cur)
	fmt.Fprintf(b, "- Health Score: %d/100\n\n", p.HealthScore)
	b.WriteString("I can help you with budgeting, savings strategies, expense analysis, financial forecasting, goal setting, and more. What would you like to know?\n")
}

func writeTotals(b *strings.Builder, c insight.Context, cur insight.Currency) {
	fmt.Fprintf(b, "- Income: %s\n", cur.Format(c.TotalIncome))
	fmt.Fprintf(b, "- Expenses: %s\n", cur.Format(c.TotalExpense))
	fmt.Fprintf(b, "- Balance: %s\n", cur.Format(c.CurrentBalance))
}

// TrendLabel describes the direction of the expense trend.
func TrendLabel(c insight.Context) string {
	switch c.ExpenseTrend.Sign() {
	case 1:
		return "📈 Increasing"
	case -1:
		return "📉 Decreasing"
	default:
		return "➡️ Stable"
	}
}
