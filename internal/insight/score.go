package insight

import "github.com/shopspring/decimal"

// RiskLevel is the discrete tier of a health score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Health score deductions.
const (
	penaltyNegativeBalance = 30
	penaltySavingsBelow10  = 20
	penaltySavingsBelow20  = 10
	penaltyRisingExpenses  = 15
	penaltyPerOverrun      = 5
)

var (
	trendDamping      = decimal.RequireFromString("0.3")
	trendSignificance = decimal.RequireFromString("0.1")
	ten               = decimal.NewFromInt(10)
	twenty            = decimal.NewFromInt(20)
)

// PredictiveInsight is the forecast and health rating for a context.
type PredictiveInsight struct {
	PredictedExpense decimal.Decimal  `json:"predictedExpense"`
	HealthScore      int              `json:"healthScore"`
	RiskLevel        RiskLevel        `json:"riskLevel"`
	Recommendations  []Recommendation `json:"recommendations"`
}

// AverageMonthlyExpense divides total expense across every month bucket,
// Unknown included, with a floor of one month.
func AverageMonthlyExpense(c Context) decimal.Decimal {
	months := len(c.MonthlyData)
	if months < 1 {
		months = 1
	}
	return c.TotalExpense.Div(decimal.NewFromInt(int64(months)))
}

// PredictExpense forecasts next month's spending as the monthly average
// nudged by 30% of the latest trend. Never negative.
func PredictExpense(c Context) decimal.Decimal {
	p := AverageMonthlyExpense(c).Add(c.ExpenseTrend.Mul(trendDamping))
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// HealthScore rates financial stability from 0 to 100. Each deduction is
// checked independently, so a savings rate under 10% loses both the <10 and
// the <20 deductions.
func HealthScore(c Context) int {
	score := 100
	if c.CurrentBalance.IsNegative() {
		score -= penaltyNegativeBalance
	}
	if c.SavingsRate.LessThan(ten) {
		score -= penaltySavingsBelow10
	}
	if c.SavingsRate.LessThan(twenty) {
		score -= penaltySavingsBelow20
	}
	avg := AverageMonthlyExpense(c)
	if c.ExpenseTrend.IsPositive() && c.ExpenseTrend.GreaterThan(avg.Mul(trendSignificance)) {
		score -= penaltyRisingExpenses
	}
	score -= penaltyPerOverrun * len(c.OverBudget())

	return clampScore(score)
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Risk maps a health score to its tier.
func Risk(score int) RiskLevel {
	switch {
	case score >= 80:
		return RiskLow
	case score >= 60:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// Predict scores a context and attaches the matching recommendations.
func Predict(c Context) PredictiveInsight {
	score := HealthScore(c)
	return PredictiveInsight{
		PredictedExpense: PredictExpense(c),
		HealthScore:      score,
		RiskLevel:        Risk(score),
		Recommendations:  Recommend(c, score),
	}
}
