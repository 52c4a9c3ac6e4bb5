package insight

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financely/financely/internal/model"
)

func TestBuildContext_RentExample(t *testing.T) {
	snap := model.Snapshot{Transactions: []model.Transaction{
		{Type: model.TypeIncome, Amount: dec("10000"), Date: "01-01-2024"},
		{Type: model.TypeExpense, Amount: dec("9000"), Name: "Rent", Date: "05-01-2024"},
	}}

	c := BuildContext(snap)

	assertDecimal(t, "10000", c.TotalIncome)
	assertDecimal(t, "9000", c.TotalExpense)
	assertDecimal(t, "1000", c.CurrentBalance)
	assert.Equal(t, "10.0", c.SavingsRate.StringFixed(1))
	assert.Equal(t, 2, c.TransactionCount)

	require.Len(t, c.TopCategories, 1)
	assert.Equal(t, "Rent", c.TopCategories[0].Name)
	assertDecimal(t, "9000", c.TopCategories[0].Amount)
	assert.Equal(t, 1, c.TopCategories[0].Count)
}

func TestBuildContext_Empty(t *testing.T) {
	c := BuildContext(model.Snapshot{})

	assert.True(t, c.TotalIncome.IsZero())
	assert.True(t, c.CurrentBalance.IsZero())
	assert.True(t, c.SavingsRate.IsZero())
	assert.True(t, c.ExpenseTrend.IsZero())
	assert.Equal(t, 0, c.TransactionCount)
	assert.NotNil(t, c.TopCategories)
	assert.NotNil(t, c.MonthlyData)
	assert.NotNil(t, c.BudgetStatus)
	assert.Empty(t, c.Months)
}

func TestBuildContext_BalanceIsIncomeMinusExpense(t *testing.T) {
	var txns []model.Transaction
	for i := 0; i < 40; i++ {
		amount := fmt.Sprintf("%d.%02d", (i*7919)%5000, (i*31)%100)
		date := fmt.Sprintf("%02d-%02d-2024", i%28+1, i%12+1)
		if i%3 == 0 {
			txns = append(txns, income(amount, date))
		} else {
			txns = append(txns, expense(fmt.Sprintf("cat%d", i%6), amount, date))
		}
	}

	c := BuildContext(model.Snapshot{Transactions: txns})
	assert.True(t, c.CurrentBalance.Equal(c.TotalIncome.Sub(c.TotalExpense)))
}

func TestBuildContext_SavingsRateZeroWithoutIncome(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		expense("Food", "250", "03-02-2024"),
	}})
	assert.True(t, c.SavingsRate.IsZero())
	assertDecimal(t, "-250", c.CurrentBalance)
}

func TestBuildContext_CategoryKeyFallbacks(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		{Type: model.TypeExpense, Amount: dec("10"), Category: "Travel"},
		{Type: model.TypeExpense, Amount: dec("20")},
		{Type: model.TypeIncome, Amount: dec("5"), Category: "Travel"},
	}})

	require.Len(t, c.Categories, 2)
	assert.Equal(t, "Travel", c.Categories[0].Name)
	assertDecimal(t, "10", c.Categories[0].Expense)
	assertDecimal(t, "5", c.Categories[0].Income)
	assert.Equal(t, 2, c.Categories[0].Count)
	assert.Equal(t, "Uncategorized", c.Categories[1].Name)
}

func TestBuildContext_TopCategoriesRankedAndCapped(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		expense("A", "100", "01-01-2024"),
		expense("B", "300", "01-01-2024"),
		expense("C", "200", "01-01-2024"),
		expense("D", "300", "01-01-2024"),
		expense("E", "50", "01-01-2024"),
		expense("F", "10", "01-01-2024"),
		expense("G", "5", "01-01-2024"),
		income("999", "01-01-2024"),
	}})

	var names []string
	for _, tc := range c.TopCategories {
		names = append(names, tc.Name)
	}
	// B and D tie; B was seen first.
	assert.Equal(t, []string{"B", "D", "C", "A", "E"}, names)
}

func TestBuildContext_IncomeOnlyCategoryNotRanked(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		income("5000", "01-01-2024"),
	}})
	assert.Empty(t, c.TopCategories)
}

func TestBuildContext_MonthlyGrouping(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		income("1000", "01-01-2024"),
		expense("Food", "200", "15-01-2024"),
		expense("Food", "300", "02-02-2024"),
		{Type: model.TypeExpense, Amount: dec("40"), Name: "Misc"},
		{Type: model.TypeExpense, Amount: dec("60"), Name: "Misc", Date: "not a date"},
	}})

	assert.Equal(t, []string{"01-2024", "02-2024", UnknownMonth}, c.Months)
	assertDecimal(t, "1000", c.MonthlyData["01-2024"].Income)
	assertDecimal(t, "200", c.MonthlyData["01-2024"].Expense)
	assertDecimal(t, "300", c.MonthlyData["02-2024"].Expense)
	assertDecimal(t, "100", c.MonthlyData[UnknownMonth].Expense)
	assertDecimal(t, "100", c.ExpenseTrend, "Unknown must not be treated as the latest month")
}

func TestBuildContext_UnpaddedDatesShareMonthKey(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		expense("Food", "10", "5-1-2024"),
		expense("Food", "20", "15-01-2024"),
		expense("Food", "40", "3-2-2024"),
	}})

	assert.Equal(t, []string{"01-2024", "02-2024"}, c.Months)
	assertDecimal(t, "30", c.MonthlyData["01-2024"].Expense)
	assertDecimal(t, "10", c.ExpenseTrend)
}

func TestBuildContext_TrendCrossesYearBoundary(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		expense("Food", "300", "10-01-2025"),
		expense("Food", "100", "10-12-2024"),
	}})

	assert.Equal(t, []string{"12-2024", "01-2025"}, c.Months)
	assertDecimal(t, "200", c.ExpenseTrend)
}

func TestBuildContext_TrendNeedsTwoDatedMonths(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		expense("Food", "300", "10-01-2025"),
		{Type: model.TypeExpense, Amount: dec("900"), Name: "Food"},
	}})
	assert.Len(t, c.MonthlyData, 2)
	assert.True(t, c.ExpenseTrend.IsZero())
}

func TestBuildContext_NegativeAmountsIgnored(t *testing.T) {
	c := BuildContext(model.Snapshot{Transactions: []model.Transaction{
		income("100", "01-01-2024"),
		expense("Food", "-50", "01-01-2024"),
	}})
	assertDecimal(t, "0", c.TotalExpense)
	assertDecimal(t, "100", c.CurrentBalance)
}

func TestBuildContext_BudgetStatus(t *testing.T) {
	c := BuildContext(model.Snapshot{
		Transactions: []model.Transaction{
			expense("Food", "120", "01-01-2024"),
			expense("Food", "33.33", "02-01-2024"),
		},
		Budgets: []model.Budget{budget("Food", "300"), budget("Fun", "50")},
	})

	require.Len(t, c.BudgetStatus, 2)
	food := c.BudgetStatus[0]
	assert.Equal(t, "Food", food.Category)
	assertDecimal(t, "153.33", food.Spent)
	assertDecimal(t, "146.67", food.Remaining)
	assertDecimal(t, "51.1", food.Percentage)
	assert.False(t, food.OverLimit())

	fun := c.BudgetStatus[1]
	assertDecimal(t, "0", fun.Spent)
	assertDecimal(t, "50", fun.Remaining)
	assertDecimal(t, "0", fun.Percentage)
}

func TestBuildContext_BudgetRemainingInvariant(t *testing.T) {
	c := BuildContext(model.Snapshot{
		Transactions: []model.Transaction{
			expense("Food", "712.49", "01-01-2024"),
			expense("Rent", "1999.99", "01-01-2024"),
		},
		Budgets: []model.Budget{budget("Food", "700"), budget("Rent", "3"), budget("Gym", "0.01")},
	})
	for _, b := range c.BudgetStatus {
		assert.True(t, b.Remaining.Equal(b.Limit.Sub(b.Spent)), b.Category)
		want := b.Spent.Div(b.Limit).Mul(hundred).Round(1)
		assert.True(t, b.Percentage.Equal(want), b.Category)
	}
	assert.Len(t, c.OverBudget(), 2)
}

func TestBuildContext_ZeroLimitDoesNotPanic(t *testing.T) {
	c := BuildContext(model.Snapshot{
		Transactions: []model.Transaction{expense("Food", "10", "01-01-2024")},
		Budgets:      []model.Budget{budget("Food", "0")},
	})
	require.Len(t, c.BudgetStatus, 1)
	assert.True(t, c.BudgetStatus[0].Percentage.IsZero())
}

func TestBuildContext_RecentTransactions(t *testing.T) {
	var txns []model.Transaction
	for i := 1; i <= 15; i++ {
		txns = append(txns, expense(fmt.Sprintf("t%d", i), "1", "01-01-2024"))
	}
	c := BuildContext(model.Snapshot{Transactions: txns})
	require.Len(t, c.RecentTransactions, 10)
	assert.Equal(t, "t6", c.RecentTransactions[0].Name)
	assert.Equal(t, "t15", c.RecentTransactions[9].Name)
}

func TestBuildContext_ActiveGoalsDerived(t *testing.T) {
	c := BuildContext(model.Snapshot{Goals: []model.Goal{
		{Name: "Car", TargetAmount: dec("1000"), CurrentAmount: dec("1000"), Completed: false},
		{Name: "Trip", TargetAmount: dec("500"), CurrentAmount: dec("20"), Completed: true},
	}})
	active := c.ActiveGoals()
	require.Len(t, active, 1)
	assert.Equal(t, "Trip", active[0].Name)
}

func TestBuildContext_Idempotent(t *testing.T) {
	snap := model.Snapshot{
		Transactions: []model.Transaction{
			income("5000", "01-03-2024"),
			expense("Food", "700", "04-03-2024"),
			expense("Rent", "1500", "05-04-2024"),
			expense("Food", "200", "09-04-2024"),
			{Type: model.TypeExpense, Amount: dec("12"), Name: "Misc"},
		},
		Budgets: []model.Budget{budget("Food", "800")},
		Goals:   []model.Goal{{Name: "Car", TargetAmount: dec("10000"), CurrentAmount: dec("10")}},
	}

	first, err := json.Marshal(BuildContext(snap))
	require.NoError(t, err)
	second, err := json.Marshal(BuildContext(snap))
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestBuildContext_DoesNotShareSnapshotSlices(t *testing.T) {
	snap := model.Snapshot{
		Transactions: []model.Transaction{expense("Food", "1", "01-01-2024")},
		Goals:        []model.Goal{{Name: "Car", TargetAmount: dec("10")}},
	}
	c := BuildContext(snap)
	c.Goals[0].Name = "changed"
	c.RecentTransactions[0].Name = "changed"

	assert.Equal(t, "Car", snap.Goals[0].Name)
	assert.Equal(t, "Food", snap.Transactions[0].Name)
}
