// Package insight derives analytics, a health score and advisory messages
// from a snapshot of transactions, budgets and goals. Every function here is
// pure: the same snapshot always produces the same result.
package insight

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/model"
)

// UnknownMonth buckets transactions without a usable date.
const UnknownMonth = "Unknown"

const (
	monthKeyFormat = "01-2006"
	recentCount    = 10
	topCount       = 5
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal aggregates one category key.
type CategoryTotal struct {
	Name    string          `json:"name"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Count   int             `json:"count"`
}

// CategorySpend is one entry of the top spending ranking.
type CategorySpend struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// MonthTotal is the income and expense booked in one month.
type MonthTotal struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// BudgetStatus reports how much of a budget has been used.
type BudgetStatus struct {
	Category   string          `json:"category"`
	Period     model.Period    `json:"period,omitempty"`
	Limit      decimal.Decimal `json:"limit"`
	Spent      decimal.Decimal `json:"spent"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage decimal.Decimal `json:"percentage"`
	Tier       BudgetTier      `json:"tier"`
}

// OverLimit reports whether spending exceeds the limit.
func (b BudgetStatus) OverLimit() bool {
	return b.Spent.GreaterThan(b.Limit)
}

// Context is the aggregated summary of a snapshot.
type Context struct {
	TotalIncome        decimal.Decimal       `json:"totalIncome"`
	TotalExpense       decimal.Decimal       `json:"totalExpense"`
	CurrentBalance     decimal.Decimal       `json:"currentBalance"`
	SavingsRate        decimal.Decimal       `json:"savingsRate"` // percent, one decimal
	TransactionCount   int                   `json:"transactionCount"`
	RecentTransactions []model.Transaction   `json:"recentTransactions"`
	Categories         []CategoryTotal       `json:"categories"` // first-seen order
	TopCategories      []CategorySpend       `json:"topCategories"`
	ExpenseTrend       decimal.Decimal       `json:"expenseTrend"`
	Months             []string              `json:"months"` // chronological, Unknown last
	MonthlyData        map[string]MonthTotal `json:"monthlyData"`
	Patterns           SpendingPatterns      `json:"patterns"`
	BudgetStatus       []BudgetStatus        `json:"budgetStatus"`
	BudgetSummary      BudgetSummary         `json:"budgetSummary"`
	Goals              []model.Goal          `json:"goals"`
	GoalSummary        GoalSummary           `json:"goalSummary"`
}

// OverBudget returns the budgets whose spending exceeds their limit.
func (c Context) OverBudget() []BudgetStatus {
	var over []BudgetStatus
	for _, b := range c.BudgetStatus {
		if b.OverLimit() {
			over = append(over, b)
		}
	}
	return over
}

// ActiveGoals returns goals that have not reached their target.
func (c Context) ActiveGoals() []model.Goal {
	var active []model.Goal
	for _, g := range c.Goals {
		if !g.Achieved() {
			active = append(active, g)
		}
	}
	return active
}

// CategoryExpense returns total expense booked under a category key.
func (c Context) CategoryExpense(key string) decimal.Decimal {
	for _, ct := range c.Categories {
		if ct.Name == key {
			return ct.Expense
		}
	}
	return decimal.Zero
}

// BuildContext aggregates a snapshot. It never fails; an empty snapshot
// yields a zero-valued context with non-nil collections.
func BuildContext(snap model.Snapshot) Context {
	ctx := Context{
		TransactionCount:   len(snap.Transactions),
		RecentTransactions: recent(snap.Transactions),
		MonthlyData:        make(map[string]MonthTotal),
		Categories:         []CategoryTotal{},
		Goals:              append([]model.Goal{}, snap.Goals...),
	}

	catIndex := make(map[string]int)
	monthStart := make(map[string]time.Time)

	for _, t := range snap.Transactions {
		amount := t.Amount
		if amount.IsNegative() {
			amount = decimal.Zero
		}

		key := UnknownMonth
		if d, ok := t.ParsedDate(); ok {
			key = d.Format(monthKeyFormat)
			monthStart[key] = time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		}
		mt := ctx.MonthlyData[key]

		name := t.CategoryKey()
		i, ok := catIndex[name]
		if !ok {
			i = len(ctx.Categories)
			catIndex[name] = i
			ctx.Categories = append(ctx.Categories, CategoryTotal{Name: name})
		}
		ct := &ctx.Categories[i]
		ct.Count++

		if t.IsIncome() {
			ctx.TotalIncome = ctx.TotalIncome.Add(amount)
			mt.Income = mt.Income.Add(amount)
			ct.Income = ct.Income.Add(amount)
		} else {
			ctx.TotalExpense = ctx.TotalExpense.Add(amount)
			mt.Expense = mt.Expense.Add(amount)
			ct.Expense = ct.Expense.Add(amount)
		}
		ctx.MonthlyData[key] = mt
	}

	ctx.CurrentBalance = ctx.TotalIncome.Sub(ctx.TotalExpense)
	ctx.SavingsRate = savingsRate(ctx.TotalIncome, ctx.TotalExpense)
	ctx.TopCategories = topCategories(ctx.Categories)
	ctx.Months = orderMonths(monthStart, ctx.MonthlyData)
	ctx.ExpenseTrend = expenseTrend(ctx.Months, ctx.MonthlyData)
	ctx.Patterns = AnalyzeSpendingPatterns(snap.Transactions)

	ctx.BudgetStatus = make([]BudgetStatus, 0, len(snap.Budgets))
	for _, b := range snap.Budgets {
		ctx.BudgetStatus = append(ctx.BudgetStatus, budgetStatus(b, ctx.CategoryExpense(b.Category)))
	}
	ctx.BudgetSummary = summarizeBudgets(ctx.BudgetStatus)
	ctx.GoalSummary = summarizeGoals(ctx.Goals)

	return ctx
}

// recent returns a copy of the last ten transactions.
func recent(txns []model.Transaction) []model.Transaction {
	start := len(txns) - recentCount
	if start < 0 {
		start = 0
	}
	return append([]model.Transaction{}, txns[start:]...)
}

func savingsRate(income, expense decimal.Decimal) decimal.Decimal {
	if !income.IsPositive() {
		return decimal.Zero
	}
	return income.Sub(expense).Div(income).Mul(hundred).Round(1)
}

func topCategories(cats []CategoryTotal) []CategorySpend {
	top := []CategorySpend{}
	for _, c := range cats {
		if c.Expense.IsPositive() {
			top = append(top, CategorySpend{Name: c.Name, Amount: c.Expense, Count: c.Count})
		}
	}
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Amount.GreaterThan(top[j].Amount)
	})
	if len(top) > topCount {
		top = top[:topCount]
	}
	return top
}

// orderMonths sorts dated month keys chronologically and appends Unknown last.
func orderMonths(starts map[string]time.Time, data map[string]MonthTotal) []string {
	months := make([]string, 0, len(data))
	for k := range starts {
		months = append(months, k)
	}
	sort.Slice(months, func(i, j int) bool {
		return starts[months[i]].Before(starts[months[j]])
	})
	if _, ok := data[UnknownMonth]; ok {
		months = append(months, UnknownMonth)
	}
	return months
}

// expenseTrend is the expense delta between the last two dated months.
func expenseTrend(months []string, data map[string]MonthTotal) decimal.Decimal {
	dated := months
	if n := len(dated); n > 0 && dated[n-1] == UnknownMonth {
		dated = dated[:n-1]
	}
	if len(dated) < 2 {
		return decimal.Zero
	}
	last := data[dated[len(dated)-1]].Expense
	prev := data[dated[len(dated)-2]].Expense
	return last.Sub(prev)
}

func budgetStatus(b model.Budget, spent decimal.Decimal) BudgetStatus {
	bs := BudgetStatus{
		Category:   b.Category,
		Period:     b.Period,
		Limit:      b.Limit,
		Spent:      spent,
		Remaining:  b.Limit.Sub(spent),
		Percentage: decimal.Zero,
	}
	// Hand-built snapshots skip boundary validation and may carry a zero limit.
	if b.Limit.IsPositive() {
		bs.Percentage = spent.Div(b.Limit).Mul(hundred).Round(1)
	}
	bs.Tier = tierFor(spent, b.Limit, bs.Percentage)
	return bs
}
