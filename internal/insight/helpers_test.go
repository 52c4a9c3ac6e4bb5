package insight

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/financely/financely/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, got.Equal(dec(want)), append([]any{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

func income(amount, date string) model.Transaction {
	return model.Transaction{Type: model.TypeIncome, Amount: dec(amount), Name: "Salary", Date: date}
}

func expense(name, amount, date string) model.Transaction {
	return model.Transaction{Type: model.TypeExpense, Amount: dec(amount), Name: name, Date: date}
}

func budget(category, limit string) model.Budget {
	return model.Budget{Category: category, Limit: dec(limit), Period: model.PeriodMonthly}
}
