package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// DateFormat is the layout Transaction.Date is written in ("DD-MM-YYYY").
const DateFormat = "02-01-2006"

// dateParseLayout also accepts unpadded days and months ("5-1-2024").
const dateParseLayout = "2-1-2006"

// UncategorizedKey is the category used when a transaction has neither a name nor a category.
const UncategorizedKey = "Uncategorized"

// Transaction is a single logged income or expense.
type Transaction struct {
	Type     TransactionType `json:"type" yaml:"type"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Name     string          `json:"name,omitempty" yaml:"name,omitempty"`
	Category string          `json:"category,omitempty" yaml:"category,omitempty"`
	Date     string          `json:"date,omitempty" yaml:"date,omitempty"` // "DD-MM-YYYY"
}

// IsIncome reports whether the transaction counts toward income.
// Anything that is not income is aggregated as an expense.
func (t Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}

// CategoryKey returns the key transactions are grouped under:
// Name, then Category, then "Uncategorized".
func (t Transaction) CategoryKey() string {
	if t.Name != "" {
		return t.Name
	}
	if t.Category != "" {
		return t.Category
	}
	return UncategorizedKey
}

// ParsedDate parses Date, with or without zero padding. ok is false when
// the date is missing or malformed.
func (t Transaction) ParsedDate() (time.Time, bool) {
	if t.Date == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(dateParseLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
