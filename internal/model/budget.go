package model

import "github.com/shopspring/decimal"

// Period is the window a budget limit applies to.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Budget caps spending in one category. Limit must be positive.
type Budget struct {
	Category string          `json:"category" yaml:"category"`
	Limit    decimal.Decimal `json:"limit" yaml:"limit"`
	Period   Period          `json:"period" yaml:"period"`
}
