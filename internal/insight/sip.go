package insight

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/financely/financely/internal/model"
)

// SIP input bounds.
const (
	MaxSIPRate  = 50
	MinSIPYears = 1
	MaxSIPYears = 50
)

var (
	monthsPerYearPct = decimal.NewFromInt(1200)
	maxSIPRate       = decimal.NewFromInt(MaxSIPRate)
)

// growthPlaces is the precision the compounding factor is kept at between months.
const growthPlaces = 16

// SIPProjection is the outcome of investing a fixed amount every month.
type SIPProjection struct {
	Monthly       decimal.Decimal `json:"monthly"`
	AnnualRate    decimal.Decimal `json:"annualRate"`
	Years         int             `json:"years"`
	FutureValue   decimal.Decimal `json:"futureValue"`
	TotalInvested decimal.Decimal `json:"totalInvested"`
	Gain          decimal.Decimal `json:"gain"`
}

// ProjectSIP computes the future value of a systematic investment plan with
// contributions at the start of each month, compounded monthly at
// annualRate/12 percent. The future value is rounded to a whole unit; a zero
// rate is simply monthly * months.
func ProjectSIP(monthly, annualRate decimal.Decimal, years int) (SIPProjection, error) {
	switch {
	case !model.ExponentInRange(monthly) || !model.ExponentInRange(annualRate):
		return SIPProjection{}, errors.New("amounts with exponents beyond ±18 are not supported")
	case monthly.IsNegative():
		return SIPProjection{}, fmt.Errorf("monthly investment must not be negative, got %s", monthly)
	case annualRate.IsNegative() || annualRate.GreaterThan(maxSIPRate):
		return SIPProjection{}, fmt.Errorf("annual return must be between 0 and %d%%, got %s", MaxSIPRate, annualRate)
	case years < MinSIPYears || years > MaxSIPYears:
		return SIPProjection{}, fmt.Errorf("years must be between %d and %d, got %d", MinSIPYears, MaxSIPYears, years)
	}

	months := years * 12
	invested := monthly.Mul(decimal.NewFromInt(int64(months)))
	r := annualRate.Div(monthsPerYearPct)

	future := invested
	if !r.IsZero() {
		step := decimal.NewFromInt(1).Add(r)
		growth := decimal.NewFromInt(1)
		for i := 0; i < months; i++ {
			growth = growth.Mul(step).Round(growthPlaces)
		}
		future = monthly.Mul(growth.Sub(decimal.NewFromInt(1)).Div(r)).Mul(step).Round(0)
	}

	return SIPProjection{
		Monthly:       monthly,
		AnnualRate:    annualRate,
		Years:         years,
		FutureValue:   future,
		TotalInvested: invested,
		Gain:          future.Sub(invested),
	}, nil
}
