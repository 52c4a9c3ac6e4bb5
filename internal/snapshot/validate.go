package snapshot

import (
	"fmt"

	"github.com/financely/financely/internal/model"
)

// ValidationError describes a single record that breaks an invariant.
type ValidationError struct {
	Record      string // "budget" or "goal"
	Index       int    // zero-based position in its list
	Name        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s %d [%s]: %s", e.Record, e.Index+1, e.Name, e.Description)
}

// Validate checks budgets and goals. Transactions are never rejected;
// their malformed fields have already been defaulted.
func Validate(snap model.Snapshot) []ValidationError {
	var errs []ValidationError

	for i, b := range snap.Budgets {
		if !b.Limit.IsPositive() {
			errs = append(errs, ValidationError{
				Record:      "budget",
				Index:       i,
				Name:        b.Category,
				Description: fmt.Sprintf("limit must be positive, got %s", b.Limit),
			})
		}
		if !b.Period.Valid() {
			errs = append(errs, ValidationError{
				Record:      "budget",
				Index:       i,
				Name:        b.Category,
				Description: fmt.Sprintf("unknown period %q", b.Period),
			})
		}
		if b.Category == "" {
			errs = append(errs, ValidationError{
				Record:      "budget",
				Index:       i,
				Description: "category is required",
			})
		}
	}

	for i, g := range snap.Goals {
		if !g.TargetAmount.IsPositive() {
			errs = append(errs, ValidationError{
				Record:      "goal",
				Index:       i,
				Name:        g.Name,
				Description: fmt.Sprintf("target amount must be positive, got %s", g.TargetAmount),
			})
		}
		if g.CurrentAmount.IsNegative() {
			errs = append(errs, ValidationError{
				Record:      "goal",
				Index:       i,
				Name:        g.Name,
				Description: fmt.Sprintf("current amount must not be negative, got %s", g.CurrentAmount),
			})
		}
		if !g.Priority.Valid() {
			errs = append(errs, ValidationError{
				Record:      "goal",
				Index:       i,
				Name:        g.Name,
				Description: fmt.Sprintf("unknown priority %q", g.Priority),
			})
		}
	}

	return errs
}
