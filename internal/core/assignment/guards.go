// Package assignment contains the pure business logic for batch
// assignments. Guards are pure functions that evaluate preconditions
// without side effects; the notification template lives here too so the
// receipt and the outbound message can never drift apart.
package assignment

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for target service dates.
const DateLayout = "2006-01-02"

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// SelectionInput is the validation view of one selected house.
type SelectionInput struct {
	HouseID  int64
	Quantity int
}

// CommitContext provides context for batch commit guards.
type CommitContext struct {
	WorkerID   int64
	Date       string
	Selections []SelectionInput
}

// CanCommit evaluates whether a batch commit may proceed.
// Rules:
// - A worker must be selected
// - The date must be a valid YYYY-MM-DD calendar date
// - At least one house must be selected
// - Every quantity must be at least 1
// - A house may appear at most once per commit
func CanCommit(ctx CommitContext) GuardResult {
	if ctx.WorkerID <= 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "no worker selected",
		}
	}

	if _, err := time.Parse(DateLayout, ctx.Date); err != nil {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("invalid assignment date %q (want YYYY-MM-DD)", ctx.Date),
		}
	}

	if len(ctx.Selections) == 0 {
		return GuardResult{
			Allowed: false,
			Reason:  "no houses selected",
		}
	}

	seen := make(map[int64]bool, len(ctx.Selections))
	for _, sel := range ctx.Selections {
		if sel.Quantity < 1 {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("house %d: quantity must be at least 1", sel.HouseID),
			}
		}
		if seen[sel.HouseID] {
			return GuardResult{
				Allowed: false,
				Reason:  fmt.Sprintf("house %d selected more than once", sel.HouseID),
			}
		}
		seen[sel.HouseID] = true
	}

	return GuardResult{Allowed: true}
}
