// Budget allocations: a security/economy/intel split set on five-turn
// boundaries, active for the following five turns.

package overlay

import "github.com/koryo-sim/koryo-sim/sim"

// BudgetWindow is the number of turns an allocation stays active.
const BudgetWindow = 5

// Per-point budget coefficients.
const (
	securityRevoltRate   = -0.04
	securityTreasuryRate = -0.02
	economyTreasuryRate  = 0.04
	economySupportRate   = 0.02

	// intelSeverityFloor: with intel >= 50 every surfaced event reports one
	// severity point lower, never below this floor.
	intelThreshold     = 50
	intelSeverityFloor = 1
)

// BudgetAllocation is the caller-supplied split. The three shares must sum
// to exactly 100.
type BudgetAllocation struct {
	Security int `json:"security"`
	Economy  int `json:"economy"`
	Intel    int `json:"intel"`
}

// Validate checks the allocation shape: every share in [0,100] and the total
// exactly 100.
func (a BudgetAllocation) Validate() error {
	for _, share := range []struct {
		name  string
		value int
	}{
		{"security", a.Security},
		{"economy", a.Economy},
		{"intel", a.Intel},
	} {
		if share.value < 0 || share.value > 100 {
			return sim.Validationf("budget %s=%d outside [0,100]", share.name, share.value)
		}
	}
	if total := a.Security + a.Economy + a.Intel; total != 100 {
		return sim.Validationf("budget shares sum to %d, want exactly 100", total)
	}
	return nil
}

// CheckBudgetBoundary enforces the five-turn boundary rule for setting a new
// allocation.
func CheckBudgetBoundary(cursor int) error {
	if cursor%BudgetWindow != 0 {
		return sim.Validationf("budget can only be set on a %d-turn boundary, cursor is %d", BudgetWindow, cursor)
	}
	return nil
}

// BudgetRecord is the single live allocation for a session, stamped with the
// cursor turn it was set at.
type BudgetRecord struct {
	Security int `json:"security"`
	Economy  int `json:"economy"`
	Intel    int `json:"intel"`
	Turn     int `json:"turn"`
}

// Allocation returns the record's split.
func (b BudgetRecord) Allocation() BudgetAllocation {
	return BudgetAllocation{Security: b.Security, Economy: b.Economy, Intel: b.Intel}
}

// Active reports whether the allocation covers turn t.
func (b *BudgetRecord) Active(t int) bool {
	return b != nil && b.Turn < t && t <= b.Turn+BudgetWindow
}
