package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koryo-sim/koryo-sim/sim"
)

func TestBudgetAllocation_Validate_SumMustBeExactly100(t *testing.T) {
	assert.NoError(t, BudgetAllocation{Security: 34, Economy: 33, Intel: 33}.Validate())
	assert.NoError(t, BudgetAllocation{Security: 100}.Validate())

	for _, alloc := range []BudgetAllocation{
		{Security: 30, Economy: 30, Intel: 30}, // 90
		{Security: 40, Economy: 40, Intel: 30}, // 110
		{Security: -10, Economy: 60, Intel: 50},
		{Security: 110, Economy: -10},
	} {
		err := alloc.Validate()
		assert.Error(t, err, "%+v", alloc)
		var verr *sim.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestCheckBudgetBoundary_OnlyMultiplesOfFive(t *testing.T) {
	assert.NoError(t, CheckBudgetBoundary(5))
	assert.NoError(t, CheckBudgetBoundary(20))

	for _, cursor := range []int{1, 3, 7, 12} {
		err := CheckBudgetBoundary(cursor)
		assert.Error(t, err, "cursor %d", cursor)
		var verr *sim.ValidationError
		assert.ErrorAs(t, err, &verr)
	}
}

func TestBudgetRecord_Active_WindowIsHalfOpen(t *testing.T) {
	b := &BudgetRecord{Security: 50, Economy: 30, Intel: 20, Turn: 10}

	assert.False(t, b.Active(10)) // not on the turn it was set
	assert.True(t, b.Active(11))
	assert.True(t, b.Active(15))
	assert.False(t, b.Active(16))

	var nilRecord *BudgetRecord
	assert.False(t, nilRecord.Active(11))
}
