package wizard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errBlocked = errors.New("blocked")

func TestNext_AdvancesUntilLastStep(t *testing.T) {
	s := FirstStep
	var err error

	s, err = Next(s, nil)
	assert.NoError(t, err)
	assert.Equal(t, StepEnterDetails, s)

	s, err = Next(s, nil)
	assert.NoError(t, err)
	assert.Equal(t, StepReview, s)

	s, err = Next(s, nil)
	assert.NoError(t, err)
	assert.Equal(t, StepReview, s)
}

func TestNext_GuardBlocks(t *testing.T) {
	calls := 0
	guard := func(from Step) error {
		calls++
		assert.Equal(t, StepSelectSlot, from)
		return errBlocked
	}

	s, err := Next(StepSelectSlot, guard)
	assert.ErrorIs(t, err, errBlocked)
	assert.Equal(t, StepSelectSlot, s)
	assert.Equal(t, 1, calls)
}

func TestNext_GuardNotConsultedOnLastStep(t *testing.T) {
	s, err := Next(StepReview, func(Step) error { return errBlocked })
	assert.NoError(t, err)
	assert.Equal(t, StepReview, s)
}

func TestPrevious_StopsAtFirstStep(t *testing.T) {
	assert.Equal(t, StepEnterDetails, Previous(StepReview))
	assert.Equal(t, StepSelectSlot, Previous(StepEnterDetails))
	assert.Equal(t, StepSelectSlot, Previous(StepSelectSlot))
}

func TestStepStaysInRange(t *testing.T) {
	for _, start := range []Step{-3, 0, 1, 2, 3, 4, 42} {
		s := start
		for i := 0; i < 5; i++ {
			s, _ = Next(s, nil)
			assert.True(t, s.Valid(), "next from %d gave %d", start, s)
		}
		for i := 0; i < 5; i++ {
			s = Previous(s)
			assert.True(t, s.Valid(), "previous from %d gave %d", start, s)
		}
	}
}

func TestProgress(t *testing.T) {
	markers := Progress(StepEnterDetails)
	assert.Len(t, markers, 3)
	assert.True(t, markers[0].Active)
	assert.True(t, markers[1].Active)
	assert.False(t, markers[2].Active)
}
