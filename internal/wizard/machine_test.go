package wizard

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alex-user-go/tripplanner/internal/assist"
)

func newTestMachine(hooks Hooks) *Machine {
	return NewMachine(hooks, slog.New(slog.NewTextHandler(os.Stderr, nil)))
}

func TestMachine_AdvancesInOrder(t *testing.T) {
	m := newTestMachine(Hooks{})
	assert.Equal(t, StepDestination, m.Current())

	m.Update(Patch{Destination: Ptr("Tokyo"), Budget: Ptr(2000.0)})

	steps := []Step{StepDestination, StepBudget, StepAccommodation, StepFlight, StepAddOns}
	for _, step := range steps {
		require.Equal(t, step, m.Current())
		m.Complete(step)
	}
	assert.Equal(t, StepSummary, m.Current())
}

func TestMachine_CompleteWrongStepIsNoOp(t *testing.T) {
	m := newTestMachine(Hooks{})

	// Skipping ahead does nothing.
	m.Complete(StepBudget)
	m.Complete(StepFlight)
	assert.Equal(t, StepDestination, m.Current())

	m.Complete(StepDestination)
	assert.Equal(t, StepBudget, m.Current())

	// Completing an already finished step does not move backward or
	// advance again.
	m.Complete(StepDestination)
	assert.Equal(t, StepBudget, m.Current())
}

func TestMachine_BudgetGuard(t *testing.T) {
	m := newTestMachine(Hooks{})
	m.Complete(StepDestination)
	require.Equal(t, StepBudget, m.Current())

	// No budget set: silently stays put.
	m.Complete(StepBudget)
	assert.Equal(t, StepBudget, m.Current())

	m.Update(Patch{Budget: Ptr(0.0)})
	m.Complete(StepBudget)
	assert.Equal(t, StepBudget, m.Current())

	m.Update(Patch{Budget: Ptr(1500.0)})
	m.Complete(StepBudget)
	assert.Equal(t, StepAccommodation, m.Current())
}

func TestMachine_SummaryIsTerminal(t *testing.T) {
	completed := 0
	m := newTestMachine(Hooks{OnComplete: func() { completed++ }})

	m.Update(Patch{Budget: Ptr(1000.0)})
	for _, step := range []Step{StepDestination, StepBudget, StepAccommodation, StepFlight, StepAddOns} {
		m.Complete(step)
	}
	require.Equal(t, StepSummary, m.Current())
	assert.Equal(t, 1, completed)

	m.Complete(StepSummary)
	assert.Equal(t, StepSummary, m.Current())
	assert.Equal(t, 1, completed)
}

func TestMachine_UpdateMergePatch(t *testing.T) {
	var seen []TravelContext
	m := newTestMachine(Hooks{OnUpdate: func(c TravelContext) { seen = append(seen, c) }})

	m.Update(Patch{Destination: Ptr("Bali"), Budget: Ptr(1800.0)})
	m.Update(Patch{Activities: []string{"surfing", "temples"}})
	m.Update(Patch{Budget: Ptr(2200.0)})

	c := m.Context()
	assert.Equal(t, "Bali", c.Destination, "patch without destination must not clear it")
	assert.Equal(t, 2200.0, c.Budget)
	assert.Equal(t, []string{"surfing", "temples"}, c.Preferences.Activities)

	require.Len(t, seen, 3)
	assert.Equal(t, 1800.0, seen[0].Budget)
	assert.Equal(t, "Bali", seen[2].Destination)
}

func TestMachine_AttachGuidance(t *testing.T) {
	var got assist.Response
	m := newTestMachine(Hooks{OnAIResponse: func(r assist.Response) { got = r }})

	m.AttachGuidance(assist.Response{Suggestions: []string{"Visit the temples"}})

	assert.Equal(t, []string{"Visit the temples"}, got.Suggestions)
}
