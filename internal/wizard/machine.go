package wizard

import (
	"log/slog"
	"sync"

	"github.com/alex-user-go/tripplanner/internal/assist"
)

// Step is one stage of the trip-building wizard, in order.
type Step int

// Wizard steps. Summary is terminal.
const (
	StepDestination Step = iota + 1
	StepBudget
	StepAccommodation
	StepFlight
	StepAddOns
	StepSummary
)

// String returns the step's display name.
func (s Step) String() string {
	switch s {
	case StepDestination:
		return "destination"
	case StepBudget:
		return "budget"
	case StepAccommodation:
		return "accommodation"
	case StepFlight:
		return "flight"
	case StepAddOns:
		return "add-ons"
	case StepSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// Hooks are the wizard's only outward surface. All are optional.
type Hooks struct {
	// OnUpdate fires after a context merge-patch is applied.
	OnUpdate func(TravelContext)
	// OnComplete fires when the wizard reaches the Summary step.
	OnComplete func()
	// OnAIResponse fires when a guidance response is attached.
	OnAIResponse func(assist.Response)
}

// Machine owns the ordered planning steps and gates transitions on data
// completeness. Steps never go backward and are never skipped.
type Machine struct {
	mu      sync.Mutex
	current Step
	context TravelContext
	hooks   Hooks
	logger  *slog.Logger
}

// NewMachine creates a wizard at the Destination step with an empty
// travel context.
func NewMachine(hooks Hooks, logger *slog.Logger) *Machine {
	return &Machine{
		current: StepDestination,
		hooks:   hooks,
		logger:  logger,
	}
}

// Current returns the active step.
func (m *Machine) Current() Step {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Context returns a copy of the travel context.
func (m *Machine) Context() TravelContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.context
}

// Update merge-patches the travel context and fires OnUpdate.
func (m *Machine) Update(p Patch) {
	m.mu.Lock()
	m.context.apply(p)
	snapshot := m.context
	m.mu.Unlock()

	if m.hooks.OnUpdate != nil {
		m.hooks.OnUpdate(snapshot)
	}
}

// Complete marks step as finished and advances to the next one.
//
// The call is a no-op unless step is the current step. Completing the
// Budget step additionally requires a positive budget in the context;
// when that guard fails the state is left unchanged and no error is
// raised — the caller re-presents the budget prompt.
func (m *Machine) Complete(step Step) {
	m.mu.Lock()

	if step != m.current || m.current >= StepSummary {
		m.mu.Unlock()
		return
	}

	if step == StepBudget && m.context.Budget <= 0 {
		m.logger.Debug("budget step blocked, no positive budget set")
		m.mu.Unlock()
		return
	}

	m.current = step + 1
	reached := m.current
	m.mu.Unlock()

	m.logger.Info("wizard advanced", "step", reached.String())

	if reached == StepSummary && m.hooks.OnComplete != nil {
		m.hooks.OnComplete()
	}
}

// AttachGuidance forwards a guidance response to the OnAIResponse hook.
func (m *Machine) AttachGuidance(resp assist.Response) {
	if m.hooks.OnAIResponse != nil {
		m.hooks.OnAIResponse(resp)
	}
}
