package checkout

import (
	"errors"
	"fmt"

	"github.com/ManuelReschke/SiteForge/internal/pkg/metrics"
)

// ErrInvalidTransition is returned when an event is not allowed in the current step.
var ErrInvalidTransition = errors.New("invalid step transition")

// Step is the page currently mounted in the purchase funnel.
type Step string

const (
	StepHome        Step = "home"
	StepConfiguring Step = "configuring"
	StepPaying      Step = "paying"
	StepConfirmed   Step = "confirmed"
)

func (s Step) IsValid() bool {
	switch s {
	case StepHome, StepConfiguring, StepPaying, StepConfirmed:
		return true
	}
	return false
}

// Event triggers a step transition.
type Event string

const (
	EventSelect           Event = "select"
	EventSubmit           Event = "submit"
	EventCancel           Event = "cancel"
	EventBack             Event = "back"
	EventAuthorizeSuccess Event = "authorize_success"
	EventAuthorizeFailure Event = "authorize_failure"
	EventRequestQuote     Event = "request_quote"
	EventReturn           Event = "return"
)

// Transition moves the funnel from Src to Dst when Event fires.
type Transition struct {
	Event Event
	Src   Step
	Dst   Step
}

// Transitions is the complete table of legal funnel moves.
var Transitions = []Transition{
	{Event: EventSelect, Src: StepHome, Dst: StepConfiguring},
	{Event: EventSubmit, Src: StepConfiguring, Dst: StepPaying},
	{Event: EventCancel, Src: StepConfiguring, Dst: StepHome},
	{Event: EventBack, Src: StepPaying, Dst: StepConfiguring},
	{Event: EventAuthorizeSuccess, Src: StepPaying, Dst: StepConfirmed},
	{Event: EventAuthorizeFailure, Src: StepPaying, Dst: StepConfirmed},
	{Event: EventRequestQuote, Src: StepPaying, Dst: StepConfirmed},
	{Event: EventReturn, Src: StepConfirmed, Dst: StepHome},
}

// Router is the in-memory page router. It keeps no history and knows nothing
// about the draft; preconditions on the draft are checked by Funnel.
type Router struct {
	step Step
}

func NewRouter() *Router {
	return &Router{step: StepHome}
}

func (r *Router) Step() Step {
	return r.step
}

func (r *Router) lookup(e Event) (Transition, bool) {
	for _, t := range Transitions {
		if t.Event == e && t.Src == r.step {
			return t, true
		}
	}
	return Transition{}, false
}

// Can reports whether e is legal in the current step.
func (r *Router) Can(e Event) bool {
	_, ok := r.lookup(e)
	return ok
}

// Fire applies e. Illegal events leave the step untouched.
func (r *Router) Fire(e Event) (Step, error) {
	t, ok := r.lookup(e)
	if !ok {
		metrics.FunnelRejections.WithLabelValues(string(e)).Inc()
		return r.step, fmt.Errorf("%w: %s from %s", ErrInvalidTransition, e, r.step)
	}
	r.step = t.Dst
	metrics.FunnelTransitions.WithLabelValues(string(e), string(t.Dst)).Inc()
	return r.step, nil
}
