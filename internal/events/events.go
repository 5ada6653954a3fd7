package events

import (
	"sync"
	"time"
)

// Kind is the request type an event belongs to.
type Kind string

const (
	KindQuery   Kind = "query"
	KindSummary Kind = "summary"
)

// State is a step of the request state machine:
// building_prompt -> calling_model -> parsing | fallback -> result.
type State string

const (
	StateBuildingPrompt State = "building_prompt"
	StateCallingModel   State = "calling_model"
	StateParsing        State = "parsing"
	StateFallback       State = "fallback"
	StateResult         State = "result"
)

// Event is published on every state transition of a request.
type Event struct {
	RequestID  string        // uuid shared by all events of one request
	Kind       Kind          // query or summary
	State      State         // state just entered
	DocumentID string        // set for summary requests
	Err        error         // cause of a fallback transition
	Fallback   bool          // on StateResult: the result is synthetic
	Duration   time.Duration // on StateResult: time since StateBuildingPrompt
	Timestamp  time.Time
}

// Observer receives events. It is called synchronously and must not block.
type Observer func(Event)

// Recorder collects events for inspection in tests; production code installs
// its own Observer. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Observe records e. Pass rec.Observe wherever an Observer is expected.
func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// States returns the states recorded for one request.
func (r *Recorder) States(requestID string) []State {
	r.mu.Lock()
	defer r.mu.Unlock()
	var states []State
	for _, e := range r.events {
		if e.RequestID == requestID {
			states = append(states, e.State)
		}
	}
	return states
}
