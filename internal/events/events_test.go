package events

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Concurrent(t *testing.T) {
	var rec Recorder
	var wg sync.WaitGroup

	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rec.Observe(Event{RequestID: "a", State: StateResult})
		}()
	}
	wg.Wait()

	assert.Len(t, rec.Events(), 50)
}

func TestRecorder_States(t *testing.T) {
	var rec Recorder
	obs := Observer(rec.Observe)

	obs(Event{RequestID: "a", State: StateBuildingPrompt})
	obs(Event{RequestID: "b", State: StateBuildingPrompt})
	obs(Event{RequestID: "a", State: StateCallingModel})
	obs(Event{RequestID: "a", State: StateResult})

	assert.Equal(t, []State{StateBuildingPrompt, StateCallingModel, StateResult}, rec.States("a"))
	assert.Equal(t, []State{StateBuildingPrompt}, rec.States("b"))
	assert.Empty(t, rec.States("missing"))
}

func TestRecorder_EventsIsCopy(t *testing.T) {
	var rec Recorder
	rec.Observe(Event{RequestID: "a"})

	got := rec.Events()
	got[0].RequestID = "mutated"

	assert.Equal(t, "a", rec.Events()[0].RequestID)
}
