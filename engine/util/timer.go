package util

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

type TimerState struct {
	name          string
	lastDuration  time.Duration
	totalDuration time.Duration
	count         int64
	minDuration   time.Duration
	maxDuration   time.Duration
}

func (t *TimerState) Name() string {
	return t.name
}

func (t *TimerState) Last() time.Duration {
	return t.lastDuration
}

func (t *TimerState) Count() int64 {
	return t.count
}

func (t *TimerState) Average() time.Duration {
	if t.count == 0 {
		return 0
	}
	return t.totalDuration / time.Duration(t.count)
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s last: %v, avg: %v, min: %v, max: %v", t.name, t.lastDuration, t.Average(), t.minDuration, t.maxDuration)
}

// Timer collects named durations, e.g. one per editor phase. Not safe for concurrent use.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

// Names returns the timer names in the order they were first started.
func (t *Timer) Names() []string {
	return t.timerNames
}

// Start begins measuring name; the returned func stops the measurement and returns it.
func (t *Timer) Start(name string) func() time.Duration {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{name: name}
		t.states[name] = state
	}
	start := time.Now()
	return func() time.Duration {
		elapsed := time.Since(start)
		state.lastDuration = elapsed
		state.totalDuration += elapsed
		if state.count == 0 || elapsed < state.minDuration {
			state.minDuration = elapsed
		}
		if elapsed > state.maxDuration {
			state.maxDuration = elapsed
		}
		state.count++
		return elapsed
	}
}

// Fields returns the last duration of every timer as log fields.
func (t *Timer) Fields() []zap.Field {
	fields := make([]zap.Field, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		fields = append(fields, zap.Duration(name, t.states[name].lastDuration))
	}
	return fields
}
