package events

import (
	"context"
	"sync"
)

// Recorder is a test publisher that records published event names.
type Recorder struct {
	mu     sync.Mutex
	events []string
}

// NewRecorder constructs an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Publish records the event name.
func (r *Recorder) Publish(_ context.Context, event string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

// Events returns a copy of the recorded event names.
func (r *Recorder) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}
