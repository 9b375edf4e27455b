package server

import "sync"

// RunEvents fans build-run notifications out to event stream listeners.
// Each listener holds at most one pending run ID; a newer run replaces a
// pending one the listener has not read yet.
type RunEvents struct {
	mu        sync.Mutex
	listeners map[chan string]struct{}
}

// NewRunEvents creates an empty RunEvents.
func NewRunEvents() *RunEvents {
	return &RunEvents{listeners: make(map[chan string]struct{})}
}

// Subscribe registers a listener. Callers must Unsubscribe when done.
func (e *RunEvents) Subscribe() chan string {
	e.mu.Lock()
	defer e.mu.Unlock()
	ch := make(chan string, 1)
	e.listeners[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a listener.
func (e *RunEvents) Unsubscribe(ch chan string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.listeners[ch]; ok {
		delete(e.listeners, ch)
		close(ch)
	}
}

// Publish announces a finished run to every listener without blocking.
func (e *RunEvents) Publish(runID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for ch := range e.listeners {
		select {
		case ch <- runID:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- runID
		}
	}
}

// Listeners reports the number of subscribed listeners.
func (e *RunEvents) Listeners() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.listeners)
}
