package server

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEvents_SubscribeUnsubscribe(t *testing.T) {
	e := NewRunEvents()

	ch := e.Subscribe()
	require.NotNil(t, ch)
	assert.Equal(t, 1, e.Listeners())

	e.Unsubscribe(ch)
	assert.Equal(t, 0, e.Listeners())

	_, ok := <-ch
	assert.False(t, ok, "channel is closed on unsubscribe")

	// A second unsubscribe is a no-op.
	e.Unsubscribe(ch)
}

func TestRunEvents_Publish(t *testing.T) {
	e := NewRunEvents()
	ch1 := e.Subscribe()
	ch2 := e.Subscribe()
	defer e.Unsubscribe(ch1)
	defer e.Unsubscribe(ch2)

	e.Publish("run-1")

	for _, ch := range []chan string{ch1, ch2} {
		select {
		case id := <-ch:
			assert.Equal(t, "run-1", id)
		case <-time.After(100 * time.Millisecond):
			t.Fatal("listener did not receive run")
		}
	}
}

func TestRunEvents_LatestWins(t *testing.T) {
	e := NewRunEvents()
	ch := e.Subscribe()
	defer e.Unsubscribe(ch)

	// Nobody reads between publishes; neither call may block.
	e.Publish("run-1")
	e.Publish("run-2")
	e.Publish("run-3")

	assert.Equal(t, "run-3", <-ch)
	select {
	case id := <-ch:
		t.Fatalf("unexpected pending run %s", id)
	default:
	}
}

func TestRunEvents_Concurrent(t *testing.T) {
	e := NewRunEvents()

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := e.Subscribe()
			e.Publish("run")
			e.Unsubscribe(ch)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, e.Listeners())
}
