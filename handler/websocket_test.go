package handler

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingConn struct {
	mu     sync.Mutex
	writes []string
	fail   bool
	closed bool
}

func (r *recordingConn) WriteMessage(_ int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errors.New("write on closed connection")
	}
	r.writes = append(r.writes, string(data))
	return nil
}

func (r *recordingConn) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func resetFeedClients(t *testing.T) {
	t.Helper()
	feedMu.Lock()
	feedClients = make(map[feedConn]bool)
	feedMu.Unlock()
}

func TestOrderFeedFanoutDeliversOncePerClient(t *testing.T) {
	resetFeedClients(t)

	first := &recordingConn{}
	second := &recordingConn{}
	addFeedClient(first)
	addFeedClient(second)

	events := make(chan string, 2)
	events <- `{"order_id":1,"status":"paid"}`
	events <- `{"order_id":2,"status":"shipped"}`
	close(events)
	fanoutOrderEvents(events)

	want := []string{`{"order_id":1,"status":"paid"}`, `{"order_id":2,"status":"shipped"}`}
	assert.Equal(t, want, first.writes)
	assert.Equal(t, want, second.writes)
}

func TestOrderFeedFanoutDropsDeadClient(t *testing.T) {
	resetFeedClients(t)

	alive := &recordingConn{}
	dead := &recordingConn{fail: true}
	addFeedClient(alive)
	addFeedClient(dead)

	events := make(chan string, 1)
	events <- `{"order_id":3,"status":"paid"}`
	close(events)
	fanoutOrderEvents(events)

	assert.Equal(t, []string{`{"order_id":3,"status":"paid"}`}, alive.writes)
	assert.True(t, dead.closed)

	feedMu.Lock()
	_, stillRegistered := feedClients[dead]
	feedMu.Unlock()
	assert.False(t, stillRegistered)
}
