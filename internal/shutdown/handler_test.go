package shutdown

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/cursorlock/internal/toggle"
)

type countingDeactivator struct {
	calls atomic.Int32
	err   error
	block chan struct{}
}

func (c *countingDeactivator) Deactivate() error {
	c.calls.Add(1)
	if c.block != nil {
		<-c.block
	}
	return c.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name         string
		enabled      bool
		wantCalls    int32
		wantReleased bool
	}{
		{"enabled releases once", true, 1, true},
		{"disabled does nothing", false, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &countingDeactivator{}
			h := NewHandler(toggle.New(tt.enabled), d, time.Second)

			assert.False(t, h.Released(), "nothing released before Handle")
			h.Handle("interrupt")
			assert.Equal(t, tt.wantCalls, d.calls.Load())
			assert.Equal(t, tt.wantReleased, h.Released())
		})
	}
}

func TestHandleRunsOnce(t *testing.T) {
	d := &countingDeactivator{}
	h := NewHandler(toggle.New(true), d, time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Handle("terminate")
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), d.calls.Load())
}

func TestHandleErrorDoesNotPanic(t *testing.T) {
	d := &countingDeactivator{err: errors.New("access denied")}
	h := NewHandler(toggle.New(true), d, time.Second)

	assert.NotPanics(t, func() { h.Handle("interrupt") })
	assert.Equal(t, int32(1), d.calls.Load())
	assert.False(t, h.Released())
}

func TestHandleIsBounded(t *testing.T) {
	d := &countingDeactivator{block: make(chan struct{})}
	defer close(d.block)
	h := NewHandler(toggle.New(true), d, 50*time.Millisecond)

	start := time.Now()
	h.Handle("interrupt")
	assert.Less(t, time.Since(start), time.Second)
	assert.False(t, h.Released(), "an abandoned release must not report success")
}

func TestNewHandlerDefaultTimeout(t *testing.T) {
	h := NewHandler(toggle.New(true), &countingDeactivator{}, 0)
	assert.Equal(t, DefaultTimeout, h.timeout)
}
