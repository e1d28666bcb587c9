package toggle

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState(t *testing.T) {
	t.Run("starts with the given value", func(t *testing.T) {
		assert.True(t, New(true).Read())
		assert.False(t, New(false).Read())
	})

	t.Run("flip returns the new value", func(t *testing.T) {
		s := New(true)
		assert.False(t, s.Flip())
		assert.False(t, s.Read())
		assert.True(t, s.Flip())
		assert.True(t, s.Read())
		assert.Equal(t, uint64(2), s.Flips())
	})
}

func TestSerializedFlips(t *testing.T) {
	for n := 1; n <= 9; n++ {
		s := New(true)
		trues, falses := 0, 0
		for i := 0; i < n; i++ {
			// count the state each trigger acts on
			if !s.Flip() {
				trues++
			} else {
				falses++
			}
		}

		if trues != (n+1)/2 || falses != n/2 {
			t.Errorf("n=%d: visited %d enabled and %d disabled states", n, trues, falses)
		}
		if s.Read() != (n%2 == 0) {
			t.Errorf("n=%d: final state %v", n, s.Read())
		}
	}
}

func TestConcurrentFlips(t *testing.T) {
	t.Run("two concurrent flips land back on the start value", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			s := New(true)
			var wg sync.WaitGroup
			start := make(chan struct{})
			for j := 0; j < 2; j++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					<-start
					s.Flip()
				}()
			}
			close(start)
			wg.Wait()

			if !s.Read() {
				t.Fatalf("iteration %d: expected enabled after two flips", i)
			}
			if s.Flips() != 2 {
				t.Fatalf("iteration %d: expected 2 flips, got %d", i, s.Flips())
			}
		}
	})

	t.Run("many flips each observe a distinct transition", func(t *testing.T) {
		s := New(false)
		const workers = 64
		results := make(chan bool, workers)

		var wg sync.WaitGroup
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				results <- s.Flip()
			}()
		}
		wg.Wait()
		close(results)

		enabled := 0
		for r := range results {
			if r {
				enabled++
			}
		}
		assert.Equal(t, workers/2, enabled)
		assert.False(t, s.Read())
		assert.Equal(t, uint64(workers), s.Flips())
	})
}
