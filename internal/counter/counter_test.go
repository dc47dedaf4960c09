package counter

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_StartsAtZero(t *testing.T) {
	assert.Equal(t, int64(0), New().Value())

	var c Counter
	assert.Equal(t, int64(0), c.Value())
}

func TestCounter_Increment(t *testing.T) {
	c := New()
	c.Increment()
	c.Increment()

	assert.Equal(t, int64(2), c.Value())
}

func TestCounter_ValueDoesNotMutate(t *testing.T) {
	c := New()
	c.Increment()

	for i := 0; i < 10; i++ {
		assert.Equal(t, int64(1), c.Value())
	}
}

func TestCounter_ConcurrentIncrements(t *testing.T) {
	const (
		callers          = 32
		callsPerCaller   = 500
		expectedIncrease = callers * callsPerCaller
	)

	c := New()

	var wg sync.WaitGroup
	wg.Add(callers * 2)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerCaller; j++ {
				c.Increment()
			}
		}()
		// concurrent readers must never see a value above the final total
		go func() {
			defer wg.Done()
			for j := 0; j < callsPerCaller; j++ {
				v := c.Value()
				if v < 0 || v > expectedIncrease {
					t.Errorf("torn read: %d", v)
					return
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(expectedIncrease), c.Value())
}
