package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Counter names recorded by the game loop
const (
	Frames         = "frames"
	Keys           = "keys"
	Generations    = "generations"
	PeakPopulation = "peak_population"
	Saves          = "saves"
	Loads          = "loads"
	Resets         = "resets"

	SoundEnabled = "sound_enabled"
)

// Registry holds session counters and flags
// The loop caches pointers once and writes atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Inc adds one to a counter and returns the new value
func (r *Registry) Inc(name string) int64 {
	return r.Ints.Get(name).Add(1)
}

// Max raises a counter to v if v is larger
func (r *Registry) Max(name string, v int64) {
	c := r.Ints.Get(name)
	for {
		cur := c.Load()
		if v <= cur || c.CompareAndSwap(cur, v) {
			return
		}
	}
}

// Value reads a counter; absent counters read 0 without being created
func (r *Registry) Value(name string) int64 {
	if !r.Ints.Has(name) {
		return 0
	}
	return r.Ints.Get(name).Load()
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Summary renders every metric as space-separated key=value pairs in sorted order
func (r *Registry) Summary() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Bools.Range(func(key string, v *atomic.Bool) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%t", key, v.Load())
	})
	return b.String()
}
