// Package status keeps named session counters readable from any goroutine
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds integer counters and float gauges
// Writers cache the returned pointers, readers take a Snapshot
type Registry struct {
	counters *metricMap[atomic.Int64]
	gauges   *metricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: newMetricMap[atomic.Int64](),
		gauges:   newMetricMap[AtomicFloat](),
	}
}

// Counter returns the named counter, creating it at zero
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the named gauge, creating it at zero
func (r *Registry) Gauge(name string) *AtomicFloat {
	return r.gauges.get(name)
}

// Metric is one named value in a snapshot
type Metric struct {
	Name  string
	Value float64
}

// Snapshot returns all metrics, counters first, each group sorted by name
func (r *Registry) Snapshot() []Metric {
	out := make([]Metric, 0, r.Len())
	r.counters.each(func(name string, c *atomic.Int64) {
		out = append(out, Metric{Name: name, Value: float64(c.Load())})
	})
	r.gauges.each(func(name string, g *AtomicFloat) {
		out = append(out, Metric{Name: name, Value: g.Get()})
	})
	return out
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	return r.counters.len() + r.gauges.len()
}

// String formats the snapshot as space separated name=value pairs
func (r *Registry) String() string {
	var sb strings.Builder
	for i, m := range r.Snapshot() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%g", m.Name, m.Value)
	}
	return sb.String()
}
