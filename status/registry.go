// Package status holds live runtime counters written by the loop and read by the debug line
package status

import (
	"sort"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys published by the shell and the terminal loop
const (
	KeyScore   = "score"
	KeyCaught  = "caught"
	KeyMissed  = "missed"
	KeyItems   = "items"
	KeyElapsed = "elapsed"
	KeyFPS     = "fps"
)

// Registry is the central metrics facade
// Writers cache pointers once; per-frame writes go straight to the atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Line renders every metric as "key=value" pairs in key order
func (r *Registry) Line() string {
	pairs := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		pairs = append(pairs, k+"="+strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		pairs = append(pairs, k+"="+strconv.FormatFloat(v.Get(), 'f', 1, 64))
	})
	sort.Strings(pairs)
	return strings.Join(pairs, " ")
}
