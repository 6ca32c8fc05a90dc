package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a float64 gauge safe for one writer and many readers; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }
