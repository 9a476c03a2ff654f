// Package registry stores the kernel sets available to the vector package.
//
// Kernel packages register themselves from init(); the kernel package looks up
// the highest-priority set supported by the detected CPU features once and
// caches the function pointers.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// OpEntry is one registered kernel set.
//
// Every field is required. All slice arguments must have equal length; the
// caller validates lengths before dispatch.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// float64 kernels
	AddTo   func(dst, a, b []float64)
	SubTo   func(dst, a, b []float64)
	ScaleTo func(dst []float64, s float64, src []float64)
	MulTo   func(dst, a, b []float64)
	Dot     func(a, b []float64) float64

	// complex128 kernels
	CAddTo   func(dst, a, b []complex128)
	CSubTo   func(dst, a, b []complex128)
	CScaleTo func(dst []complex128, s complex128, src []complex128)
	// CDot is the Hermitian product sum(a[i] * conj(b[i])).
	CDot func(a, b []complex128) complex128
	// CAbs stores |src[i]| in dst[i].
	CAbs func(dst []float64, src []complex128)
}

// OpRegistry stores available kernel sets.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default kernel registry.
var Global = &OpRegistry{}

// Register adds a kernel set.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority kernel set supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// LookupName returns the kernel set registered under name, or nil.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			return &r.entries[i]
		}
	}

	return nil
}

// insertion sort, stable for equal priorities
func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of entries for tests/debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
