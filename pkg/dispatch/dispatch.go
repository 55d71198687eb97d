// Package dispatch routes engine callbacks onto the host's UI thread.
//
// Input sources (touch handlers, platform callbacks) may run outside the
// host's render/update context. The sheet engine routes its live
// drag-offset updates through Dispatch so hosts can defer them to the
// next UI tick. The registered function must preserve submission order:
// callbacks scheduled during one gesture are delivered strictly FIFO.
package dispatch

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// Register sets the dispatch function used to schedule callbacks on the
// UI thread. This should be called once by the host during initialization.
// Pass nil to remove the dispatcher; callers then fall back to invoking
// callbacks inline.
func Register(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no
// dispatch function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}
