package dispatch

import "testing"

func TestDispatch_NoDispatcherReturnsFalse(t *testing.T) {
	Register(nil)
	if Dispatch(func() {}) {
		t.Error("Dispatch should return false with no dispatcher registered")
	}
}

func TestDispatch_NilCallbackReturnsFalse(t *testing.T) {
	Register(func(cb func()) { cb() })
	defer Register(nil)

	if Dispatch(nil) {
		t.Error("Dispatch(nil) should return false")
	}
}

func TestDispatch_PreservesOrder(t *testing.T) {
	var queue []func()
	Register(func(cb func()) { queue = append(queue, cb) })
	defer Register(nil)

	var order []int
	for i := 0; i < 5; i++ {
		n := i
		if !Dispatch(func() { order = append(order, n) }) {
			t.Fatal("Dispatch should succeed with a registered dispatcher")
		}
	}
	for _, cb := range queue {
		cb()
	}
	for i, n := range order {
		if n != i {
			t.Fatalf("Callbacks ran out of order: %v", order)
		}
	}
}
