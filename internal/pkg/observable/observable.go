// Package observable provides a minimal state holder with change notification.
package observable

import "sync"

type Listener[T any] func(T)

// Value holds the current state and notifies listeners synchronously on Set.
type Value[T any] struct {
	mu        sync.RWMutex
	value     T
	nextID    int
	listeners []subscription[T]
}

type subscription[T any] struct {
	id int
	fn Listener[T]
}

func New[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores value and calls every listener in subscription order.
// Listeners run after the lock is released, so they may call Get.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	listeners := make([]subscription[T], len(v.listeners))
	copy(listeners, v.listeners)
	v.mu.Unlock()

	for _, l := range listeners {
		l.fn(value)
	}
}

// Subscribe registers fn and returns a function that removes it.
func (v *Value[T]) Subscribe(fn Listener[T]) (unsubscribe func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners = append(v.listeners, subscription[T]{id: id, fn: fn})

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, l := range v.listeners {
			if l.id == id {
				v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
				return
			}
		}
	}
}
