package core

import "sync"

// memo holds a value computed on first successful access. Errors are returned
// to the caller but not stored, so a failed computation runs again next time.
type memo[T any] struct {
	mu   sync.Mutex
	done bool
	val  T
}

func (m *memo[T]) get(compute func() (T, error)) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.done {
		return m.val, nil
	}
	v, err := compute()
	if err != nil {
		var zero T
		return zero, err
	}
	m.val = v
	m.done = true
	return v, nil
}
