package ports

import "context"

// CounterRepository hands out identifiers from named atomic counters.
// Values are strictly increasing and never reused, even under concurrent
// creation, as long as Next runs inside the same transaction that persists
// the record using the value.
type CounterRepository interface {
	// Next increments the named counter and returns its new value.
	Next(ctx context.Context, name string) (int64, error)
}
