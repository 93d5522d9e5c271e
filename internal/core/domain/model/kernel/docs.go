// Package kernel contains shared value objects used across domain aggregates.
//
// Value objects in this package are immutable, validate themselves, and carry
// no identity. They are safe to copy and to use as map keys.
package kernel
