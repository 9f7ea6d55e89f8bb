// Package optional models a value that is either present or absent.
package optional

// Value holds either nothing (None) or exactly one T (Some).
// The zero Value is None.
type Value[T any] struct {
	val T
	ok  bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{val: v, ok: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// Get returns the held value and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.val, v.ok
}

// IsSome reports whether a value is present.
func (v Value[T]) IsSome() bool {
	return v.ok
}

// OrElse returns the held value, or fallback when absent.
func (v Value[T]) OrElse(fallback T) T {
	if !v.ok {
		return fallback
	}
	return v.val
}
