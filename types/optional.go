package types

// Optional is a value which may be absent
// It distinguishes "extracted an empty string" from "nothing was extracted"
type Optional[T comparable] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v
func Some[T comparable](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional
func None[T comparable]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// Value returns the value, or the zero value if absent
func (o Optional[T]) Value() T {
	return o.value
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// IsEmpty returns true if the value is absent OR is the zero value
func (o Optional[T]) IsEmpty() bool {
	var zero T
	return !o.present || o.value == zero
}
