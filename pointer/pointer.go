package pointer

// FromAny returns a pointer to a copy of v. Useful for optional struct
// fields whose value is not addressable at the call site.
func FromAny[T any](v T) *T {
	return &v
}
