package patch

// Coalesce dereferences an optional field, using fallback when it was omitted.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}
