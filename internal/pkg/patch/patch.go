// Package patch resolves partial-update fields against the stored value.
package patch

// Coalesce returns *ptr when the field was sent, otherwise fallback.
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// CoalesceAs is Coalesce for a field whose wire type differs from the stored one.
func CoalesceAs[T, U any](ptr *T, convert func(T) U, fallback U) U {
	if ptr != nil {
		return convert(*ptr)
	}
	return fallback
}
