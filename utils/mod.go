package utils

// FindIndexFunc returns the index of the first element satisfying pred,
// or -1 when none does.
func FindIndexFunc[T any](slice []T, pred func(T) bool) int {
	for i, v := range slice {
		if pred(v) {
			return i
		}
	}
	return -1
}
