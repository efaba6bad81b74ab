package utils

// FindIndex returns the index of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	return FindIndexFunc(slice, func(v T) bool { return v == item })
}

// FindIndexFunc returns the index of the first element matching match, or -1.
func FindIndexFunc[T any](slice []T, match func(T) bool) int {
	for i, v := range slice {
		if match(v) {
			return i
		}
	}
	return -1
}
