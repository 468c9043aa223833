package utils

func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// CountFunc returns how many elements of slice satisfy match.
func CountFunc[T any](slice []T, match func(T) bool) int {
	n := 0
	for _, v := range slice {
		if match(v) {
			n++
		}
	}
	return n
}

// Truncate cuts s to at most max runes.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
