package sim

// RemoveSwap removes s[i] by moving the last element into its slot and
// returns the shortened slice. Order is not preserved.
func RemoveSwap[T any](s []T, i int) []T {
	last := len(s) - 1
	s[i] = s[last]
	var zero T
	s[last] = zero
	return s[:last]
}
