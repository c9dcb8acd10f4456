package render

// Every keeps the elements at indexes divisible by factor, in order.
// A factor below 2 returns xs unchanged.
func Every[T any](xs []T, factor int) []T {
	if factor < 2 {
		return xs
	}
	out := make([]T, 0, (len(xs)+factor-1)/factor)
	for i := 0; i < len(xs); i += factor {
		out = append(out, xs[i])
	}
	return out
}

// Decimate keeps every factor-th character of s, starting with the first.
func Decimate(s string, factor int) string {
	return string(Every([]rune(s), factor))
}
