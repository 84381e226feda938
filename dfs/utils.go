package dfs

// IndexOf returns the index of x in xs, or -1.
func IndexOf[N comparable](xs []N, x N) int {
	for i := range xs {
		if xs[i] == x {
			return i
		}
	}

	return -1
}

// Reverse reverses xs in place.
func Reverse[N any](xs []N) {
	for i, j := 0, len(xs)-1; i < j; i, j = i+1, j-1 {
		xs[i], xs[j] = xs[j], xs[i]
	}
}
