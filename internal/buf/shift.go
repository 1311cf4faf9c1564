package buf

// ShiftRight moves s[pos:n] one slot to the right, into s[pos+1:n+1].
// The caller guarantees n < len(s). s[pos] is left unchanged.
func ShiftRight[E any](s []E, pos, n int) {
	copy(s[pos+1:n+1], s[pos:n])
}

// ShiftLeft moves s[pos+1:n] one slot to the left, into s[pos:n-1],
// overwriting s[pos]. The caller guarantees n <= len(s).
func ShiftLeft[E any](s []E, pos, n int) {
	copy(s[pos:n-1], s[pos+1:n])
}
