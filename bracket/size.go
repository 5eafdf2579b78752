package bracket

// Size returns the smallest power of two that can seat n entrants.
// Anything below one entrant collapses to a bracket of one seat.
func Size(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}

// Rounds returns how many rounds a bracket of the given size plays.
// Size is always a power of two, so the result is an exact log2.
func Rounds(size int) int {
	rounds := 0
	for size > 1 {
		rounds++
		size = (size + 1) / 2
	}
	return rounds
}
