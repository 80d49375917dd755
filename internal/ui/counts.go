package ui

// countValues histograms cells into counts and returns the number of
// non-zero cells. Values without a slot in counts are still totalled.
func countValues(cells []uint8, counts []int) int {
	for i := range counts {
		counts[i] = 0
	}
	total := 0
	for _, c := range cells {
		if c == 0 {
			continue
		}
		total++
		if int(c) < len(counts) {
			counts[c]++
		}
	}
	return total
}
