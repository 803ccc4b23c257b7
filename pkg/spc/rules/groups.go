package rules

// AlarmSubsets partitions the alarmed positions of a series into maximal
// runs of consecutive indices.  Reporting and plotting layers use the runs
// to highlight contiguous out-of-control spans rather than isolated points.
func AlarmSubsets(alarms Alarms) [][]int {
	var idx []int
	for i, a := range alarms {
		if a {
			idx = append(idx, i)
		}
	}
	return GroupConsecutives(idx)
}

// GroupConsecutives partitions an ordered index slice into maximal runs of
// consecutive integers.
func GroupConsecutives(idx []int) [][]int {
	if len(idx) == 0 {
		return nil
	}
	var groups [][]int
	acc := []int{idx[0]}
	last := idx[0]
	for _, i := range idx[1:] {
		if i-last != 1 {
			groups = append(groups, acc)
			acc = nil
		}
		acc = append(acc, i)
		last = i
	}
	return append(groups, acc)
}
