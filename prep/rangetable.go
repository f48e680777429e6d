package prep

import "sort"

// charRange is an inclusive range of scalar values. Single code points
// are encoded with lo == hi.
type charRange struct {
	lo, hi rune
}

// rangeTable is a sorted list of disjoint inclusive ranges. Membership is
// decided by binary search.
type rangeTable []charRange

// contains reports whether c falls in any range of the table.
func (t rangeTable) contains(c rune) bool {
	i := sort.Search(len(t), func(i int) bool { return c <= t[i].hi })
	return i < len(t) && c >= t[i].lo
}
