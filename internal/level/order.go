package level

import (
	"sort"
	"strings"
)

// CompareIDs orders level IDs the way people number them: runs of digits
// compare by value, so "level_2" sorts before "level_10". IDs that only
// differ in leading zeros fall back to plain string order.
func CompareIDs(a, b string) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if isDigit(a[i]) && isDigit(b[j]) {
			na, nextI := digitRun(a, i)
			nb, nextJ := digitRun(b, j)
			if c := compareNumbers(na, nb); c != 0 {
				return c
			}
			i, j = nextI, nextJ
			continue
		}
		if a[i] != b[j] {
			if a[i] < b[j] {
				return -1
			}
			return 1
		}
		i++
		j++
	}
	switch {
	case len(a)-i < len(b)-j:
		return -1
	case len(a)-i > len(b)-j:
		return 1
	}
	return strings.Compare(a, b)
}

// sortByID sorts levels in CompareIDs order.
func sortByID(levels []Level) {
	sort.Slice(levels, func(i, j int) bool {
		return CompareIDs(levels[i].ID, levels[j].ID) < 0
	})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// digitRun returns the digits starting at i without leading zeros, and the
// index just past them.
func digitRun(s string, i int) (string, int) {
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	run := strings.TrimLeft(s[start:i], "0")
	return run, i
}

// compareNumbers compares two digit strings without leading zeros.
func compareNumbers(a, b string) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}
