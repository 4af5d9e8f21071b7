package gvns

// entry is one row of the neighborhood schedule (spec §4.8): the VND width
// N, whether group destinations cross project boundaries, whether shake
// runs before VND, and whether a structural move bundle runs before that.
type entry struct {
	n              int
	acrossProjects bool
	shake          bool
	structural     bool
}

// canonicalSchedule is the fixed k=1..6 table from spec §4.8. Implementations
// may extend it (not done here), but must preserve these six entries
// verbatim and in order.
var canonicalSchedule = map[int]entry{
	1: {n: 1, acrossProjects: false, shake: true, structural: false},
	2: {n: 2, acrossProjects: false, shake: true, structural: false},
	3: {n: 2, acrossProjects: false, shake: false, structural: true},
	4: {n: 1, acrossProjects: true, shake: true, structural: false},
	5: {n: 2, acrossProjects: true, shake: true, structural: false},
	6: {n: 2, acrossProjects: true, shake: false, structural: true},
}

// scheduleEntry returns the schedule row for neighborhood index k, clamped
// into [1,6] so a caller's MaxNeighborhood beyond the canonical table still
// resolves to a defined row rather than panicking on a missing key.
func scheduleEntry(k int) entry {
	if k < 1 {
		k = 1
	}
	if k > 6 {
		k = 6
	}

	return canonicalSchedule[k]
}
