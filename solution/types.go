package solution

import "github.com/spagp-solver/spagp/instance"

// LocKind distinguishes the two shapes a Location can take. Using an
// explicit enum (rather than a nil-able group pointer) keeps "is this the
// unassigned pool" a plain comparison, never a nil check.
type LocKind int

const (
	// LocUnassigned identifies the unassigned-pool sentinel location.
	LocUnassigned LocKind = iota
	// LocGroup identifies a (Project, Group) location.
	LocGroup
)

// Location identifies either the unassigned pool or a specific group of a
// specific project. Zero value is Unassigned (LocUnassigned, 0, 0), so an
// un-initialized Location is never mistaken for a valid group reference.
type Location struct {
	Kind    LocKind
	Project int // valid iff Kind == LocGroup
	Group   int // valid iff Kind == LocGroup; index into State's group slice
}

// Unassigned is the canonical unassigned-pool location value.
var Unassigned = Location{Kind: LocUnassigned}

// AtGroup builds a Location referring to a specific (project, group) pair.
func AtGroup(project, group int) Location {
	return Location{Kind: LocGroup, Project: project, Group: group}
}

// IsUnassigned reports whether loc is the unassigned-pool sentinel.
func (loc Location) IsUnassigned() bool {
	return loc.Kind == LocUnassigned
}

// group is one transient group: a list of student ids. Removing a member
// moves the last member into its slot, so the order is insertion order only
// until the first removal. Empty groups are legal mid-visit; they are pruned project-wide at
// iteration boundaries (see prune.go).
type group struct {
	members []int
}

// projectGroups holds every group instantiated for one project so far. Slots
// are never reordered except by PruneEmptyGroups, which only runs between
// neighborhood visits.
type projectGroups struct {
	groups []group
}

// State is the root mutable SPAGP solution: the Instance it was built from,
// every project's groups, the unassigned pool, the cached/best objective,
// and the reversal log for the in-progress neighborhood visit.
type State struct {
	// Inst is the immutable problem data this State was built from.
	// Read-only by convention; never mutated after construction.
	Inst *instance.Instance

	// RewardBilateral (R_bi) and PenaltyUnassigned (P_un) are the objective's
	// configured constants (spec defaults: 2 and 3). They are fixed for the
	// lifetime of a State, exactly like Inst.
	RewardBilateral   int
	PenaltyUnassigned int

	projects []projectGroups
	// loc[u] is student u's current location; authoritative source of truth.
	loc []Location

	// unassigned holds every unassigned student id; unassignedIndex maps a
	// student id back to its position in unassigned for O(1) removal.
	unassigned      []int
	unassignedIndex map[int]int

	cachedObjective int
	bestObjective   int

	log []reverseEntry
}

// reverseEntry is one inverse move appended to the reversal log by Relocate:
// replaying it moves student back from "to" to "from".
type reverseEntry struct {
	student  int
	from, to Location
}

// NewEmpty builds a State for inst with every student unassigned and no
// groups instantiated. Most callers want InitialSolution instead (see
// initial.go); NewEmpty is exposed for tests and for callers that want to
// seed groups themselves.
func NewEmpty(inst *instance.Instance, rewardBilateral, penaltyUnassigned int) *State {
	s := &State{
		Inst:              inst,
		RewardBilateral:   rewardBilateral,
		PenaltyUnassigned: penaltyUnassigned,
		projects:          make([]projectGroups, len(inst.Projects)),
		loc:               make([]Location, len(inst.Students)),
		unassigned:        make([]int, len(inst.Students)),
		unassignedIndex:   make(map[int]int, len(inst.Students)),
	}
	for i := range inst.Students {
		s.loc[i] = Unassigned
		s.unassigned[i] = i
		s.unassignedIndex[i] = i
	}

	return s
}

// GroupView is a read-only snapshot of one group's membership. No State
// method returns it at present. Mutating Members does not affect any State.
type GroupView struct {
	Members []int
}
