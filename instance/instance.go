package instance

import "fmt"

// Instance bundles the immutable Projects, Students, and the derived mutual
// partner relation for one SPAGP problem. It is safe to share a single
// Instance across many concurrent solver runs precisely because nothing here
// is ever mutated after New returns.
type Instance struct {
	Projects []Project
	Students []Student

	// mutualPairs holds every (a,b), a<b such that a and b each list the
	// other as a favorite partner.
	mutualPairs map[pairKey]struct{}
	// partnersOf[u] lists the other students that form a mutual pair with u,
	// in no particular order, for O(deg) "partners of u present in this
	// group" queries in the delta evaluators.
	partnersOf [][]int
}

// New validates projects and students and constructs an Instance, deriving
// MutualPairs once. It returns a sentinel error (see errors.go) on any
// configuration problem; no partial Instance is ever returned alongside an
// error.
func New(projects []ProjectSpec, students []StudentSpec) (*Instance, error) {
	if len(projects) == 0 || len(students) == 0 {
		return nil, ErrEmptyInstance
	}

	built := make([]Project, len(projects))
	for i, p := range projects {
		if p.DesiredNumGroups < 1 || p.MaxNumGroups < p.DesiredNumGroups {
			return nil, fmt.Errorf("project %d (%s): %w", i, p.Name, ErrInvalidGroupCount)
		}
		if p.MinGroupSize < 1 || p.MinGroupSize > p.IdealGroupSize || p.MaxGroupSize < p.IdealGroupSize {
			return nil, fmt.Errorf("project %d (%s): %w", i, p.Name, ErrInvalidGroupSizeBounds)
		}
		if p.PenaltyExtraGroup < 0 || p.PenaltyDeviationSize < 0 {
			return nil, fmt.Errorf("project %d (%s): %w", i, p.Name, ErrNegativePenalty)
		}
		built[i] = Project{
			ID:            i,
			Name:          p.Name,
			OfferedGroups: p.DesiredNumGroups,
			MaxGroups:     p.MaxNumGroups,
			IdealSize:     p.IdealGroupSize,
			MinSize:       p.MinGroupSize,
			MaxSize:       p.MaxGroupSize,
			GroupPenalty:  p.PenaltyExtraGroup,
			SizePenalty:   p.PenaltyDeviationSize,
		}
	}

	numProjects := len(projects)
	builtStudents := make([]Student, len(students))
	for i, st := range students {
		if len(st.ProjectPrefs) != numProjects {
			return nil, fmt.Errorf("student %d (%s): %w", i, st.Name, ErrPreferenceWidthMismatch)
		}
		for _, partner := range st.FavPartners {
			if partner < 0 || partner >= len(students) || partner == i {
				return nil, fmt.Errorf("student %d (%s): %w", i, st.Name, ErrInvalidPartnerReference)
			}
		}
		prefs := make([]int, numProjects)
		copy(prefs, st.ProjectPrefs)
		favs := make([]int, len(st.FavPartners))
		copy(favs, st.FavPartners)
		builtStudents[i] = Student{ID: i, Name: st.Name, FavPartners: favs, Prefs: prefs}
	}

	inst := &Instance{
		Projects: built,
		Students: builtStudents,
	}
	inst.derivePairs()

	return inst, nil
}

// derivePairs computes MutualPairs once, in student-id order, from each
// student's FavPartners list: (a,b) with a<b is mutual iff a lists b AND b
// lists a.
func (inst *Instance) derivePairs() {
	favSet := make([]map[int]struct{}, len(inst.Students))
	for _, s := range inst.Students {
		set := make(map[int]struct{}, len(s.FavPartners))
		for _, p := range s.FavPartners {
			set[p] = struct{}{}
		}
		favSet[s.ID] = set
	}

	inst.mutualPairs = make(map[pairKey]struct{})
	inst.partnersOf = make([][]int, len(inst.Students))
	for a := range inst.Students {
		for b := range favSet[a] {
			if b <= a {
				continue
			}
			if _, reciprocal := favSet[b][a]; reciprocal {
				inst.mutualPairs[pairKey{a, b}] = struct{}{}
				inst.partnersOf[a] = append(inst.partnersOf[a], b)
				inst.partnersOf[b] = append(inst.partnersOf[b], a)
			}
		}
	}
}

// IsMutualPair reports whether (a,b) form a mutual partner pair.
func (inst *Instance) IsMutualPair(a, b int) bool {
	if a == b {
		return false
	}
	if a > b {
		a, b = b, a
	}
	_, ok := inst.mutualPairs[pairKey{a, b}]

	return ok
}

// MutualPairCount returns the total number of derived mutual pairs.
func (inst *Instance) MutualPairCount() int {
	return len(inst.mutualPairs)
}

// CountPartnersIn returns how many of u's mutual partners are present in
// members. members is scanned linearly; partnersOf[u] is typically a very
// short list (fav_partners is capped small per student), so this stays O(k).
func (inst *Instance) CountPartnersIn(u int, members []int) int {
	partners := inst.partnersOf[u]
	if len(partners) == 0 {
		return 0
	}
	count := 0
	for _, m := range members {
		for _, p := range partners {
			if p == m {
				count++
				break
			}
		}
	}

	return count
}
