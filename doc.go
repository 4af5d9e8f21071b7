// Package spagp solves the Student-Project Allocation with Group Building
// Problem (SPAGP) by General Variable Neighborhood Search.
//
//	instance/   — validated problem input (projects, students, preferences)
//	solution/   — the mutable solution graph, its objective, and its moves
//	movegen/    — single-relocation delta evaluators
//	shake/      — randomized perturbation
//	vnd/        — Variable Neighborhood Descent local search
//	structural/ — group founding/dissolution composite moves
//	selfcheck/  — invariant auditor
//	gvns/       — the outer driver, configuration, and reporting strategies
//
// Solve is a thin convenience wrapper over gvns.Run for callers who don't
// need direct access to the subpackages.
package spagp
