package structural

import "github.com/spagp-solver/spagp/solution"

// leg is one relocation recorded while speculatively evaluating a bundle,
// replayed verbatim if the bundle is later chosen.
type leg struct {
	from, to solution.Location
	student  int
}

// Bundle is one candidate founding or dissolution move: a single net
// objective delta and the ordered legs that realize it.
type Bundle struct {
	Delta    int
	Founding bool
	Project  int

	legs []leg
}
