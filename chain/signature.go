// Package chain implements the graph-to-chain codec (C3-C5): projecting
// a path into a signature, collapsing it into a canonical chain, and
// generating the variant chains the matcher tries in order.
package chain

import "github.com/lesfleursdelanuitdev/kinship-infer/types"

// Action is the relation a signature step represents, from the
// perspective of the preceding node looking at the next one.
type Action int

const (
	ActionParent Action = iota
	ActionChild
	ActionSpouse
)

// Step is one (action, gender) pair in a path signature.
type Step struct {
	Action Action
	Gender types.Gender
}

// directedGraph is the subset of graph.Graph the codec needs; kept as
// an interface so chain stays independent of the graph package's
// concrete type and is easy to unit test in isolation.
type directedGraph interface {
	IsParentOf(parent, child string) bool
	IsSpouseOf(a, b string) bool
	Gender(id string) types.Gender
	Position(id string) *types.Position
}

// ExtractSignature projects each hop of path into a Step. ok is false
// when a hop matches neither parent_of nor spouse_of in either
// direction — a data-integrity error the caller must surface as the
// "cannot compute" outcome.
func ExtractSignature(g directedGraph, path []string) (signature []Step, ok bool) {
	if len(path) < 2 {
		return nil, true
	}

	signature = make([]Step, 0, len(path)-1)
	for i := 0; i < len(path)-1; i++ {
		u, v := path[i], path[i+1]
		switch {
		case g.IsParentOf(v, u):
			signature = append(signature, Step{ActionParent, g.Gender(v)})
		case g.IsParentOf(u, v):
			signature = append(signature, Step{ActionChild, g.Gender(v)})
		case g.IsSpouseOf(u, v):
			signature = append(signature, Step{ActionSpouse, g.Gender(v)})
		default:
			return nil, false
		}
	}
	return signature, true
}

// IsLineal reports whether signature is composed purely of Parent
// steps, or purely of Child steps (ancestors or descendants only, no
// sibling jump and no spouse hop). An empty signature is vacuously
// lineal.
func IsLineal(signature []Step) bool {
	if len(signature) == 0 {
		return true
	}
	allParent, allChild := true, true
	for _, s := range signature {
		if s.Action != ActionParent {
			allParent = false
		}
		if s.Action != ActionChild {
			allChild = false
		}
	}
	return allParent || allChild
}
