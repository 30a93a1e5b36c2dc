// Package rank computes a target's birth-rank among same-gender
// siblings and rewrites a matched title with the corresponding
// Chinese ordinal prefix (C8).
package rank

import (
	"sort"

	"github.com/lesfleursdelanuitdev/kinship-infer/chain"
	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

// directedGraph is the subset of graph.Graph the rank package needs.
type directedGraph interface {
	Gender(id string) types.Gender
	Position(id string) *types.Position
	ParentsOf(id string) []string
	ChildrenOf(id string) []string
	SpousesOf(id string) []string
}

// Rank is the (rank, total) pair for a target among its sibling
// cohort. Zero value means undefined (cohort too small or no parents,
// even after the spouse fallback).
type Rank struct {
	Position int
	Total    int
}

// Defined reports whether the cohort was large enough to produce a
// meaningful rank.
func (r Rank) Defined() bool { return r.Total >= 2 }

// Compute implements C8 steps 1-4: direct sibling rank, falling back
// to the target's spouse (successor direction first, then
// predecessor) when the direct rank is undefined.
func Compute(g directedGraph, target string) Rank {
	if r := directRank(g, target); r.Defined() {
		return r
	}
	for _, spouse := range g.SpousesOf(target) {
		if r := directRank(g, spouse); r.Defined() {
			return r
		}
	}
	return Rank{}
}

func directRank(g directedGraph, target string) Rank {
	parents := g.ParentsOf(target)
	if len(parents) == 0 {
		return Rank{}
	}

	targetGender := g.Gender(target)
	seen := make(map[string]bool)
	var sorted []string
	for _, parent := range parents {
		for _, child := range g.ChildrenOf(parent) {
			if seen[child] || g.Gender(child) != targetGender {
				continue
			}
			seen[child] = true
			sorted = append(sorted, child)
		}
	}
	if len(sorted) < 2 {
		return Rank{}
	}

	// stable sort over the parent/ChildrenOf insertion order above keeps
	// rank deterministic for siblings that share an x-coordinate (or
	// both lack a position) instead of depending on map iteration order.
	sort.SliceStable(sorted, func(i, j int) bool {
		return xOf(g, sorted[i]) < xOf(g, sorted[j])
	})

	for i, id := range sorted {
		if id == target {
			return Rank{Position: i + 1, Total: len(sorted)}
		}
	}
	return Rank{}
}

func xOf(g directedGraph, id string) int {
	if pos := g.Position(id); pos != nil {
		return pos.X
	}
	return 0
}

// SkipsDecoration reports whether the path is pure lineal descent
// (signature composed solely of Parent, or solely of Child, atoms) —
// in which case rank decoration must be skipped entirely regardless
// of any computed Rank (C8 step 5).
func SkipsDecoration(signature []chain.Step) bool {
	return chain.IsLineal(signature)
}
