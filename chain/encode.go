package chain

import (
	"strings"

	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

// SameRowThreshold is the |Δy| cutoff below which two nodes are
// considered drawn on the same generation line and therefore
// comparable by x. Named per the spec's open question rather than
// inlined, since whether it should scale with layout units is left
// unresolved upstream.
const SameRowThreshold = 100

var atomTable = map[Step]string{
	{ActionParent, "M"}: "f",
	{ActionParent, "F"}: "m",
	{ActionChild, "M"}:  "s",
	{ActionChild, "F"}:  "d",
	{ActionSpouse, "M"}: "h",
	{ActionSpouse, "F"}: "w",
}

// Encode collapses signature into the canonical comma-separated chain,
// consulting path's endpoints' layout positions for elder/younger and
// same-row suffixes. path[0] is always the source and path[len-1] the
// target; the source node is otherwise informational only (an open
// question the reference implementation never resolved either way).
func Encode(g directedGraph, path []string, signature []Step) string {
	var atoms []string

	for i := 0; i < len(signature); i++ {
		step := signature[i]

		if step.Action == ActionParent && i+1 < len(signature) && signature[i+1].Action == ActionChild {
			next := signature[i+1]
			direct := i == 0 && i+2 == len(signature)

			if direct {
				atoms = append(atoms, directSiblingAtom(g, path[0], path[2], next.Gender))
			} else {
				atoms = append(atoms, indirectSiblingAtom(next.Gender))
			}
			i++
			continue
		}

		if code, ok := atomTable[step]; ok {
			atoms = append(atoms, code)
		}
	}

	applySameRowSuffix(g, path, atoms)

	return strings.Join(atoms, ",")
}

func directSiblingAtom(g directedGraph, sourceID, targetID string, gender types.Gender) string {
	sourcePos := g.Position(sourceID)
	targetPos := g.Position(targetID)
	if sourcePos != nil && targetPos != nil && sourcePos.X != targetPos.X {
		elder := targetPos.X < sourcePos.X
		if gender == "M" {
			if elder {
				return "ob"
			}
			return "lb"
		}
		if elder {
			return "os"
		}
		return "ls"
	}
	return indirectSiblingAtom(gender)
}

func indirectSiblingAtom(gender types.Gender) string {
	if gender == "M" {
		return "xb"
	}
	return "xs"
}

func applySameRowSuffix(g directedGraph, path []string, atoms []string) {
	if len(atoms) == 0 {
		return
	}
	last := atoms[len(atoms)-1]
	if last != "s" && last != "d" {
		return
	}
	if len(path) < 2 {
		return
	}

	sourcePos := g.Position(path[0])
	targetPos := g.Position(path[len(path)-1])
	if sourcePos == nil || targetPos == nil {
		return
	}
	if sourcePos.X == targetPos.X {
		return
	}
	dy := sourcePos.Y - targetPos.Y
	if dy < 0 {
		dy = -dy
	}
	if dy >= SameRowThreshold {
		return
	}

	if targetPos.X < sourcePos.X {
		atoms[len(atoms)-1] = last + "&o"
	} else {
		atoms[len(atoms)-1] = last + "&l"
	}
}
