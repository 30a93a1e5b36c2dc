// Package graph materializes the in-memory kinship graph (C1) and finds
// shortest paths across its undirected projection (C2). Grounded on the
// teacher's query.Graph / query.BFS / query.ShortestPath structure, but
// inlined rather than built on a general graph library: the spec needs
// nothing beyond undirected shortest path and directed edge lookup.
package graph

import "github.com/lesfleursdelanuitdev/kinship-infer/types"

// Graph is a directed multi-label graph over persons, built once per
// request and discarded on return.
type Graph struct {
	people map[string]*types.Person

	// directed parent_of index, both ways
	childrenOf map[string][]string // parent id -> ordered child ids
	parentsOf  map[string][]string // child id -> ordered parent ids
	isParent   map[[2]string]bool  // [parent,child] -> true

	// spouse_of is symmetric by construction; stored once per node in
	// insertion order.
	spousesOf map[string][]string
	isSpouse  map[[2]string]bool

	// undirected adjacency for BFS, in edge-insertion order.
	adjacency map[string][]string
}

// Build materializes a Graph from node and edge lists. Edges naming
// unknown ids are tolerated (they become dangling); edge labels other
// than parent_of/spouse_of are ignored.
func Build(nodes []types.Person, edges []types.Edge) *Graph {
	g := &Graph{
		people:     make(map[string]*types.Person, len(nodes)),
		childrenOf: make(map[string][]string),
		parentsOf:  make(map[string][]string),
		isParent:   make(map[[2]string]bool),
		spousesOf:  make(map[string][]string),
		isSpouse:   make(map[[2]string]bool),
		adjacency:  make(map[string][]string),
	}

	for i := range nodes {
		n := nodes[i]
		if n.Gender == "" {
			n.Gender = types.GenderMale
		}
		g.people[n.ID] = &n
	}

	for _, e := range edges {
		switch e.Label {
		case types.EdgeParentOf:
			g.addDirected(e.Source, e.Target)
			g.addUndirected(e.Source, e.Target)
		case types.EdgeSpouseOf:
			g.addSpouse(e.Source, e.Target)
			g.addSpouse(e.Target, e.Source)
			g.addUndirected(e.Source, e.Target)
		default:
			// unrecognized label, ignored per builder contract
		}
	}

	return g
}

func (g *Graph) addDirected(parent, child string) {
	key := [2]string{parent, child}
	if g.isParent[key] {
		return
	}
	g.isParent[key] = true
	g.childrenOf[parent] = append(g.childrenOf[parent], child)
	g.parentsOf[child] = append(g.parentsOf[child], parent)
}

func (g *Graph) addSpouse(from, to string) {
	key := [2]string{from, to}
	if g.isSpouse[key] {
		return
	}
	g.isSpouse[key] = true
	g.spousesOf[from] = append(g.spousesOf[from], to)
}

func (g *Graph) addUndirected(a, b string) {
	g.adjacency[a] = append(g.adjacency[a], b)
	g.adjacency[b] = append(g.adjacency[b], a)
}

// Person returns the node for id, or nil if unknown (a dangling id).
func (g *Graph) Person(id string) *types.Person {
	return g.people[id]
}

// Gender returns id's gender, defaulting to Male for unknown or
// ungendered nodes.
func (g *Graph) Gender(id string) types.Gender {
	if p, ok := g.people[id]; ok && p.Gender != "" {
		return p.Gender
	}
	return types.GenderMale
}

// Position returns id's layout position, or nil if unknown.
func (g *Graph) Position(id string) *types.Position {
	if p, ok := g.people[id]; ok {
		return p.Position
	}
	return nil
}

// IsParentOf reports whether parent is a direct parent_of child.
func (g *Graph) IsParentOf(parent, child string) bool {
	return g.isParent[[2]string{parent, child}]
}

// IsSpouseOf reports whether a and b are spouses (symmetric).
func (g *Graph) IsSpouseOf(a, b string) bool {
	return g.isSpouse[[2]string{a, b}]
}

// ParentsOf returns id's parents in insertion order.
func (g *Graph) ParentsOf(id string) []string {
	return g.parentsOf[id]
}

// ChildrenOf returns id's children in insertion order.
func (g *Graph) ChildrenOf(id string) []string {
	return g.childrenOf[id]
}

// SpousesOf returns id's spouses in insertion order.
func (g *Graph) SpousesOf(id string) []string {
	return g.spousesOf[id]
}
