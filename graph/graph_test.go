package graph

import (
	"reflect"
	"testing"

	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

func threeGenNodes() []types.Person {
	return []types.Person{
		{ID: "gf", Gender: types.GenderMale},
		{ID: "dad", Gender: types.GenderMale},
		{ID: "me", Gender: types.GenderMale},
	}
}

func TestBuild_ParentChildEdges(t *testing.T) {
	nodes := threeGenNodes()
	edges := []types.Edge{
		{Source: "gf", Target: "dad", Label: types.EdgeParentOf},
		{Source: "dad", Target: "me", Label: types.EdgeParentOf},
	}
	g := Build(nodes, edges)

	if !g.IsParentOf("gf", "dad") {
		t.Error("expected gf to be parent of dad")
	}
	if !g.IsParentOf("dad", "me") {
		t.Error("expected dad to be parent of me")
	}
	if g.IsParentOf("dad", "gf") {
		t.Error("parent_of must not be symmetric")
	}
	if got := g.ParentsOf("me"); !reflect.DeepEqual(got, []string{"dad"}) {
		t.Errorf("ParentsOf(me) = %v", got)
	}
}

func TestBuild_SpouseEdgeBothDirections(t *testing.T) {
	nodes := []types.Person{{ID: "a"}, {ID: "b"}}
	edges := []types.Edge{{Source: "a", Target: "b", Label: types.EdgeSpouseOf}}
	g := Build(nodes, edges)

	if !g.IsSpouseOf("a", "b") || !g.IsSpouseOf("b", "a") {
		t.Error("spouse_of must be symmetric")
	}
}

func TestBuild_DanglingEdgeTolerated(t *testing.T) {
	nodes := []types.Person{{ID: "a"}}
	edges := []types.Edge{{Source: "a", Target: "ghost", Label: types.EdgeParentOf}}

	g := Build(nodes, edges)
	if g.Person("ghost") != nil {
		t.Error("ghost should remain unknown to the node dictionary")
	}
	if g.Gender("ghost") != types.GenderMale {
		t.Error("unknown node should default to Male")
	}
}

func TestShortestPath_Direct(t *testing.T) {
	g := Build(threeGenNodes(), []types.Edge{
		{Source: "gf", Target: "dad", Label: types.EdgeParentOf},
		{Source: "dad", Target: "me", Label: types.EdgeParentOf},
	})

	path, ok := g.ShortestPath("me", "gf")
	if !ok {
		t.Fatal("expected a path")
	}
	if !reflect.DeepEqual(path, []string{"me", "dad", "gf"}) {
		t.Errorf("path = %v", path)
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := Build([]types.Person{{ID: "a"}, {ID: "b"}}, nil)
	if _, ok := g.ShortestPath("a", "b"); ok {
		t.Error("expected no path between disconnected nodes")
	}
}

func TestShortestPath_SameNode(t *testing.T) {
	g := Build([]types.Person{{ID: "a"}}, nil)
	path, ok := g.ShortestPath("a", "a")
	if !ok || !reflect.DeepEqual(path, []string{"a"}) {
		t.Errorf("path = %v ok=%v", path, ok)
	}
}
