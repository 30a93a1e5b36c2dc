package rank

import (
	"testing"

	"github.com/lesfleursdelanuitdev/kinship-infer/chain"
	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

type fakeGraph struct {
	parents   map[string][]string
	children  map[string][]string
	spouses   map[string][]string
	genders   map[string]types.Gender
	positions map[string]*types.Position
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		parents:   map[string][]string{},
		children:  map[string][]string{},
		spouses:   map[string][]string{},
		genders:   map[string]types.Gender{},
		positions: map[string]*types.Position{},
	}
}

func (f *fakeGraph) Gender(id string) types.Gender {
	if g, ok := f.genders[id]; ok {
		return g
	}
	return types.GenderMale
}
func (f *fakeGraph) Position(id string) *types.Position { return f.positions[id] }
func (f *fakeGraph) ParentsOf(id string) []string       { return f.parents[id] }
func (f *fakeGraph) ChildrenOf(id string) []string      { return f.children[id] }
func (f *fakeGraph) SpousesOf(id string) []string        { return f.spouses[id] }

func TestCompute_DirectRank(t *testing.T) {
	g := newFakeGraph()
	g.parents["uncle1"] = []string{"gm"}
	g.parents["uncle2"] = []string{"gm"}
	g.children["gm"] = []string{"uncle1", "uncle2"}
	g.positions["uncle1"] = &types.Position{X: 0}
	g.positions["uncle2"] = &types.Position{X: 100}

	r := Compute(g, "uncle2")
	if r.Position != 2 || r.Total != 2 {
		t.Errorf("rank = %+v, want {2 2}", r)
	}
}

func TestCompute_CohortTooSmall(t *testing.T) {
	g := newFakeGraph()
	g.parents["only"] = []string{"p"}
	g.children["p"] = []string{"only"}

	r := Compute(g, "only")
	if r.Defined() {
		t.Errorf("expected undefined rank, got %+v", r)
	}
}

func TestCompute_SpouseFallback(t *testing.T) {
	g := newFakeGraph()
	g.parents["spouse1"] = []string{"p"}
	g.parents["spouse2"] = []string{"p"}
	g.children["p"] = []string{"spouse1", "spouse2"}
	g.genders["spouse1"] = types.GenderFemale
	g.genders["spouse2"] = types.GenderFemale
	g.positions["spouse1"] = &types.Position{X: 5}
	g.positions["spouse2"] = &types.Position{X: 50}
	g.spouses["target"] = []string{"spouse2"}

	r := Compute(g, "target")
	if r.Position != 2 || r.Total != 2 {
		t.Errorf("rank = %+v, want {2 2} via spouse fallback", r)
	}
}

func TestCompute_NoParentsNoSpouse(t *testing.T) {
	g := newFakeGraph()
	r := Compute(g, "lonely")
	if r.Defined() {
		t.Errorf("expected undefined, got %+v", r)
	}
}

func TestApplyTitle_Undefined(t *testing.T) {
	if got := ApplyTitle("哥哥", Rank{}); got != "哥哥" {
		t.Errorf("ApplyTitle = %q", got)
	}
}

func TestApplyTitle_SimplePrefix(t *testing.T) {
	if got := ApplyTitle("哥哥", Rank{Position: 2, Total: 2}); got != "二哥" {
		t.Errorf("ApplyTitle = %q, want 二哥", got)
	}
}

func TestApplyTitle_QualifiedCousin(t *testing.T) {
	if got := ApplyTitle("堂哥", Rank{Position: 2, Total: 3}); got != "堂二哥" {
		t.Errorf("ApplyTitle = %q, want 堂二哥", got)
	}
}

func TestApplyTitle_Grandparent(t *testing.T) {
	if got := ApplyTitle("爷爷", Rank{Position: 1, Total: 2}); got != "大爷爷" {
		t.Errorf("ApplyTitle = %q, want 大爷爷", got)
	}
}

func TestApplyTitle_UnknownTitleUnchanged(t *testing.T) {
	if got := ApplyTitle("远房亲戚", Rank{Position: 1, Total: 3}); got != "远房亲戚" {
		t.Errorf("ApplyTitle = %q", got)
	}
}

func TestApplyTitle_AboveTenUsesNumeral(t *testing.T) {
	if got := ApplyTitle("哥哥", Rank{Position: 11, Total: 11}); got != "11哥" {
		t.Errorf("ApplyTitle = %q, want 11哥", got)
	}
}

func TestSkipsDecoration(t *testing.T) {
	lineal := []chain.Step{{Action: chain.ActionParent, Gender: "M"}, {Action: chain.ActionParent, Gender: "M"}}
	if !SkipsDecoration(lineal) {
		t.Error("expected pure-parent signature to skip decoration")
	}
	mixed := []chain.Step{{Action: chain.ActionParent, Gender: "M"}, {Action: chain.ActionChild, Gender: "M"}}
	if SkipsDecoration(mixed) {
		t.Error("expected mixed signature not to skip decoration")
	}
}
