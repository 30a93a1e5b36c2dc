package chain

import (
	"reflect"
	"testing"

	"github.com/lesfleursdelanuitdev/kinship-infer/types"
)

// fakeGraph is a minimal directedGraph for unit-testing the codec
// without depending on the graph package.
type fakeGraph struct {
	parents   map[[2]string]bool
	spouses   map[[2]string]bool
	genders   map[string]types.Gender
	positions map[string]*types.Position
}

func newFakeGraph() *fakeGraph {
	return &fakeGraph{
		parents:   map[[2]string]bool{},
		spouses:   map[[2]string]bool{},
		genders:   map[string]types.Gender{},
		positions: map[string]*types.Position{},
	}
}

func (f *fakeGraph) IsParentOf(parent, child string) bool { return f.parents[[2]string{parent, child}] }
func (f *fakeGraph) IsSpouseOf(a, b string) bool           { return f.spouses[[2]string{a, b}] }
func (f *fakeGraph) Gender(id string) types.Gender {
	if g, ok := f.genders[id]; ok {
		return g
	}
	return types.GenderMale
}
func (f *fakeGraph) Position(id string) *types.Position { return f.positions[id] }

func TestExtractSignature_Basic(t *testing.T) {
	g := newFakeGraph()
	g.parents[[2]string{"gf", "dad"}] = true
	g.parents[[2]string{"dad", "me"}] = true
	g.genders["gf"] = types.GenderMale
	g.genders["dad"] = types.GenderMale

	sig, ok := ExtractSignature(g, []string{"me", "dad", "gf"})
	if !ok {
		t.Fatal("expected ok")
	}
	want := []Step{{ActionParent, "M"}, {ActionParent, "M"}}
	if !reflect.DeepEqual(sig, want) {
		t.Errorf("signature = %v", sig)
	}
}

func TestExtractSignature_UnlabelledHopErrors(t *testing.T) {
	g := newFakeGraph()
	_, ok := ExtractSignature(g, []string{"a", "b"})
	if ok {
		t.Error("expected unlabelled hop to fail")
	}
}

func TestIsLineal(t *testing.T) {
	cases := []struct {
		sig  []Step
		want bool
	}{
		{[]Step{{ActionParent, "M"}, {ActionParent, "M"}}, true},
		{[]Step{{ActionChild, "M"}, {ActionChild, "F"}}, true},
		{[]Step{{ActionParent, "M"}, {ActionChild, "M"}}, false}, // direct sibling
		{[]Step{{ActionSpouse, "F"}}, false},
		{nil, true},
	}
	for _, c := range cases {
		if got := IsLineal(c.sig); got != c.want {
			t.Errorf("IsLineal(%v) = %v, want %v", c.sig, got, c.want)
		}
	}
}

func TestEncode_DirectSiblingWithLayout(t *testing.T) {
	// P(0,0) -> me(100,200), bro(0,200): scenario 1 from spec.
	g := newFakeGraph()
	g.parents[[2]string{"p", "me"}] = true
	g.parents[[2]string{"p", "bro"}] = true
	g.positions["me"] = &types.Position{X: 100, Y: 200}
	g.positions["bro"] = &types.Position{X: 0, Y: 200}

	path := []string{"me", "p", "bro"}
	sig, ok := ExtractSignature(g, path)
	if !ok {
		t.Fatal("expected ok")
	}
	got := Encode(g, path, sig)
	if got != "ob" {
		t.Errorf("chain = %q, want ob", got)
	}
}

func TestEncode_UnknownOrderSibling(t *testing.T) {
	g := newFakeGraph()
	g.parents[[2]string{"p", "me"}] = true
	g.parents[[2]string{"p", "bro"}] = true
	g.genders["bro"] = types.GenderFemale

	path := []string{"me", "p", "bro"}
	sig, _ := ExtractSignature(g, path)
	got := Encode(g, path, sig)
	if got != "xs" {
		t.Errorf("chain = %q, want xs", got)
	}
}

func TestEncode_PaternalGrandfather(t *testing.T) {
	g := newFakeGraph()
	g.parents[[2]string{"gf", "dad"}] = true
	g.parents[[2]string{"dad", "me"}] = true

	path := []string{"me", "dad", "gf"}
	sig, _ := ExtractSignature(g, path)
	got := Encode(g, path, sig)
	if got != "f,f" {
		t.Errorf("chain = %q, want f,f", got)
	}
}

func TestEncode_SameRowChildSuffix(t *testing.T) {
	g := newFakeGraph()
	g.parents[[2]string{"me", "child"}] = true
	g.positions["me"] = &types.Position{X: 100, Y: 200}
	g.positions["child"] = &types.Position{X: 0, Y: 210}

	path := []string{"me", "child"}
	sig, _ := ExtractSignature(g, path)
	got := Encode(g, path, sig)
	if got != "s&o" {
		t.Errorf("chain = %q, want s&o", got)
	}
}

func TestGenerateVariants_CanonicalFirst(t *testing.T) {
	variants := GenerateVariants("ob")
	if variants[0] != "ob" {
		t.Fatalf("canonical chain must be first, got %v", variants)
	}
	want := []string{"ob", "xb", "s&o", "s"}
	if !reflect.DeepEqual(variants, want) {
		t.Errorf("variants = %v, want %v", variants, want)
	}
}

func TestGenerateVariants_NoSiblingAtom(t *testing.T) {
	variants := GenerateVariants("f,f")
	if !reflect.DeepEqual(variants, []string{"f,f"}) {
		t.Errorf("variants = %v", variants)
	}
}

func TestGenerateVariants_MultipleSiblingPositions(t *testing.T) {
	variants := GenerateVariants("m,xb,s")
	if variants[0] != "m,xb,s" {
		t.Fatalf("canonical must be first, got %v", variants)
	}
	for _, v := range variants {
		if v == "m,ob,s" {
			return
		}
	}
	t.Errorf("expected m,ob,s among variants, got %v", variants)
}
