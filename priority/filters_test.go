package priority

import (
	"testing"

	"github.com/kevinawalsh/hou/engine"
	"github.com/kevinawalsh/hou/term"
)

func vr(name string) term.Term     { return &term.Var{Name: name} }
func ap(f, a term.Term) term.Term  { return &term.App{Fun: f, Arg: a} }
func ab(n string, ty term.Type, body term.Term) term.Term {
	return &term.Abs{Name: n, Type: ty, Body: body}
}

// TestFilterExistencePrefersMoreBindings exercises the scenario-4 filter
// note: applying existence alone retains solutions that bind both I and L
// over a solution that only bound one.
func TestFilterExistencePrefersMoreBindings(t *testing.T) {
	both := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, ap(vr("option"), vr("j")))},
		{Name: "L", With: ab("m", term.Star{}, ap(vr("option"), vr("m")))},
	}
	onlyI := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, ap(vr("option"), vr("j")))},
	}

	kept := FilterExistence([]engine.Solution{both, onlyI})
	if len(kept) != 1 {
		t.Fatalf("FilterExistence kept %d solutions, want 1", len(kept))
	}
	if len(kept[0]) != 2 {
		t.Fatalf("FilterExistence kept the wrong solution (len %d)", len(kept[0]))
	}
}

// TestFilterSimplicityPrefersFewerVarOccurrences matches the scenario-4
// note: among otherwise-tied solutions, simplicity should prefer the one
// with fewer total variable occurrences.
func TestFilterSimplicityPrefersFewerVarOccurrences(t *testing.T) {
	identity := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, vr("j"))},
	}
	wrapped := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, ap(vr("option"), vr("j")))},
	}

	kept := FilterSimplicity([]engine.Solution{identity, wrapped})
	if len(kept) != 1 {
		t.Fatalf("FilterSimplicity kept %d solutions, want 1", len(kept))
	}
	if kept[0][0].With.String() != identity[0].With.String() {
		t.Fatalf("FilterSimplicity kept %s, want the simpler identity solution", kept[0][0].With)
	}
}

// TestFilterOrderingPrefersDeclaredOrder exercises the fn3 scenario: among
// solutions for S u32 u32 u32 =? fn3 u32 u32 u32, ordering should prefer the
// one using x, y, z in declared order over one that permutes them.
func TestFilterOrderingPrefersDeclaredOrder(t *testing.T) {
	binders := term.Binders{{Name: "x", Type: term.Star{}}, {Name: "y", Type: term.Star{}}, {Name: "z", Type: term.Star{}}}
	declared := engine.Solution{
		{Name: "S", With: term.Combine(binders, term.Combine(nil, vr("fn3"), []term.Term{vr("x"), vr("y"), vr("z")}), nil)},
	}
	permuted := engine.Solution{
		{Name: "S", With: term.Combine(binders, term.Combine(nil, vr("fn3"), []term.Term{vr("z"), vr("x"), vr("y")}), nil)},
	}

	kept := FilterOrdering([]engine.Solution{declared, permuted})
	if len(kept) != 1 {
		t.Fatalf("FilterOrdering kept %d solutions, want 1", len(kept))
	}
	gotBody := kept[0][0].With
	wantBody := declared[0].With
	if gotBody.String() != wantBody.String() {
		t.Fatalf("FilterOrdering kept %s, want the declared-order solution %s", gotBody, wantBody)
	}
}

func TestGetSolutionResolvesUniqueWinner(t *testing.T) {
	both := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, ap(vr("option"), vr("j")))},
		{Name: "L", With: ab("m", term.Star{}, ap(vr("option"), vr("m")))},
	}
	onlyI := engine.Solution{
		{Name: "I", With: ab("j", term.Star{}, ap(vr("option"), vr("j")))},
	}

	sol, _, ok := GetSolution([]engine.Solution{both, onlyI})
	if !ok {
		t.Fatal("expected GetSolution to resolve a unique winner")
	}
	if len(sol) != 2 {
		t.Fatalf("GetSolution returned a solution with %d substitutions, want 2", len(sol))
	}
}

func TestGetSolutionReportsAmbiguity(t *testing.T) {
	a := engine.Solution{{Name: "I", With: ab("j", term.Star{}, vr("j"))}}
	b := engine.Solution{{Name: "I", With: ab("j", term.Star{}, vr("j"))}}

	_, remaining, ok := GetSolution([]engine.Solution{a, b})
	if ok {
		t.Fatal("expected ambiguity between two identically-scored solutions")
	}
	if len(remaining) != 2 {
		t.Fatalf("expected both tied solutions to survive, got %d", len(remaining))
	}
}

func TestFreeConstantCountSkipsApplicationHead(t *testing.T) {
	// option x: "option" is the operator and must not count; "x" is a free
	// constant here since it is not bound by any enclosing Abs in this term.
	expr := ap(vr("option"), vr("x"))
	if got := freeConstantCount(expr); got != 1 {
		t.Fatalf("freeConstantCount(option x) = %d, want 1", got)
	}
}

func TestBoundPositionsUsedCountsDistinctPositions(t *testing.T) {
	binders := term.Binders{{Name: "x", Type: term.Star{}}, {Name: "y", Type: term.Star{}}}
	body := ap(ap(vr("fn2"), vr("x")), vr("x")) // x used twice, y unused
	used := boundPositionsUsed(binders, body)
	if len(used) != 1 || !used[0] {
		t.Fatalf("boundPositionsUsed = %v, want {0}", used)
	}
}
