package subst

import (
	"testing"

	"github.com/kevinawalsh/hou/term"
)

func TestTermSubstitutionReplacesMeta(t *testing.T) {
	// M u32 with M ↦ λj:*. option j  ==>  option u32
	m := &term.App{Fun: &term.Meta{Name: "M"}, Arg: &term.Var{Name: "u32"}}
	sub := Substitution{Name: "M", With: &term.Abs{Name: "j", Type: term.Star{}, Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "j"}}}}

	got := Term(m, sub)
	want := "option u32"
	if got.String() != want {
		t.Fatalf("got %s want %s", got.String(), want)
	}
}

func TestTermSubstitutionLeavesOtherMetasAlone(t *testing.T) {
	c := &term.App{Fun: &term.Meta{Name: "N"}, Arg: &term.Var{Name: "u32"}}
	sub := Substitution{Name: "M", With: &term.Var{Name: "bool"}}
	got := Term(c, sub)
	if got.String() != c.String() {
		t.Fatalf("unrelated meta should be untouched: got %s", got.String())
	}
}

func TestTermSubstitutionAvoidsCapture(t *testing.T) {
	// λx:*. M, with M ↦ x (a replacement that's free in the *caller's*
	// scope, where x names something else). Substituting naively would
	// capture the replacement's x under the Abs; the engine must rename
	// the bound x instead.
	outerX := &term.Var{Name: "x"}
	body := &term.Abs{Name: "x", Type: term.Star{}, Body: &term.Meta{Name: "M"}}
	sub := Substitution{Name: "M", With: outerX}

	got := Term(body, sub)
	abs, ok := got.(*term.Abs)
	if !ok {
		t.Fatalf("expected Abs, got %T", got)
	}
	if abs.Name == "x" {
		t.Fatal("bound name was not renamed; capture would occur")
	}
	inner, ok := abs.Body.(*term.Var)
	if !ok || inner.Name != "x" {
		t.Fatalf("expected body to still reference free x, got %v", abs.Body)
	}
}

func TestBetaReduceSimplifiesRedex(t *testing.T) {
	// (λx:*. x) u32  ==> u32
	redex := &term.App{
		Fun: &term.Abs{Name: "x", Type: term.Star{}, Body: &term.Var{Name: "x"}},
		Arg: &term.Var{Name: "u32"},
	}
	got := BetaReduce(redex)
	if got.String() != "u32" {
		t.Fatalf("got %s want u32", got.String())
	}
}

func TestProblemSubstitutionAppliesPointwise(t *testing.T) {
	p := term.Problem{
		{Left: &term.Meta{Name: "M"}, Right: &term.Var{Name: "u32"}},
		{Left: &term.App{Fun: &term.Meta{Name: "M"}, Arg: &term.Var{Name: "bool"}}, Right: &term.Var{Name: "bool"}},
	}
	sub := Substitution{Name: "M", With: &term.Abs{Name: "j", Type: term.Star{}, Body: &term.Var{Name: "j"}}}
	got := Problem(p, sub)
	if got[0].Left.String() != "λj:*. j" {
		t.Fatalf("constraint 0 left: got %s", got[0].Left.String())
	}
	if got[1].Left.String() != "bool" {
		t.Fatalf("constraint 1 left: got %s", got[1].Left.String())
	}
}

func TestSequenceComposesSubstitutionsInOrder(t *testing.T) {
	// {M ↦ N u32} then {N ↦ λj:*. option j} applied in sequence must equal
	// applying the fully-composed effect directly.
	tm := &term.Meta{Name: "M"}
	s1 := Substitution{Name: "M", With: &term.App{Fun: &term.Meta{Name: "N"}, Arg: &term.Var{Name: "u32"}}}
	s2 := Substitution{Name: "N", With: &term.Abs{Name: "j", Type: term.Star{}, Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "j"}}}}

	sequenced := Sequence(tm, []Substitution{s1, s2})

	// Manually fold s2 into s1's replacement first, then apply once: this is
	// the "composed in one step" side of the composition property.
	composedWith := Term(s1.With, s2)
	composedOnce := Term(tm, Substitution{Name: "M", With: composedWith})

	if sequenced.String() != composedOnce.String() {
		t.Fatalf("sequence vs single composed substitution mismatch: %s vs %s", sequenced.String(), composedOnce.String())
	}
	if sequenced.String() != "option u32" {
		t.Fatalf("got %s want option u32", sequenced.String())
	}
}
