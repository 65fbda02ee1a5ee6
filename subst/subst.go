// Copyright (c) 2014, Kevin Walsh.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package subst implements capture-avoiding substitution of metavariables
// and beta-reduction to normal form, on top of the term package's data
// model.
package subst

import (
	"github.com/kevinawalsh/hou/fresh"
	"github.com/kevinawalsh/hou/term"
)

// Substitution maps a metavariable name to its replacement term.
type Substitution struct {
	Name string
	With term.Term
}

func (s Substitution) String() string {
	return s.Name + " ↦ " + s.With.String()
}

// Term applies s to t: every occurrence of Meta(s.Name) is replaced by
// s.With, renaming bound variables in t as needed to avoid capturing free
// variables of s.With, and the result is beta-renormalized.
func Term(t term.Term, s Substitution) term.Term {
	return BetaReduce(substMeta(t, s))
}

// Sequence applies a chain of substitutions to t, in order. This is the
// composition operation used throughout the engine: applying {m0 ↦ s0} then
// {m1 ↦ s1} is Sequence(t, []Substitution{{m0,s0},{m1,s1}}).
func Sequence(t term.Term, subs []Substitution) term.Term {
	for _, s := range subs {
		t = Term(t, s)
	}
	return t
}

// Problem applies s pointwise to every side of every constraint in p.
func Problem(p term.Problem, s Substitution) term.Problem {
	out := make(term.Problem, len(p))
	for i, c := range p {
		out[i] = term.Constraint{Left: Term(c.Left, s), Right: Term(c.Right, s)}
	}
	return out
}

func substMeta(t term.Term, s Substitution) term.Term {
	switch t := t.(type) {
	case *term.Meta:
		if t.Name == s.Name {
			return s.With
		}
		return t
	case *term.Var:
		return t
	case *term.App:
		return &term.App{Fun: substMeta(t.Fun, s), Arg: substMeta(t.Arg, s)}
	case *term.Abs:
		if freeVars(s.With)[t.Name] {
			renamed := fresh.Next()
			body := renameVar(t.Body, t.Name, renamed)
			return &term.Abs{Name: renamed, Type: t.Type, Body: substMeta(body, s)}
		}
		return &term.Abs{Name: t.Name, Type: t.Type, Body: substMeta(t.Body, s)}
	}
	panic("subst: unreachable term kind")
}

// BetaReduce reduces t to beta normal form. The simply-typed fragment this
// engine operates over is strongly normalizing, so reducing each subterm
// before its enclosing redex reaches the same normal form that a strict
// leftmost-outermost strategy would.
func BetaReduce(t term.Term) term.Term {
	switch t := t.(type) {
	case *term.Meta:
		return t
	case *term.Var:
		return t
	case *term.Abs:
		return &term.Abs{Name: t.Name, Type: t.Type, Body: BetaReduce(t.Body)}
	case *term.App:
		fun := BetaReduce(t.Fun)
		arg := BetaReduce(t.Arg)
		if abs, ok := fun.(*term.Abs); ok {
			return BetaReduce(substVar(abs.Body, abs.Name, arg))
		}
		return &term.App{Fun: fun, Arg: arg}
	}
	panic("subst: unreachable term kind")
}

// substVar replaces free occurrences of Var(name) in t with replacement,
// capture-avoiding.
func substVar(t term.Term, name string, replacement term.Term) term.Term {
	switch t := t.(type) {
	case *term.Meta:
		return t
	case *term.Var:
		if t.Name == name {
			return replacement
		}
		return t
	case *term.App:
		return &term.App{Fun: substVar(t.Fun, name, replacement), Arg: substVar(t.Arg, name, replacement)}
	case *term.Abs:
		if t.Name == name {
			return t // shadowed: name no longer free beyond this point
		}
		if freeVars(replacement)[t.Name] {
			renamed := fresh.Next()
			body := renameVar(t.Body, t.Name, renamed)
			return &term.Abs{Name: renamed, Type: t.Type, Body: substVar(body, name, replacement)}
		}
		return &term.Abs{Name: t.Name, Type: t.Type, Body: substVar(t.Body, name, replacement)}
	}
	panic("subst: unreachable term kind")
}

// Rename replaces every free occurrence of Var(old) in t with Var(new). It
// is exported for the simplifier's decomposition step, which must restate
// an argument taken from one rigid-rigid side's binder scope in terms of
// the other side's binder names before pairing them into a new constraint.
func Rename(t term.Term, old, new string) term.Term {
	return renameVar(t, old, new)
}

// renameVar replaces every free occurrence of Var(old) in t with Var(new).
// It stops descending under any inner Abs that shadows old.
func renameVar(t term.Term, old, new string) term.Term {
	switch t := t.(type) {
	case *term.Meta:
		return t
	case *term.Var:
		if t.Name == old {
			return &term.Var{Name: new}
		}
		return t
	case *term.App:
		return &term.App{Fun: renameVar(t.Fun, old, new), Arg: renameVar(t.Arg, old, new)}
	case *term.Abs:
		if t.Name == old {
			return t
		}
		return &term.Abs{Name: t.Name, Type: t.Type, Body: renameVar(t.Body, old, new)}
	}
	panic("subst: unreachable term kind")
}

// freeVars returns the set of Var names occurring free in t.
func freeVars(t term.Term) map[string]bool {
	out := map[string]bool{}
	var walk func(t term.Term, bound map[string]bool)
	walk = func(t term.Term, bound map[string]bool) {
		switch t := t.(type) {
		case *term.Meta:
		case *term.Var:
			if !bound[t.Name] {
				out[t.Name] = true
			}
		case *term.App:
			walk(t.Fun, bound)
			walk(t.Arg, bound)
		case *term.Abs:
			nb := make(map[string]bool, len(bound)+1)
			for k := range bound {
				nb[k] = true
			}
			nb[t.Name] = true
			walk(t.Body, nb)
		}
	}
	walk(t, map[string]bool{})
	return out
}
