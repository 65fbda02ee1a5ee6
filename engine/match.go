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

package engine

import (
	"github.com/kevinawalsh/hou/subst"
	"github.com/kevinawalsh/hou/term"
)

// Match generates the candidate substitutions for a single flex-rigid
// constraint, per spec.md §4.E: one imitation candidate, copying the rigid
// head and deferring its arguments to fresh metavariables, followed by one
// projection candidate per binder whose own result type could plausibly
// produce the rigid side's result type. Candidates are returned imitation
// first, then projections in ascending binder index, matching spec.md's
// stated preference order for how a driver should try them.
func Match(ctx *Context, c term.Constraint) []subst.Substitution {
	if c.Kind() != term.FlexRigid {
		panic("engine: Match called on a non-flex-rigid constraint")
	}
	flexTerm, rigidTerm := c.FlexSide()

	outerBinders, metaHead, margs := term.Split(flexTerm)
	meta := metaHead.(*term.Meta)

	scope := make(map[string]term.Type, len(outerBinders))
	for _, b := range outerBinders {
		scope[b.Name] = b.Type
	}

	n := len(margs)
	binders := make(term.Binders, n)
	for i, a := range margs {
		binders[i] = term.Binder{Name: ctx.nextName(), Type: typeOf(a, ctx.TypingContext, scope)}
	}

	rigidBinders, rigidHead, rigidArgs := term.Split(rigidTerm)
	rigidScope := make(map[string]term.Type, len(rigidBinders))
	for _, b := range rigidBinders {
		rigidScope[b.Name] = b.Type
	}
	targetType := typeOf(rigidTerm, ctx.TypingContext, rigidScope)

	var candidates []subst.Substitution

	if imitation, ok := imitate(ctx, binders, rigidHead, rigidArgs); ok {
		candidates = append(candidates, subst.Substitution{Name: meta.Name, With: imitation})
	}

	for _, b := range binders {
		candidates = append(candidates, project(ctx, meta.Name, binders, b, targetType)...)
	}

	return candidates
}

// imitate builds the single imitation candidate for a flex-rigid constraint
// whose rigid side is headed by a declared typing-context constant: the
// solution copies that head and applies it to one fresh metavariable per
// argument position, each fresh meta itself applied to every binder.
func imitate(ctx *Context, binders term.Binders, rigidHead term.Term, rigidArgs []term.Term) (term.Term, bool) {
	rv, ok := rigidHead.(*term.Var)
	if !ok {
		return nil, false
	}
	headType, declared := ctx.TypingContext[rv.Name]
	if !declared {
		return nil, false
	}
	k := headType.Arity()
	if k != len(rigidArgs) {
		return nil, false
	}

	args := make([]term.Term, k)
	for j := 0; j < k; j++ {
		fresh := &term.Meta{Name: ctx.nextName()}
		args[j] = applyAll(fresh, binders)
	}
	body := term.Combine(nil, rv, args)
	return term.Combine(binders, body, nil), true
}

// project builds every projection candidate available at binder index i: for
// each way of applying binders[i] to some prefix of its own argument types
// that lands on targetType, the solution uses binders[i] itself as the new
// head.
func project(ctx *Context, metaName string, binders term.Binders, b term.Binder, targetType term.Type) []subst.Substitution {
	var out []subst.Substitution
	for kp := 0; kp <= b.Type.Arity(); kp++ {
		if !term.TypeEqual(term.ResultType(b.Type, kp), targetType) {
			continue
		}
		args := make([]term.Term, kp)
		for j := 0; j < kp; j++ {
			fresh := &term.Meta{Name: ctx.nextName()}
			args[j] = applyAll(fresh, binders)
		}
		head := &term.Var{Name: b.Name}
		body := term.Combine(nil, head, args)
		out = append(out, subst.Substitution{Name: metaName, With: term.Combine(binders, body, nil)})
	}
	return out
}

// applyAll applies head to every binder in binders, in order: head x1 ... xn.
func applyAll(head term.Term, binders term.Binders) term.Term {
	result := head
	for _, b := range binders {
		result = &term.App{Fun: result, Arg: &term.Var{Name: b.Name}}
	}
	return result
}
