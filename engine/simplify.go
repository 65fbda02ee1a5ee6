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

// Simplify repeatedly decomposes rigid-rigid constraints in p until only
// flex-rigid and flex-flex constraints remain, or a clash is found. It
// returns (nil, false) on clash -- the branch is dead, per spec.md §4.D --
// and otherwise the residual problem with decomposed children inserted in
// the position of the constraint they replaced, preserving determinism.
func Simplify(ctx *Context, p term.Problem) (term.Problem, bool) {
	residual := p.Clone()
	for {
		idx := -1
		for i, c := range residual {
			if c.Kind() == term.RigidRigid {
				idx = i
				break
			}
		}
		if idx == -1 {
			return residual, true
		}

		children, ok := decompose(ctx, residual[idx])
		if !ok {
			ctx.Log.Trace("simplify: clash", "constraint", residual[idx].String())
			return nil, false
		}

		next := make(term.Problem, 0, len(residual)-1+len(children))
		next = append(next, residual[:idx]...)
		next = append(next, children...)
		next = append(next, residual[idx+1:]...)
		residual = next
	}
}

// decompose splits one rigid-rigid constraint into one child constraint per
// argument position, or reports a clash (head mismatch or arity mismatch).
func decompose(ctx *Context, c term.Constraint) ([]term.Constraint, bool) {
	bindersL, headL, argsL := term.Split(c.Left)
	bindersR, headR, argsR := term.Split(c.Right)

	if !term.EqualHeadInContext(headL, headR, bindersL, bindersR, ctx.TypingContext) {
		return nil, false
	}
	if len(argsL) != len(argsR) {
		return nil, false
	}
	if len(bindersL) != len(bindersR) {
		panic("engine: decompose: rigid-rigid sides disagree on binder arity (not eta-long / ill-typed input)")
	}

	children := make([]term.Constraint, len(argsL))
	for i := range argsL {
		left := term.Combine(bindersL, argsL[i], nil)
		right := term.Combine(bindersL, rebind(argsR[i], bindersR, bindersL), nil)
		children[i] = term.Constraint{Left: left, Right: right}
	}
	return children, true
}

// rebind restates t, understood as living under the from binder scope, in
// terms of the to binder scope's names (matched up by position). This is
// needed because the two sides of a rigid-rigid constraint may use
// differently-named (but positionally corresponding) binders.
func rebind(t term.Term, from, to term.Binders) term.Term {
	for i := range from {
		if from[i].Name == to[i].Name {
			continue
		}
		t = subst.Rename(t, from[i].Name, to[i].Name)
	}
	return t
}
