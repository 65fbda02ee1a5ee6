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

// Search is the top-level recursive DFS driver from spec.md §4.F: simplify,
// then match and recurse on the first residual constraint, recording every
// branch that simplifies to the empty problem into ctx.Solutions.
//
// ctx.Solutions is shared across every recursive call by virtue of Context
// being cloned by value in extend -- see context.go.
func Search(ctx *Context, p term.Problem) {
	if ctx.Options.depthExceeded(ctx.Depth) || ctx.Options.deadlineExceeded() {
		ctx.Log.Trace("search: budget exceeded, abandoning branch", "depth", ctx.Depth)
		return
	}

	residual, ok := Simplify(ctx, p)
	if !ok {
		return
	}
	if len(residual) == 0 {
		ctx.Solutions.Record(ctx.Substitutions)
		return
	}

	c := residual[0]
	for _, sigma := range Match(ctx, c) {
		next := ctx.extend(sigma)
		nextProblem := subst.Problem(residual, sigma)
		Search(next, nextProblem)
	}
}
