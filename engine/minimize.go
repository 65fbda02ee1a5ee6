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
	"github.com/kevinawalsh/hou/fresh"
	"github.com/kevinawalsh/hou/subst"
	"github.com/kevinawalsh/hou/term"
)

// Fold implements spec.md §4.G steps 1-2: it drops every substitution for a
// fresh (numeric-named) metavariable, and for each surviving original
// substitution, folds the whole raw solution -- fresh entries included --
// into its replacement term, so every fresh metavariable the solution binds
// is replaced by its own solution. Binder names are left as they are, so
// numeric binder names introduced by the matcher can remain in the result.
func Fold(sol Solution) Solution {
	out := make(Solution, 0, len(sol))
	for _, sigma := range sol {
		if fresh.IsFresh(sigma.Name) {
			continue
		}
		out = append(out, subst.Substitution{
			Name: sigma.Name,
			With: subst.Sequence(sigma.With, sol),
		})
	}
	return out
}

// Reabstract implements spec.md §4.G step 3 in isolation: for every
// substitution in a fresh-free solution whose name has a name_map entry
// [y1, ..., yk], re-expresses its replacement as
// λy1:*. ... λyk:*. (with · y1 · ... · yk), beta-normalised. Substitutions
// with no name_map entry pass through unchanged.
func Reabstract(ctx *Context, sol Solution) Solution {
	out := make(Solution, len(sol))
	for i, sigma := range sol {
		names, ok := ctx.NameMap[sigma.Name]
		if !ok {
			out[i] = sigma
			continue
		}
		binders := make(term.Binders, len(names))
		for j, name := range names {
			binders[j] = term.Binder{Name: name, Type: term.Star{}}
		}
		body := sigma.With
		for _, b := range binders {
			body = &term.App{Fun: body, Arg: &term.Var{Name: b.Name}}
		}
		out[i] = subst.Substitution{
			Name: sigma.Name,
			With: subst.BetaReduce(term.Combine(binders, body, nil)),
		}
	}
	return out
}

// Minimize runs the full spec.md §4.G procedure: Fold followed by
// Reabstract.
func Minimize(ctx *Context, sol Solution) Solution {
	return Reabstract(ctx, Fold(sol))
}
