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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/kevinawalsh/hou/subst"
	"github.com/kevinawalsh/hou/term"
)

// rawUnaryImitationSolution builds the raw (pre-minimization) two-entry
// solution that scenario 1's search would record: I bound to an imitation
// of "option" applied to a fresh meta "1", with "1" itself solved by the
// trivial identity projection.
func rawUnaryImitationSolution() Solution {
	return Solution{
		{Name: "I", With: &term.Abs{
			Name: "j", Type: term.Star{},
			Body: &term.App{
				Fun: &term.Var{Name: "option"},
				Arg: &term.App{Fun: &term.Meta{Name: "1"}, Arg: &term.Var{Name: "j"}},
			},
		}},
		{Name: "1", With: &term.Abs{Name: "m", Type: term.Star{}, Body: &term.Var{Name: "m"}}},
	}
}

func TestFoldDropsFreshSubstitutionsAndInlinesThem(t *testing.T) {
	sol := rawUnaryImitationSolution()
	folded := Fold(sol)

	want := Solution{
		{Name: "I", With: &term.Abs{
			Name: "j", Type: term.Star{},
			Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "j"}},
		}},
	}
	require.Empty(t, cmp.Diff(want, folded), "Fold should drop the fresh entry and inline it into I's replacement")
}

func TestFoldOnEmptySolutionIsEmpty(t *testing.T) {
	require.Empty(t, Fold(nil))
}

func TestReabstractRenamesBinderPerNameMap(t *testing.T) {
	ctx := NewContext(term.TypingContext{}, map[string][]string{"I": {"y"}})
	sol := Solution{{Name: "I", With: &term.Abs{
		Name: "j", Type: term.Star{},
		Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "j"}},
	}}}

	reabstracted := Reabstract(ctx, sol)
	want := Solution{{Name: "I", With: &term.Abs{
		Name: "y", Type: term.Star{},
		Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "y"}},
	}}}
	require.Empty(t, cmp.Diff(want, reabstracted))
}

func TestReabstractPassesThroughWithoutNameMapEntry(t *testing.T) {
	ctx := NewContext(term.TypingContext{}, map[string][]string{})
	sigma := subst.Substitution{Name: "I", With: &term.Var{Name: "u32"}}
	sol := Solution{sigma}

	got := Reabstract(ctx, sol)
	require.Equal(t, sol, got, "a substitution absent from name_map must pass through unchanged")
}

func TestMinimizeComposesFoldThenReabstract(t *testing.T) {
	ctx := NewContext(term.TypingContext{}, map[string][]string{"I": {"y"}})
	sol := rawUnaryImitationSolution()

	min := Minimize(ctx, sol)
	want := Solution{{Name: "I", With: &term.Abs{
		Name: "y", Type: term.Star{},
		Body: &term.App{Fun: &term.Var{Name: "option"}, Arg: &term.Var{Name: "y"}},
	}}}
	require.Empty(t, cmp.Diff(want, min))
}
