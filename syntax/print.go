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

package syntax

import (
	"sort"
	"strings"

	"github.com/kevinawalsh/hou/engine"
	"github.com/kevinawalsh/hou/term"
)

// PrintTerm renders t in the grammar of spec.md §6. The term package's own
// String methods already produce this form; PrintTerm exists so callers at
// the syntax boundary don't need to import term directly.
func PrintTerm(t term.Term) string { return t.String() }

// PrintConstraint renders a single constraint as "left =? right".
func PrintConstraint(c term.Constraint) string { return c.String() }

// PrintProblem renders a problem as its constraints joined by " ∧ ".
func PrintProblem(p term.Problem) string { return p.String() }

// PrintSolution renders a Solution as its substitutions joined by ", ",
// sorted by metavariable name so the output is deterministic regardless of
// the order substitutions were accumulated in.
func PrintSolution(sol engine.Solution) string {
	names := make([]string, 0, len(sol))
	byName := make(map[string]string, len(sol))
	for _, sigma := range sol {
		names = append(names, sigma.Name)
		byName[sigma.Name] = sigma.String()
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = byName[n]
	}
	return strings.Join(parts, ", ")
}

// PrintSolutionSet renders every solution in set, one per line.
func PrintSolutionSet(set []engine.Solution) string {
	lines := make([]string, len(set))
	for i, sol := range set {
		lines[i] = PrintSolution(sol)
	}
	return strings.Join(lines, "\n")
}
