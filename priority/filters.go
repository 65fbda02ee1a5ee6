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

package priority

import "github.com/kevinawalsh/hou/engine"

// Filter is one step of the cascade: a pure function from a candidate set to
// the subset tied for the best score under one metric.
type Filter func([]engine.Solution) []engine.Solution

// DefaultCascade is the fixed order spec.md §4.H mandates: existence,
// generality, exhaustiveness, ordering, simplicity.
var DefaultCascade = []Filter{
	FilterExistence,
	FilterGenerality,
	FilterExhaustiveness,
	FilterOrdering,
	FilterSimplicity,
}

// FilterExistence keeps solutions with the maximum number of substitutions.
func FilterExistence(sols []engine.Solution) []engine.Solution {
	return keepBest(sols, func(s engine.Solution) int { return len(s) }, true)
}

// FilterGenerality keeps solutions with the minimum total count of free
// constants across all replacement terms.
func FilterGenerality(sols []engine.Solution) []engine.Solution {
	return keepBest(sols, solutionGenerality, false)
}

// FilterExhaustiveness keeps solutions with the maximum total count of
// distinct bound parameters actually used on the right-hand sides.
func FilterExhaustiveness(sols []engine.Solution) []engine.Solution {
	return keepBest(sols, solutionExhaustiveness, true)
}

// FilterOrdering keeps solutions with the minimum total inversion count of
// their bound-parameter use sequences -- i.e. parameters used closest to
// declared order.
func FilterOrdering(sols []engine.Solution) []engine.Solution {
	return keepBest(sols, solutionOrdering, false)
}

// FilterSimplicity keeps solutions with the minimum total count of all Var
// leaves across all replacement terms.
func FilterSimplicity(sols []engine.Solution) []engine.Solution {
	return keepBest(sols, solutionSimplicity, false)
}

func solutionGenerality(s engine.Solution) int {
	total := 0
	for _, sigma := range s {
		total += freeConstantCount(sigma.With)
	}
	return total
}

func solutionExhaustiveness(s engine.Solution) int {
	total := 0
	for _, sigma := range s {
		binders, body := splitReplacement(sigma.With)
		total += len(boundPositionsUsed(binders, body))
	}
	return total
}

func solutionOrdering(s engine.Solution) int {
	total := 0
	for _, sigma := range s {
		binders, body := splitReplacement(sigma.With)
		total += Inversions(boundPositionSequence(binders, body))
	}
	return total
}

func solutionSimplicity(s engine.Solution) int {
	total := 0
	for _, sigma := range s {
		total += simplicityCount(sigma.With)
	}
	return total
}

// keepBest retains every solution tied for the best score, where "best" is
// the maximum score if maximize is true, else the minimum.
func keepBest(sols []engine.Solution, score func(engine.Solution) int, maximize bool) []engine.Solution {
	if len(sols) == 0 {
		return sols
	}
	best := score(sols[0])
	for _, s := range sols[1:] {
		v := score(s)
		if (maximize && v > best) || (!maximize && v < best) {
			best = v
		}
	}
	out := make([]engine.Solution, 0, len(sols))
	for _, s := range sols {
		if score(s) == best {
			out = append(out, s)
		}
	}
	return out
}

// GetSolution applies DefaultCascade, in order, to set. If exactly one
// solution survives, it is returned with ok=true; otherwise the (possibly
// still-ambiguous, possibly empty) surviving set is returned with ok=false.
func GetSolution(set []engine.Solution) (solution engine.Solution, remaining []engine.Solution, ok bool) {
	return GetSolutionByPriorities(set, DefaultCascade)
}

// GetSolutionByPriorities applies an arbitrary ordered cascade of filters.
func GetSolutionByPriorities(set []engine.Solution, cascade []Filter) (solution engine.Solution, remaining []engine.Solution, ok bool) {
	surviving := set
	for _, f := range cascade {
		surviving = f(surviving)
	}
	if len(surviving) == 1 {
		return surviving[0], surviving, true
	}
	return nil, surviving, false
}
