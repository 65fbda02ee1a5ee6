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

import "github.com/kevinawalsh/hou/term"

// walkArgPositions visits every Var leaf in t that occurs in argument
// position -- i.e. everywhere except the callee/head of an application
// spine -- per spec.md §4.H's counting conventions: "Under App(Var(_), arg)
// the head Var is not counted... only the argument contributes." bound
// tracks names currently bound by an enclosing Abs within this same walk.
func walkArgPositions(t term.Term, bound map[string]bool, visit func(name string, isBound bool)) {
	switch t := t.(type) {
	case *term.Meta:
		return
	case *term.Var:
		visit(t.Name, bound[t.Name])
	case *term.Abs:
		nb := make(map[string]bool, len(bound)+1)
		for k := range bound {
			nb[k] = true
		}
		nb[t.Name] = true
		walkArgPositions(t.Body, nb, visit)
	case *term.App:
		if _, isVar := t.Fun.(*term.Var); !isVar {
			walkArgPositions(t.Fun, bound, visit)
		}
		walkArgPositions(t.Arg, bound, visit)
	}
}

// walkAllLeaves visits every Var leaf in t, including heads -- the
// simplicity metric counts every Var leaf, operator positions included.
func walkAllLeaves(t term.Term, visit func(name string)) {
	switch t := t.(type) {
	case *term.Meta:
		return
	case *term.Var:
		visit(t.Name)
	case *term.Abs:
		walkAllLeaves(t.Body, visit)
	case *term.App:
		walkAllLeaves(t.Fun, visit)
		walkAllLeaves(t.Arg, visit)
	}
}

// freeConstantCount returns the number of Var occurrences in argument
// position that are not bound by any Abs within t itself -- the generality
// metric's "free constants" count for one replacement term.
func freeConstantCount(t term.Term) int {
	count := 0
	walkArgPositions(t, map[string]bool{}, func(_ string, isBound bool) {
		if !isBound {
			count++
		}
	})
	return count
}

// boundPositionsUsed returns the distinct binder indices, among binders,
// that occur in argument position somewhere in body -- the exhaustiveness
// metric's "distinct bound parameters actually used" count for one
// replacement.
func boundPositionsUsed(binders term.Binders, body term.Term) map[int]bool {
	index := make(map[string]int, len(binders))
	for i, b := range binders {
		index[b.Name] = i
	}
	used := map[int]bool{}
	walkArgPositions(body, map[string]bool{}, func(name string, isBound bool) {
		if isBound {
			return
		}
		if i, ok := index[name]; ok {
			used[i] = true
		}
	})
	return used
}

// boundPositionSequence returns the ordered sequence of binder indices, as
// they appear left-to-right in argument position in body -- the ordering
// metric's input sequence for one replacement.
func boundPositionSequence(binders term.Binders, body term.Term) []int {
	index := make(map[string]int, len(binders))
	for i, b := range binders {
		index[b.Name] = i
	}
	var seq []int
	walkArgPositions(body, map[string]bool{}, func(name string, isBound bool) {
		if isBound {
			return
		}
		if i, ok := index[name]; ok {
			seq = append(seq, i)
		}
	})
	return seq
}

// simplicityCount returns the total number of Var leaves (bound and free,
// head and argument positions alike) in t.
func simplicityCount(t term.Term) int {
	count := 0
	walkAllLeaves(t, func(string) { count++ })
	return count
}

// splitReplacement peels the top-level binder prefix a minimised
// replacement term is expected to carry (see engine.Reabstract) from its
// body, for metrics that need to know which names are "the parameters" as
// opposed to free constants from elsewhere.
func splitReplacement(t term.Term) (term.Binders, term.Term) {
	binders, head, args := term.Split(t)
	return binders, term.Combine(nil, head, args)
}
