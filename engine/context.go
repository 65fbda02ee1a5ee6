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

// Package engine implements the simplifier, matcher, search driver, and
// solution minimiser: the part of the system that turns a (Context,
// Problem) pair into a SolutionSet.
package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/kevinawalsh/hou/fresh"
	"github.com/kevinawalsh/hou/internal/telemetry"
	"github.com/kevinawalsh/hou/subst"
	"github.com/kevinawalsh/hou/term"
)

// Solution is a composed substitution discovered along one successful
// search branch, in the order substitutions were accumulated.
type Solution []subst.Substitution

// Clone returns an independent copy of s.
func (s Solution) Clone() Solution {
	out := make(Solution, len(s))
	copy(out, s)
	return out
}

// SolutionSet is the shared, append-only sink every branch of a search
// writes completed Solutions into. Every Context cloned along a search
// branch holds a pointer to the same SolutionSet; because the driver is
// single-threaded and recursive (spec.md §5), appends never race and no
// locking is required -- the interior mutability is just a pointer shared
// across clones of otherwise-immutable Context values.
type SolutionSet struct {
	Solutions []Solution
}

// NewSolutionSet returns an empty, ready-to-share sink.
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{}
}

// Record appends a defensive copy of sol to the sink, preserving DFS
// pre-order (spec.md §5's ordering guarantee falls out of the driver never
// recording out of its own call order).
func (s *SolutionSet) Record(sol Solution) {
	s.Solutions = append(s.Solutions, sol.Clone())
}

// Len reports the number of recorded solutions.
func (s *SolutionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Solutions)
}

// SearchOptions holds the optional depth/time budget spec.md §4.F and §5
// explicitly permit an implementation to add on top of the reference
// semantics. Zero values mean "no budget".
type SearchOptions struct {
	MaxDepth int
	Deadline time.Time
}

func (o SearchOptions) depthExceeded(depth int) bool {
	return o.MaxDepth > 0 && depth > o.MaxDepth
}

func (o SearchOptions) deadlineExceeded() bool {
	return !o.Deadline.IsZero() && time.Now().After(o.Deadline)
}

// Context is the ambient environment of one search node, per spec.md §3.
type Context struct {
	// TypingContext maps constant names to their simple types.
	TypingContext term.TypingContext
	// Substitutions is the accumulated Solution-in-progress for this branch.
	Substitutions Solution
	// Solutions is the shared, mutable sink every leaf success pushes into.
	Solutions *SolutionSet
	// NameMap maps an original metavariable name to the ordered list of
	// binder names the user expects its solution to be presented under.
	// Populated before Search is invoked; only consulted during
	// minimisation (see Reabstract and Minimize).
	NameMap map[string][]string

	// Fresh, if non-nil, is used instead of the package-level fresh
	// generator -- the per-Context alternative spec.md §5 and §9 flag as
	// preferable for test isolation.
	Fresh *fresh.Generator

	Options SearchOptions
	Depth   int

	// RunID correlates every log line produced while exploring the search
	// tree rooted at one top-level Search call (ambient: not part of
	// Solution identity).
	RunID string
	Log   telemetry.Logger
}

// NewContext builds a root Context ready to pass to Search. TypingContext
// and NameMap should be fully populated by the caller first, per spec.md §6.
func NewContext(typingContext term.TypingContext, nameMap map[string][]string) *Context {
	return &Context{
		TypingContext: typingContext,
		NameMap:       nameMap,
		Solutions:     NewSolutionSet(),
		RunID:         uuid.NewString(),
		Log:           telemetry.OrDiscard(telemetry.Logger{}),
	}
}

// nextName returns a fresh metavariable name, from the per-Context
// generator if one was installed, else from the package-wide one.
func (c *Context) nextName() string {
	if c.Fresh != nil {
		return c.Fresh.Next()
	}
	return fresh.Next()
}

// extend returns a new Context for one more step down a search branch: the
// accumulated substitutions grow by sigma, depth increases by one, and
// every other field -- crucially Solutions, the shared sink -- is copied by
// value (for Solutions, that copies the pointer, so the sink stays shared).
func (c *Context) extend(sigma subst.Substitution) *Context {
	next := *c
	next.Substitutions = append(c.Substitutions.Clone(), sigma)
	next.Depth = c.Depth + 1
	return &next
}
