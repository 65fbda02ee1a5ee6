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

package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/kevinawalsh/hou/engine"
	"github.com/kevinawalsh/hou/internal/telemetry"
	"github.com/kevinawalsh/hou/priority"
	"github.com/kevinawalsh/hou/syntax"
	"github.com/kevinawalsh/hou/term"
)

var (
	typingFile    string
	namesFile     string
	maxDepth      int
	timeout       time.Duration
	noMinimize    bool
	noFilter      bool
	dedupe        bool
	showAllSols   bool
	priorityOrder string
)

// priorityFiltersByName maps spec.md §4.H's filter names to the priority
// package's implementations, for --priorities to reorder or subset.
var priorityFiltersByName = map[string]priority.Filter{
	"existence":      priority.FilterExistence,
	"generality":     priority.FilterGenerality,
	"exhaustiveness": priority.FilterExhaustiveness,
	"ordering":       priority.FilterOrdering,
	"simplicity":     priority.FilterSimplicity,
}

var solveCmd = &cobra.Command{
	Use:   "solve <problem-file>",
	Short: "Search for solutions to a unification problem",
	Long: `solve reads a conjunction of "=?" constraints from <problem-file>,
a typing context from --typing, and an optional name map from --names, then
runs the search driver and prints the resulting solution (or solution set,
with --all).

By default the raw solution set is minimised (fresh names folded out, and
re-abstracted under --names) and narrowed by the standard priority cascade
(existence, generality, exhaustiveness, ordering, simplicity) to a single
preferred solution. Use --no-minimize and --no-filter to inspect the
search driver's raw output instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&typingFile, "typing", "", "path to a typing-context file (required)")
	solveCmd.Flags().StringVar(&namesFile, "names", "", "path to a name-map file (optional)")
	solveCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "search depth budget (0 = unbounded)")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "search time budget (0 = unbounded)")
	solveCmd.Flags().BoolVar(&noMinimize, "no-minimize", false, "skip solution minimisation")
	solveCmd.Flags().BoolVar(&noFilter, "no-filter", false, "skip the priority cascade; print every surviving solution")
	solveCmd.Flags().BoolVar(&dedupe, "dedupe", false, "collapse solutions that print identically")
	solveCmd.Flags().BoolVar(&showAllSols, "all", false, "print the full solution set instead of stopping at one preferred solution")
	solveCmd.Flags().StringVar(&priorityOrder, "priorities", "",
		"comma-separated cascade of filters to apply, in order, from "+
			"existence, generality, exhaustiveness, ordering, simplicity "+
			"(default: the full cascade in that order)")
	_ = solveCmd.MarkFlagRequired("typing")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	problemPath := args[0]

	problem, typingContext, nameMap, err := loadInputs(problemPath, typingFile, namesFile)
	if err != nil {
		return err
	}

	ctx := engine.NewContext(typingContext, nameMap)
	ctx.Log = telemetry.Logger{Logger: telemetry.New("solve").With("run_id", ctx.RunID)}
	ctx.Options.MaxDepth = maxDepth
	if timeout > 0 {
		ctx.Options.Deadline = time.Now().Add(timeout)
	}

	engine.Search(ctx, problem)
	solutions := ctx.Solutions.Solutions

	if !noMinimize {
		minimized := make([]engine.Solution, len(solutions))
		for i, sol := range solutions {
			minimized[i] = engine.Minimize(ctx, sol)
		}
		solutions = minimized
	}

	if dedupe {
		solutions = dedupeSolutions(solutions)
	}

	if len(solutions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
		return nil
	}

	if noFilter || showAllSols {
		fmt.Fprintln(cmd.OutOrStdout(), syntax.PrintSolutionSet(solutions))
		return nil
	}

	cascade, err := resolvePriorityCascade(priorityOrder)
	if err != nil {
		return err
	}

	best, remaining, ok := priority.GetSolutionByPriorities(solutions, cascade)
	if !ok {
		fmt.Fprintf(cmd.OutOrStdout(), "ambiguous: %d solutions tied after filtering\n", len(remaining))
		fmt.Fprintln(cmd.OutOrStdout(), syntax.PrintSolutionSet(remaining))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), syntax.PrintSolution(best))
	return nil
}

// resolvePriorityCascade returns priority.DefaultCascade when spec is empty,
// else the comma-separated, order-preserving subset of named filters spec
// requests -- the CLI surface for
// priority.GetSolutionByPriorities (spec.md §4.H's
// get_solution_from_solution_set_by_priorities).
func resolvePriorityCascade(spec string) ([]priority.Filter, error) {
	if spec == "" {
		return priority.DefaultCascade, nil
	}
	names := strings.Split(spec, ",")
	cascade := make([]priority.Filter, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		filter, ok := priorityFiltersByName[name]
		if !ok {
			return nil, fmt.Errorf("unknown --priorities filter %q (want one of existence, generality, exhaustiveness, ordering, simplicity)", name)
		}
		cascade = append(cascade, filter)
	}
	return cascade, nil
}

// loadInputs reads and parses the problem, typing-context, and (optional)
// name-map files, aggregating every parse failure via go-multierror so a
// user fixing a malformed input sees all three problems at once instead of
// one at a time.
func loadInputs(problemPath, typingPath, namesPath string) (term.Problem, term.TypingContext, map[string][]string, error) {
	var errs *multierror.Error

	problemSrc, err := os.ReadFile(problemPath)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("reading problem file: %w", err))
	}
	typingSrc, err := os.ReadFile(typingPath)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("reading typing-context file: %w", err))
	}
	var namesSrc []byte
	if namesPath != "" {
		namesSrc, err = os.ReadFile(namesPath)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("reading name-map file: %w", err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, nil, err
	}

	problem, err := syntax.ParseProblem(string(problemSrc))
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("parsing problem: %w", err))
	}
	typingContext, err := syntax.ParseTypingContext(string(typingSrc))
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("parsing typing context: %w", err))
	}
	nameMap := map[string][]string{}
	if namesPath != "" {
		nameMap, err = syntax.ParseNameMap(string(namesSrc))
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("parsing name map: %w", err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, nil, nil, err
	}
	return problem, typingContext, nameMap, nil
}

// dedupeSolutions collapses solutions that render identically under
// syntax.PrintSolution, keeping the first occurrence of each. The result is
// ordered by printed form, not by search order, so it is deterministic
// regardless of search order; the dedupe itself is a plain stdlib sort-then-compact, not a
// library call -- see DESIGN.md for why no pack library grounds this step.
func dedupeSolutions(sols []engine.Solution) []engine.Solution {
	type keyed struct {
		key string
		sol engine.Solution
	}
	entries := make([]keyed, len(sols))
	for i, sol := range sols {
		entries[i] = keyed{key: syntax.PrintSolution(sol), sol: sol}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	out := make([]engine.Solution, 0, len(entries))
	var last string
	for i, e := range entries {
		if i == 0 || e.key != last {
			out = append(out, e.sol)
		}
		last = e.key
	}
	return out
}
