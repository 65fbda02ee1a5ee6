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

// Package priority implements the five-filter preference cascade over a
// SolutionSet, and the inversion-count utility the ordering filter depends
// on.
package priority

// Inversions returns the number of index pairs (i, j) with i < j and
// seq[i] > seq[j] -- equivalently, the minimum number of adjacent
// transpositions needed to sort seq into ascending order. Runs in O(n^2),
// which is plenty for the binder-count sequences the ordering filter feeds
// it.
func Inversions(seq []int) int {
	count := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				count++
			}
		}
	}
	return count
}
