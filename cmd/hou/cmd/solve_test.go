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
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

// TestLoadInputsAggregatesMissingFileErrors covers the read phase: both the
// problem and the typing-context file are missing, so loadInputs must report
// both failures in one aggregated error instead of stopping at the first.
func TestLoadInputsAggregatesMissingFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, _, err := loadInputs(
		filepath.Join(dir, "missing-problem.hou"),
		filepath.Join(dir, "missing-typing.hou"),
		"",
	)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	require.ErrorContains(t, err, "reading problem file")
	require.ErrorContains(t, err, "reading typing-context file")
}

// TestLoadInputsAggregatesParseErrors covers the parse phase: both files are
// present and readable but malformed, so the two syntax errors must both
// surface from a single loadInputs call.
func TestLoadInputsAggregatesParseErrors(t *testing.T) {
	dir := t.TempDir()
	problemPath := filepath.Join(dir, "problem.hou")
	typingPath := filepath.Join(dir, "typing.hou")

	require.NoError(t, os.WriteFile(problemPath, []byte("M u32 =? =?"), 0o644))
	require.NoError(t, os.WriteFile(typingPath, []byte("u32 ::: *"), 0o644))

	_, _, _, err := loadInputs(problemPath, typingPath, "")
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)
	require.ErrorContains(t, err, "parsing problem")
	require.ErrorContains(t, err, "parsing typing context")
}
