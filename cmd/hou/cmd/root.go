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

// Package cmd implements the hou command-line surface: solving higher-order
// pattern unification problems read from files, and reporting the engine's
// version and build metadata.
package cmd

import (
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/kevinawalsh/hou/internal/telemetry"
)

var (
	logLevel string
	logJSON  bool
)

// rootCmd is the base command; every other command hangs off of it, the
// way bd's cobra tree hangs its subcommands off a single root.
var rootCmd = &cobra.Command{
	Use:   "hou",
	Short: "hou solves higher-order pattern unification problems",
	Long: `hou reads a unification problem, a typing context, and an optional
name map from files, searches for solutions using Huet-style imitation and
projection, and prints the minimised, priority-filtered result.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lvl := hclog.LevelFromString(logLevel)
		if lvl == hclog.NoLevel {
			lvl = hclog.Info
		}
		opts := &hclog.LoggerOptions{
			Name:  "hou",
			Level: lvl,
		}
		if logJSON {
			opts.JSONFormat = true
		}
		telemetry.SetDefault(telemetry.Logger{Logger: hclog.New(opts)})
		return nil
	},
}

func init() {
	// Accept underscore-spelled flags ("--log_level") as aliases of the
	// canonical dashed form, the way cobra-based CLIs commonly normalize
	// flag names for users coming from other tools' conventions.
	rootCmd.PersistentFlags().SetNormalizeFunc(func(fs *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "emit log lines as JSON instead of hclog's default human-readable format")
}

// Execute runs the root command, returning any error for main to report.
func Execute() error {
	return rootCmd.Execute()
}
