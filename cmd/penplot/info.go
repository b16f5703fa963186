/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"penplot/internal/sketch"
	"penplot/internal/units"
	"penplot/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

func newPapersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "papers",
		Short: "List the known paper sizes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tMILLIMETERS\tINCHES")
			for _, name := range units.Names() {
				p := units.MustLookup(name)
				in := units.ConvertPaper[units.Millis, units.Inches](p)
				fmt.Fprintf(tw, "%s\t%gx%g\t%.2fx%.2f\n", name, float64(p.Width), float64(p.Height), float64(in.Width), float64(in.Height))
			}
			_ = tw.Flush()
		},
	}
}

func newSketchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sketches",
		Short: "List the built-in sketches",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, name := range sketch.Names() {
				s, _ := sketch.Lookup(name)
				fmt.Fprintf(tw, "%s\t%s\n", name, s.Describe())
			}
			_ = tw.Flush()
		},
	}
}
