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
	"os"

	"github.com/spf13/cobra"

	"penplot/internal/config"
	"penplot/internal/crash"
	applog "penplot/internal/log"
	"penplot/internal/version"
)

// app carries state shared by the subcommands.
type app struct {
	configPath string
	cfg        config.AppConfig
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "penplot",
		Short: "Generative drawings for pen plotters",
		Long: `penplot renders generative sketches onto a sheet of paper and exports them
as layered SVG for plotting, with PDF proofs and PNG previews. Finished
drawings can be kept in a local gallery.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			applog.Init(applog.FromConfig(cfg.Logging))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ./"+config.FileName+" or the per-user config)")
	root.AddCommand(
		newRenderCmd(a),
		newPapersCmd(),
		newSketchesCmd(),
		newKeepCmd(a),
		newGalleryCmd(a),
		newVersionCmd(),
	)
	return root
}

func main() {
	applog.Init(applog.FromEnv())
	defer crash.Recover()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
