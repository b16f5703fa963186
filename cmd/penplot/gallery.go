/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"penplot/internal/config"
	"penplot/internal/gallery"
)

func newKeepCmd(a *app) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "keep <file.svg>",
		Short: "Keep an exported SVG document in the gallery",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}
			g, err := openGallery(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			defer g.Close()
			e, err := g.Keep(cmd.Context(), gallery.KeepRequest{Name: name, SVG: data})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "kept %s as %s\n", e.ID, e.Path)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "entry name (default: file name)")
	return cmd
}

func newGalleryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Inspect and manage kept drawings",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List kept drawings, newest first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := openGallery(cmd.Context(), a.cfg)
				if err != nil {
					return err
				}
				defer g.Close()
				entries, err := g.List(cmd.Context())
				if err != nil {
					return err
				}
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ID\tNAME\tSKETCH\tSEED\tKEPT")
				for _, e := range entries {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n", e.ID, e.Name, e.Sketch, e.Seed, e.CreatedAt.Local().Format(time.DateTime))
				}
				return tw.Flush()
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Remove a kept drawing",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := openGallery(cmd.Context(), a.cfg)
				if err != nil {
					return err
				}
				defer g.Close()
				return g.Delete(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "export <file.zip>",
			Short: "Write all kept drawings into a zip archive",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := openGallery(cmd.Context(), a.cfg)
				if err != nil {
					return err
				}
				defer g.Close()
				n, err := g.ExportArchive(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported %d drawings to %s\n", n, args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "import <file.zip>",
			Short: "Add the drawings of a gallery archive, skipping ones already kept",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				g, err := openGallery(cmd.Context(), a.cfg)
				if err != nil {
					return err
				}
				defer g.Close()
				n, err := g.ImportArchive(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported %d drawings\n", n)
				return nil
			},
		},
		&cobra.Command{
			Use:   "password",
			Short: "Store the gallery database password in the OS keyring (read from stdin)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password: %w", err)
				}
				pw := strings.TrimRight(line, "\r\n")
				if pw == "" {
					return config.DeleteGalleryPassword()
				}
				return config.SetGalleryPassword(pw)
			},
		},
	)
	return cmd
}
