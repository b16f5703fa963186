/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package config loads penplot settings: a YAML file in the working directory
// or user scope, overridden by PENPLOT_* environment variables and checked
// against an embedded JSON schema.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// AppConfig is the user-editable configuration.
//
// config_version: bump when the structure changes in a backward-incompatible way.
type AppConfig struct {
	ConfigVersion int           `yaml:"config_version" json:"config_version"`
	Paper         PaperConfig   `yaml:"paper" json:"paper"`
	Export        ExportConfig  `yaml:"export" json:"export"`
	Gallery       GalleryConfig `yaml:"gallery" json:"gallery"`
	Logging       LoggingConfig `yaml:"logging" json:"logging"`
}

// PaperConfig describes the sheet. Lengths are in Unit.
type PaperConfig struct {
	Name        string    `yaml:"name" json:"name"` // table name, or "custom" with Width/Height
	Unit        string    `yaml:"unit" json:"unit"` // "mm" | "in"
	Orientation string    `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Width       float64   `yaml:"width,omitempty" json:"width,omitempty"`
	Height      float64   `yaml:"height,omitempty" json:"height,omitempty"`
	Margin      float64   `yaml:"margin" json:"margin"`
	Margins     []float64 `yaml:"margins,omitempty" json:"margins,omitempty"` // top right bottom left
	Square      bool      `yaml:"square,omitempty" json:"square,omitempty"`
}

type ExportConfig struct {
	OutDir         string   `yaml:"out_dir" json:"out_dir"`
	Preset         string   `yaml:"preset,omitempty" json:"preset,omitempty"`
	Formats        []string `yaml:"formats" json:"formats"`
	Style          string   `yaml:"style" json:"style"` // "pen" | "uniform"
	MinStrokeWidth float64  `yaml:"min_stroke_width" json:"min_stroke_width"`
	Fit            bool     `yaml:"fit" json:"fit"`
	PreviewDPI     int      `yaml:"preview_dpi" json:"preview_dpi"`
}

type GalleryConfig struct {
	Dir       string `yaml:"dir" json:"dir"`
	Driver    string `yaml:"driver" json:"driver"` // "sqlite" | "pgx"
	DSN       string `yaml:"dsn,omitempty" json:"dsn,omitempty"`
	ThumbSize int    `yaml:"thumb_size" json:"thumb_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	Source bool   `yaml:"source" json:"source"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// Defaults returns the application defaults.
func Defaults() AppConfig {
	return AppConfig{
		ConfigVersion: 1,
		Paper:         PaperConfig{Name: "a4", Unit: "mm", Margin: 10},
		Export: ExportConfig{
			OutDir:         "out",
			Formats:        []string{"svg"},
			Style:          "pen",
			MinStrokeWidth: 0.25,
			PreviewDPI:     96,
		},
		Gallery: GalleryConfig{Dir: "gallery", Driver: "sqlite", ThumbSize: 256},
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// FileName is the config file looked up in the working directory.
const FileName = "penplot.yaml"

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PENPLOT"

// envOverrides lists the settings that can be overridden from the
// environment, named PENPLOT_<FIELD_IN_SNAKE_CASE>. Unset variables leave the
// field untouched.
type envOverrides struct {
	Paper          string   `split_words:"true"`
	Unit           string   `split_words:"true"`
	Orientation    string   `split_words:"true"`
	Margin         *float64 `split_words:"true"`
	OutDir         string   `split_words:"true"`
	Preset         string   `split_words:"true"`
	Formats        []string `split_words:"true"`
	Style          string   `split_words:"true"`
	MinStrokeWidth *float64 `split_words:"true"`
	Fit            *bool    `split_words:"true"`
	GalleryDir     string   `split_words:"true"`
	GalleryDriver  string   `split_words:"true"`
	GalleryDSN     string   `split_words:"true"`
	LogLevel       string   `split_words:"true"`
	LogFormat      string   `split_words:"true"`
	LogSource      *bool    `split_words:"true"`
	LogFile        string   `split_words:"true"`
}

// envKeys maps config keys to the variable overriding them.
var envKeys = map[string]string{
	"paper.name":              "PAPER",
	"paper.unit":              "UNIT",
	"paper.orientation":       "ORIENTATION",
	"paper.margin":            "MARGIN",
	"export.out_dir":          "OUT_DIR",
	"export.preset":           "PRESET",
	"export.formats":          "FORMATS",
	"export.style":            "STYLE",
	"export.min_stroke_width": "MIN_STROKE_WIDTH",
	"export.fit":              "FIT",
	"gallery.dir":             "GALLERY_DIR",
	"gallery.driver":          "GALLERY_DRIVER",
	"gallery.dsn":             "GALLERY_DSN",
	"logging.level":           "LOG_LEVEL",
	"logging.format":          "LOG_FORMAT",
	"logging.source":          "LOG_SOURCE",
	"logging.file":            "LOG_FILE",
}

// ConfigPath returns the per-user config file path.
func ConfigPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("AppData")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		base = filepath.Join(base, "penplot")
	case "darwin":
		base = filepath.Join(os.Getenv("HOME"), "Library", "Application Support", "penplot")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			base = filepath.Join(xdg, "penplot")
		} else {
			base = filepath.Join(os.Getenv("HOME"), ".config", "penplot")
		}
	}
	if base == "" {
		return "", errors.New("cannot resolve config directory")
	}
	return filepath.Join(base, "config.yaml"), nil
}

// Load builds the effective configuration: defaults, then the YAML file, then
// environment overrides. An explicit path must exist; otherwise ./penplot.yaml
// and the per-user file are tried in turn. The result is validated.
func Load(path string) (AppConfig, error) {
	cfg := Defaults()
	file, err := findFile(path)
	if err != nil {
		return cfg, err
	}
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		var fileCfg AppConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", file, err)
		}
		mergeInto(&cfg, &fileCfg)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func findFile(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return explicit, nil
	}
	candidates := []string{FileName}
	if p, err := ConfigPath(); err == nil {
		candidates = append(candidates, p)
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config file: %w", err)
		}
	}
	return "", nil
}

// Save writes cfg as YAML to path, creating parent directories.
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

func mergeInto(dst *AppConfig, src *AppConfig) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	// paper: a file that names a sheet replaces the whole section
	if src.Paper.Name != "" || src.Paper.Width > 0 {
		unit := dst.Paper.Unit
		dst.Paper = src.Paper
		dst.Paper.Name = strings.ToLower(strings.TrimSpace(src.Paper.Name))
		if dst.Paper.Unit == "" {
			dst.Paper.Unit = unit
		}
	} else {
		if src.Paper.Unit != "" {
			dst.Paper.Unit = src.Paper.Unit
		}
		if src.Paper.Margin != 0 {
			dst.Paper.Margin = src.Paper.Margin
		}
		if len(src.Paper.Margins) > 0 {
			dst.Paper.Margins = src.Paper.Margins
		}
		if src.Paper.Orientation != "" {
			dst.Paper.Orientation = src.Paper.Orientation
		}
		dst.Paper.Square = src.Paper.Square
	}
	// export
	if strings.TrimSpace(src.Export.OutDir) != "" {
		dst.Export.OutDir = strings.TrimSpace(src.Export.OutDir)
	}
	if src.Export.Preset != "" {
		dst.Export.Preset = strings.ToLower(src.Export.Preset)
	}
	if len(src.Export.Formats) > 0 {
		dst.Export.Formats = src.Export.Formats
	}
	if src.Export.Style != "" {
		dst.Export.Style = strings.ToLower(src.Export.Style)
	}
	if src.Export.MinStrokeWidth != 0 {
		dst.Export.MinStrokeWidth = src.Export.MinStrokeWidth
	}
	if src.Export.PreviewDPI != 0 {
		dst.Export.PreviewDPI = src.Export.PreviewDPI
	}
	dst.Export.Fit = src.Export.Fit
	// gallery
	if strings.TrimSpace(src.Gallery.Dir) != "" {
		dst.Gallery.Dir = strings.TrimSpace(src.Gallery.Dir)
	}
	if src.Gallery.Driver != "" {
		dst.Gallery.Driver = strings.ToLower(src.Gallery.Driver)
	}
	if src.Gallery.DSN != "" {
		dst.Gallery.DSN = src.Gallery.DSN
	}
	if src.Gallery.ThumbSize != 0 {
		dst.Gallery.ThumbSize = src.Gallery.ThumbSize
	}
	// logging
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
	if strings.TrimSpace(src.Logging.Format) != "" {
		dst.Logging.Format = strings.ToLower(strings.TrimSpace(src.Logging.Format))
	}
	dst.Logging.Source = src.Logging.Source
	if strings.TrimSpace(src.Logging.File) != "" {
		dst.Logging.File = strings.TrimSpace(src.Logging.File)
	}
}

func applyEnvOverrides(cfg *AppConfig) error {
	var e envOverrides
	if err := envconfig.Process(EnvPrefix, &e); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	setString(&cfg.Paper.Name, strings.ToLower(e.Paper))
	setString(&cfg.Paper.Unit, strings.ToLower(e.Unit))
	setString(&cfg.Paper.Orientation, strings.ToLower(e.Orientation))
	if e.Margin != nil {
		cfg.Paper.Margin = *e.Margin
		cfg.Paper.Margins = nil
	}
	setString(&cfg.Export.OutDir, e.OutDir)
	setString(&cfg.Export.Preset, strings.ToLower(e.Preset))
	if len(e.Formats) > 0 {
		cfg.Export.Formats = e.Formats
	}
	setString(&cfg.Export.Style, strings.ToLower(e.Style))
	if e.MinStrokeWidth != nil {
		cfg.Export.MinStrokeWidth = *e.MinStrokeWidth
	}
	if e.Fit != nil {
		cfg.Export.Fit = *e.Fit
	}
	setString(&cfg.Gallery.Dir, e.GalleryDir)
	setString(&cfg.Gallery.Driver, strings.ToLower(e.GalleryDriver))
	setString(&cfg.Gallery.DSN, e.GalleryDSN)
	setString(&cfg.Logging.Level, strings.ToLower(e.LogLevel))
	setString(&cfg.Logging.Format, strings.ToLower(e.LogFormat))
	if e.LogSource != nil {
		cfg.Logging.Source = *e.LogSource
	}
	setString(&cfg.Logging.File, e.LogFile)
	return nil
}

func setString(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

// EnvOverrideFor returns the env var name if the field is overridden by environment variables.
func EnvOverrideFor(key string) (string, bool) {
	suffix, ok := envKeys[key]
	if !ok {
		return "", false
	}
	name := EnvPrefix + "_" + suffix
	if os.Getenv(name) != "" {
		return name, true
	}
	return "", false
}
