/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */


package gallery

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	applog "penplot/internal/log"
)

// ManifestName is the index file at the root of a gallery archive.
const ManifestName = "gallery.manifest.json"

type manifest struct {
	Version int             `json:"version"`
	Created time.Time       `json:"created"`
	Entries []manifestEntry `json:"entries"`
}

type manifestEntry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Sketch    string    `json:"sketch,omitempty"`
	Seed      uint64    `json:"seed"`
	File      string    `json:"file"`
	Thumb     string    `json:"thumb,omitempty"`
	ThumbW    int       `json:"thumb_w,omitempty"`
	ThumbH    int       `json:"thumb_h,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ExportArchive writes every entry into a zip at dest: the kept SVGs, their
// thumbnails as <id>.png and a JSON manifest. It returns the entry count.
func (g *Gallery) ExportArchive(ctx context.Context, dest string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("gallery"), "export").With(slog.String("zip", dest))
	if strings.TrimSpace(dest) == "" {
		return 0, errors.New("archive path is required")
	}
	entries, err := g.List(ctx)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return 0, fmt.Errorf("ensure archive dir: %w", err)
	}
	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("create archive: %w", err)
	}
	defer func() { _ = out.Close() }()
	zw := zip.NewWriter(out)

	m := manifest{Version: schemaVersion, Created: time.Now().UTC()}
	for _, e := range entries {
		me := manifestEntry{ID: e.ID, Name: e.Name, Sketch: e.Sketch, Seed: e.Seed, File: e.ID + ".svg", CreatedAt: e.CreatedAt}
		if err := addFile(zw, me.File, e.Path); err != nil {
			l.Error("archive build failed", slog.String("id", e.ID), slog.Any("err", err))
			return 0, fmt.Errorf("archive %s: %w", e.ID, err)
		}
		if e.HasThumbnail() {
			thumb, err := g.Thumbnail(ctx, e.ID)
			if err != nil {
				return 0, err
			}
			me.Thumb, me.ThumbW, me.ThumbH = e.ID+".png", e.ThumbW, e.ThumbH
			if err := addBytes(zw, me.Thumb, thumb); err != nil {
				return 0, fmt.Errorf("archive %s: %w", e.ID, err)
			}
		}
		m.Entries = append(m.Entries, me)
	}
	mb, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return 0, err
	}
	if err := addBytes(zw, ManifestName, mb); err != nil {
		return 0, err
	}
	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finish archive: %w", err)
	}
	l.Info("gallery exported", slog.Int("entries", len(m.Entries)))
	return len(m.Entries), nil
}

// ImportArchive adds the entries of an archive written by ExportArchive.
// Entries whose id is already present are skipped. It returns the number of
// entries added.
func (g *Gallery) ImportArchive(ctx context.Context, src string) (int, error) {
	l := applog.WithOperation(applog.WithComponent("gallery"), "import").With(slog.String("zip", src))
	r, err := zip.OpenReader(src)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = r.Close() }()

	files := make(map[string]*zip.File, len(r.File))
	for _, f := range r.File {
		files[f.Name] = f
	}
	mf, ok := files[ManifestName]
	if !ok {
		return 0, fmt.Errorf("archive has no %s", ManifestName)
	}
	mb, err := readZipFile(mf)
	if err != nil {
		return 0, err
	}
	var m manifest
	if err := json.Unmarshal(mb, &m); err != nil {
		return 0, fmt.Errorf("parse manifest: %w", err)
	}

	added := 0
	for _, me := range m.Entries {
		if err := validateID(me.ID); err != nil {
			return added, err
		}
		if _, err := g.Get(ctx, me.ID); err == nil {
			l.Warn("skip existing entry", slog.String("id", me.ID))
			continue
		} else if !errors.Is(err, ErrNotFound) {
			return added, err
		}
		doc, ok := files[path.Clean(me.File)]
		if !ok {
			return added, fmt.Errorf("archive is missing %s", me.File)
		}
		svg, err := readZipFile(doc)
		if err != nil {
			return added, err
		}
		var thumb []byte
		e := Entry{ID: me.ID, Name: me.Name, Sketch: me.Sketch, Seed: me.Seed, CreatedAt: me.CreatedAt}
		if tf, ok := files[path.Clean(me.Thumb)]; ok && me.Thumb != "" {
			if thumb, err = readZipFile(tf); err != nil {
				return added, err
			}
			e.ThumbW, e.ThumbH = me.ThumbW, me.ThumbH
		}
		file := e.ID + ".svg"
		e.Path = filepath.Join(g.dir, file)
		if err := os.WriteFile(e.Path, svg, 0o644); err != nil {
			return added, fmt.Errorf("write document: %w", err)
		}
		if err := g.insert(ctx, e, file, thumb); err != nil {
			_ = os.Remove(e.Path)
			return added, err
		}
		added++
	}
	l.Info("gallery imported", slog.Int("entries", added))
	return added, nil
}

func addFile(zw *zip.Writer, name, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	fw, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = io.Copy(fw, f)
	return err
}

func addBytes(zw *zip.Writer, name string, b []byte) error {
	fw, err := zw.Create(name)
	if err != nil {
		return err
	}
	_, err = fw.Write(b)
	return err
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", f.Name, err)
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
