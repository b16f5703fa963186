/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package gallery keeps finished drawings: each kept document is copied into
// the gallery directory and recorded in an SQL index together with a PNG
// thumbnail. The index lives in an embedded sqlite database by default, or in
// postgres when configured with the pgx driver.
package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"go.jetify.com/typeid/v2"
	// Pure-Go SQLite driver (CGO-free)
	_ "modernc.org/sqlite"

	applog "penplot/internal/log"
)

// PrefixRender is the typeid prefix of gallery entries.
const PrefixRender = "render"

// IndexFileName is the sqlite index inside the gallery directory.
const IndexFileName = "gallery.sqlite"

var (
	ErrNotFound    = errors.New("gallery: entry not found")
	ErrNoThumbnail = errors.New("gallery: entry has no thumbnail")
)

// Options configures Open.
type Options struct {
	Dir       string // where kept documents are stored
	Driver    string // "sqlite" (default) or "pgx"
	DSN       string // empty with sqlite means <Dir>/gallery.sqlite
	ThumbSize int
}

// Entry is one kept document.
type Entry struct {
	ID        string
	Name      string
	Sketch    string
	Seed      uint64
	Path      string // absolute or Dir-relative path of the kept SVG
	ThumbW    int
	ThumbH    int
	CreatedAt time.Time
}

// HasThumbnail reports whether a thumbnail was stored with the entry.
func (e Entry) HasThumbnail() bool { return e.ThumbW > 0 }

// KeepRequest describes a document to keep.
type KeepRequest struct {
	Name   string
	Sketch string
	Seed   uint64
	SVG    []byte
	// PNG is a rendered preview; when set, a thumbnail is stored.
	PNG image.Image
}

// Gallery is an open gallery. It is safe for concurrent use.
type Gallery struct {
	db    *sql.DB
	d     dialect
	dir   string
	thumb int
	log   *slog.Logger
}

// Open creates the gallery directory when needed, connects to the index and
// brings its schema up to date.
func Open(ctx context.Context, opt Options) (*Gallery, error) {
	l := applog.WithOperation(applog.WithComponent("gallery"), "open").With(slog.String("dir", opt.Dir))
	if strings.TrimSpace(opt.Dir) == "" {
		return nil, errors.New("gallery dir is required")
	}
	d, err := dialectFor(opt.Driver)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opt.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create gallery dir: %w", err)
	}
	dsn := opt.DSN
	if d == sqliteDialect && dsn == "" {
		uriPath := filepath.ToSlash(filepath.Join(opt.Dir, IndexFileName))
		dsn = fmt.Sprintf("file:%s?cache=shared&_pragma=busy_timeout(5000)", uriPath)
	}
	if dsn == "" {
		return nil, fmt.Errorf("gallery: driver %s needs a dsn", d.driver)
	}
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.driver, err)
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if d == sqliteDialect {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL;"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("enable WAL: %w", err)
		}
	} else if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if err := ensureSchema(ctx, db, d); err != nil {
		_ = db.Close()
		l.Error("ensure schema failed", slog.Any("err", err))
		return nil, err
	}
	thumb := opt.ThumbSize
	if thumb <= 0 {
		thumb = DefaultThumbSize
	}
	l.Debug("gallery ready", slog.String("driver", d.driver))
	return &Gallery{db: db, d: d, dir: opt.Dir, thumb: thumb, log: applog.WithComponent("gallery")}, nil
}

// Close releases the index connection.
func (g *Gallery) Close() error { return g.db.Close() }

// Dir is the directory holding kept documents.
func (g *Gallery) Dir() string { return g.dir }

// Keep stores req.SVG as <Dir>/<id>.svg and records it in the index.
func (g *Gallery) Keep(ctx context.Context, req KeepRequest) (Entry, error) {
	if len(req.SVG) == 0 {
		return Entry{}, errors.New("gallery: nothing to keep")
	}
	e := Entry{
		ID:        typeid.MustGenerate(PrefixRender).String(),
		Name:      req.Name,
		Sketch:    req.Sketch,
		Seed:      req.Seed,
		CreatedAt: time.Now().UTC(),
	}
	if e.Name == "" {
		e.Name = e.ID
	}
	var (
		thumb []byte
		err   error
	)
	if req.PNG != nil {
		thumb, e.ThumbW, e.ThumbH, err = makeThumbnail(req.PNG, g.thumb)
		if err != nil {
			return Entry{}, fmt.Errorf("thumbnail: %w", err)
		}
	}
	file := e.ID + ".svg"
	e.Path = filepath.Join(g.dir, file)
	if err := os.WriteFile(e.Path, req.SVG, 0o644); err != nil {
		return Entry{}, fmt.Errorf("write document: %w", err)
	}
	if err := g.insert(ctx, e, file, thumb); err != nil {
		_ = os.Remove(e.Path)
		return Entry{}, err
	}
	g.log.Info("kept", slog.String("id", e.ID), slog.String("name", e.Name))
	return e, nil
}

func (g *Gallery) insert(ctx context.Context, e Entry, file string, thumb []byte) error {
	q := g.d.rebind(`INSERT INTO renders (id, name, sketch, seed, file, thumb, thumb_w, thumb_h, created_at) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if _, err := g.db.ExecContext(ctx, q, e.ID, e.Name, e.Sketch, int64(e.Seed), file, thumb, e.ThumbW, e.ThumbH, e.CreatedAt.UTC().Format(timeLayout)); err != nil {
		return fmt.Errorf("insert render: %w", err)
	}
	return nil
}

// timeLayout is fixed-width so text order matches time order.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

const entryColumns = `id, name, sketch, seed, file, thumb_w, thumb_h, created_at`

// List returns every entry, newest first.
func (g *Gallery) List(ctx context.Context) ([]Entry, error) {
	rows, err := g.db.QueryContext(ctx, `SELECT `+entryColumns+` FROM renders ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list renders: %w", err)
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		e, err := g.scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list renders: %w", err)
	}
	return out, nil
}

// Get returns one entry, or ErrNotFound.
func (g *Gallery) Get(ctx context.Context, id string) (Entry, error) {
	if err := validateID(id); err != nil {
		return Entry{}, err
	}
	row := g.db.QueryRowContext(ctx, g.d.rebind(`SELECT `+entryColumns+` FROM renders WHERE id=?`), id)
	e, err := g.scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return e, err
}

// Thumbnail returns the PNG thumbnail of an entry.
func (g *Gallery) Thumbnail(ctx context.Context, id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	var thumb []byte
	err := g.db.QueryRowContext(ctx, g.d.rebind(`SELECT thumb FROM renders WHERE id=?`), id).Scan(&thumb)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case err != nil:
		return nil, fmt.Errorf("read thumbnail: %w", err)
	case len(thumb) == 0:
		return nil, ErrNoThumbnail
	}
	return thumb, nil
}

// Delete removes an entry and its document.
func (g *Gallery) Delete(ctx context.Context, id string) error {
	e, err := g.Get(ctx, id)
	if err != nil {
		return err
	}
	if _, err := g.db.ExecContext(ctx, g.d.rebind(`DELETE FROM renders WHERE id=?`), id); err != nil {
		return fmt.Errorf("delete render: %w", err)
	}
	if err := os.Remove(e.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		g.log.Warn("remove kept document failed", slog.String("path", e.Path), slog.Any("err", err))
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (g *Gallery) scan(s scanner) (Entry, error) {
	var (
		e       Entry
		seed    int64
		file    string
		created string
	)
	if err := s.Scan(&e.ID, &e.Name, &e.Sketch, &seed, &file, &e.ThumbW, &e.ThumbH, &created); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scan render: %w", err)
	}
	e.Seed = uint64(seed)
	e.Path = filepath.Join(g.dir, file)
	t, err := time.Parse(timeLayout, created)
	if err != nil {
		return Entry{}, fmt.Errorf("render %s: bad timestamp %q", e.ID, created)
	}
	e.CreatedAt = t
	return e, nil
}

func validateID(id string) error {
	tid, err := typeid.Parse(id)
	if err != nil {
		return fmt.Errorf("invalid gallery id %q: %w", id, err)
	}
	if tid.Prefix() != PrefixRender {
		return fmt.Errorf("expected prefix %q but got %q in id %q", PrefixRender, tid.Prefix(), id)
	}
	return nil
}
