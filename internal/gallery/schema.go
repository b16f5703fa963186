/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gallery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"penplot/internal/version"
)

// schemaVersion tracks the index schema. Bump it when adding migrations.
const schemaVersion = 1

// dialect hides the differences between the sqlite and postgres indexes.
type dialect struct {
	driver string
	blob   string
	dollar bool // $n placeholders instead of ?
}

var (
	sqliteDialect   = dialect{driver: "sqlite", blob: "BLOB"}
	postgresDialect = dialect{driver: "pgx", blob: "BYTEA", dollar: true}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "", "sqlite":
		return sqliteDialect, nil
	case "pgx", "postgres":
		return postgresDialect, nil
	}
	return dialect{}, fmt.Errorf("gallery: unsupported driver %q", driver)
}

// rebind rewrites ? placeholders for drivers that number them.
func (d dialect) rebind(q string) string {
	if !d.dollar {
		return q
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(q); i++ {
		if q[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(q[i])
	}
	return b.String()
}

func (d dialect) ddl() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS version (
			id          INTEGER PRIMARY KEY CHECK(id=1),
			schema      INTEGER NOT NULL,
			app         TEXT,
			created_at  TEXT NOT NULL,
			updated_at  TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS renders (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			sketch      TEXT NOT NULL DEFAULT '',
			seed        BIGINT NOT NULL DEFAULT 0,
			file        TEXT NOT NULL,
			thumb       ` + d.blob + `,
			thumb_w     INTEGER NOT NULL DEFAULT 0,
			thumb_h     INTEGER NOT NULL DEFAULT 0,
			created_at  TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_created ON renders(created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_renders_sketch ON renders(sketch)`,
	}
}

// ensureSchema creates the tables and seeds or refreshes the version row.
func ensureSchema(ctx context.Context, db *sql.DB, d dialect) error {
	for _, q := range d.ddl() {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	now := time.Now().UTC().Format(time.RFC3339)
	appv := version.String()
	var cur int
	err := db.QueryRowContext(ctx, `SELECT schema FROM version WHERE id=1`).Scan(&cur)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		q := d.rebind(`INSERT INTO version (id, schema, app, created_at, updated_at) VALUES(1, ?, ?, ?, ?)`)
		if _, err := db.ExecContext(ctx, q, schemaVersion, appv, now, now); err != nil {
			return fmt.Errorf("insert version: %w", err)
		}
	case err != nil:
		return fmt.Errorf("read version: %w", err)
	case cur > schemaVersion:
		return fmt.Errorf("gallery index schema %d is newer than supported %d", cur, schemaVersion)
	default:
		q := d.rebind(`UPDATE version SET app=?, updated_at=? WHERE id=1`)
		if _, err := db.ExecContext(ctx, q, appv, now); err != nil {
			return fmt.Errorf("update version: %w", err)
		}
	}
	return nil
}
