/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package gallery

import (
	"strings"
	"testing"
)

func TestRebindPlaceholders(t *testing.T) {
	q := `SELECT id FROM renders WHERE id=? AND sketch=?`
	if got := sqliteDialect.rebind(q); got != q {
		t.Fatalf("sqlite rebind changed the query: %q", got)
	}
	if got, want := postgresDialect.rebind(q), `SELECT id FROM renders WHERE id=$1 AND sketch=$2`; got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestDialectDDL(t *testing.T) {
	if !strings.Contains(strings.Join(postgresDialect.ddl(), "\n"), "thumb       BYTEA") {
		t.Fatalf("postgres schema should store thumbnails as BYTEA")
	}
	if !strings.Contains(strings.Join(sqliteDialect.ddl(), "\n"), "thumb       BLOB") {
		t.Fatalf("sqlite schema should store thumbnails as BLOB")
	}
	for _, name := range []string{"", "sqlite", "pgx", "postgres"} {
		if _, err := dialectFor(name); err != nil {
			t.Fatalf("dialectFor(%q): %v", name, err)
		}
	}
}

func TestMakeThumbnailKeepsSmallImages(t *testing.T) {
	_, w, h, err := makeThumbnail(preview(10, 20), 64)
	if err != nil {
		t.Fatal(err)
	}
	if w != 10 || h != 20 {
		t.Fatalf("size = %dx%d, want 10x20", w, h)
	}
	_, w, h, err = makeThumbnail(preview(300, 600), 0)
	if err != nil {
		t.Fatal(err)
	}
	if w != 128 || h != DefaultThumbSize {
		t.Fatalf("size = %dx%d, want 128x256", w, h)
	}
}
