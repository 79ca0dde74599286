/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSQLFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestSplitSQLStatements(t *testing.T) {
	content := `
-- seed notes
INSERT INTO migration_notes (body)
  VALUES ('first');

INSERT INTO migration_notes (body) VALUES ('second');
SELECT 1`

	assert.Equal(t, []string{
		"INSERT INTO migration_notes (body) VALUES ('first');",
		"INSERT INTO migration_notes (body) VALUES ('second');",
		"SELECT 1",
	}, splitSQLStatements(content))
	assert.Empty(t, splitSQLStatements("-- nothing\n\n"))
}

func TestParseFileOrder(t *testing.T) {
	assert.Equal(t, 1, parseFileOrder("001_users.sql"))
	assert.Equal(t, 20, parseFileOrder("20_likes.sql"))
	assert.Equal(t, 999, parseFileOrder("users.sql"))
}

func TestGetSQLFilesOrdering(t *testing.T) {
	root := t.TempDir()
	writeSQLFile(t, filepath.Join(root, "common"), "002_b.sql", "")
	writeSQLFile(t, filepath.Join(root, "common"), "001_a.sql", "")
	writeSQLFile(t, filepath.Join(root, "common"), "readme.txt", "")
	writeSQLFile(t, filepath.Join(root, "common"), "extra.sql", "")
	writeSQLFile(t, filepath.Join(root, "environments", "dev"), "001_dev.sql", "")
	writeSQLFile(t, filepath.Join(root, "environments", "prod"), "001_prod.sql", "")

	s := NewSQLInitManager(nil, "dev")
	s.SetSQLRootPath(root)
	files, err := s.GetSQLFiles()
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{"001_a.sql", "002_b.sql", "extra.sql", "001_dev.sql"}, names)
	assert.Equal(t, "common", files[0].Environment)
	assert.Equal(t, "dev", files[3].Environment)

	s = NewSQLInitManager(nil, "staging")
	s.SetSQLRootPath(root)
	files, err = s.GetSQLFiles()
	require.NoError(t, err)
	assert.Len(t, files, 3)
}

func TestExecuteInitialization(t *testing.T) {
	manager := newMemoryManager(t)
	ctx := context.Background()
	require.NoError(t, NewMigrationManager(manager.GetDB(), nil).RunMigrations(ctx))

	root := t.TempDir()
	writeSQLFile(t, filepath.Join(root, "common"), "001_notes.sql", `
INSERT INTO migration_notes (body) VALUES ('common');
INSERT INTO migration_notes (body) VALUES ('common again');
`)
	writeSQLFile(t, filepath.Join(root, "environments", "dev"), "001_notes.sql",
		"INSERT INTO migration_notes (body) VALUES ('dev');\n")

	s := NewSQLInitManager(manager.GetDB(), "dev")
	s.SetLogger(&recordingLogger{})
	s.SetSQLRootPath(root)
	require.NoError(t, s.ExecuteInitialization(ctx))
	assert.Equal(t, 3, countRows(t, manager.GetDB(), "migration_notes"))
}

func TestExecuteInitializationRollsBackFailingFile(t *testing.T) {
	manager := newMemoryManager(t)
	ctx := context.Background()
	require.NoError(t, NewMigrationManager(manager.GetDB(), nil).RunMigrations(ctx))

	root := t.TempDir()
	writeSQLFile(t, filepath.Join(root, "common"), "001_ok.sql",
		"INSERT INTO migration_notes (body) VALUES ('kept');\n")
	writeSQLFile(t, filepath.Join(root, "common"), "002_broken.sql", `
INSERT INTO migration_notes (body) VALUES ('rolled back');
INSERT INTO missing_table (body) VALUES ('boom');
`)
	writeSQLFile(t, filepath.Join(root, "common"), "003_never.sql",
		"INSERT INTO migration_notes (body) VALUES ('never');\n")

	logger := &recordingLogger{}
	s := NewSQLInitManager(manager.GetDB(), "prod")
	s.SetLogger(logger)
	s.SetSQLRootPath(root)

	err := s.ExecuteInitialization(ctx)
	assert.ErrorContains(t, err, "002_broken.sql")
	assert.Equal(t, 1, countRows(t, manager.GetDB(), "migration_notes"))
	assert.Equal(t, 1, logger.count("error"))
}

func TestExecuteInitializationWithoutFiles(t *testing.T) {
	s := NewSQLInitManager(nil, "prod")
	s.SetLogger(&recordingLogger{})
	s.SetSQLRootPath(filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, s.ExecuteInitialization(context.Background()))
}
