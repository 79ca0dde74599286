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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Default connects at most once per process, so the whole lifecycle of the
// global accessor is exercised in this single test.
func TestDefaultLifecycle(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, GetDB())
	assert.Nil(t, GetDatabaseManager())
	assert.Nil(t, GetStore())
	assert.Error(t, RunMigrations(ctx))
	assert.Error(t, InitData(ctx))
	assert.False(t, GetHealthStatus(ctx).Healthy)
	assert.Equal(t, &DBStats{}, GetDatabaseStats())

	root := t.TempDir()
	writeSQLFile(t, filepath.Join(root, "environments", "test"), "001_notes.sql",
		"INSERT INTO migration_notes (body) VALUES ('seeded');\n")

	cfg := DefaultConfig()
	cfg.ConnectionConfig.Type = "sqlite"
	cfg.ConnectionConfig.DBName = MemoryDBName
	cfg.DataMigrateConfig.EnableMigrateOnStartup = true
	cfg.DataInitConfig.AutoInitOnStartup = true
	cfg.DataInitConfig.Filepath = root
	cfg.DataInitConfig.Environment = "test"
	SetDefaultConfig(cfg)

	db, err := Default()
	require.NoError(t, err)
	require.NotNil(t, db)

	again, err := Default()
	require.NoError(t, err)
	assert.Same(t, db, again)
	assert.Same(t, db, GetDB())

	assert.Equal(t, 1, countRows(t, db, "migration_notes"))
	assert.NoError(t, RunMigrations(ctx))
	assert.True(t, GetHealthStatus(ctx).Healthy)
	assert.Equal(t, 1, GetDatabaseStats().MaxOpenConns)

	require.NoError(t, CloseDB())
	assert.Nil(t, GetDB())

	// no reconnect after the one attempt
	_, err = Default()
	assert.Error(t, err)
}

func TestInitDBRejectsNil(t *testing.T) {
	_, err := InitDB(nil)
	assert.Error(t, err)
	_, err = InitDatabaseWithOptions(nil, false)
	assert.Error(t, err)
}
