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
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

type migrationNote struct {
	bun.BaseModel `bun:"table:migration_notes,alias:mn"`

	ID   int64  `bun:"id,pk,autoincrement"`
	Body string `bun:"body,notnull"`
}

func init() {
	RegisteredModel(NewModelAdapter((*migrationNote)(nil), "migration_notes", 10))
}

type logEntry struct {
	level  string
	msg    string
	fields []interface{}
}

type recordingLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *recordingLogger) record(level, msg string, fields []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) SetLevel(LogLevel) {}

func (l *recordingLogger) Debug(msg string, fields ...interface{}) { l.record("debug", msg, fields) }

func (l *recordingLogger) Info(msg string, fields ...interface{}) { l.record("info", msg, fields) }

func (l *recordingLogger) Warn(msg string, fields ...interface{}) { l.record("warn", msg, fields) }

func (l *recordingLogger) Error(msg string, fields ...interface{}) { l.record("error", msg, fields) }

func (l *recordingLogger) count(level string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.level == level {
			n++
		}
	}
	return n
}

func (l *recordingLogger) countMessage(msg string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.msg == msg {
			n++
		}
	}
	return n
}

func memoryConfig() *ConnectionConfig {
	cfg := DefaultConnectionConfig()
	cfg.Type = "sqlite"
	cfg.DBName = MemoryDBName
	return cfg
}

func newMemoryManager(t *testing.T) AbstractDatabaseManager {
	t.Helper()
	manager := NewDatabaseManager(memoryConfig())
	require.NoError(t, manager.Connect(context.Background()))
	t.Cleanup(func() { _ = manager.Disconnect() })
	return manager
}

func countRows(t *testing.T, db bun.IDB, table string) int {
	t.Helper()
	var n int
	err := db.NewRaw(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(context.Background(), &n)
	require.NoError(t, err)
	return n
}
