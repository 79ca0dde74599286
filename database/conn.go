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
	"os"
	"sync"

	"github.com/uptrace/bun"
)

// ConfigPathEnv names the configuration file used by Default when no
// configuration was registered with SetDefaultConfig.
const ConfigPathEnv = "QAFORUM_CONFIG"

var (
	globalMu    sync.RWMutex
	globalStore *Store
	DB          *bun.DB

	defaultMu     sync.Mutex
	defaultConfig *Config
	defaultOnce   sync.Once
	defaultErr    error
)

// GetDB returns the global Bun database instance, or nil before InitDB.
func GetDB() *bun.DB {
	globalMu.RLock()
	defer globalMu.RUnlock()
	if globalStore != nil {
		return globalStore.DB()
	}
	return DB
}

// SetDefaultConfig registers the configuration Default connects with.
// It has no effect once Default has run.
func SetDefaultConfig(cfg *Config) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultConfig = cfg
}

// Default returns the process-wide store, connecting on first use with the
// configuration from SetDefaultConfig or, failing that, the file named by
// QAFORUM_CONFIG plus the environment. The connection is attempted exactly
// once: a failure is returned to every caller and never retried.
func Default() (*bun.DB, error) {
	if db := GetDB(); db != nil {
		return db, nil
	}
	defaultOnce.Do(func() {
		defaultMu.Lock()
		cfg := defaultConfig
		defaultMu.Unlock()

		if cfg == nil {
			cfg, defaultErr = LoadConfig(os.Getenv(ConfigPathEnv))
			if defaultErr != nil {
				return
			}
		}
		_, defaultErr = InitDB(cfg)
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	if db := GetDB(); db != nil {
		return db, nil
	}
	return nil, fmt.Errorf("database not initialized")
}

// GetStore returns the global store, or nil before InitDB.
func GetStore() *Store {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalStore
}

// GetDatabaseManager returns the global database manager.
func GetDatabaseManager() AbstractDatabaseManager {
	if s := GetStore(); s != nil {
		return s.Manager()
	}
	return nil
}

// InitDB opens the global store with cfg, creating the schema and seeding
// data when cfg asks for it. A previously opened global store is closed.
func InitDB(cfg *Config) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	globalMu.Lock()
	defer globalMu.Unlock()

	store, err := OpenStore(context.Background(), cfg, GetLogger())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if globalStore != nil {
		_ = globalStore.Close()
	}
	globalStore = store
	DB = store.DB()
	return DB, nil
}

// InitDatabaseWithOptions is InitDB with schema creation forced on or off
// and seeding disabled.
func InitDatabaseWithOptions(cfg *Config, runMigrations bool) (*bun.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	c := *cfg
	c.DataMigrateConfig.EnableMigrateOnStartup = runMigrations
	c.DataInitConfig.AutoInitOnStartup = false
	return InitDB(&c)
}

// CloseDB closes the global database connection.
func CloseDB() error {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalStore == nil {
		return nil
	}
	err := globalStore.Close()
	globalStore = nil
	DB = nil
	return err
}

// GetHealthStatus returns the current database health status.
func GetHealthStatus(ctx context.Context) *HealthStatus {
	if s := GetStore(); s != nil {
		return s.Health(ctx)
	}
	return &HealthStatus{
		LastError: "Database not initialized",
	}
}

// GetDatabaseStats returns global database statistics.
func GetDatabaseStats() *DBStats {
	if s := GetStore(); s != nil {
		return s.Stats()
	}
	return &DBStats{}
}

// RunMigrations creates the forum schema on the global database.
func RunMigrations(ctx context.Context) error {
	s := GetStore()
	if s == nil {
		return fmt.Errorf("database not initialized")
	}
	return s.Migrate(ctx)
}

// InitData seeds the global database using the configured environment,
// "prod" when none is set.
func InitData(ctx context.Context) error {
	s := GetStore()
	if s == nil {
		return fmt.Errorf("database not initialized")
	}
	return s.Seed(ctx)
}
