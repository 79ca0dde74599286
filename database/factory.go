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

	"github.com/spf13/viper"
	"github.com/uptrace/bun"
)

// connectionEnv binds connection keys to the deployment variables that
// override them.
var connectionEnv = map[string]string{
	"host":              "DB_HOST",
	"port":              "DB_PORT",
	"username":          "DB_USERNAME",
	"password":          "DB_PASSWORD",
	"dbname":            "DB_NAME",
	"sslmode":           "DB_SSLMODE",
	"max_idle_conns":    "DB_MAX_IDLE_CONNS",
	"max_open_conns":    "DB_MAX_OPEN_CONNS",
	"conn_max_lifetime": "DB_CONN_MAX_LIFETIME",
	"enable_query_log":  "DB_ENABLE_QUERY_LOG",
}

// ApplyConnectionEnv overlays the DB_* variables that are set onto cfg and
// leaves every other field alone. DB_CONN_MAX_LIFETIME takes a duration
// such as "90s".
func ApplyConnectionEnv(cfg *ConnectionConfig) error {
	v := viper.New()
	for key, env := range connectionEnv {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to decode DB_* overrides: %w", err)
	}
	return nil
}

// MemoryConfig returns a Config for a private in-memory SQLite store whose
// schema is created on open. Nothing is seeded.
func MemoryConfig() *Config {
	cfg := DefaultConfig()
	cfg.ConnectionConfig.Type = "sqlite"
	cfg.ConnectionConfig.DBName = MemoryDBName
	cfg.DataMigrateConfig.EnableMigrateOnStartup = true
	return cfg
}

// Store is a connected forum store and the configuration it was opened with.
type Store struct {
	manager AbstractDatabaseManager
	cfg     Config
	logger  Logger
}

// OpenStore resolves cfg and connects to it exactly once. DB_* variables
// override the connection section and a sqlite store without a file name is
// kept in memory. After connecting, the schema is created and seed files
// are executed when cfg enables them. Any failure closes the connection;
// nothing is retried. The caller's cfg is not modified.
func OpenStore(ctx context.Context, cfg *Config, logger Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("database configuration cannot be empty")
	}
	if logger == nil {
		logger = GetLogger()
	}

	s := &Store{cfg: *cfg, logger: logger}
	conn := &s.cfg.ConnectionConfig
	if err := ApplyConnectionEnv(conn); err != nil {
		return nil, err
	}
	if normalizeType(conn.Type) == "sqlite" && conn.DBName == "" {
		conn.DBName = MemoryDBName
	}
	if err := ValidateConnectionConfig(conn); err != nil {
		return nil, err
	}

	s.manager = NewDatabaseManager(conn)
	s.manager.SetLogger(logger)
	if err := s.manager.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	s.manager.GetDB().RegisterModel(RegisteredModelInstances()...)

	if s.cfg.DataMigrateConfig.EnableMigrateOnStartup {
		if err := s.Migrate(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
	}
	if s.cfg.DataInitConfig.AutoInitOnStartup {
		if err := s.Seed(ctx); err != nil {
			_ = s.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
	}
	logger.Info("Forum store ready", "type", conn.Type, "dbname", conn.DBName)
	return s, nil
}

// Migrate creates the forum schema with the store's migration settings.
func (s *Store) Migrate(ctx context.Context) error {
	db := s.DB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	mm := NewMigrationManager(db, s.logger)
	mm.SetMigrateConfig(s.cfg.DataMigrateConfig)
	return mm.RunMigrations(ctx)
}

// Seed runs the SQL seed files for the configured environment, "prod" when
// none is set.
func (s *Store) Seed(ctx context.Context) error {
	db := s.DB()
	if db == nil {
		return fmt.Errorf("database not initialized")
	}
	env := s.cfg.DataInitConfig.Environment
	if env == "" {
		env = "prod"
	}
	seeder := NewSQLInitManager(db, env)
	seeder.SetLogger(s.logger)
	if s.cfg.DataInitConfig.Filepath != "" {
		seeder.SetSQLRootPath(s.cfg.DataInitConfig.Filepath)
	}
	return seeder.ExecuteInitialization(ctx)
}

// Config returns the resolved configuration, overrides and defaults applied.
func (s *Store) Config() Config {
	return s.cfg
}

func (s *Store) Manager() AbstractDatabaseManager {
	return s.manager
}

// DB returns the Bun handle, or nil once the store is closed.
func (s *Store) DB() *bun.DB {
	return s.manager.GetDB()
}

func (s *Store) Health(ctx context.Context) *HealthStatus {
	return s.manager.HealthCheck(ctx)
}

func (s *Store) Stats() *DBStats {
	return s.manager.GetStats()
}

// Close disconnects the store. Closing twice is harmless.
func (s *Store) Close() error {
	return s.manager.Disconnect()
}
