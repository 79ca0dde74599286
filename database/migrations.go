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
	"sort"
	"time"

	"github.com/tomoncle/qaforum/utils"
	"github.com/uptrace/bun"
)

// MigrationManager creates the forum schema and records applied versions.
type MigrationManager struct {
	db     *bun.DB
	logger Logger
	config DataMigrateConfig
}

// Migration represents an applied migration record stored in the database.
type Migration struct {
	bun.BaseModel `bun:"table:schema_migrations,alias:sm"`

	Version     string    `bun:"version,pk"`
	Name        string    `bun:"name"`
	AppliedAt   time.Time `bun:"applied_at"`
	Description string    `bun:"description"`
}

// MigrationFunc is a migration step executed within a transaction.
type MigrationFunc func(ctx context.Context, db bun.IDB) error

// MigrationItem describes a single migration version.
type MigrationItem struct {
	Version     string
	Name        string
	Description string
	Up          MigrationFunc
}

// NewMigrationManager constructs a MigrationManager with foreign keys enabled.
func NewMigrationManager(db *bun.DB, logger Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
		config: DataMigrateConfig{EnableForeignKey: true},
	}
}

func (mm *MigrationManager) SetMigrateConfig(cfg DataMigrateConfig) {
	mm.config = cfg
}

// RunMigrations creates the migration tracking table if needed and executes
// every pending migration in ascending version order. Applied versions are
// skipped, so running it twice is harmless.
func (mm *MigrationManager) RunMigrations(ctx context.Context) error {
	if mm.db == nil {
		return fmt.Errorf("database not initialized")
	}

	// silent migration
	if !utils.EnvDefaultBool("BUNDEBUG_MIGRATION", false) {
		EnableBunSqlSilent(true)
		defer EnableBunSqlSilent(false)
	}

	if err := mm.createMigrationTable(ctx); err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	migrations := mm.getAllMigrations()
	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	for _, migration := range migrations {
		if err := mm.runMigration(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", migration.Version, err)
		}
	}

	if mm.logger != nil {
		mm.logger.Info("Database migrations completed!")
	}
	return nil
}

func (mm *MigrationManager) createMigrationTable(ctx context.Context) error {
	_, err := mm.db.NewCreateTable().
		Model((*Migration)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (mm *MigrationManager) getAllMigrations() []MigrationItem {
	return []MigrationItem{
		{
			Version:     "001",
			Name:        "create_forum_tables",
			Description: "Create users, questions, replies, question_follows and question_likes",
			Up:          mm.createForumTables,
		},
	}
}

func (mm *MigrationManager) runMigration(ctx context.Context, migration MigrationItem) error {
	exists, err := mm.db.NewSelect().
		Model((*Migration)(nil)).
		Where("version = ?", migration.Version).
		Exists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	err = mm.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := migration.Up(ctx, tx); err != nil {
			return err
		}
		_, err := tx.NewInsert().
			Model(&Migration{
				Version:     migration.Version,
				Name:        migration.Name,
				AppliedAt:   time.Now(),
				Description: migration.Description,
			}).
			Exec(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if mm.logger != nil {
		mm.logger.Info("Migration executed successfully", "version", migration.Version, "name", migration.Name)
	}
	return nil
}

func (mm *MigrationManager) foreignKeyManager() (*ForeignKeyManager, error) {
	fkm := NewForeignKeyManagerFromFile(mm.logger, mm.config.ForeignKeyFile)
	if errs := fkm.ValidateConstraints(); len(errs) > 0 {
		for _, err := range errs {
			if mm.logger != nil {
				mm.logger.Debug("Foreign key constraint validation failed", "error", err.Error())
			}
		}
		return nil, fmt.Errorf("foreign key constraint validation failed, %d errors in total", len(errs))
	}
	return fkm, nil
}

func (mm *MigrationManager) createForumTables(ctx context.Context, db bun.IDB) error {
	var fkm *ForeignKeyManager
	if mm.config.EnableForeignKey {
		var err error
		if fkm, err = mm.foreignKeyManager(); err != nil {
			return err
		}
	}

	for _, model := range GetRegisteredModels() {
		query := db.NewCreateTable().
			Model(model.Instance()).
			IfNotExists()
		if fkm != nil {
			for _, fk := range fkm.GetConstraintsByTable(model.Table()) {
				clause, args := fk.Clause()
				query = query.ForeignKey(clause, args...)
			}
		}
		if _, err := query.Exec(ctx); err != nil {
			if is, code := IsSqlError(err); is && code == ExistTableErr {
				continue
			}
			return fmt.Errorf("failed to create table %s: %w", model.Table(), err)
		}
		if mm.logger != nil {
			mm.logger.Debug("Table ready", "table", model.Table())
		}
	}
	return nil
}

// GetAppliedMigrations returns migration records ordered by version.
func (mm *MigrationManager) GetAppliedMigrations(ctx context.Context) ([]Migration, error) {
	var migrations []Migration
	err := mm.db.NewSelect().
		Model(&migrations).
		Order("version ASC").
		Scan(ctx)
	return migrations, err
}
