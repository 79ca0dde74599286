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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/uptrace/bun"
	"gopkg.in/yaml.v3"
)

// ForeignKeyConstraint describes a foreign key relationship between tables.
type ForeignKeyConstraint struct {
	Table           string `yaml:"table"`
	Column          string `yaml:"column"`
	ReferenceTable  string `yaml:"reference_table"`
	ReferenceColumn string `yaml:"reference_column"`
	OnDelete        string `yaml:"on_delete,omitempty"` // CASCADE, RESTRICT, SET NULL, NO ACTION
	OnUpdate        string `yaml:"on_update,omitempty"`
	ConstraintName  string `yaml:"constraint_name,omitempty"`
}

// GenerateConstraintName returns the explicit name or a derived name.
func (fk *ForeignKeyConstraint) GenerateConstraintName() string {
	if fk.ConstraintName != "" {
		return fk.ConstraintName
	}
	return fmt.Sprintf("fk_%s_%s", fk.Table, fk.Column)
}

// Clause returns the constraint body accepted by CREATE TABLE, e.g.
// `("author_id") REFERENCES "users" ("id") ON DELETE CASCADE`, with the
// identifiers left as placeholders for the dialect to quote. Constraints are
// declared at creation time because SQLite cannot add them later.
func (fk *ForeignKeyConstraint) Clause() (string, []interface{}) {
	clause := "(?) REFERENCES ? (?)"
	if fk.OnDelete != "" {
		clause += " ON DELETE " + strings.ToUpper(fk.OnDelete)
	}
	if fk.OnUpdate != "" {
		clause += " ON UPDATE " + strings.ToUpper(fk.OnUpdate)
	}
	return clause, []interface{}{bun.Ident(fk.Column), bun.Ident(fk.ReferenceTable), bun.Ident(fk.ReferenceColumn)}
}

// ForeignKeyConfig is the YAML structure that lists foreign key constraints.
type ForeignKeyConfig struct {
	ForeignKeys []ForeignKeyConstraint `yaml:"foreign_keys"`
}

// ForeignKeyManager holds the constraints applied when tables are created.
type ForeignKeyManager struct {
	constraints []ForeignKeyConstraint
	logger      Logger
}

// NewForeignKeyManager creates a manager with the forum schema constraints.
func NewForeignKeyManager(logger Logger) *ForeignKeyManager {
	return &ForeignKeyManager{
		constraints: getForeignKeyConstraints(),
		logger:      logger,
	}
}

// NewForeignKeyManagerFromFile loads constraints from a YAML file, falling
// back to the code-defined ones when the file is missing or unreadable.
func NewForeignKeyManagerFromFile(logger Logger, path string) *ForeignKeyManager {
	fkm := NewForeignKeyManager(logger)
	if path == "" {
		return fkm
	}
	constraints, err := LoadForeignKeyConfig(path)
	if err != nil {
		if logger != nil {
			logger.Debug("Failed to load foreign key constraints from config, using code-defined defaults", "error", err.Error(), "config_path", path)
		}
		return fkm
	}
	fkm.constraints = constraints
	return fkm
}

func getForeignKeyConstraints() []ForeignKeyConstraint {
	return []ForeignKeyConstraint{
		{Table: "questions", Column: "author_id", ReferenceTable: "users", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "replies", Column: "question_id", ReferenceTable: "questions", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "replies", Column: "user_id", ReferenceTable: "users", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "replies", Column: "parent_id", ReferenceTable: "replies", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "question_follows", Column: "question_id", ReferenceTable: "questions", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "question_follows", Column: "user_id", ReferenceTable: "users", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "question_likes", Column: "question_id", ReferenceTable: "questions", ReferenceColumn: "id", OnDelete: "CASCADE"},
		{Table: "question_likes", Column: "user_id", ReferenceTable: "users", ReferenceColumn: "id", OnDelete: "CASCADE"},
	}
}

// GetConstraintsByTable returns the constraints defined for a table.
func (fkm *ForeignKeyManager) GetConstraintsByTable(tableName string) []ForeignKeyConstraint {
	var result []ForeignKeyConstraint
	for _, constraint := range fkm.constraints {
		if strings.EqualFold(constraint.Table, tableName) {
			result = append(result, constraint)
		}
	}
	return result
}

// ListAllConstraints returns all configured constraints.
func (fkm *ForeignKeyManager) ListAllConstraints() []ForeignKeyConstraint {
	return fkm.constraints
}

// ValidateConstraints checks the configured constraints for common issues.
func (fkm *ForeignKeyManager) ValidateConstraints() []error {
	var errs []error
	validActions := []string{"CASCADE", "RESTRICT", "SET NULL", "NO ACTION"}

	for _, constraint := range fkm.constraints {
		if constraint.Table == "" {
			errs = append(errs, fmt.Errorf("table name cannot be empty"))
		}
		if constraint.Column == "" {
			errs = append(errs, fmt.Errorf("column name cannot be empty: %s", constraint.Table))
		}
		if constraint.ReferenceTable == "" {
			errs = append(errs, fmt.Errorf("reference table name cannot be empty: %s.%s", constraint.Table, constraint.Column))
		}
		if constraint.ReferenceColumn == "" {
			errs = append(errs, fmt.Errorf("reference column name cannot be empty: %s.%s -> %s", constraint.Table, constraint.Column, constraint.ReferenceTable))
		}
		for _, policy := range []string{constraint.OnDelete, constraint.OnUpdate} {
			if policy == "" {
				continue
			}
			valid := false
			for _, action := range validActions {
				if strings.EqualFold(policy, action) {
					valid = true
					break
				}
			}
			if !valid {
				errs = append(errs, fmt.Errorf("invalid referential action: %s, constraint: %s", policy, constraint.GenerateConstraintName()))
			}
		}
	}

	return errs
}

// LoadForeignKeyConfig reads constraints from a YAML file.
func LoadForeignKeyConfig(path string) ([]ForeignKeyConstraint, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config ForeignKeyConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config.ForeignKeys, nil
}

// ExportForeignKeyConfig writes the manager's constraints as YAML to
// outputPath, creating directories as needed.
func (fkm *ForeignKeyManager) ExportForeignKeyConfig(outputPath string) error {
	data, err := yaml.Marshal(&ForeignKeyConfig{ForeignKeys: fkm.constraints})
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
