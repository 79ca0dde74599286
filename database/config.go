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
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overlaid by LoadConfig,
// e.g. QAFORUM_CONNECTION_CONFIG_HOST.
const EnvPrefix = "QAFORUM"

// LoadConfig reads the configuration file at path (any format viper
// understands), overlays QAFORUM_* environment variables, and validates the
// result. Variables from an optional .env file in the working directory are
// loaded first. An empty path loads defaults and environment only.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v, DefaultConfig())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ValidateConfig normalizes dialect aliases and checks the connection section.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("database configuration cannot be empty")
	}
	return ValidateConnectionConfig(&cfg.ConnectionConfig)
}

// ValidateConnectionConfig normalizes cfg.Type ("postgresql" and "sqlite3"
// are accepted) and validates the struct tags.
func ValidateConnectionConfig(cfg *ConnectionConfig) error {
	cfg.Type = normalizeType(cfg.Type)
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid database configuration: %w", err)
	}
	return nil
}

func normalizeType(t string) string {
	switch strings.ToLower(strings.TrimSpace(t)) {
	case "postgresql":
		return "postgres"
	case "sqlite3":
		return "sqlite"
	default:
		return strings.ToLower(strings.TrimSpace(t))
	}
}

// setConfigDefaults registers every key so AutomaticEnv can resolve it.
func setConfigDefaults(v *viper.Viper, cfg *Config) {
	c := cfg.ConnectionConfig
	v.SetDefault("connection_config.type", c.Type)
	v.SetDefault("connection_config.host", c.Host)
	v.SetDefault("connection_config.port", c.Port)
	v.SetDefault("connection_config.username", c.Username)
	v.SetDefault("connection_config.password", c.Password)
	v.SetDefault("connection_config.dbname", c.DBName)
	v.SetDefault("connection_config.sslmode", c.SSLMode)
	v.SetDefault("connection_config.max_idle_conns", c.MaxIdleConns)
	v.SetDefault("connection_config.max_open_conns", c.MaxOpenConns)
	v.SetDefault("connection_config.conn_max_lifetime", c.ConnMaxLifetime)
	v.SetDefault("connection_config.conn_max_idle_time", c.ConnMaxIdleTime)
	v.SetDefault("connection_config.connect_timeout", c.ConnectTimeout)
	v.SetDefault("connection_config.read_timeout", c.ReadTimeout)
	v.SetDefault("connection_config.write_timeout", c.WriteTimeout)
	v.SetDefault("connection_config.enable_query_log", c.EnableQueryLog)
	v.SetDefault("connection_config.query_log_format", c.QueryLogFormat)
	v.SetDefault("connection_config.slow_query_time", c.SlowQueryTime)

	m := cfg.DataMigrateConfig
	v.SetDefault("data_migrate_config.enable_migrate_on_startup", m.EnableMigrateOnStartup)
	v.SetDefault("data_migrate_config.enable_foreign_key", m.EnableForeignKey)
	v.SetDefault("data_migrate_config.foreign_key_file", m.ForeignKeyFile)

	d := cfg.DataInitConfig
	v.SetDefault("data_init_config.auto_init_on_startup", d.AutoInitOnStartup)
	v.SetDefault("data_init_config.filepath", d.Filepath)
	v.SetDefault("data_init_config.environment", d.Environment)
}
