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
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"sync/atomic"
	"time"

	"github.com/fatih/color"
	"github.com/uptrace/bun"
)

var (
	bunSqlSilentMode atomic.Bool

	hookPrefixColor = color.New(color.FgCyan)
	queryErrorColor = color.New(color.BgRed)
	otherQueryColor = color.New(color.FgRed)
	queryColors     = map[string]*color.Color{
		"SELECT": color.New(color.FgGreen),
		"INSERT": color.New(color.FgBlue),
		"UPDATE": color.New(color.FgYellow),
		"DELETE": color.New(color.FgMagenta),
	}
)

// EnableBunSqlSilent mutes QueryHook and SlowQueryHook, e.g. while the
// schema is being created.
func EnableBunSqlSilent(b bool) {
	bunSqlSilentMode.Store(b)
}

// QueryHook prints every query in color. The environment variable named by
// envName overrides the static settings: "0" disables, "1" logs failed
// queries only, "2" logs everything.
type QueryHook struct {
	envName string
	enabled bool
	verbose bool
	writer  io.Writer
}

var _ bun.QueryHook = (*QueryHook)(nil)

func NewQueryHook(writer io.Writer, envName string, verbose bool) *QueryHook {
	if writer == nil {
		writer = os.Stdout
	}
	return &QueryHook{
		envName: envName,
		enabled: true,
		verbose: verbose,
		writer:  writer,
	}
}

func (h *QueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *QueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if bunSqlSilentMode.Load() {
		return
	}
	enabled := h.enabled
	verbose := h.verbose
	if env, ok := os.LookupEnv(h.envName); ok && h.envName != "" {
		enabled = env != "" && env != "0"
		verbose = env == "2"
	}

	if !enabled {
		return
	}

	if !verbose {
		switch {
		case event.Err == nil, errors.Is(event.Err, sql.ErrNoRows), errors.Is(event.Err, sql.ErrTxDone):
			return
		}
	}

	now := time.Now()
	dur := now.Sub(event.StartTime)

	args := []interface{}{
		now.Format("2006-01-02 15:04:05.000"),
		hookPrefixColor.Sprintf("%10s", "[QAFORUM]"),
		fmt.Sprintf("%12s", dur.Round(time.Microsecond)),
		"  ", formatOperationColor(event),
	}

	if event.Err != nil {
		typ := reflect.TypeOf(event.Err).String()
		args = append(args,
			"\t",
			queryErrorColor.Sprintf(" %s ", typ+": "+event.Err.Error()),
		)
	}
	_, _ = fmt.Fprintln(h.writer, args...)
}

func formatOperationColor(event *bun.QueryEvent) string {
	c, ok := queryColors[event.Operation()]
	if !ok {
		c = otherQueryColor
	}
	return c.Sprint(event.Query)
}

// SlowQueryHook warns through the database logger about successful queries
// slower than slowTime.
type SlowQueryHook struct {
	slowTime time.Duration
	logger   Logger
}

var _ bun.QueryHook = (*SlowQueryHook)(nil)

func NewSlowQueryHook(slowTime time.Duration, logger Logger) *SlowQueryHook {
	return &SlowQueryHook{slowTime: slowTime, logger: logger}
}

func (h *SlowQueryHook) BeforeQuery(ctx context.Context, event *bun.QueryEvent) context.Context {
	return ctx
}

func (h *SlowQueryHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	if bunSqlSilentMode.Load() || event.Err != nil || h.logger == nil {
		return
	}

	duration := time.Since(event.StartTime)
	if duration > h.slowTime {
		h.logger.Warn(color.YellowString("Database slow query detected"),
			"duration", duration.Round(time.Microsecond),
			"slow_threshold", h.slowTime,
			"query", event.Query,
		)
	}
}
