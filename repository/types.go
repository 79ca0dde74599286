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

package repository

import (
	"context"
	"errors"

	"github.com/tomoncle/qaforum/types"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

var (
	// ErrNoParent is returned when a parent is requested for a root reply.
	ErrNoParent = errors.New("reply has no parent")
	// ErrNotImplemented marks operations that exist only as hooks.
	ErrNotImplemented = errors.New("not implemented")
)

// FinderRepository defines read operations for a generic entity type.
type FinderRepository[T any] interface {
	GetOne(ctx context.Context, id any) (*T, error)

	GetAll(ctx context.Context) ([]*T, error)

	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	// Raw runs a complete SQL statement and maps every row onto T by column name.
	Raw(ctx context.Context, query string, args ...interface{}) ([]*T, error)
}

// PageQueryRepository defines pagination functionality for listing entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines lookups and pagination and exposes the Bun select
// builder for ad hoc reads.
type Repository[T any] interface {
	FinderRepository[T]
	PageQueryRepository[T]
	Dialect() schema.Dialect
	NewSelect() *bun.SelectQuery
}
