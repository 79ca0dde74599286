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

package qaforum

import (
	"context"
	"sync"

	"github.com/tomoncle/qaforum/database"
	"github.com/tomoncle/qaforum/repository"
	"github.com/tomoncle/qaforum/types"
	"github.com/uptrace/bun"
)

type Service[T any] interface {
	// Get returns a single entity by its identifier.
	Get(ctx context.Context, id any) (*T, error)

	// All returns all entities ordered by id.
	All(ctx context.Context) ([]*T, error)

	// List returns entities that match the provided filter.
	List(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Query filters entities with a WHERE fragment.
	Query(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	// Raw executes a complete statement and maps the rows to entities.
	Raw(ctx context.Context, query string, args ...interface{}) ([]*T, error)

	// Page returns a paginated list of entities.
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)

	// SelectBuilder returns a Bun select query builder for the entity.
	SelectBuilder() (*bun.SelectQuery, error)
}

type baseServiceImpl[T any] struct {
	db   bun.IDB
	repo repository.Repository[T]
	err  error
	once sync.Once
}

// NewService returns a Service bound to the process-wide store, which is
// opened on first use.
func NewService[T any]() Service[T] {
	return &baseServiceImpl[T]{}
}

// NewServiceWithDB returns a Service bound to db.
func NewServiceWithDB[T any](db bun.IDB) Service[T] {
	return &baseServiceImpl[T]{db: db}
}

func (s *baseServiceImpl[T]) baseRepo() (repository.Repository[T], error) {
	s.once.Do(func() {
		db := s.db
		if db == nil {
			db, s.err = database.Default()
			if s.err != nil {
				return
			}
		}
		s.repo = repository.NewRepository[T](db)
	})
	return s.repo, s.err
}

func (s *baseServiceImpl[T]) Get(ctx context.Context, id any) (*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.GetOne(ctx, id)
}

func (s *baseServiceImpl[T]) All(ctx context.Context) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.GetAll(ctx)
}

func (s *baseServiceImpl[T]) List(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, filter)
}

func (s *baseServiceImpl[T]) Query(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.Query(ctx, query, args...)
}

func (s *baseServiceImpl[T]) Raw(ctx context.Context, query string, args ...interface{}) ([]*T, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.Raw(ctx, query, args...)
}

func (s *baseServiceImpl[T]) Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.Page(ctx, page)
}

func (s *baseServiceImpl[T]) SelectBuilder() (*bun.SelectQuery, error) {
	repo, err := s.baseRepo()
	if err != nil {
		return nil, err
	}
	return repo.NewSelect(), nil
}
