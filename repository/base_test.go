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
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/qaforum/model"
	"github.com/tomoncle/qaforum/types"
	"github.com/uptrace/bun/dialect"
)

func TestRepositoryGetOne(t *testing.T) {
	repo := NewRepository[model.User](seedForum(t))
	ctx := context.Background()

	u, err := repo.GetOne(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Turing", u.LName)

	_, err = repo.GetOne(ctx, 404)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepositoryListAndQuery(t *testing.T) {
	repo := NewRepository[model.Question](seedForum(t))
	ctx := context.Background()

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 11, 12}, questionIDs(all))

	listed, err := repo.List(ctx, types.NewQueryFilter("author_id IN (?, ?)", 1, 3))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 12}, questionIDs(listed))

	listed, err = repo.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, listed, 3)

	queried, err := repo.Query(ctx, "title = ?", "Halting")
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, questionIDs(queried))
}

func TestRepositoryRaw(t *testing.T) {
	db := seedForum(t)
	repo := NewRepository[model.Reply](db)
	ctx := context.Background()

	replies, err := repo.Raw(ctx, "SELECT * FROM replies WHERE question_id = ? AND parent_id IS NULL", 10)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, replyIDs(replies))

	replies, err = repo.Raw(ctx, "SELECT * FROM replies WHERE question_id = ?", 404)
	require.NoError(t, err)
	assert.NotNil(t, replies)
	assert.Empty(t, replies)

	_, err = repo.Raw(ctx, "SELECT * FROM no_such_table")
	assert.Error(t, err)

	assert.Equal(t, dialect.SQLite, repo.Dialect().Name())
	assert.NotNil(t, repo.NewSelect())
}

func TestRepositoryPropagatesStoreErrors(t *testing.T) {
	db := seedForum(t)
	require.NoError(t, db.Close())

	_, err := NewUserRepository(db).FindByName(context.Background(), "Ada", "Lovelace")
	assert.Error(t, err)
}
