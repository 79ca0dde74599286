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
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tomoncle/qaforum/database"
	"github.com/tomoncle/qaforum/model"
	"github.com/uptrace/bun"
)

func ptr(v int64) *int64 { return &v }

// newTestDB returns a private in-memory store with the forum schema.
func newTestDB(t *testing.T) *bun.DB {
	t.Helper()
	store, err := database.OpenStore(context.Background(), database.MemoryConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.DB()
}

func insertAll(t *testing.T, db bun.IDB, models ...interface{}) {
	t.Helper()
	for _, m := range models {
		_, err := db.NewInsert().Model(m).Exec(context.Background())
		require.NoError(t, err)
	}
}

// seedForum loads a small forum:
//
//	users      1 Ada Lovelace, 2 Alan Turing, 3 Grace Hopper, 4 Edsger Dijkstra
//	questions  10 by 1, 11 by 2, 12 by 3
//	replies    5 on 10 by 2 (root), 6 and 7 on 10 under 5, 8 on 11 by 1 (root)
//	follows    10 by 2,3,4; 11 by 1,3; 12 by 2
//	likes      10 by 2,3; 11 by 1,2,4
func seedForum(t *testing.T) *bun.DB {
	t.Helper()
	db := newTestDB(t)
	insertAll(t, db,
		&[]*model.User{
			{ID: 1, FName: "Ada", LName: "Lovelace"},
			{ID: 2, FName: "Alan", LName: "Turing"},
			{ID: 3, FName: "Grace", LName: "Hopper"},
			{ID: 4, FName: "Edsger", LName: "Dijkstra"},
		},
		&[]*model.Question{
			{ID: 10, Title: "Title", Body: "Body", AuthorID: 1},
			{ID: 11, Title: "Halting", Body: "Does every program stop?", AuthorID: 2},
			{ID: 12, Title: "Compilers", Body: "Who wrote the first one?", AuthorID: 3},
		},
		&[]*model.Reply{
			{ID: 5, QuestionID: 10, UserID: 2, Body: "Engines can weave patterns."},
			{ID: 6, QuestionID: 10, UserID: 3, Body: "So can looms.", ParentID: ptr(5)},
			{ID: 7, QuestionID: 10, UserID: 4, Body: "Only if they terminate.", ParentID: ptr(5)},
			{ID: 8, QuestionID: 11, UserID: 1, Body: "Not in general.", SubjectQuestion: true},
		},
		&[]*model.QuestionFollow{
			{QuestionID: 10, UserID: 2},
			{QuestionID: 10, UserID: 3},
			{QuestionID: 10, UserID: 4},
			{QuestionID: 11, UserID: 1},
			{QuestionID: 11, UserID: 3},
			{QuestionID: 12, UserID: 2},
		},
		&[]*model.QuestionLike{
			{QuestionID: 10, UserID: 2},
			{QuestionID: 10, UserID: 3},
			{QuestionID: 11, UserID: 1},
			{QuestionID: 11, UserID: 2},
			{QuestionID: 11, UserID: 4},
		},
	)
	return db
}

func userIDs(users []*model.User) []int64 {
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func questionIDs(questions []*model.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func replyIDs(replies []*model.Reply) []int64 {
	ids := make([]int64, 0, len(replies))
	for _, r := range replies {
		ids = append(ids, r.ID)
	}
	return ids
}
