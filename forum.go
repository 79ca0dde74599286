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
	"sync"

	"github.com/tomoncle/qaforum/database"
	"github.com/tomoncle/qaforum/repository"
	"github.com/uptrace/bun"
)

// Forum groups the entity repositories over one store handle.
type Forum struct {
	Users           *repository.UserRepository
	Questions       *repository.QuestionRepository
	Replies         *repository.ReplyRepository
	QuestionFollows *repository.QuestionFollowRepository
	QuestionLikes   *repository.QuestionLikeRepository

	db bun.IDB
}

// New returns a Forum reading through db. Passing a bun.Tx scopes every
// lookup to that transaction.
func New(db bun.IDB) *Forum {
	return &Forum{
		Users:           repository.NewUserRepository(db),
		Questions:       repository.NewQuestionRepository(db),
		Replies:         repository.NewReplyRepository(db),
		QuestionFollows: repository.NewQuestionFollowRepository(db),
		QuestionLikes:   repository.NewQuestionLikeRepository(db),
		db:              db,
	}
}

func (f *Forum) DB() bun.IDB {
	return f.db
}

var (
	defaultForumMu sync.Mutex
	defaultForum   *Forum
)

// Default returns a Forum over the process-wide store. The handle is
// resolved through database.Default on every call, so after
// database.CloseDB it returns that error instead of a Forum over a closed
// connection. The Forum is reused while the handle stays the same.
func Default() (*Forum, error) {
	db, err := database.Default()
	if err != nil {
		return nil, err
	}
	defaultForumMu.Lock()
	defer defaultForumMu.Unlock()
	if defaultForum == nil || defaultForum.db != bun.IDB(db) {
		defaultForum = New(db)
	}
	return defaultForum, nil
}
