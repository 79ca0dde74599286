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
	"fmt"

	"github.com/tomoncle/qaforum/model"
	"github.com/uptrace/bun"
)

const (
	sqlRepliesByID         = `SELECT * FROM replies WHERE id = ?`
	sqlRepliesByUserID     = `SELECT * FROM replies WHERE user_id = ?`
	sqlRepliesByQuestionID = `SELECT * FROM replies WHERE question_id = ?`
	sqlRepliesByParentID   = `SELECT * FROM replies WHERE parent_id = ?`
)

// ReplyRepository finds replies and walks the reply tree.
type ReplyRepository struct {
	Repository[model.Reply]
	db bun.IDB
}

// NewReplyRepository returns a ReplyRepository reading through db.
func NewReplyRepository(db bun.IDB) *ReplyRepository {
	return &ReplyRepository{Repository: NewRepository[model.Reply](db), db: db}
}

func (r *ReplyRepository) FindByID(ctx context.Context, id int64) ([]*model.Reply, error) {
	return scanRows[model.Reply](ctx, r.db, sqlRepliesByID, id)
}

func (r *ReplyRepository) FindByUserID(ctx context.Context, userID int64) ([]*model.Reply, error) {
	return scanRows[model.Reply](ctx, r.db, sqlRepliesByUserID, userID)
}

func (r *ReplyRepository) FindByQuestionID(ctx context.Context, questionID int64) ([]*model.Reply, error) {
	return scanRows[model.Reply](ctx, r.db, sqlRepliesByQuestionID, questionID)
}

func (r *ReplyRepository) Author(ctx context.Context, reply *model.Reply) ([]*model.User, error) {
	return NewUserRepository(r.db).FindByID(ctx, reply.UserID)
}

func (r *ReplyRepository) Question(ctx context.Context, reply *model.Reply) ([]*model.Question, error) {
	return NewQuestionRepository(r.db).FindByID(ctx, reply.QuestionID)
}

// ParentReply returns the replies whose parent_id equals reply.ParentID, that
// is reply and its siblings, not the parent itself. Existing callers depend on
// this; use Parent for the actual parent row.
func (r *ReplyRepository) ParentReply(ctx context.Context, reply *model.Reply) ([]*model.Reply, error) {
	if reply.IsRoot() {
		return nil, fmt.Errorf("%w: reply %d", ErrNoParent, reply.ID)
	}
	return scanRows[model.Reply](ctx, r.db, sqlRepliesByParentID, *reply.ParentID)
}

func (r *ReplyRepository) Parent(ctx context.Context, reply *model.Reply) ([]*model.Reply, error) {
	if reply.IsRoot() {
		return nil, fmt.Errorf("%w: reply %d", ErrNoParent, reply.ID)
	}
	return r.FindByID(ctx, *reply.ParentID)
}

func (r *ReplyRepository) ChildReplies(ctx context.Context, reply *model.Reply) ([]*model.Reply, error) {
	return scanRows[model.Reply](ctx, r.db, sqlRepliesByParentID, reply.ID)
}
