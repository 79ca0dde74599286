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

	"github.com/tomoncle/qaforum/model"
	"github.com/uptrace/bun"
)

const (
	sqlUsersByID   = `SELECT * FROM users WHERE id = ?`
	sqlUsersByName = `SELECT * FROM users WHERE fname = ? AND lname = ?`
)

// UserRepository finds users and navigates from a user to the content they
// wrote, followed or liked.
type UserRepository struct {
	Repository[model.User]
	db bun.IDB
}

// NewUserRepository returns a UserRepository reading through db.
func NewUserRepository(db bun.IDB) *UserRepository {
	return &UserRepository{Repository: NewRepository[model.User](db), db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) ([]*model.User, error) {
	return scanRows[model.User](ctx, r.db, sqlUsersByID, id)
}

// FindByName matches first and last name exactly, case-sensitive on stores
// that compare that way.
func (r *UserRepository) FindByName(ctx context.Context, fname, lname string) ([]*model.User, error) {
	return scanRows[model.User](ctx, r.db, sqlUsersByName, fname, lname)
}

func (r *UserRepository) AuthoredQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	return NewQuestionRepository(r.db).FindByAuthorID(ctx, u.ID)
}

func (r *UserRepository) AuthoredReplies(ctx context.Context, u *model.User) ([]*model.Reply, error) {
	return NewReplyRepository(r.db).FindByUserID(ctx, u.ID)
}

func (r *UserRepository) FollowedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	return NewQuestionFollowRepository(r.db).FollowersForUserID(ctx, u.ID)
}

func (r *UserRepository) LikedQuestions(ctx context.Context, u *model.User) ([]*model.Question, error) {
	return NewQuestionLikeRepository(r.db).LikedQuestionsForUserID(ctx, u.ID)
}

// AverageKarma is reserved for a per-user score derived from likes received.
// It always fails with ErrNotImplemented.
func (r *UserRepository) AverageKarma(_ context.Context, _ *model.User) (float64, error) {
	return 0, ErrNotImplemented
}
