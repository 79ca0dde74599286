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

// DefaultMostFollowed is the ranking size used when the caller has no
// preference.
const DefaultMostFollowed = 1

const (
	sqlQuestionsByID       = `SELECT * FROM questions WHERE id = ?`
	sqlQuestionsByAuthorID = `SELECT * FROM questions WHERE author_id = ?`
)

// QuestionRepository finds questions and their authors, replies, followers
// and likers.
type QuestionRepository struct {
	Repository[model.Question]
	db bun.IDB
}

// NewQuestionRepository returns a QuestionRepository reading through db.
func NewQuestionRepository(db bun.IDB) *QuestionRepository {
	return &QuestionRepository{Repository: NewRepository[model.Question](db), db: db}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id int64) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlQuestionsByID, id)
}

// FindByUserID filters on the question's own id, not its author. Use
// FindByAuthorID to list the questions a user wrote.
func (r *QuestionRepository) FindByUserID(ctx context.Context, id int64) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlQuestionsByID, id)
}

func (r *QuestionRepository) FindByAuthorID(ctx context.Context, authorID int64) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlQuestionsByAuthorID, authorID)
}

func (r *QuestionRepository) MostFollowed(ctx context.Context, n int) ([]*model.Question, error) {
	return NewQuestionFollowRepository(r.db).MostFollowedQuestions(ctx, n)
}

func (r *QuestionRepository) MostLiked(ctx context.Context, n int) ([]*model.Question, error) {
	return NewQuestionLikeRepository(r.db).MostLikedQuestions(ctx, n)
}

func (r *QuestionRepository) Author(ctx context.Context, q *model.Question) ([]*model.User, error) {
	return NewUserRepository(r.db).FindByID(ctx, q.AuthorID)
}

func (r *QuestionRepository) Replies(ctx context.Context, q *model.Question) ([]*model.Reply, error) {
	return NewReplyRepository(r.db).FindByQuestionID(ctx, q.ID)
}

func (r *QuestionRepository) Followers(ctx context.Context, q *model.Question) ([]*model.User, error) {
	return NewQuestionFollowRepository(r.db).FollowersForQuestionID(ctx, q.ID)
}

func (r *QuestionRepository) Likers(ctx context.Context, q *model.Question) ([]*model.User, error) {
	return NewQuestionLikeRepository(r.db).LikersForQuestionID(ctx, q.ID)
}

// NumLikes returns the like count of q, zero when nobody liked it.
func (r *QuestionRepository) NumLikes(ctx context.Context, q *model.Question) (int, error) {
	count, err := NewQuestionLikeRepository(r.db).NumLikesForQuestionID(ctx, q.ID)
	if err != nil || count == nil {
		return 0, err
	}
	return count.NumLikes, nil
}
