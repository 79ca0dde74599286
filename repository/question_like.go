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
	sqlLikersForQuestion = `
SELECT users.*
FROM users
JOIN question_likes ON users.id = question_likes.user_id
WHERE question_likes.question_id = ?`

	sqlNumLikesForQuestion = `
SELECT question_likes.question_id, COUNT(*) AS num_likes
FROM users
JOIN question_likes ON users.id = question_likes.user_id
WHERE question_likes.question_id = ?
GROUP BY question_likes.question_id`

	sqlLikedQuestionsForUser = `
SELECT questions.*
FROM question_likes
JOIN questions ON questions.id = question_likes.question_id
WHERE question_likes.user_id = ?`

	sqlMostLikedQuestions = `
SELECT questions.*
FROM question_likes
JOIN questions ON questions.id = question_likes.question_id
GROUP BY questions.id
ORDER BY COUNT(*) DESC, questions.id ASC
LIMIT ?`
)

// QuestionLikeRepository answers queries over the like relation between
// users and questions.
type QuestionLikeRepository struct {
	Repository[model.QuestionLike]
	db bun.IDB
}

// NewQuestionLikeRepository returns a QuestionLikeRepository reading through db.
func NewQuestionLikeRepository(db bun.IDB) *QuestionLikeRepository {
	return &QuestionLikeRepository{Repository: NewRepository[model.QuestionLike](db), db: db}
}

func (r *QuestionLikeRepository) LikersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error) {
	return scanRows[model.User](ctx, r.db, sqlLikersForQuestion, questionID)
}

// NumLikesForQuestionID returns the aggregate row for the question, or nil
// when it has no likes.
func (r *QuestionLikeRepository) NumLikesForQuestionID(ctx context.Context, questionID int64) (*model.LikeCount, error) {
	rows, err := scanRows[model.LikeCount](ctx, r.db, sqlNumLikesForQuestion, questionID)
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return rows[len(rows)-1], nil
}

func (r *QuestionLikeRepository) LikedQuestionsForUserID(ctx context.Context, userID int64) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlLikedQuestionsForUser, userID)
}

// MostLikedQuestions ranks liked questions by like count, highest first, ties
// by ascending id.
func (r *QuestionLikeRepository) MostLikedQuestions(ctx context.Context, n int) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlMostLikedQuestions, n)
}
