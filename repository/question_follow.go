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
	sqlFollowedQuestionsForUser = `
SELECT questions.*
FROM questions
JOIN question_follows ON questions.id = question_follows.question_id
WHERE question_follows.user_id = ?`

	sqlFollowersForQuestion = `
SELECT users.*
FROM users
JOIN question_follows ON users.id = question_follows.user_id
WHERE question_follows.question_id = ?`

	sqlMostFollowedQuestions = `
SELECT questions.*
FROM questions
JOIN question_follows ON questions.id = question_follows.question_id
GROUP BY questions.id
ORDER BY COUNT(question_follows.question_id) DESC, questions.id ASC
LIMIT ?`
)

// QuestionFollowRepository answers queries over the follow relation between
// users and questions.
type QuestionFollowRepository struct {
	Repository[model.QuestionFollow]
	db bun.IDB
}

// NewQuestionFollowRepository returns a QuestionFollowRepository reading through db.
func NewQuestionFollowRepository(db bun.IDB) *QuestionFollowRepository {
	return &QuestionFollowRepository{Repository: NewRepository[model.QuestionFollow](db), db: db}
}

// FollowersForUserID returns the questions followed by the user.
func (r *QuestionFollowRepository) FollowersForUserID(ctx context.Context, userID int64) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlFollowedQuestionsForUser, userID)
}

// FollowersForQuestionID returns the users following the question.
func (r *QuestionFollowRepository) FollowersForQuestionID(ctx context.Context, questionID int64) ([]*model.User, error) {
	return scanRows[model.User](ctx, r.db, sqlFollowersForQuestion, questionID)
}

// MostFollowedQuestions ranks followed questions by follower count, highest
// first, ties by ascending id. Questions without followers never appear. n
// is handed to the store's LIMIT as is.
func (r *QuestionFollowRepository) MostFollowedQuestions(ctx context.Context, n int) ([]*model.Question, error) {
	return scanRows[model.Question](ctx, r.db, sqlMostFollowedQuestions, n)
}
