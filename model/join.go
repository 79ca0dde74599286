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

package model

import "github.com/uptrace/bun"

// QuestionFollow records that a user follows a question.
type QuestionFollow struct {
	bun.BaseModel `bun:"table:question_follows,alias:qf"`

	ID         int64 `bun:"id,pk,autoincrement" json:"id"`
	QuestionID int64 `bun:"question_id,notnull,unique:question_follows_question_user" json:"question_id"`
	UserID     int64 `bun:"user_id,notnull,unique:question_follows_question_user" json:"user_id"`
}

// QuestionLike records that a user likes a question.
type QuestionLike struct {
	bun.BaseModel `bun:"table:question_likes,alias:ql"`

	ID         int64 `bun:"id,pk,autoincrement" json:"id"`
	QuestionID int64 `bun:"question_id,notnull,unique:question_likes_question_user" json:"question_id"`
	UserID     int64 `bun:"user_id,notnull,unique:question_likes_question_user" json:"user_id"`
}

// LikeCount is the grouped row produced by counting the likes of one question.
type LikeCount struct {
	QuestionID int64 `bun:"question_id" json:"question_id"`
	NumLikes   int   `bun:"num_likes" json:"num_likes"`
}
