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

import "github.com/tomoncle/qaforum/database"

const (
	TableUsers           = "users"
	TableQuestions       = "questions"
	TableReplies         = "replies"
	TableQuestionFollows = "question_follows"
	TableQuestionLikes   = "question_likes"
)

// Tables are created in priority order so referenced tables exist first.
func init() {
	database.RegisteredModel(database.NewModelAdapter((*User)(nil), TableUsers, 10))
	database.RegisteredModel(database.NewModelAdapter((*Question)(nil), TableQuestions, 20))
	database.RegisteredModel(database.NewModelAdapter((*Reply)(nil), TableReplies, 30))
	database.RegisteredModel(database.NewModelAdapter((*QuestionFollow)(nil), TableQuestionFollows, 40))
	database.RegisteredModel(database.NewModelAdapter((*QuestionLike)(nil), TableQuestionLikes, 40))
}
