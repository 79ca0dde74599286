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

// Reply answers a question. Replies form a forest: a reply without a parent
// is a root, the others hang below the reply named by ParentID.
type Reply struct {
	bun.BaseModel `bun:"table:replies,alias:r"`

	ID              int64  `bun:"id,pk,autoincrement" json:"id"`
	QuestionID      int64  `bun:"question_id,notnull" json:"question_id"`
	UserID          int64  `bun:"user_id,notnull" json:"user_id"`
	Body            string `bun:"body" json:"body"`
	SubjectQuestion bool   `bun:"subject_question,notnull" json:"subject_question"`
	ParentID        *int64 `bun:"parent_id" json:"parent_id,omitempty"`
}

// IsRoot reports whether the reply answers the question directly.
func (r *Reply) IsRoot() bool {
	return r.ParentID == nil
}
