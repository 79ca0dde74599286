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

type Question struct {
	bun.BaseModel `bun:"table:questions,alias:q"`

	ID       int64  `bun:"id,pk,autoincrement" json:"id"`
	Title    string `bun:"title,notnull" json:"title"`
	Body     string `bun:"body" json:"body"`
	AuthorID int64  `bun:"author_id,notnull" json:"author_id"`
}
