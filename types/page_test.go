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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	p := NewDefaultPageRequest(0, -5)
	assert.Equal(t, 1, p.GetPage())
	assert.Equal(t, 10, p.GetPageSize())
	assert.Equal(t, 0, p.GetOffset())
	assert.Nil(t, p.GetFilter())
	assert.Empty(t, p.GetOrders())
}

func TestPageRequestOffset(t *testing.T) {
	filter := NewQueryFilter("author_id = ?", 1)
	p := NewPageRequest(3, 20, filter, []string{"id DESC"})
	assert.Equal(t, 40, p.GetOffset())
	assert.Equal(t, "author_id = ?", p.GetFilter().Schema)
	assert.Equal(t, []interface{}{1}, p.GetFilter().Args)
	assert.Equal(t, []string{"id DESC"}, p.GetOrders())

	assert.Same(t, filter, NewPageRequestWithFilter(1, 5, filter).GetFilter())
	assert.Equal(t, []string{"title ASC"}, NewPageRequestWithOrders(1, 5, []string{"title ASC"}).GetOrders())
}

func TestPaginationPages(t *testing.T) {
	p := NewDefaultPagination[struct{}](1, 10)
	assert.Equal(t, 0, p.TotalPages())
	assert.False(t, p.HasNext())
	assert.NotNil(t, p.Items)

	p.Total = 21
	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())

	p.Page = 3
	assert.False(t, p.HasNext())

	p.PageSize = 0
	assert.Equal(t, 0, p.TotalPages())
}
