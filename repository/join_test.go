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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomoncle/qaforum/database"
	"github.com/tomoncle/qaforum/model"
)

func TestQuestionFollowLookups(t *testing.T) {
	follows := NewQuestionFollowRepository(seedForum(t))
	ctx := context.Background()

	questions, err := follows.FollowersForUserID(ctx, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{10, 12}, questionIDs(questions))

	users, err := follows.FollowersForQuestionID(ctx, 11)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 3}, userIDs(users))

	users, err = follows.FollowersForQuestionID(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestMostFollowedQuestions(t *testing.T) {
	follows := NewQuestionFollowRepository(seedForum(t))
	ctx := context.Background()

	for n := 1; n <= 4; n++ {
		top, err := follows.MostFollowedQuestions(ctx, n)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(top), n)
		assert.Equal(t, []int64{10, 11, 12}[:min(n, 3)], questionIDs(top))
	}
}

func TestQuestionLikeLookups(t *testing.T) {
	likes := NewQuestionLikeRepository(seedForum(t))
	ctx := context.Background()

	users, err := likes.LikersForQuestionID(ctx, 11)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 4}, userIDs(users))

	questions, err := likes.LikedQuestionsForUserID(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, questionIDs(questions))

	questions, err = likes.LikedQuestionsForUserID(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, questions)
}

func TestNumLikesForQuestionID(t *testing.T) {
	likes := NewQuestionLikeRepository(seedForum(t))
	ctx := context.Background()

	count, err := likes.NumLikesForQuestionID(ctx, 10)
	require.NoError(t, err)
	require.NotNil(t, count)
	assert.Equal(t, int64(10), count.QuestionID)
	assert.Equal(t, 2, count.NumLikes)

	count, err = likes.NumLikesForQuestionID(ctx, 12)
	require.NoError(t, err)
	assert.Nil(t, count)
}

func TestMostLikedQuestions(t *testing.T) {
	likes := NewQuestionLikeRepository(seedForum(t))

	top, err := likes.MostLikedQuestions(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{11, 10}, questionIDs(top))
}

func TestQuestionLikeIsUniquePerUser(t *testing.T) {
	db := seedForum(t)
	_, err := db.NewInsert().Model(&model.QuestionLike{QuestionID: 10, UserID: 2}).Exec(context.Background())
	require.Error(t, err)

	is, code := database.IsSqlError(err)
	assert.True(t, is)
	assert.Equal(t, database.DuplicateKeyErr, code)
}
