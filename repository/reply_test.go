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
	"github.com/tomoncle/qaforum/model"
)

func findReply(t *testing.T, replies *ReplyRepository, id int64) *model.Reply {
	t.Helper()
	found, err := replies.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, found, 1)
	return found[0]
}

func TestReplyFinders(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))
	ctx := context.Background()

	found, err := replies.FindByQuestionID(ctx, 10)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{5, 6, 7}, replyIDs(found))

	found, err = replies.FindByUserID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{6}, replyIDs(found))

	found, err = replies.FindByUserID(ctx, 404)
	require.NoError(t, err)
	assert.Empty(t, found)

	root := findReply(t, replies, 8)
	assert.True(t, root.IsRoot())
	assert.True(t, root.SubjectQuestion)

	child := findReply(t, replies, 6)
	assert.False(t, child.IsRoot())
	assert.Equal(t, int64(5), *child.ParentID)
	assert.False(t, child.SubjectQuestion)
}

func TestReplySubjectQuestionSurvivesBulkInsert(t *testing.T) {
	db := newTestDB(t)
	insertAll(t, db,
		&model.User{ID: 1, FName: "Ada", LName: "Lovelace"},
		&model.Question{ID: 10, Title: "Engines", Body: "Body", AuthorID: 1},
		&[]*model.Reply{
			{ID: 1, QuestionID: 10, UserID: 1, Body: "a", SubjectQuestion: true},
			{ID: 2, QuestionID: 10, UserID: 1, Body: "b"},
			{ID: 3, QuestionID: 10, UserID: 1, Body: "c", SubjectQuestion: true},
		},
	)

	var flagged []int64
	err := db.NewRaw("SELECT id FROM replies WHERE subject_question ORDER BY id").
		Scan(context.Background(), &flagged)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3}, flagged)

	found, err := NewReplyRepository(db).FindByQuestionID(context.Background(), 10)
	require.NoError(t, err)
	flags := map[int64]bool{}
	for _, r := range found {
		flags[r.ID] = r.SubjectQuestion
	}
	assert.Equal(t, map[int64]bool{1: true, 2: false, 3: true}, flags)
}

func TestReplyAuthorAndQuestion(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))
	ctx := context.Background()
	reply := findReply(t, replies, 8)

	authors, err := replies.Author(ctx, reply)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, userIDs(authors))

	questions, err := replies.Question(ctx, reply)
	require.NoError(t, err)
	assert.Equal(t, []int64{11}, questionIDs(questions))
}

func TestReplyChildReplies(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))
	ctx := context.Background()

	children, err := replies.ChildReplies(ctx, findReply(t, replies, 5))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{6, 7}, replyIDs(children))
	for _, c := range children {
		assert.Equal(t, int64(5), *c.ParentID)
	}

	child := findReply(t, replies, 6)
	children, err = replies.ChildReplies(ctx, child)
	require.NoError(t, err)
	assert.NotContains(t, replyIDs(children), child.ID)
	assert.Empty(t, children)
}

// ParentReply matches on the reply's own parent_id, so it yields the reply
// and its siblings rather than the parent.
func TestReplyParentReplyReturnsSiblings(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))

	siblings, err := replies.ParentReply(context.Background(), findReply(t, replies, 6))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{6, 7}, replyIDs(siblings))
	assert.NotContains(t, replyIDs(siblings), int64(5))
}

func TestReplyParent(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))

	parent, err := replies.Parent(context.Background(), findReply(t, replies, 7))
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, replyIDs(parent))
}

func TestReplyRootHasNoParent(t *testing.T) {
	replies := NewReplyRepository(seedForum(t))
	ctx := context.Background()

	for _, id := range []int64{5, 8} {
		root := findReply(t, replies, id)

		_, err := replies.ParentReply(ctx, root)
		assert.ErrorIs(t, err, ErrNoParent)

		_, err = replies.Parent(ctx, root)
		assert.ErrorIs(t, err, ErrNoParent)
	}
}
