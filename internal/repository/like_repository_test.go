package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

func seedTweet(t *testing.T, db *gorm.DB, authorID, content string) string {
	t.Helper()
	tw := &model.Tweet{ID: uuid.New().String(), AuthorID: authorID, Content: content}
	require.NoError(t, db.Create(tw).Error)
	return tw.ID
}

func TestLikeToggleOnOff(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	ids := seedUsers(t, db, 2)
	tweetID := seedTweet(t, db, ids[1], "hello")

	liked, err := repo.Toggle(ctx, ids[0], tweetID)
	require.NoError(t, err)
	assert.True(t, liked)

	cnt, err := repo.CountByTweet(ctx, tweetID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)

	// second like by the same user removes the row
	liked, err = repo.Toggle(ctx, ids[0], tweetID)
	require.NoError(t, err)
	assert.False(t, liked)

	cnt, err = repo.CountByTweet(ctx, tweetID)
	require.NoError(t, err)
	assert.Zero(t, cnt)
}

func TestListLikedContentsOrdered(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	ids := seedUsers(t, db, 2)

	first := seedTweet(t, db, ids[1], "first liked")
	second := seedTweet(t, db, ids[1], "second liked")
	_, err := repo.Toggle(ctx, ids[0], first)
	require.NoError(t, err)
	_, err = repo.Toggle(ctx, ids[0], second)
	require.NoError(t, err)

	contents, err := repo.ListLikedContents(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, []string{"first liked", "second liked"}, contents)
}

func TestRetweetDuplicatePairFails(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewRetweetRepository(db)
	ctx := context.Background()
	ids := seedUsers(t, db, 2)
	tweetID := seedTweet(t, db, ids[1], "hello")

	_, err := repo.Create(ctx, ids[0], tweetID)
	require.NoError(t, err)

	// no toggle here: the unique pair index rejects the second row
	_, err = repo.Create(ctx, ids[0], tweetID)
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	cnt, err := repo.CountByTweet(ctx, tweetID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)
}
