package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleLikeOnOff(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", true)
	liker := f.addUser(t, "liker", true)
	tw := f.addTweet(t, author, "hello")

	liked, err := f.engagement.ToggleLike(ctx, liker, tw.ID)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = f.engagement.ToggleLike(ctx, liker, tw.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestToggleLikeUnknownTweet(t *testing.T) {
	f := setup(t)
	liker := f.addUser(t, "liker", true)

	_, err := f.engagement.ToggleLike(context.Background(), liker, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleLikeInvalidatesCorpusCache(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", true)
	liker := f.addUser(t, "liker", true)
	tw := f.addTweet(t, author, "cached away")

	f.corpusCache.Set(ctx, liker, []string{"stale"})
	_, err := f.engagement.ToggleLike(ctx, liker, tw.ID)
	require.NoError(t, err)

	_, ok := f.corpusCache.Get(ctx, liker)
	assert.False(t, ok)
}

func TestRetweetOnceThenConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", true)
	actor := f.addUser(t, "actor", true)
	tw := f.addTweet(t, author, "hello")

	rt, err := f.engagement.Retweet(ctx, actor, tw.ID)
	require.NoError(t, err)
	assert.Equal(t, tw.ID, rt.TweetID)

	// no toggle semantics for retweets
	_, err = f.engagement.Retweet(ctx, actor, tw.ID)
	assert.ErrorIs(t, err, ErrAlreadyRetweeted)
}

func TestRetweetUnknownTweet(t *testing.T) {
	f := setup(t)
	actor := f.addUser(t, "actor", true)

	_, err := f.engagement.Retweet(context.Background(), actor, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
