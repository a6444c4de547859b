package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisiblePublicAuthor(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", true)
	viewer := f.addUser(t, "viewer", true)
	tw := f.addTweet(t, author, "hello")

	ok, err := f.resolver.Visible(ctx, tw, viewer)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVisibleOwnTweetOnPrivateProfile(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", false)
	tw := f.addTweet(t, author, "hello")

	ok, err := f.resolver.Visible(ctx, tw, author)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVisiblePrivateAuthorHiddenFromStranger(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", false)
	viewer := f.addUser(t, "viewer", true)
	tw := f.addTweet(t, author, "hello")

	ok, err := f.resolver.Visible(ctx, tw, viewer)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVisibleRequiresAcceptedEdge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", false)
	viewer := f.addUser(t, "viewer", true)
	tw := f.addTweet(t, author, "hello")

	// pending edge viewer -> author is not enough
	_, err := f.follows.Toggle(ctx, viewer, author)
	require.NoError(t, err)
	ok, err := f.resolver.Visible(ctx, tw, viewer)
	require.NoError(t, err)
	assert.False(t, ok)

	// accept it and the tweet becomes visible
	pending, _, err := f.follows.PendingRequests(ctx, author, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.NoError(t, f.follows.Accept(ctx, author, pending[0].ID))

	ok, err = f.resolver.Visible(ctx, tw, viewer)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVisibleEdgeDirectionMatters(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	author := f.addUser(t, "author", false)
	viewer := f.addUser(t, "viewer", true)
	tw := f.addTweet(t, author, "hello")

	// author -> viewer (accepted, viewer is public) does not grant
	// the viewer anything
	_, err := f.follows.Toggle(ctx, author, viewer)
	require.NoError(t, err)

	ok, err := f.resolver.Visible(ctx, tw, viewer)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileVisibility(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	private := f.addUser(t, "private", false)
	viewer := f.addUser(t, "viewer", true)

	_, visible, err := f.profiles.Get(ctx, viewer, private)
	require.NoError(t, err)
	assert.False(t, visible)

	_, visible, err = f.profiles.Get(ctx, private, private)
	require.NoError(t, err)
	assert.True(t, visible)
}
