package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleFollowRejectsSelf(t *testing.T) {
	f := setup(t)
	u := f.addUser(t, "solo", true)

	_, err := f.follows.Toggle(context.Background(), u, u)
	assert.ErrorIs(t, err, ErrFollowSelf)

	// visibility of the target does not change the rule
	p := f.addUser(t, "solo_private", false)
	_, err = f.follows.Toggle(context.Background(), p, p)
	assert.ErrorIs(t, err, ErrFollowSelf)
}

func TestToggleFollowUnknownTarget(t *testing.T) {
	f := setup(t)
	u := f.addUser(t, "u", true)

	_, err := f.follows.Toggle(context.Background(), u, "no-such-user")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestToggleFollowPublicTargetAcceptedImmediately(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	actor := f.addUser(t, "actor", true)
	target := f.addUser(t, "target", true)

	followed, err := f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	assert.True(t, followed)

	pending, _, err := f.follows.PendingRequests(ctx, target, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestToggleFollowPrivateTargetStartsPending(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	actor := f.addUser(t, "actor", true)
	target := f.addUser(t, "target", false)

	followed, err := f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	assert.True(t, followed)

	pending, count, err := f.follows.PendingRequests(ctx, target, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, pending, 1)
	assert.Equal(t, actor, pending[0].FollowerID)
	assert.False(t, pending[0].IsAccepted)
}

func TestToggleFollowTwiceRemovesEdge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	actor := f.addUser(t, "actor", true)
	target := f.addUser(t, "target", true)

	followed, err := f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	assert.True(t, followed)

	followed, err = f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	assert.False(t, followed)

	edges, count, err := f.follows.ListByFollower(ctx, actor, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, edges)
}

func TestAcceptOnlyByTarget(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	actor := f.addUser(t, "actor", true)
	target := f.addUser(t, "target", false)
	bystander := f.addUser(t, "bystander", true)

	_, err := f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	pending, _, err := f.follows.PendingRequests(ctx, target, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	err = f.follows.Accept(ctx, bystander, pending[0].ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)
	err = f.follows.Accept(ctx, actor, pending[0].ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.follows.Accept(ctx, target, pending[0].ID))
	pending, _, err = f.follows.PendingRequests(ctx, target, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestDenyDeletesRequest(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	actor := f.addUser(t, "actor", true)
	target := f.addUser(t, "target", false)

	_, err := f.follows.Toggle(ctx, actor, target)
	require.NoError(t, err)
	pending, _, err := f.follows.PendingRequests(ctx, target, 0, 10)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	err = f.follows.Deny(ctx, actor, pending[0].ID)
	assert.ErrorIs(t, err, ErrPermissionDenied)

	require.NoError(t, f.follows.Deny(ctx, target, pending[0].ID))
	edges, _, err := f.follows.ListByFollower(ctx, actor, 0, 10)
	require.NoError(t, err)
	assert.Empty(t, edges)

	err = f.follows.Deny(ctx, target, pending[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
