package web

import (
	"context"
	"sync"
)

var _ followService = &followServiceMock{}

type followServiceMock struct {
	FollowFunc   func(ctx context.Context, username string) error
	UnfollowFunc func(ctx context.Context, username string) error

	calls struct {
		Follow   []struct {
			Ctx      context.Context
			Username string
		}
		Unfollow []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockFollow   sync.RWMutex
	lockUnfollow sync.RWMutex
}

func (mock *followServiceMock) Follow(ctx context.Context, username string) error {
	if mock.FollowFunc == nil {
		panic("followServiceMock.FollowFunc: method is nil but followService.Follow was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockFollow.Lock()
	mock.calls.Follow = append(mock.calls.Follow, callInfo)
	mock.lockFollow.Unlock()
	return mock.FollowFunc(ctx, username)
}

func (mock *followServiceMock) FollowCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockFollow.RLock()
	calls := mock.calls.Follow
	mock.lockFollow.RUnlock()
	return calls
}

func (mock *followServiceMock) Unfollow(ctx context.Context, username string) error {
	if mock.UnfollowFunc == nil {
		panic("followServiceMock.UnfollowFunc: method is nil but followService.Unfollow was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUnfollow.Lock()
	mock.calls.Unfollow = append(mock.calls.Unfollow, callInfo)
	mock.lockUnfollow.Unlock()
	return mock.UnfollowFunc(ctx, username)
}

func (mock *followServiceMock) UnfollowCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUnfollow.RLock()
	calls := mock.calls.Unfollow
	mock.lockUnfollow.RUnlock()
	return calls
}
