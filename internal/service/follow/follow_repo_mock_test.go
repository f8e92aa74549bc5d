package follow

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
)

var _ followRepo = &followRepoMock{}

type followRepoMock struct {
	CountFollowersFunc  func(ctx context.Context, authorID uuid.UUID) (int, error)
	CountFollowingFunc  func(ctx context.Context, authorID uuid.UUID) (int, error)
	CreateFunc          func(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error)
	DeleteFunc          func(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error)
	ExistsFunc          func(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error)
	ListFollowedIDsFunc func(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error)
	StatsFunc           func(ctx context.Context, viewerID uuid.UUID, authorID uuid.UUID) (domain.FollowStats, error)

	calls struct {
		CountFollowers  []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
		}
		CountFollowing  []struct {
			Ctx      context.Context
			AuthorID uuid.UUID
		}
		Create          []struct {
			Ctx        context.Context
			FollowerID uuid.UUID
			AuthorID   uuid.UUID
		}
		Delete          []struct {
			Ctx        context.Context
			FollowerID uuid.UUID
			AuthorID   uuid.UUID
		}
		Exists          []struct {
			Ctx        context.Context
			FollowerID uuid.UUID
			AuthorID   uuid.UUID
		}
		ListFollowedIDs []struct {
			Ctx        context.Context
			FollowerID uuid.UUID
		}
		Stats           []struct {
			Ctx      context.Context
			ViewerID uuid.UUID
			AuthorID uuid.UUID
		}
	}
	lockCountFollowers  sync.RWMutex
	lockCountFollowing  sync.RWMutex
	lockCreate          sync.RWMutex
	lockDelete          sync.RWMutex
	lockExists          sync.RWMutex
	lockListFollowedIDs sync.RWMutex
	lockStats           sync.RWMutex
}

func (mock *followRepoMock) CountFollowers(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.CountFollowersFunc == nil {
		panic("followRepoMock.CountFollowersFunc: method is nil but followRepo.CountFollowers was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockCountFollowers.Lock()
	mock.calls.CountFollowers = append(mock.calls.CountFollowers, callInfo)
	mock.lockCountFollowers.Unlock()
	return mock.CountFollowersFunc(ctx, authorID)
}

func (mock *followRepoMock) CountFollowersCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
} {
	mock.lockCountFollowers.RLock()
	calls := mock.calls.CountFollowers
	mock.lockCountFollowers.RUnlock()
	return calls
}

func (mock *followRepoMock) CountFollowing(ctx context.Context, authorID uuid.UUID) (int, error) {
	if mock.CountFollowingFunc == nil {
		panic("followRepoMock.CountFollowingFunc: method is nil but followRepo.CountFollowing was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		AuthorID uuid.UUID
	}{Ctx: ctx, AuthorID: authorID}
	mock.lockCountFollowing.Lock()
	mock.calls.CountFollowing = append(mock.calls.CountFollowing, callInfo)
	mock.lockCountFollowing.Unlock()
	return mock.CountFollowingFunc(ctx, authorID)
}

func (mock *followRepoMock) CountFollowingCalls() []struct {
	Ctx      context.Context
	AuthorID uuid.UUID
} {
	mock.lockCountFollowing.RLock()
	calls := mock.calls.CountFollowing
	mock.lockCountFollowing.RUnlock()
	return calls
}

func (mock *followRepoMock) Create(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error) {
	if mock.CreateFunc == nil {
		panic("followRepoMock.CreateFunc: method is nil but followRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FollowerID uuid.UUID
		AuthorID   uuid.UUID
	}{Ctx: ctx, FollowerID: followerID, AuthorID: authorID}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, followerID, authorID)
}

func (mock *followRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	FollowerID uuid.UUID
	AuthorID   uuid.UUID
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *followRepoMock) Delete(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error) {
	if mock.DeleteFunc == nil {
		panic("followRepoMock.DeleteFunc: method is nil but followRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FollowerID uuid.UUID
		AuthorID   uuid.UUID
	}{Ctx: ctx, FollowerID: followerID, AuthorID: authorID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, followerID, authorID)
}

func (mock *followRepoMock) DeleteCalls() []struct {
	Ctx        context.Context
	FollowerID uuid.UUID
	AuthorID   uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *followRepoMock) Exists(ctx context.Context, followerID uuid.UUID, authorID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("followRepoMock.ExistsFunc: method is nil but followRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FollowerID uuid.UUID
		AuthorID   uuid.UUID
	}{Ctx: ctx, FollowerID: followerID, AuthorID: authorID}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, followerID, authorID)
}

func (mock *followRepoMock) ExistsCalls() []struct {
	Ctx        context.Context
	FollowerID uuid.UUID
	AuthorID   uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *followRepoMock) ListFollowedIDs(ctx context.Context, followerID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListFollowedIDsFunc == nil {
		panic("followRepoMock.ListFollowedIDsFunc: method is nil but followRepo.ListFollowedIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		FollowerID uuid.UUID
	}{Ctx: ctx, FollowerID: followerID}
	mock.lockListFollowedIDs.Lock()
	mock.calls.ListFollowedIDs = append(mock.calls.ListFollowedIDs, callInfo)
	mock.lockListFollowedIDs.Unlock()
	return mock.ListFollowedIDsFunc(ctx, followerID)
}

func (mock *followRepoMock) ListFollowedIDsCalls() []struct {
	Ctx        context.Context
	FollowerID uuid.UUID
} {
	mock.lockListFollowedIDs.RLock()
	calls := mock.calls.ListFollowedIDs
	mock.lockListFollowedIDs.RUnlock()
	return calls
}

func (mock *followRepoMock) Stats(ctx context.Context, viewerID uuid.UUID, authorID uuid.UUID) (domain.FollowStats, error) {
	if mock.StatsFunc == nil {
		panic("followRepoMock.StatsFunc: method is nil but followRepo.Stats was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ViewerID uuid.UUID
		AuthorID uuid.UUID
	}{Ctx: ctx, ViewerID: viewerID, AuthorID: authorID}
	mock.lockStats.Lock()
	mock.calls.Stats = append(mock.calls.Stats, callInfo)
	mock.lockStats.Unlock()
	return mock.StatsFunc(ctx, viewerID, authorID)
}

func (mock *followRepoMock) StatsCalls() []struct {
	Ctx      context.Context
	ViewerID uuid.UUID
	AuthorID uuid.UUID
} {
	mock.lockStats.RLock()
	calls := mock.calls.Stats
	mock.lockStats.RUnlock()
	return calls
}
