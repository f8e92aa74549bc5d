package web

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"github.com/heartmarshall/yatube-backend/internal/service/feed"
	"sync"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	IndexFunc      func(ctx context.Context, page int) (domain.Page[domain.Post], error)
	GroupFunc      func(ctx context.Context, slug string, page int) (*feed.GroupPage, error)
	ProfileFunc    func(ctx context.Context, username string, page int) (*feed.ProfilePage, error)
	FollowedFunc   func(ctx context.Context, page int) (domain.Page[domain.Post], error)
	PostDetailFunc func(ctx context.Context, username string, postID uuid.UUID) (*feed.PostPage, error)

	calls struct {
		Index      []struct {
			Ctx  context.Context
			Page int
		}
		Group      []struct {
			Ctx  context.Context
			Slug string
			Page int
		}
		Profile    []struct {
			Ctx      context.Context
			Username string
			Page     int
		}
		Followed   []struct {
			Ctx  context.Context
			Page int
		}
		PostDetail []struct {
			Ctx      context.Context
			Username string
			PostID   uuid.UUID
		}
	}
	lockIndex      sync.RWMutex
	lockGroup      sync.RWMutex
	lockProfile    sync.RWMutex
	lockFollowed   sync.RWMutex
	lockPostDetail sync.RWMutex
}

func (mock *feedServiceMock) Index(ctx context.Context, page int) (domain.Page[domain.Post], error) {
	if mock.IndexFunc == nil {
		panic("feedServiceMock.IndexFunc: method is nil but feedService.Index was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page int
	}{Ctx: ctx, Page: page}
	mock.lockIndex.Lock()
	mock.calls.Index = append(mock.calls.Index, callInfo)
	mock.lockIndex.Unlock()
	return mock.IndexFunc(ctx, page)
}

func (mock *feedServiceMock) IndexCalls() []struct {
	Ctx  context.Context
	Page int
} {
	mock.lockIndex.RLock()
	calls := mock.calls.Index
	mock.lockIndex.RUnlock()
	return calls
}

func (mock *feedServiceMock) Group(ctx context.Context, slug string, page int) (*feed.GroupPage, error) {
	if mock.GroupFunc == nil {
		panic("feedServiceMock.GroupFunc: method is nil but feedService.Group was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
		Page int
	}{Ctx: ctx, Slug: slug, Page: page}
	mock.lockGroup.Lock()
	mock.calls.Group = append(mock.calls.Group, callInfo)
	mock.lockGroup.Unlock()
	return mock.GroupFunc(ctx, slug, page)
}

func (mock *feedServiceMock) GroupCalls() []struct {
	Ctx  context.Context
	Slug string
	Page int
} {
	mock.lockGroup.RLock()
	calls := mock.calls.Group
	mock.lockGroup.RUnlock()
	return calls
}

func (mock *feedServiceMock) Profile(ctx context.Context, username string, page int) (*feed.ProfilePage, error) {
	if mock.ProfileFunc == nil {
		panic("feedServiceMock.ProfileFunc: method is nil but feedService.Profile was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		Page     int
	}{Ctx: ctx, Username: username, Page: page}
	mock.lockProfile.Lock()
	mock.calls.Profile = append(mock.calls.Profile, callInfo)
	mock.lockProfile.Unlock()
	return mock.ProfileFunc(ctx, username, page)
}

func (mock *feedServiceMock) ProfileCalls() []struct {
	Ctx      context.Context
	Username string
	Page     int
} {
	mock.lockProfile.RLock()
	calls := mock.calls.Profile
	mock.lockProfile.RUnlock()
	return calls
}

func (mock *feedServiceMock) Followed(ctx context.Context, page int) (domain.Page[domain.Post], error) {
	if mock.FollowedFunc == nil {
		panic("feedServiceMock.FollowedFunc: method is nil but feedService.Followed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Page int
	}{Ctx: ctx, Page: page}
	mock.lockFollowed.Lock()
	mock.calls.Followed = append(mock.calls.Followed, callInfo)
	mock.lockFollowed.Unlock()
	return mock.FollowedFunc(ctx, page)
}

func (mock *feedServiceMock) FollowedCalls() []struct {
	Ctx  context.Context
	Page int
} {
	mock.lockFollowed.RLock()
	calls := mock.calls.Followed
	mock.lockFollowed.RUnlock()
	return calls
}

func (mock *feedServiceMock) PostDetail(ctx context.Context, username string, postID uuid.UUID) (*feed.PostPage, error) {
	if mock.PostDetailFunc == nil {
		panic("feedServiceMock.PostDetailFunc: method is nil but feedService.PostDetail was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		PostID   uuid.UUID
	}{Ctx: ctx, Username: username, PostID: postID}
	mock.lockPostDetail.Lock()
	mock.calls.PostDetail = append(mock.calls.PostDetail, callInfo)
	mock.lockPostDetail.Unlock()
	return mock.PostDetailFunc(ctx, username, postID)
}

func (mock *feedServiceMock) PostDetailCalls() []struct {
	Ctx      context.Context
	Username string
	PostID   uuid.UUID
} {
	mock.lockPostDetail.RLock()
	calls := mock.calls.PostDetail
	mock.lockPostDetail.RUnlock()
	return calls
}
