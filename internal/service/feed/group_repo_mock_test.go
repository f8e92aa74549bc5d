package feed

import (
	"context"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
)

var _ groupRepo = &groupRepoMock{}

type groupRepoMock struct {
	GetBySlugFunc func(ctx context.Context, slug string) (domain.Group, error)

	calls struct {
		GetBySlug []struct {
			Ctx  context.Context
			Slug string
		}
	}
	lockGetBySlug sync.RWMutex
}

func (mock *groupRepoMock) GetBySlug(ctx context.Context, slug string) (domain.Group, error) {
	if mock.GetBySlugFunc == nil {
		panic("groupRepoMock.GetBySlugFunc: method is nil but groupRepo.GetBySlug was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Slug string
	}{Ctx: ctx, Slug: slug}
	mock.lockGetBySlug.Lock()
	mock.calls.GetBySlug = append(mock.calls.GetBySlug, callInfo)
	mock.lockGetBySlug.Unlock()
	return mock.GetBySlugFunc(ctx, slug)
}

func (mock *groupRepoMock) GetBySlugCalls() []struct {
	Ctx  context.Context
	Slug string
} {
	mock.lockGetBySlug.RLock()
	calls := mock.calls.GetBySlug
	mock.lockGetBySlug.RUnlock()
	return calls
}
