package feed

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
)

var _ postRepo = &postRepoMock{}

type postRepoMock struct {
	CountFunc   func(ctx context.Context, f domain.PostFilter) (int, error)
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (domain.Post, error)
	ListFunc    func(ctx context.Context, f domain.PostFilter, limit int, offset int) ([]domain.Post, error)

	calls struct {
		Count   []struct {
			Ctx context.Context
			F   domain.PostFilter
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List    []struct {
			Ctx    context.Context
			F      domain.PostFilter
			Limit  int
			Offset int
		}
	}
	lockCount   sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
}

func (mock *postRepoMock) Count(ctx context.Context, f domain.PostFilter) (int, error) {
	if mock.CountFunc == nil {
		panic("postRepoMock.CountFunc: method is nil but postRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.PostFilter
	}{Ctx: ctx, F: f}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, f)
}

func (mock *postRepoMock) CountCalls() []struct {
	Ctx context.Context
	F   domain.PostFilter
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *postRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Post, error) {
	if mock.GetByIDFunc == nil {
		panic("postRepoMock.GetByIDFunc: method is nil but postRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *postRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *postRepoMock) List(ctx context.Context, f domain.PostFilter, limit int, offset int) ([]domain.Post, error) {
	if mock.ListFunc == nil {
		panic("postRepoMock.ListFunc: method is nil but postRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		F      domain.PostFilter
		Limit  int
		Offset int
	}{Ctx: ctx, F: f, Limit: limit, Offset: offset}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f, limit, offset)
}

func (mock *postRepoMock) ListCalls() []struct {
	Ctx    context.Context
	F      domain.PostFilter
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
