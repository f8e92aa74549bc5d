package auth

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
	"time"
)

var _ sessionRepo = &sessionRepoMock{}

type sessionRepoMock struct {
	CreateFunc        func(ctx context.Context, s domain.Session) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (domain.Session, error)
	RevokeFunc        func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create        []struct {
			Ctx context.Context
			S   domain.Session
		}
		DeleteExpired []struct {
			Ctx context.Context
			Now time.Time
		}
		GetByID       []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Revoke        []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockDeleteExpired sync.RWMutex
	lockGetByID       sync.RWMutex
	lockRevoke        sync.RWMutex
}

func (mock *sessionRepoMock) Create(ctx context.Context, s domain.Session) error {
	if mock.CreateFunc == nil {
		panic("sessionRepoMock.CreateFunc: method is nil but sessionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.Session
	}{Ctx: ctx, S: s}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *sessionRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   domain.Session
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *sessionRepoMock) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("sessionRepoMock.DeleteExpiredFunc: method is nil but sessionRepo.DeleteExpired was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Now time.Time
	}{Ctx: ctx, Now: now}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, callInfo)
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx, now)
}

func (mock *sessionRepoMock) DeleteExpiredCalls() []struct {
	Ctx context.Context
	Now time.Time
} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}

func (mock *sessionRepoMock) GetByID(ctx context.Context, id uuid.UUID) (domain.Session, error) {
	if mock.GetByIDFunc == nil {
		panic("sessionRepoMock.GetByIDFunc: method is nil but sessionRepo.GetByID was just called")
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

func (mock *sessionRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *sessionRepoMock) Revoke(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeFunc == nil {
		panic("sessionRepoMock.RevokeFunc: method is nil but sessionRepo.Revoke was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockRevoke.Lock()
	mock.calls.Revoke = append(mock.calls.Revoke, callInfo)
	mock.lockRevoke.Unlock()
	return mock.RevokeFunc(ctx, id)
}

func (mock *sessionRepoMock) RevokeCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockRevoke.RLock()
	calls := mock.calls.Revoke
	mock.lockRevoke.RUnlock()
	return calls
}
