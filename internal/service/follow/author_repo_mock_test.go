package follow

import (
	"context"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
)

var _ authorRepo = &authorRepoMock{}

type authorRepoMock struct {
	GetByUsernameFunc func(ctx context.Context, username string) (domain.Author, error)

	calls struct {
		GetByUsername []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockGetByUsername sync.RWMutex
}

func (mock *authorRepoMock) GetByUsername(ctx context.Context, username string) (domain.Author, error) {
	if mock.GetByUsernameFunc == nil {
		panic("authorRepoMock.GetByUsernameFunc: method is nil but authorRepo.GetByUsername was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGetByUsername.Lock()
	mock.calls.GetByUsername = append(mock.calls.GetByUsername, callInfo)
	mock.lockGetByUsername.Unlock()
	return mock.GetByUsernameFunc(ctx, username)
}

func (mock *authorRepoMock) GetByUsernameCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGetByUsername.RLock()
	calls := mock.calls.GetByUsername
	mock.lockGetByUsername.RUnlock()
	return calls
}
