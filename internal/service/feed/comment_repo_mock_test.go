package feed

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	"sync"
)

var _ commentRepo = &commentRepoMock{}

type commentRepoMock struct {
	ListByPostFunc func(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error)

	calls struct {
		ListByPost []struct {
			Ctx    context.Context
			PostID uuid.UUID
		}
	}
	lockListByPost sync.RWMutex
}

func (mock *commentRepoMock) ListByPost(ctx context.Context, postID uuid.UUID) ([]domain.Comment, error) {
	if mock.ListByPostFunc == nil {
		panic("commentRepoMock.ListByPostFunc: method is nil but commentRepo.ListByPost was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PostID uuid.UUID
	}{Ctx: ctx, PostID: postID}
	mock.lockListByPost.Lock()
	mock.calls.ListByPost = append(mock.calls.ListByPost, callInfo)
	mock.lockListByPost.Unlock()
	return mock.ListByPostFunc(ctx, postID)
}

func (mock *commentRepoMock) ListByPostCalls() []struct {
	Ctx    context.Context
	PostID uuid.UUID
} {
	mock.lockListByPost.RLock()
	calls := mock.calls.ListByPost
	mock.lockListByPost.RUnlock()
	return calls
}
