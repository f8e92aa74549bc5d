package web

import (
	"context"
	"github.com/google/uuid"
	"github.com/heartmarshall/yatube-backend/internal/domain"
	postsvc "github.com/heartmarshall/yatube-backend/internal/service/post"
	"sync"
)

var _ postService = &postServiceMock{}

type postServiceMock struct {
	CreateFunc     func(ctx context.Context, input postsvc.PostInput) (domain.Post, error)
	GetForEditFunc func(ctx context.Context, username string, postID uuid.UUID) (domain.Post, error)
	EditFunc       func(ctx context.Context, username string, postID uuid.UUID, input postsvc.PostInput) (domain.Post, error)
	AddCommentFunc func(ctx context.Context, username string, postID uuid.UUID, input postsvc.CommentInput) (domain.Comment, error)
	GroupsFunc     func(ctx context.Context) ([]domain.Group, error)

	calls struct {
		Create     []struct {
			Ctx   context.Context
			Input postsvc.PostInput
		}
		GetForEdit []struct {
			Ctx      context.Context
			Username string
			PostID   uuid.UUID
		}
		Edit       []struct {
			Ctx      context.Context
			Username string
			PostID   uuid.UUID
			Input    postsvc.PostInput
		}
		AddComment []struct {
			Ctx      context.Context
			Username string
			PostID   uuid.UUID
			Input    postsvc.CommentInput
		}
		Groups     []struct{ Ctx context.Context }
	}
	lockCreate     sync.RWMutex
	lockGetForEdit sync.RWMutex
	lockEdit       sync.RWMutex
	lockAddComment sync.RWMutex
	lockGroups     sync.RWMutex
}

func (mock *postServiceMock) Create(ctx context.Context, input postsvc.PostInput) (domain.Post, error) {
	if mock.CreateFunc == nil {
		panic("postServiceMock.CreateFunc: method is nil but postService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input postsvc.PostInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *postServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input postsvc.PostInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *postServiceMock) GetForEdit(ctx context.Context, username string, postID uuid.UUID) (domain.Post, error) {
	if mock.GetForEditFunc == nil {
		panic("postServiceMock.GetForEditFunc: method is nil but postService.GetForEdit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		PostID   uuid.UUID
	}{Ctx: ctx, Username: username, PostID: postID}
	mock.lockGetForEdit.Lock()
	mock.calls.GetForEdit = append(mock.calls.GetForEdit, callInfo)
	mock.lockGetForEdit.Unlock()
	return mock.GetForEditFunc(ctx, username, postID)
}

func (mock *postServiceMock) GetForEditCalls() []struct {
	Ctx      context.Context
	Username string
	PostID   uuid.UUID
} {
	mock.lockGetForEdit.RLock()
	calls := mock.calls.GetForEdit
	mock.lockGetForEdit.RUnlock()
	return calls
}

func (mock *postServiceMock) Edit(ctx context.Context, username string, postID uuid.UUID, input postsvc.PostInput) (domain.Post, error) {
	if mock.EditFunc == nil {
		panic("postServiceMock.EditFunc: method is nil but postService.Edit was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		PostID   uuid.UUID
		Input    postsvc.PostInput
	}{Ctx: ctx, Username: username, PostID: postID, Input: input}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, username, postID, input)
}

func (mock *postServiceMock) EditCalls() []struct {
	Ctx      context.Context
	Username string
	PostID   uuid.UUID
	Input    postsvc.PostInput
} {
	mock.lockEdit.RLock()
	calls := mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *postServiceMock) AddComment(ctx context.Context, username string, postID uuid.UUID, input postsvc.CommentInput) (domain.Comment, error) {
	if mock.AddCommentFunc == nil {
		panic("postServiceMock.AddCommentFunc: method is nil but postService.AddComment was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
		PostID   uuid.UUID
		Input    postsvc.CommentInput
	}{Ctx: ctx, Username: username, PostID: postID, Input: input}
	mock.lockAddComment.Lock()
	mock.calls.AddComment = append(mock.calls.AddComment, callInfo)
	mock.lockAddComment.Unlock()
	return mock.AddCommentFunc(ctx, username, postID, input)
}

func (mock *postServiceMock) AddCommentCalls() []struct {
	Ctx      context.Context
	Username string
	PostID   uuid.UUID
	Input    postsvc.CommentInput
} {
	mock.lockAddComment.RLock()
	calls := mock.calls.AddComment
	mock.lockAddComment.RUnlock()
	return calls
}

func (mock *postServiceMock) Groups(ctx context.Context) ([]domain.Group, error) {
	if mock.GroupsFunc == nil {
		panic("postServiceMock.GroupsFunc: method is nil but postService.Groups was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockGroups.Lock()
	mock.calls.Groups = append(mock.calls.Groups, callInfo)
	mock.lockGroups.Unlock()
	return mock.GroupsFunc(ctx)
}

func (mock *postServiceMock) GroupsCalls() []struct{ Ctx context.Context } {
	mock.lockGroups.RLock()
	calls := mock.calls.Groups
	mock.lockGroups.RUnlock()
	return calls
}
