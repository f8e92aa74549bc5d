package post

import (
	"context"
	"io"
	"sync"
)

var _ imageStore = &imageStoreMock{}

type imageStoreMock struct {
	RemoveFunc    func(ref string) error
	SaveImageFunc func(ctx context.Context, r io.Reader) (string, error)

	calls struct {
		Remove    []struct{ Ref string }
		SaveImage []struct {
			Ctx context.Context
			R   io.Reader
		}
	}
	lockRemove    sync.RWMutex
	lockSaveImage sync.RWMutex
}

func (mock *imageStoreMock) Remove(ref string) error {
	if mock.RemoveFunc == nil {
		panic("imageStoreMock.RemoveFunc: method is nil but imageStore.Remove was just called")
	}
	callInfo := struct{ Ref string }{Ref: ref}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ref)
}

func (mock *imageStoreMock) RemoveCalls() []struct{ Ref string } {
	mock.lockRemove.RLock()
	calls := mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

func (mock *imageStoreMock) SaveImage(ctx context.Context, r io.Reader) (string, error) {
	if mock.SaveImageFunc == nil {
		panic("imageStoreMock.SaveImageFunc: method is nil but imageStore.SaveImage was just called")
	}
	callInfo := struct {
		Ctx context.Context
		R   io.Reader
	}{Ctx: ctx, R: r}
	mock.lockSaveImage.Lock()
	mock.calls.SaveImage = append(mock.calls.SaveImage, callInfo)
	mock.lockSaveImage.Unlock()
	return mock.SaveImageFunc(ctx, r)
}

func (mock *imageStoreMock) SaveImageCalls() []struct {
	Ctx context.Context
	R   io.Reader
} {
	mock.lockSaveImage.RLock()
	calls := mock.calls.SaveImage
	mock.lockSaveImage.RUnlock()
	return calls
}
