package web

import (
	authsvc "github.com/heartmarshall/yatube-backend/internal/service/auth"
	"context"
	"sync"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	SignupFunc func(ctx context.Context, input authsvc.SignupInput) (*authsvc.Result, error)
	LoginFunc  func(ctx context.Context, input authsvc.LoginInput) (*authsvc.Result, error)
	LogoutFunc func(ctx context.Context) error

	calls struct {
		Signup []struct {
			Ctx   context.Context
			Input authsvc.SignupInput
		}
		Login  []struct {
			Ctx   context.Context
			Input authsvc.LoginInput
		}
		Logout []struct{ Ctx context.Context }
	}
	lockSignup sync.RWMutex
	lockLogin  sync.RWMutex
	lockLogout sync.RWMutex
}

func (mock *authServiceMock) Signup(ctx context.Context, input authsvc.SignupInput) (*authsvc.Result, error) {
	if mock.SignupFunc == nil {
		panic("authServiceMock.SignupFunc: method is nil but authService.Signup was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.SignupInput
	}{Ctx: ctx, Input: input}
	mock.lockSignup.Lock()
	mock.calls.Signup = append(mock.calls.Signup, callInfo)
	mock.lockSignup.Unlock()
	return mock.SignupFunc(ctx, input)
}

func (mock *authServiceMock) SignupCalls() []struct {
	Ctx   context.Context
	Input authsvc.SignupInput
} {
	mock.lockSignup.RLock()
	calls := mock.calls.Signup
	mock.lockSignup.RUnlock()
	return calls
}

func (mock *authServiceMock) Login(ctx context.Context, input authsvc.LoginInput) (*authsvc.Result, error) {
	if mock.LoginFunc == nil {
		panic("authServiceMock.LoginFunc: method is nil but authService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input authsvc.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *authServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input authsvc.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct{ Ctx context.Context }{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct{ Ctx context.Context } {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}
