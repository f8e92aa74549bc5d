package auth

import (
	"sync"
)

var _ passwordHasher = &passwordHasherMock{}

type passwordHasherMock struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(hash string, password string) (bool, error)

	calls struct {
		Hash   []struct{ Password string }
		Verify []struct {
			Hash     string
			Password string
		}
	}
	lockHash   sync.RWMutex
	lockVerify sync.RWMutex
}

func (mock *passwordHasherMock) Hash(password string) (string, error) {
	if mock.HashFunc == nil {
		panic("passwordHasherMock.HashFunc: method is nil but passwordHasher.Hash was just called")
	}
	callInfo := struct{ Password string }{Password: password}
	mock.lockHash.Lock()
	mock.calls.Hash = append(mock.calls.Hash, callInfo)
	mock.lockHash.Unlock()
	return mock.HashFunc(password)
}

func (mock *passwordHasherMock) HashCalls() []struct{ Password string } {
	mock.lockHash.RLock()
	calls := mock.calls.Hash
	mock.lockHash.RUnlock()
	return calls
}

func (mock *passwordHasherMock) Verify(hash string, password string) (bool, error) {
	if mock.VerifyFunc == nil {
		panic("passwordHasherMock.VerifyFunc: method is nil but passwordHasher.Verify was just called")
	}
	callInfo := struct {
		Hash     string
		Password string
	}{Hash: hash, Password: password}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(hash, password)
}

func (mock *passwordHasherMock) VerifyCalls() []struct {
	Hash     string
	Password string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
