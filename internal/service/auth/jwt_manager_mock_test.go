package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/auth"
)

var _ jwtManager = &jwtManagerMock{}

type jwtManagerMock struct {
	GenerateSessionTokenFunc func(userID uuid.UUID, role, email, name string) (string, time.Time, error)
	ValidateSessionTokenFunc func(token string) (*auth.SessionClaims, error)

	calls struct {
		GenerateSessionToken []struct {
			UserID uuid.UUID
			Role   string
			Email  string
			Name   string
		}
		ValidateSessionToken []struct {
			Token string
		}
	}
	lockGenerateSessionToken sync.RWMutex
	lockValidateSessionToken sync.RWMutex
}

func (mock *jwtManagerMock) GenerateSessionToken(userID uuid.UUID, role, email, name string) (string, time.Time, error) {
	if mock.GenerateSessionTokenFunc == nil {
		panic("jwtManagerMock.GenerateSessionTokenFunc: method is nil but jwtManager.GenerateSessionToken was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Role   string
		Email  string
		Name   string
	}{UserID: userID, Role: role, Email: email, Name: name}
	mock.lockGenerateSessionToken.Lock()
	mock.calls.GenerateSessionToken = append(mock.calls.GenerateSessionToken, callInfo)
	mock.lockGenerateSessionToken.Unlock()
	return mock.GenerateSessionTokenFunc(userID, role, email, name)
}

func (mock *jwtManagerMock) GenerateSessionTokenCalls() []struct {
	UserID uuid.UUID
	Role   string
	Email  string
	Name   string
} {
	mock.lockGenerateSessionToken.RLock()
	calls := mock.calls.GenerateSessionToken
	mock.lockGenerateSessionToken.RUnlock()
	return calls
}

func (mock *jwtManagerMock) ValidateSessionToken(token string) (*auth.SessionClaims, error) {
	if mock.ValidateSessionTokenFunc == nil {
		panic("jwtManagerMock.ValidateSessionTokenFunc: method is nil but jwtManager.ValidateSessionToken was just called")
	}
	mock.lockValidateSessionToken.Lock()
	mock.calls.ValidateSessionToken = append(mock.calls.ValidateSessionToken, struct{ Token string }{token})
	mock.lockValidateSessionToken.Unlock()
	return mock.ValidateSessionTokenFunc(token)
}
