package continuity

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

var _ sessionLister = &sessionListerMock{}

type sessionListerMock struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*domain.LearningSession, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *sessionListerMock) ListByUser(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
	if mock.ListByUserFunc == nil {
		panic("sessionListerMock.ListByUserFunc: method is nil but sessionLister.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *sessionListerMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
