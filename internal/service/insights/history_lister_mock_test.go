package insights

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

var _ historyLister = &historyListerMock{}

type historyListerMock struct {
	ListHistoryFunc func(ctx context.Context, userID string) ([]*domain.LearningSession, error)

	calls struct {
		ListHistory []struct {
			Ctx    context.Context
			UserID string
		}
	}
	lockListHistory sync.RWMutex
}

func (mock *historyListerMock) ListHistory(ctx context.Context, userID string) ([]*domain.LearningSession, error) {
	if mock.ListHistoryFunc == nil {
		panic("historyListerMock.ListHistoryFunc: method is nil but historyLister.ListHistory was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockListHistory.Lock()
	mock.calls.ListHistory = append(mock.calls.ListHistory, callInfo)
	mock.lockListHistory.Unlock()
	return mock.ListHistoryFunc(ctx, userID)
}

func (mock *historyListerMock) ListHistoryCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockListHistory.RLock()
	calls := mock.calls.ListHistory
	mock.lockListHistory.RUnlock()
	return calls
}
