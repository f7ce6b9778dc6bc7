package streak

import (
	"context"
	"sync"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

var _ streakRepo = &streakRepoMock{}

type streakRepoMock struct {
	GetFunc  func(ctx context.Context, userID string) (*domain.StudyStreak, error)
	SaveFunc func(ctx context.Context, s *domain.StudyStreak) error

	calls struct {
		Get []struct {
			Ctx    context.Context
			UserID string
		}
		Save []struct {
			Ctx context.Context
			S   *domain.StudyStreak
		}
	}
	lockGet  sync.RWMutex
	lockSave sync.RWMutex
}

func (mock *streakRepoMock) Get(ctx context.Context, userID string) (*domain.StudyStreak, error) {
	if mock.GetFunc == nil {
		panic("streakRepoMock.GetFunc: method is nil but streakRepo.Get was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID string
	}{Ctx: ctx, UserID: userID}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, userID)
}

func (mock *streakRepoMock) GetCalls() []struct {
	Ctx    context.Context
	UserID string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *streakRepoMock) Save(ctx context.Context, s *domain.StudyStreak) error {
	if mock.SaveFunc == nil {
		panic("streakRepoMock.SaveFunc: method is nil but streakRepo.Save was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.StudyStreak
	}{Ctx: ctx, S: s}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(ctx, s)
}

func (mock *streakRepoMock) SaveCalls() []struct {
	Ctx context.Context
	S   *domain.StudyStreak
} {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}
