package session

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/learning-continuity/internal/domain"
)

var _ streakRecorder = &streakRecorderMock{}

type streakRecorderMock struct {
	RecordFunc func(ctx context.Context, userID string, minutesDelta int, now time.Time) (*domain.StudyStreak, error)

	calls struct {
		Record []struct {
			Ctx          context.Context
			UserID       string
			MinutesDelta int
			Now          time.Time
		}
	}
	lockRecord sync.RWMutex
}

func (mock *streakRecorderMock) Record(ctx context.Context, userID string, minutesDelta int, now time.Time) (*domain.StudyStreak, error) {
	if mock.RecordFunc == nil {
		panic("streakRecorderMock.RecordFunc: method is nil but streakRecorder.Record was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		UserID       string
		MinutesDelta int
		Now          time.Time
	}{Ctx: ctx, UserID: userID, MinutesDelta: minutesDelta, Now: now}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, userID, minutesDelta, now)
}

func (mock *streakRecorderMock) RecordCalls() []struct {
	Ctx          context.Context
	UserID       string
	MinutesDelta int
	Now          time.Time
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
