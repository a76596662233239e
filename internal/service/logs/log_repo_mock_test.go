package logs

import (
	"context"
	"sync"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

var _ logRepo = &logRepoMock{}

type logRepoMock struct {
	CreateFunc            func(ctx context.Context, rec *domain.LogRecord) (*domain.LogRecord, error)
	GetByIDFunc           func(ctx context.Context, id int64) (*domain.LogRecord, error)
	UpdateFunc            func(ctx context.Context, id int64, rec *domain.LogRecord) (*domain.LogRecord, error)
	DeleteFunc            func(ctx context.Context, id int64) error
	BulkInsertFunc        func(ctx context.Context, recs []domain.LogRecord) (int, error)
	DeleteAllFunc         func(ctx context.Context) (int64, error)
	ListFunc              func(ctx context.Context, f domain.LogFilter) ([]domain.LogRecord, int, error)
	AggregateByDateFunc   func(ctx context.Context, f domain.LogFilter, interval domain.Interval) ([]domain.DateBucket, error)
	AggregateByColumnFunc func(ctx context.Context, f domain.LogFilter, group domain.GroupBy) ([]domain.GroupCount, error)
	ListAfterFunc         func(ctx context.Context, f domain.LogFilter, cursor *domain.ExportCursor, limit int) ([]domain.LogRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec *domain.LogRecord
		}
		GetByID []struct {
			Ctx context.Context
			ID  int64
		}
		Update []struct {
			Ctx context.Context
			ID  int64
			Rec *domain.LogRecord
		}
		Delete []struct {
			Ctx context.Context
			ID  int64
		}
		BulkInsert []struct {
			Ctx  context.Context
			Recs []domain.LogRecord
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx context.Context
			F   domain.LogFilter
		}
		AggregateByDate []struct {
			Ctx      context.Context
			F        domain.LogFilter
			Interval domain.Interval
		}
		AggregateByColumn []struct {
			Ctx   context.Context
			F     domain.LogFilter
			Group domain.GroupBy
		}
		ListAfter []struct {
			Ctx    context.Context
			F      domain.LogFilter
			Cursor *domain.ExportCursor
			Limit  int
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockUpdate            sync.RWMutex
	lockDelete            sync.RWMutex
	lockBulkInsert        sync.RWMutex
	lockDeleteAll         sync.RWMutex
	lockList              sync.RWMutex
	lockAggregateByDate   sync.RWMutex
	lockAggregateByColumn sync.RWMutex
	lockListAfter         sync.RWMutex
}

func (mock *logRepoMock) Create(ctx context.Context, rec *domain.LogRecord) (*domain.LogRecord, error) {
	if mock.CreateFunc == nil {
		panic("logRepoMock.CreateFunc: method is nil but logRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec *domain.LogRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *logRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec *domain.LogRecord
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *logRepoMock) GetByID(ctx context.Context, id int64) (*domain.LogRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("logRepoMock.GetByIDFunc: method is nil but logRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *logRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *logRepoMock) Update(ctx context.Context, id int64, rec *domain.LogRecord) (*domain.LogRecord, error) {
	if mock.UpdateFunc == nil {
		panic("logRepoMock.UpdateFunc: method is nil but logRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
		Rec *domain.LogRecord
	}{Ctx: ctx, ID: id, Rec: rec}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, id, rec)
}

func (mock *logRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	ID  int64
	Rec *domain.LogRecord
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *logRepoMock) Delete(ctx context.Context, id int64) error {
	if mock.DeleteFunc == nil {
		panic("logRepoMock.DeleteFunc: method is nil but logRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  int64
	}{Ctx: ctx, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *logRepoMock) DeleteCalls() []struct {
	Ctx context.Context
	ID  int64
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}

func (mock *logRepoMock) BulkInsert(ctx context.Context, recs []domain.LogRecord) (int, error) {
	if mock.BulkInsertFunc == nil {
		panic("logRepoMock.BulkInsertFunc: method is nil but logRepo.BulkInsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Recs []domain.LogRecord
	}{Ctx: ctx, Recs: recs}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, recs)
}

func (mock *logRepoMock) BulkInsertCalls() []struct {
	Ctx  context.Context
	Recs []domain.LogRecord
} {
	mock.lockBulkInsert.RLock()
	defer mock.lockBulkInsert.RUnlock()
	return mock.calls.BulkInsert
}

func (mock *logRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("logRepoMock.DeleteAllFunc: method is nil but logRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *logRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	defer mock.lockDeleteAll.RUnlock()
	return mock.calls.DeleteAll
}

func (mock *logRepoMock) List(ctx context.Context, f domain.LogFilter) ([]domain.LogRecord, int, error) {
	if mock.ListFunc == nil {
		panic("logRepoMock.ListFunc: method is nil but logRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.LogFilter
	}{Ctx: ctx, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *logRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.LogFilter
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *logRepoMock) AggregateByDate(ctx context.Context, f domain.LogFilter, interval domain.Interval) ([]domain.DateBucket, error) {
	if mock.AggregateByDateFunc == nil {
		panic("logRepoMock.AggregateByDateFunc: method is nil but logRepo.AggregateByDate was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		F        domain.LogFilter
		Interval domain.Interval
	}{Ctx: ctx, F: f, Interval: interval}
	mock.lockAggregateByDate.Lock()
	mock.calls.AggregateByDate = append(mock.calls.AggregateByDate, callInfo)
	mock.lockAggregateByDate.Unlock()
	return mock.AggregateByDateFunc(ctx, f, interval)
}

func (mock *logRepoMock) AggregateByDateCalls() []struct {
	Ctx      context.Context
	F        domain.LogFilter
	Interval domain.Interval
} {
	mock.lockAggregateByDate.RLock()
	defer mock.lockAggregateByDate.RUnlock()
	return mock.calls.AggregateByDate
}

func (mock *logRepoMock) AggregateByColumn(ctx context.Context, f domain.LogFilter, group domain.GroupBy) ([]domain.GroupCount, error) {
	if mock.AggregateByColumnFunc == nil {
		panic("logRepoMock.AggregateByColumnFunc: method is nil but logRepo.AggregateByColumn was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		F     domain.LogFilter
		Group domain.GroupBy
	}{Ctx: ctx, F: f, Group: group}
	mock.lockAggregateByColumn.Lock()
	mock.calls.AggregateByColumn = append(mock.calls.AggregateByColumn, callInfo)
	mock.lockAggregateByColumn.Unlock()
	return mock.AggregateByColumnFunc(ctx, f, group)
}

func (mock *logRepoMock) AggregateByColumnCalls() []struct {
	Ctx   context.Context
	F     domain.LogFilter
	Group domain.GroupBy
} {
	mock.lockAggregateByColumn.RLock()
	defer mock.lockAggregateByColumn.RUnlock()
	return mock.calls.AggregateByColumn
}

func (mock *logRepoMock) ListAfter(ctx context.Context, f domain.LogFilter, cursor *domain.ExportCursor, limit int) ([]domain.LogRecord, error) {
	if mock.ListAfterFunc == nil {
		panic("logRepoMock.ListAfterFunc: method is nil but logRepo.ListAfter was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		F      domain.LogFilter
		Cursor *domain.ExportCursor
		Limit  int
	}{Ctx: ctx, F: f, Cursor: cursor, Limit: limit}
	mock.lockListAfter.Lock()
	mock.calls.ListAfter = append(mock.calls.ListAfter, callInfo)
	mock.lockListAfter.Unlock()
	return mock.ListAfterFunc(ctx, f, cursor, limit)
}

func (mock *logRepoMock) ListAfterCalls() []struct {
	Ctx    context.Context
	F      domain.LogFilter
	Cursor *domain.ExportCursor
	Limit  int
} {
	mock.lockListAfter.RLock()
	defer mock.lockListAfter.RUnlock()
	return mock.calls.ListAfter
}
