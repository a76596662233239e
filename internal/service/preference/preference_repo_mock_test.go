package preference

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
)

var _ preferenceRepo = &preferenceRepoMock{}

type preferenceRepoMock struct {
	CreateFunc  func(ctx context.Context, p *domain.FilterPreference) (*domain.FilterPreference, error)
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id int64) (*domain.FilterPreference, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID) ([]domain.FilterPreference, error)
	UpdateFunc  func(ctx context.Context, userID uuid.UUID, id int64, p *domain.FilterPreference) (*domain.FilterPreference, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id int64) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.FilterPreference
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     int64
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Update []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     int64
			P      *domain.FilterPreference
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     int64
		}
	}
	lockCreate  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
	lockDelete  sync.RWMutex
}

func (mock *preferenceRepoMock) Create(ctx context.Context, p *domain.FilterPreference) (*domain.FilterPreference, error) {
	if mock.CreateFunc == nil {
		panic("preferenceRepoMock.CreateFunc: method is nil but preferenceRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.FilterPreference
	}{Ctx: ctx, P: p}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *preferenceRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.FilterPreference
} {
	mock.lockCreate.RLock()
	defer mock.lockCreate.RUnlock()
	return mock.calls.Create
}

func (mock *preferenceRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int64) (*domain.FilterPreference, error) {
	if mock.GetByIDFunc == nil {
		panic("preferenceRepoMock.GetByIDFunc: method is nil but preferenceRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *preferenceRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     int64
} {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *preferenceRepoMock) List(ctx context.Context, userID uuid.UUID) ([]domain.FilterPreference, error) {
	if mock.ListFunc == nil {
		panic("preferenceRepoMock.ListFunc: method is nil but preferenceRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

func (mock *preferenceRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockList.RLock()
	defer mock.lockList.RUnlock()
	return mock.calls.List
}

func (mock *preferenceRepoMock) Update(ctx context.Context, userID uuid.UUID, id int64, p *domain.FilterPreference) (*domain.FilterPreference, error) {
	if mock.UpdateFunc == nil {
		panic("preferenceRepoMock.UpdateFunc: method is nil but preferenceRepo.Update was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     int64
		P      *domain.FilterPreference
	}{Ctx: ctx, UserID: userID, ID: id, P: p}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, p)
}

func (mock *preferenceRepoMock) UpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     int64
	P      *domain.FilterPreference
} {
	mock.lockUpdate.RLock()
	defer mock.lockUpdate.RUnlock()
	return mock.calls.Update
}

func (mock *preferenceRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int64) error {
	if mock.DeleteFunc == nil {
		panic("preferenceRepoMock.DeleteFunc: method is nil but preferenceRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     int64
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *preferenceRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     int64
} {
	mock.lockDelete.RLock()
	defer mock.lockDelete.RUnlock()
	return mock.calls.Delete
}
