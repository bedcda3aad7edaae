package todo

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error)
	CreateFunc          func(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error)
	UpdateFunc          func(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error)
	MarkPastDueBulkFunc func(ctx context.Context, cutoff time.Time) (int64, error)
	ListByStatusFunc    func(ctx context.Context, status domain.Status, limit, offset int) ([]*domain.TodoItem, bool, error)
	ListAllFunc         func(ctx context.Context, limit, offset int) ([]*domain.TodoItem, bool, error)

	calls struct {
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Create []struct {
			Ctx  context.Context
			Item *domain.TodoItem
		}
		Update []struct {
			Ctx  context.Context
			Item *domain.TodoItem
		}
		MarkPastDueBulk []struct {
			Ctx    context.Context
			Cutoff time.Time
		}
		ListByStatus []struct {
			Ctx    context.Context
			Status domain.Status
			Limit  int
			Offset int
		}
		ListAll []struct {
			Ctx    context.Context
			Limit  int
			Offset int
		}
	}
	lockGetByID         sync.RWMutex
	lockCreate          sync.RWMutex
	lockUpdate          sync.RWMutex
	lockMarkPastDueBulk sync.RWMutex
	lockListByStatus    sync.RWMutex
	lockListAll         sync.RWMutex
}

func (mock *todoRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.TodoItem, error) {
	if mock.GetByIDFunc == nil {
		panic("todoRepoMock.GetByIDFunc: method is nil but todoRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *todoRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *todoRepoMock) Create(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.TodoItem
	}{Ctx: ctx, Item: item}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, item)
}

func (mock *todoRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Item *domain.TodoItem
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *todoRepoMock) Update(ctx context.Context, item *domain.TodoItem) (*domain.TodoItem, error) {
	if mock.UpdateFunc == nil {
		panic("todoRepoMock.UpdateFunc: method is nil but todoRepo.Update was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.TodoItem
	}{Ctx: ctx, Item: item}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, item)
}

func (mock *todoRepoMock) UpdateCalls() []struct {
	Ctx  context.Context
	Item *domain.TodoItem
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *todoRepoMock) MarkPastDueBulk(ctx context.Context, cutoff time.Time) (int64, error) {
	if mock.MarkPastDueBulkFunc == nil {
		panic("todoRepoMock.MarkPastDueBulkFunc: method is nil but todoRepo.MarkPastDueBulk was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Cutoff time.Time
	}{Ctx: ctx, Cutoff: cutoff}
	mock.lockMarkPastDueBulk.Lock()
	mock.calls.MarkPastDueBulk = append(mock.calls.MarkPastDueBulk, callInfo)
	mock.lockMarkPastDueBulk.Unlock()
	return mock.MarkPastDueBulkFunc(ctx, cutoff)
}

func (mock *todoRepoMock) MarkPastDueBulkCalls() []struct {
	Ctx    context.Context
	Cutoff time.Time
} {
	mock.lockMarkPastDueBulk.RLock()
	calls := mock.calls.MarkPastDueBulk
	mock.lockMarkPastDueBulk.RUnlock()
	return calls
}

func (mock *todoRepoMock) ListByStatus(ctx context.Context, status domain.Status, limit, offset int) ([]*domain.TodoItem, bool, error) {
	if mock.ListByStatusFunc == nil {
		panic("todoRepoMock.ListByStatusFunc: method is nil but todoRepo.ListByStatus was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Status domain.Status
		Limit  int
		Offset int
	}{Ctx: ctx, Status: status, Limit: limit, Offset: offset}
	mock.lockListByStatus.Lock()
	mock.calls.ListByStatus = append(mock.calls.ListByStatus, callInfo)
	mock.lockListByStatus.Unlock()
	return mock.ListByStatusFunc(ctx, status, limit, offset)
}

func (mock *todoRepoMock) ListByStatusCalls() []struct {
	Ctx    context.Context
	Status domain.Status
	Limit  int
	Offset int
} {
	mock.lockListByStatus.RLock()
	calls := mock.calls.ListByStatus
	mock.lockListByStatus.RUnlock()
	return calls
}

func (mock *todoRepoMock) ListAll(ctx context.Context, limit, offset int) ([]*domain.TodoItem, bool, error) {
	if mock.ListAllFunc == nil {
		panic("todoRepoMock.ListAllFunc: method is nil but todoRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Limit  int
		Offset int
	}{Ctx: ctx, Limit: limit, Offset: offset}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx, limit, offset)
}

func (mock *todoRepoMock) ListAllCalls() []struct {
	Ctx    context.Context
	Limit  int
	Offset int
} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}
