package review

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/seo-review-backend/internal/domain"
)

var _ metadataRepo = &metadataRepoMock{}

type metadataRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error)
	GetByIDForUpdateFunc func(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error)
	FindFunc             func(ctx context.Context, filter domain.MetadataFilter) ([]domain.MetadataRecord, int, error)
	StatsFunc            func(ctx context.Context) (domain.ReviewStats, error)
	SaveDecisionFunc     func(ctx context.Context, rec *domain.MetadataRecord) (*domain.MetadataRecord, error)
	ListReviewedFunc     func(ctx context.Context) ([]domain.MetadataRecord, error)

	calls struct {
		GetByID          []struct{ ID uuid.UUID }
		GetByIDForUpdate []struct{ ID uuid.UUID }
		Find             []struct{ Filter domain.MetadataFilter }
		Stats            []struct{}
		SaveDecision     []struct{ Rec *domain.MetadataRecord }
		ListReviewed     []struct{}
	}
	lock sync.RWMutex
}

func (mock *metadataRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error) {
	if mock.GetByIDFunc == nil {
		panic("metadataRepoMock.GetByIDFunc: method is nil but metadataRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *metadataRepoMock) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.MetadataRecord, error) {
	if mock.GetByIDForUpdateFunc == nil {
		panic("metadataRepoMock.GetByIDForUpdateFunc: method is nil but metadataRepo.GetByIDForUpdate was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByIDForUpdate = append(mock.calls.GetByIDForUpdate, struct{ ID uuid.UUID }{id})
	mock.lock.Unlock()
	return mock.GetByIDForUpdateFunc(ctx, id)
}

func (mock *metadataRepoMock) Find(ctx context.Context, filter domain.MetadataFilter) ([]domain.MetadataRecord, int, error) {
	if mock.FindFunc == nil {
		panic("metadataRepoMock.FindFunc: method is nil but metadataRepo.Find was just called")
	}
	mock.lock.Lock()
	mock.calls.Find = append(mock.calls.Find, struct{ Filter domain.MetadataFilter }{filter})
	mock.lock.Unlock()
	return mock.FindFunc(ctx, filter)
}

func (mock *metadataRepoMock) FindCalls() []struct{ Filter domain.MetadataFilter } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Find
}

func (mock *metadataRepoMock) Stats(ctx context.Context) (domain.ReviewStats, error) {
	if mock.StatsFunc == nil {
		panic("metadataRepoMock.StatsFunc: method is nil but metadataRepo.Stats was just called")
	}
	mock.lock.Lock()
	mock.calls.Stats = append(mock.calls.Stats, struct{}{})
	mock.lock.Unlock()
	return mock.StatsFunc(ctx)
}

func (mock *metadataRepoMock) StatsCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Stats
}

func (mock *metadataRepoMock) SaveDecision(ctx context.Context, rec *domain.MetadataRecord) (*domain.MetadataRecord, error) {
	if mock.SaveDecisionFunc == nil {
		panic("metadataRepoMock.SaveDecisionFunc: method is nil but metadataRepo.SaveDecision was just called")
	}
	mock.lock.Lock()
	mock.calls.SaveDecision = append(mock.calls.SaveDecision, struct{ Rec *domain.MetadataRecord }{rec})
	mock.lock.Unlock()
	return mock.SaveDecisionFunc(ctx, rec)
}

func (mock *metadataRepoMock) SaveDecisionCalls() []struct{ Rec *domain.MetadataRecord } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SaveDecision
}

func (mock *metadataRepoMock) ListReviewed(ctx context.Context) ([]domain.MetadataRecord, error) {
	if mock.ListReviewedFunc == nil {
		panic("metadataRepoMock.ListReviewedFunc: method is nil but metadataRepo.ListReviewed was just called")
	}
	mock.lock.Lock()
	mock.calls.ListReviewed = append(mock.calls.ListReviewed, struct{}{})
	mock.lock.Unlock()
	return mock.ListReviewedFunc(ctx)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs fn inline, like a transaction that always commits
// unless fn fails.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lock sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	mock.lock.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lock.Unlock()
	if mock.RunInTxFunc == nil {
		return fn(ctx)
	}
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.RunInTx
}

var _ statsCache = &statsCacheMock{}

type statsCacheMock struct {
	GetFunc        func(ctx context.Context) (domain.ReviewStats, int64, bool, error)
	SetFunc        func(ctx context.Context, gen int64, stats domain.ReviewStats) error
	InvalidateFunc func(ctx context.Context) error

	calls struct {
		Get        []struct{}
		Set        []struct {
			Gen   int64
			Stats domain.ReviewStats
		}
		Invalidate []struct{}
	}
	lock sync.RWMutex
}

func (mock *statsCacheMock) Get(ctx context.Context) (domain.ReviewStats, int64, bool, error) {
	if mock.GetFunc == nil {
		panic("statsCacheMock.GetFunc: method is nil but statsCache.Get was just called")
	}
	mock.lock.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{}{})
	mock.lock.Unlock()
	return mock.GetFunc(ctx)
}

func (mock *statsCacheMock) Set(ctx context.Context, gen int64, stats domain.ReviewStats) error {
	if mock.SetFunc == nil {
		panic("statsCacheMock.SetFunc: method is nil but statsCache.Set was just called")
	}
	mock.lock.Lock()
	mock.calls.Set = append(mock.calls.Set, struct {
		Gen   int64
		Stats domain.ReviewStats
	}{gen, stats})
	mock.lock.Unlock()
	return mock.SetFunc(ctx, gen, stats)
}

func (mock *statsCacheMock) SetCalls() []struct {
	Gen   int64
	Stats domain.ReviewStats
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Set
}

func (mock *statsCacheMock) Invalidate(ctx context.Context) error {
	if mock.InvalidateFunc == nil {
		panic("statsCacheMock.InvalidateFunc: method is nil but statsCache.Invalidate was just called")
	}
	mock.lock.Lock()
	mock.calls.Invalidate = append(mock.calls.Invalidate, struct{}{})
	mock.lock.Unlock()
	return mock.InvalidateFunc(ctx)
}

func (mock *statsCacheMock) InvalidateCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Invalidate
}
