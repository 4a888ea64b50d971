package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/finvault/balance-ledger/internal/domain"
	"github.com/finvault/balance-ledger/internal/usecase"
)

func balanceKey(accountID, currency string) string {
	return accountID + ":" + currency
}

// MockBalanceRepository is a mock implementation of BalanceRepository.
type MockBalanceRepository struct {
	mu       sync.RWMutex
	balances map[string]*domain.Balance

	GetFunc              func(ctx context.Context, accountID, currency string) (*domain.Balance, error)
	GetAllFunc           func(ctx context.Context, accountID string) ([]*domain.Balance, error)
	CreateIfAbsentFunc   func(ctx context.Context, tx usecase.Transaction, accountID, currency string, now time.Time) error
	GetForUpdateFunc     func(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error)
	GetManyForUpdateFunc func(ctx context.Context, tx usecase.Transaction, accountIDs []string, currency string) ([]*domain.Balance, error)
	UpdateAmountsFunc    func(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error
	CountInconsistentFunc func(ctx context.Context) (int64, error)
}

func NewMockBalanceRepository() *MockBalanceRepository {
	return &MockBalanceRepository{
		balances: make(map[string]*domain.Balance),
	}
}

// Seed stores a balance directly, bypassing the lazy-create path.
func (m *MockBalanceRepository) Seed(b *domain.Balance) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[balanceKey(b.AccountID, b.Currency)] = b
}

func (m *MockBalanceRepository) Get(ctx context.Context, accountID, currency string) (*domain.Balance, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, accountID, currency)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.balances[balanceKey(accountID, currency)]; ok {
		return b, nil
	}
	return nil, domain.ErrBalanceNotFound
}

func (m *MockBalanceRepository) GetAll(ctx context.Context, accountID string) ([]*domain.Balance, error) {
	if m.GetAllFunc != nil {
		return m.GetAllFunc(ctx, accountID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var balances []*domain.Balance
	for _, b := range m.balances {
		if b.AccountID == accountID {
			balances = append(balances, b)
		}
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].Currency < balances[j].Currency })
	return balances, nil
}

func (m *MockBalanceRepository) CreateIfAbsent(ctx context.Context, tx usecase.Transaction, accountID, currency string, now time.Time) error {
	if m.CreateIfAbsentFunc != nil {
		return m.CreateIfAbsentFunc(ctx, tx, accountID, currency, now)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := balanceKey(accountID, currency)
	if _, ok := m.balances[key]; !ok {
		m.balances[key] = domain.NewBalance(accountID, currency, now)
	}
	return nil
}

func (m *MockBalanceRepository) GetForUpdate(ctx context.Context, tx usecase.Transaction, accountID, currency string) (*domain.Balance, error) {
	if m.GetForUpdateFunc != nil {
		return m.GetForUpdateFunc(ctx, tx, accountID, currency)
	}
	return m.Get(ctx, accountID, currency)
}

func (m *MockBalanceRepository) GetManyForUpdate(ctx context.Context, tx usecase.Transaction, accountIDs []string, currency string) ([]*domain.Balance, error) {
	if m.GetManyForUpdateFunc != nil {
		return m.GetManyForUpdateFunc(ctx, tx, accountIDs, currency)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var balances []*domain.Balance
	for _, id := range accountIDs {
		if b, ok := m.balances[balanceKey(id, currency)]; ok {
			balances = append(balances, b)
		}
	}
	return balances, nil
}

func (m *MockBalanceRepository) UpdateAmounts(ctx context.Context, tx usecase.Transaction, balance *domain.Balance) error {
	if m.UpdateAmountsFunc != nil {
		return m.UpdateAmountsFunc(ctx, tx, balance)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[balanceKey(balance.AccountID, balance.Currency)] = balance
	return nil
}

func (m *MockBalanceRepository) CountInconsistent(ctx context.Context) (int64, error) {
	if m.CountInconsistentFunc != nil {
		return m.CountInconsistentFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var count int64
	for _, b := range m.balances {
		if !b.IsConsistent() {
			count++
		}
	}
	return count, nil
}

// MockOperationRepository is a mock implementation of OperationRepository.
type MockOperationRepository struct {
	mu         sync.RWMutex
	operations map[string]*domain.Operation
	order      []string

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error
	UpdateStatusFunc   func(ctx context.Context, tx usecase.Transaction, id string, status domain.OperationStatus, processedAt time.Time) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.Operation, error)
	GetByReferenceFunc func(ctx context.Context, tx usecase.Transaction, accountID, currency, reference string) (*domain.Operation, error)
	ListByAccountFunc  func(ctx context.Context, accountID, currency string, limit, offset int) ([]*domain.Operation, error)
}

func NewMockOperationRepository() *MockOperationRepository {
	return &MockOperationRepository{
		operations: make(map[string]*domain.Operation),
	}
}

func (m *MockOperationRepository) Create(ctx context.Context, tx usecase.Transaction, op *domain.Operation) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, op)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.operations {
		if existing.Type != domain.OperationTransfer && op.Type != domain.OperationTransfer &&
			existing.AccountID == op.AccountID && existing.Currency == op.Currency && existing.Reference == op.Reference {
			return domain.ErrDuplicateReference
		}
	}
	m.operations[op.ID] = op
	m.order = append(m.order, op.ID)
	return nil
}

func (m *MockOperationRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.OperationStatus, processedAt time.Time) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, tx, id, status, processedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	op, ok := m.operations[id]
	if !ok {
		return domain.ErrOperationNotFound
	}
	op.Status = status
	op.ProcessedAt = &processedAt
	return nil
}

func (m *MockOperationRepository) GetByID(ctx context.Context, id string) (*domain.Operation, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if op, ok := m.operations[id]; ok {
		return op, nil
	}
	return nil, domain.ErrOperationNotFound
}

func (m *MockOperationRepository) GetByReference(ctx context.Context, tx usecase.Transaction, accountID, currency, reference string) (*domain.Operation, error) {
	if m.GetByReferenceFunc != nil {
		return m.GetByReferenceFunc(ctx, tx, accountID, currency, reference)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, op := range m.operations {
		if op.Type != domain.OperationTransfer &&
			op.AccountID == accountID && op.Currency == currency && op.Reference == reference {
			return op, nil
		}
	}
	return nil, domain.ErrOperationNotFound
}

func (m *MockOperationRepository) ListByAccount(ctx context.Context, accountID, currency string, limit, offset int) ([]*domain.Operation, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, currency, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ops []*domain.Operation
	// Newest first: walk insertion order backwards.
	for i := len(m.order) - 1; i >= 0; i-- {
		op := m.operations[m.order[i]]
		if op.AccountID != accountID {
			continue
		}
		if currency != "" && op.Currency != currency {
			continue
		}
		ops = append(ops, op)
	}
	// Match the real repository's ORDER BY created_at DESC, id DESC: a
	// stable sort over the reverse-insertion-order walk keeps later
	// insertions first among equal timestamps.
	sort.SliceStable(ops, func(i, j int) bool {
		return ops[i].CreatedAt.After(ops[j].CreatedAt)
	})
	if offset >= len(ops) {
		return nil, nil
	}
	ops = ops[offset:]
	if len(ops) > limit {
		ops = ops[:limit]
	}
	return ops, nil
}

// MockSnapshotRepository is a mock implementation of SnapshotRepository.
type MockSnapshotRepository struct {
	mu        sync.RWMutex
	snapshots map[string]*domain.Snapshot

	UpsertFunc            func(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error
	ListByAccountDateFunc func(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error)
}

func NewMockSnapshotRepository() *MockSnapshotRepository {
	return &MockSnapshotRepository{
		snapshots: make(map[string]*domain.Snapshot),
	}
}

func snapshotKey(accountID, currency string, date time.Time) string {
	return accountID + ":" + currency + ":" + date.Format("2006-01-02")
}

func (m *MockSnapshotRepository) Upsert(ctx context.Context, tx usecase.Transaction, snapshot *domain.Snapshot) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, tx, snapshot)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	key := snapshotKey(snapshot.AccountID, snapshot.Currency, snapshot.Date)
	if existing, ok := m.snapshots[key]; ok {
		// Overwrite values, keep original row identity.
		existing.Available = snapshot.Available
		existing.Reserved = snapshot.Reserved
		existing.Total = snapshot.Total
		existing.UpdatedAt = snapshot.UpdatedAt
		return nil
	}
	m.snapshots[key] = snapshot
	return nil
}

func (m *MockSnapshotRepository) ListByAccountDate(ctx context.Context, accountID string, date time.Time) ([]*domain.Snapshot, error) {
	if m.ListByAccountDateFunc != nil {
		return m.ListByAccountDateFunc(ctx, accountID, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var snaps []*domain.Snapshot
	for _, s := range m.snapshots {
		if s.AccountID == accountID && s.Date.Equal(date) {
			snaps = append(snaps, s)
		}
	}
	sort.Slice(snaps, func(i, j int) bool { return snaps[i].Currency < snaps[j].Currency })
	return snaps, nil
}

// Count returns the number of stored snapshot rows.
func (m *MockSnapshotRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snapshots)
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("id-%06d", m.counter)
}

// MockRetrier is a pass-through Retrier.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCache is an in-memory Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string][]byte

	GetFunc    func(ctx context.Context, key string) ([]byte, error)
	SetFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFunc func(ctx context.Context, key string) error
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string][]byte)}
}

var errCacheMiss = domain.ErrBalanceNotFound

func (m *MockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.items[key]; ok {
		return v, nil
	}
	return nil, errCacheMiss
}

func (m *MockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, key)
	return nil
}
