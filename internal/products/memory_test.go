package products

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// memoryRepo is an in-memory Repository with an autoincrement id that never reuses values.
type memoryRepo struct {
	mu     sync.Mutex
	rows   map[int64]Product
	nextID int64

	listCalls int

	// Error injection
	listErr   error
	insertErr error
	batchErr  error
	countErr  error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{rows: make(map[int64]Product), nextID: 1}
}

func (m *memoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	return int64(len(m.rows)), nil
}

func (m *memoryRepo) List(ctx context.Context) ([]Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]Product, 0, len(m.rows))
	for _, p := range m.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, id int64) (Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return p, nil
}

func (m *memoryRepo) insertLocked(p Product) int64 {
	p.ID = m.nextID
	m.nextID++
	m.rows[p.ID] = p
	return p.ID
}

func (m *memoryRepo) Insert(ctx context.Context, p Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.insertErr != nil {
		return 0, m.insertErr
	}
	return m.insertLocked(p), nil
}

func (m *memoryRepo) InsertBatch(ctx context.Context, products []Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.batchErr != nil {
		return m.batchErr
	}
	for _, p := range products {
		m.insertLocked(p)
	}
	return nil
}

func (m *memoryRepo) Update(ctx context.Context, id int64, p Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	p.ID = id
	m.rows[id] = p
	return 1, nil
}

func (m *memoryRepo) UpdateQuantity(ctx context.Context, id int64, quantity int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rows[id]
	if !ok {
		return 0, nil
	}
	p.Quantity = quantity
	m.rows[id] = p
	return 1, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rows[id]; !ok {
		return 0, nil
	}
	delete(m.rows, id)
	return 1, nil
}

var errStoreDown = errors.New("connection refused")

func ptr[T any](v T) *T {
	return &v
}

func validInput() ProductInput {
	return ProductInput{Name: "X", Category: "Y", Price: ptr(9.99), Quantity: ptr(3)}
}
