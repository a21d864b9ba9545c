package repository

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/productshowcase/catalog-service/internal/product"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrUnavailable is returned by a MemoryRepo that has been marked failing.
var ErrUnavailable = errors.New("store unavailable")

// MemoryRepo is an in-memory Repository with the same query semantics as MongoRepo.
type MemoryRepo struct {
	mu      sync.RWMutex
	store   []product.Product
	failing bool
}

func NewMemoryRepo(products ...product.Product) *MemoryRepo {
	m := &MemoryRepo{}
	_, _ = m.InsertMany(context.Background(), products)
	return m
}

// SetFailing makes every subsequent call return ErrUnavailable (or succeed again when false).
func (m *MemoryRepo) SetFailing(failing bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failing = failing
}

func (m *MemoryRepo) Find(_ context.Context, q product.ListQuery) ([]product.Product, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failing {
		return nil, 0, ErrUnavailable
	}
	matched := make([]product.Product, 0, len(m.store))
	for _, p := range m.store {
		if q.Matches(p) {
			matched = append(matched, p)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool { return q.Less(matched[i], matched[j]) })

	total := int64(len(matched))
	start := q.Skip()
	if start > total {
		start = total
	}
	end := start + q.Limit()
	if end > total {
		end = total
	}
	out := make([]product.Product, end-start)
	copy(out, matched[start:end])
	return out, total, nil
}

func (m *MemoryRepo) Distinct(_ context.Context, field string) ([]string, error) {
	if err := checkFacet(field); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failing {
		return nil, ErrUnavailable
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, p := range m.store {
		v := p.Brand
		if field == FieldCategory {
			v = p.Category
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out, nil
}

func (m *MemoryRepo) InsertMany(_ context.Context, products []product.Product) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, ErrUnavailable
	}
	now := time.Now().UTC()
	for _, p := range products {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		m.store = append(m.store, p)
	}
	return len(products), nil
}

func (m *MemoryRepo) DeleteAll(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return 0, ErrUnavailable
	}
	n := int64(len(m.store))
	m.store = nil
	return n, nil
}

func (m *MemoryRepo) Ping(_ context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.failing {
		return ErrUnavailable
	}
	return nil
}
