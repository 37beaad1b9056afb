package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shashiranjanraj/kashvi-products/app/models"
)

// MemoryProductRepository keeps products in a map. It enforces the same
// uniqueness and not-found rules as the gorm repository and backs unit tests.
type MemoryProductRepository struct {
	mu     sync.RWMutex
	rows   map[uint]models.Product
	nextID uint
	now    func() time.Time
}

// NewMemoryProductRepository returns an empty store.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		rows:   make(map[uint]models.Product),
		nextID: 1,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (r *MemoryProductRepository) List(_ context.Context) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Product, 0, len(r.rows))
	for _, p := range r.rows {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.rows[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return &p, nil
}

func (r *MemoryProductRepository) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.nameTakenLocked(p.Name, 0) {
		return ErrDuplicateName
	}
	now := r.now()
	p.ID = r.nextID
	p.CreatedAt, p.UpdatedAt = now, now
	r.nextID++
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Update(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	old, ok := r.rows[p.ID]
	if !ok {
		return ErrProductNotFound
	}
	if r.nameTakenLocked(p.Name, p.ID) {
		return ErrDuplicateName
	}
	p.CreatedAt = old.CreatedAt
	p.UpdatedAt = r.now()
	r.rows[p.ID] = *p
	return nil
}

func (r *MemoryProductRepository) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return ErrProductNotFound
	}
	delete(r.rows, id)
	return nil
}

func (r *MemoryProductRepository) NameTaken(_ context.Context, name string, exceptID uint) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.nameTakenLocked(name, exceptID), nil
}

func (r *MemoryProductRepository) nameTakenLocked(name string, exceptID uint) bool {
	for id, p := range r.rows {
		if id != exceptID && p.Name == name {
			return true
		}
	}
	return false
}
