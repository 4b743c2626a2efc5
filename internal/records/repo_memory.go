package records

import (
	"context"
	"sync"

	"string-analyzer/internal/shared/errors"
)

// MemoryRepo stores records in memory and is safe for concurrent use.
// Records are returned as deep copies.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Record
	order []string
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID: make(map[string]Record),
	}
}

// Insert stores rec unless a record with the same ID already exists.
func (r *MemoryRepo) Insert(ctx context.Context, rec Record) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[rec.ID]; ok {
		return Record{}, errors.Wrapf(ErrConflict, "id %s", rec.ID)
	}
	r.byID[rec.ID] = rec.clone()
	r.order = append(r.order, rec.ID)
	return rec, nil
}

// GetByID returns the record with the given identifier.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byID[id]
	if !ok {
		return Record{}, errors.Wrapf(ErrNotFound, "id %s", id)
	}
	return rec.clone(), nil
}

// FindByText scans for the record whose value equals text.
func (r *MemoryRepo) FindByText(ctx context.Context, text string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if rec := r.byID[id]; rec.Value == text {
			return rec.clone(), nil
		}
	}
	return Record{}, ErrNotFound
}

// Delete removes the record with the given identifier.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return errors.Wrapf(ErrNotFound, "id %s", id)
	}
	delete(r.byID, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a snapshot of all records in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].clone())
	}
	return out, nil
}

// Count returns the number of stored records.
func (r *MemoryRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

// Reset drops every record.
func (r *MemoryRepo) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]Record)
	r.order = nil
}
