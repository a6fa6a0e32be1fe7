package memory

import (
	"context"
	"sort"
	"sync"

	"aupac-site/internal/domain/catalog"
)

type catalogRepo struct {
	mu   sync.RWMutex
	byID map[catalog.Kind]map[int64]catalog.Record
}

// NewCatalogRepo crea el repo in-memory (tests y modo dev sin disco).
func NewCatalogRepo() catalog.Repository {
	return &catalogRepo{
		byID: map[catalog.Kind]map[int64]catalog.Record{
			catalog.KindAupac:      {},
			catalog.KindArtesanato: {},
		},
	}
}

func (r *catalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]catalog.Record, 0, len(r.byID[kind]))
	for _, rec := range r.byID[kind] {
		out = append(out, rec)
	}

	// Mismo orden que los backends remotos: id descendente (más nuevo primero).
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID > out[j].ID
	})

	return out, nil
}

func (r *catalogRepo) GetByID(ctx context.Context, kind catalog.Kind, id int64) (catalog.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.byID[kind][id]
	if !ok {
		return catalog.Record{}, catalog.ErrNotFound
	}
	return rec, nil
}

func (r *catalogRepo) Put(ctx context.Context, kind catalog.Kind, rec catalog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID[kind][rec.ID] = rec
	return nil
}

func (r *catalogRepo) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[kind][id]; !ok {
		return catalog.ErrNotFound
	}
	delete(r.byID[kind], id)
	return nil
}
