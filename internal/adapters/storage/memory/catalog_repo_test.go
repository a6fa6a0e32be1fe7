package memory_test

import (
	"context"
	"testing"

	"aupac-site/internal/adapters/storage/memory"
	"aupac-site/internal/domain/catalog"
)

// El orden no es parte del contrato, pero este adapter elige id
// descendente (igual que firestore/postgres) y acá queda fijado.
func TestList_OrdersByIDDescending(t *testing.T) {
	repo := memory.NewCatalogRepo()
	ctx := context.Background()

	for _, id := range []int64{2, 5, 1, 4} {
		if err := repo.Put(ctx, catalog.KindAupac, catalog.Record{ID: id}); err != nil {
			t.Fatalf("put: %v", err)
		}
	}

	items, err := repo.List(ctx, catalog.KindAupac)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	want := []int64{5, 4, 2, 1}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, id := range want {
		if items[i].ID != id {
			t.Fatalf("position %d: expected id %d, got %d", i, id, items[i].ID)
		}
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := memory.NewCatalogRepo()

	if _, err := repo.GetByID(context.Background(), catalog.KindAupac, 1); err != catalog.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
