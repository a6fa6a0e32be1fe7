package catalog_test

import (
	"context"
	"errors"
	"testing"

	"aupac-site/internal/adapters/storage/memory"
	"aupac-site/internal/domain/catalog"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())
	ctx := context.Background()

	seen := map[int64]bool{}
	for i := 0; i < 50; i++ {
		rec, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{}, nil)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if rec.ID <= 0 {
			t.Fatalf("expected positive id, got %d", rec.ID)
		}
		// aunque varios creates caigan en el mismo milisegundo, el id
		// nuevo no puede repetir uno ya emitido
		if seen[rec.ID] {
			t.Fatalf("duplicate id %d", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestCreate_Defaults(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())

	rec, err := svc.Create(context.Background(), catalog.KindAupac, catalog.Fields{}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if rec.Nome != "" || rec.Descricao != "" {
		t.Fatalf("expected empty strings, got %+v", rec)
	}
	if rec.Preco != nil || rec.Categoria != nil || rec.Porte != nil ||
		rec.Idade != nil || rec.Sexo != nil || rec.Whatsapp != nil ||
		rec.Obs != nil || rec.Imagem != nil {
		t.Fatalf("expected nil optional fields, got %+v", rec)
	}
}

func TestCreate_NormalizesCategoria(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())

	rec, err := svc.Create(context.Background(), catalog.KindArtesanato, catalog.Fields{
		Categoria: strPtr("  Cerâmica "),
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Categoria == nil || *rec.Categoria != "cerâmica" {
		t.Fatalf("expected lowercased categoria, got %v", rec.Categoria)
	}
}

func TestUpdate_PartialLeavesOmittedFields(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())
	ctx := context.Background()

	created, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{
		Nome:  strPtr("Rex"),
		Porte: strPtr("grande"),
		Idade: strPtr("adulto"),
		Sexo:  strPtr("macho"),
		Obs:   strPtr("muito dócil"),
	}, strPtr("/uploads/aupac/rex.jpg"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// editar solo el nombre: el resto queda exactamente igual
	updated, err := svc.Update(ctx, catalog.KindAupac, created.ID, catalog.Fields{
		Nome: strPtr("Rex II"),
	}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Nome != "Rex II" {
		t.Fatalf("expected updated nome, got %q", updated.Nome)
	}
	if *updated.Porte != "grande" || *updated.Idade != "adulto" ||
		*updated.Sexo != "macho" || *updated.Obs != "muito dócil" {
		t.Fatalf("omitted fields changed: %+v", updated)
	}
	if updated.Imagem == nil || *updated.Imagem != "/uploads/aupac/rex.jpg" {
		t.Fatalf("imagem should be kept, got %v", updated.Imagem)
	}
	if updated.ID != created.ID {
		t.Fatalf("id must be immutable: %d != %d", updated.ID, created.ID)
	}
}

func TestUpdate_ImageLifecycle(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())
	ctx := context.Background()

	// create sin imagen => referencia null
	rec, err := svc.Create(ctx, catalog.KindArtesanato, catalog.Fields{
		Nome:  strPtr("Caneca"),
		Preco: floatPtr(35),
	}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Imagem != nil {
		t.Fatalf("expected nil imagem on create without upload, got %v", rec.Imagem)
	}

	// un edit con imagen la setea
	rec, err = svc.Update(ctx, catalog.KindArtesanato, rec.ID, catalog.Fields{}, strPtr("/uploads/artesanatos/caneca.png"))
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Imagem == nil || *rec.Imagem != "/uploads/artesanatos/caneca.png" {
		t.Fatalf("expected imagem set, got %v", rec.Imagem)
	}

	// un edit posterior sin imagen no la toca
	rec, err = svc.Update(ctx, catalog.KindArtesanato, rec.ID, catalog.Fields{
		Preco: floatPtr(40),
	}, nil)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if rec.Imagem == nil || *rec.Imagem != "/uploads/artesanatos/caneca.png" {
		t.Fatalf("imagem should survive edit without upload, got %v", rec.Imagem)
	}
}

func TestUpdate_UnknownIDIsNotFound(t *testing.T) {
	repo := memory.NewCatalogRepo()
	svc := catalog.NewService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{Nome: strPtr("Mia")}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Update(ctx, catalog.KindAupac, 999, catalog.Fields{Nome: strPtr("x")}, nil)
	if !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// y la colección no cambió
	items, err := svc.List(ctx, catalog.KindAupac)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Nome != "Mia" {
		t.Fatalf("collection modified by failed update: %+v", items)
	}
}

func TestDelete_Idempotent(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())
	ctx := context.Background()

	rec, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{Nome: strPtr("Bolt")}, nil)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, catalog.KindAupac, rec.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	// borrar de nuevo también es éxito
	if err := svc.Delete(ctx, catalog.KindAupac, rec.ID); err != nil {
		t.Fatalf("second delete should be a no-op success, got %v", err)
	}
	// y un id que nunca existió, igual
	if err := svc.Delete(ctx, catalog.KindAupac, 12345); err != nil {
		t.Fatalf("delete of unknown id should succeed, got %v", err)
	}

	items, err := svc.List(ctx, catalog.KindAupac)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection, got %d items", len(items))
	}
}

func TestKinds_AreIsolated(t *testing.T) {
	svc := catalog.NewService(memory.NewCatalogRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{Nome: strPtr("Rex")}, nil); err != nil {
		t.Fatalf("create: %v", err)
	}

	items, err := svc.List(ctx, catalog.KindArtesanato)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("artesanato should not see aupac records: %+v", items)
	}
}

func TestUnavailableRepository_FailsEveryOperation(t *testing.T) {
	svc := catalog.NewService(catalog.UnavailableRepository{})
	ctx := context.Background()

	if _, err := svc.List(ctx, catalog.KindAupac); !errors.Is(err, catalog.ErrStorageUnavailable) {
		t.Fatalf("list: expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.Create(ctx, catalog.KindAupac, catalog.Fields{}, nil); !errors.Is(err, catalog.ErrStorageUnavailable) {
		t.Fatalf("create: expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := svc.Update(ctx, catalog.KindAupac, 1, catalog.Fields{}, nil); !errors.Is(err, catalog.ErrStorageUnavailable) {
		t.Fatalf("update: expected ErrStorageUnavailable, got %v", err)
	}
	if err := svc.Delete(ctx, catalog.KindAupac, 1); !errors.Is(err, catalog.ErrStorageUnavailable) {
		t.Fatalf("delete: expected ErrStorageUnavailable, got %v", err)
	}
}
