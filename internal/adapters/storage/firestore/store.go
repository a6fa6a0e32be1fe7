// Package firestore persiste los catálogos en Cloud Firestore: un
// documento por registro, con el id numérico como id de documento, igual
// que hacía el backend original con firebase-admin.
package firestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	cf "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"aupac-site/internal/domain/catalog"
)

type Store struct {
	client *cf.Client
}

// Open conecta al proyecto. Las credenciales las resuelve el SDK
// (GOOGLE_APPLICATION_CREDENTIALS o metadata del entorno).
func Open(ctx context.Context, projectID string) (*Store, error) {
	client, err := cf.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore: %w", err)
	}
	return &Store{client: client}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func docID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// Los documentos guardan los nombres de campo del contrato (nome, preco,
// imagem...), así que el mapeo pasa por los tags JSON del Record en vez
// de duplicarlos en tags de firestore.
func toDoc(rec catalog.Record) (map[string]any, error) {
	b, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func fromDoc(data map[string]any) (catalog.Record, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return catalog.Record{}, err
	}
	var rec catalog.Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return catalog.Record{}, err
	}
	return rec, nil
}

// List devuelve la colección completa ordenada por id descendente
// (los más nuevos primero, como el sitio original).
func (s *Store) List(ctx context.Context, kind catalog.Kind) ([]catalog.Record, error) {
	iter := s.client.Collection(kind.Collection()).
		OrderBy("id", cf.Desc).
		Documents(ctx)
	defer iter.Stop()

	out := make([]catalog.Record, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("firestore list %s: %w", kind.Collection(), err)
		}

		rec, err := fromDoc(doc.Data())
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}

	return out, nil
}

func (s *Store) GetByID(ctx context.Context, kind catalog.Kind, id int64) (catalog.Record, error) {
	doc, err := s.client.Collection(kind.Collection()).Doc(docID(id)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return catalog.Record{}, catalog.ErrNotFound
		}
		return catalog.Record{}, fmt.Errorf("firestore get %s/%d: %w", kind.Collection(), id, err)
	}
	return fromDoc(doc.Data())
}

// Put sobreescribe el documento completo. La atomicidad es por documento;
// entre el Get del edit y este Set puede colarse otro escritor
// (last write wins, sin transacción, como el original).
func (s *Store) Put(ctx context.Context, kind catalog.Kind, rec catalog.Record) error {
	m, err := toDoc(rec)
	if err != nil {
		return err
	}
	if _, err := s.client.Collection(kind.Collection()).Doc(docID(rec.ID)).Set(ctx, m); err != nil {
		return fmt.Errorf("firestore put %s/%d: %w", kind.Collection(), rec.ID, err)
	}
	return nil
}

// Delete no falla si el documento no existe; el ack idempotente sale gratis.
func (s *Store) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	if _, err := s.client.Collection(kind.Collection()).Doc(docID(id)).Delete(ctx); err != nil {
		return fmt.Errorf("firestore delete %s/%d: %w", kind.Collection(), id, err)
	}
	return nil
}
