// Package file persiste cada catálogo como un documento JSON en disco,
// igual que la variante local del backend original: lectura y reescritura
// de la colección completa en cada mutación.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"aupac-site/internal/domain/catalog"
)

type Store struct {
	dir string
	mu  sync.Mutex
}

// NewStore crea el directorio de datos si no existe.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// collectionDoc conserva la forma que tenía el archivo en disco: array
// pelado o objeto con una única propiedad nombrada ({"cachorros":[...]}).
// Hay archivos históricos con ambas formas y hay que respetarlas.
type collectionDoc struct {
	records []catalog.Record
	wrapped bool
}

func (s *Store) path(kind catalog.Kind) string {
	return filepath.Join(s.dir, kind.Collection()+".json")
}

func (s *Store) load(kind catalog.Kind) (collectionDoc, error) {
	b, err := os.ReadFile(s.path(kind))
	if err != nil {
		if os.IsNotExist(err) {
			return collectionDoc{}, nil
		}
		return collectionDoc{}, fmt.Errorf("read %s: %w", s.path(kind), err)
	}

	trimmed := bytes.TrimLeft(b, " \t\r\n")
	if len(trimmed) == 0 {
		return collectionDoc{}, nil
	}

	if trimmed[0] == '[' {
		var recs []catalog.Record
		if err := json.Unmarshal(b, &recs); err != nil {
			return collectionDoc{}, fmt.Errorf("decode %s: %w", s.path(kind), err)
		}
		return collectionDoc{records: recs}, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(b, &obj); err != nil {
		return collectionDoc{}, fmt.Errorf("decode %s: %w", s.path(kind), err)
	}

	raw, ok := obj[kind.Collection()]
	if !ok {
		// forma objeto pero con otra clave: tomar la única que haya
		for _, v := range obj {
			raw = v
			break
		}
	}

	var recs []catalog.Record
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &recs); err != nil {
			return collectionDoc{}, fmt.Errorf("decode %s: %w", s.path(kind), err)
		}
	}
	return collectionDoc{records: recs, wrapped: true}, nil
}

// save reescribe la colección entera vía archivo temporal + rename, para
// no dejar un JSON cortado si el proceso muere a mitad de escritura.
func (s *Store) save(kind catalog.Kind, doc collectionDoc) error {
	var payload any = doc.records
	if doc.wrapped {
		payload = map[string][]catalog.Record{kind.Collection(): doc.records}
	}

	b, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, kind.Collection()+"-*.json")
	if err != nil {
		return fmt.Errorf("write %s: %w", s.path(kind), err)
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path(kind), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write %s: %w", s.path(kind), err)
	}

	return os.Rename(tmp.Name(), s.path(kind))
}

// List devuelve los registros en el orden del archivo (sin orden por
// contrato; acá se preserva lo que haya en disco).
func (s *Store) List(ctx context.Context, kind catalog.Kind) ([]catalog.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(kind)
	if err != nil {
		return nil, err
	}
	return doc.records, nil
}

func (s *Store) GetByID(ctx context.Context, kind catalog.Kind, id int64) (catalog.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(kind)
	if err != nil {
		return catalog.Record{}, err
	}
	for _, rec := range doc.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return catalog.Record{}, catalog.ErrNotFound
}

func (s *Store) Put(ctx context.Context, kind catalog.Kind, rec catalog.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(kind)
	if err != nil {
		return err
	}

	replaced := false
	for i := range doc.records {
		if doc.records[i].ID == rec.ID {
			doc.records[i] = rec
			replaced = true
			break
		}
	}
	if !replaced {
		doc.records = append(doc.records, rec)
	}

	return s.save(kind, doc)
}

func (s *Store) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(kind)
	if err != nil {
		return err
	}

	kept := doc.records[:0]
	found := false
	for _, rec := range doc.records {
		if rec.ID == id {
			found = true
			continue
		}
		kept = append(kept, rec)
	}
	if !found {
		return catalog.ErrNotFound
	}

	doc.records = kept
	return s.save(kind, doc)
}
