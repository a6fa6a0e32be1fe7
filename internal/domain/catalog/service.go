package catalog

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Service implementa los casos de uso CRUD sobre un Repository.
type Service struct {
	repo Repository
	now  func() time.Time

	mu     sync.Mutex
	lastID int64
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

// nextID deriva el id del reloj en milisegundos, como el backend original.
// Si dos creates caen en el mismo milisegundo se avanza uno, así el id
// nuevo nunca repite uno ya emitido por este proceso.
func (s *Service) nextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *Service) List(ctx context.Context, kind Kind) ([]Record, error) {
	return s.repo.List(ctx, kind)
}

// Create arma el registro con defaults vacíos, aplica los campos
// presentes y persiste. imageRef nil = sin imagen (queda null).
func (s *Service) Create(ctx context.Context, kind Kind, f Fields, imageRef *string) (Record, error) {
	rec := Record{ID: s.nextID()}
	f.apply(&rec)
	rec.Imagem = imageRef

	if err := s.repo.Put(ctx, kind, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Update carga el registro actual, sobreescribe solo los campos presentes
// y reemplaza la imagen únicamente si vino una nueva. Los campos omitidos
// conservan su valor anterior.
func (s *Service) Update(ctx context.Context, kind Kind, id int64, f Fields, imageRef *string) (Record, error) {
	rec, err := s.repo.GetByID(ctx, kind, id)
	if err != nil {
		return Record{}, err
	}

	f.apply(&rec)
	if imageRef != nil {
		rec.Imagem = imageRef
	}

	if err := s.repo.Put(ctx, kind, rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Delete es idempotente: borrar un id inexistente también es éxito.
// El contrato no distingue "borrado" de "nunca existió".
func (s *Service) Delete(ctx context.Context, kind Kind, id int64) error {
	if err := s.repo.Delete(ctx, kind, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	return nil
}
