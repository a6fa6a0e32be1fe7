package catalog

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indica que no existe registro con ese id para ese kind.
	ErrNotFound = errors.New("record not found")
	// ErrStorageUnavailable indica backend no configurado o inalcanzable.
	// Se expone uniforme en TODAS las operaciones (antes el LIST degradaba
	// en silencio a lista vacía; eso quedó eliminado).
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Repository es el contrato de persistencia de los catálogos.
// List no garantiza orden por contrato; cada adapter documenta el suyo.
type Repository interface {
	List(ctx context.Context, kind Kind) ([]Record, error)
	GetByID(ctx context.Context, kind Kind, id int64) (Record, error)
	Put(ctx context.Context, kind Kind, rec Record) error
	Delete(ctx context.Context, kind Kind, id int64) error
}

// UnavailableRepository se cablea cuando el backend elegido por config no
// pudo inicializarse (credenciales ausentes, DSN inválido). Todas las
// operaciones fallan con ErrStorageUnavailable.
type UnavailableRepository struct{}

func (UnavailableRepository) List(context.Context, Kind) ([]Record, error) {
	return nil, ErrStorageUnavailable
}

func (UnavailableRepository) GetByID(context.Context, Kind, int64) (Record, error) {
	return Record{}, ErrStorageUnavailable
}

func (UnavailableRepository) Put(context.Context, Kind, Record) error {
	return ErrStorageUnavailable
}

func (UnavailableRepository) Delete(context.Context, Kind, int64) error {
	return ErrStorageUnavailable
}
