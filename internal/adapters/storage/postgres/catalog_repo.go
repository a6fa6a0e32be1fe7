package postgres

import (
	"context"
	"database/sql"
	"errors"

	"aupac-site/internal/domain/catalog"
)

type CatalogRepo struct {
	db *sql.DB
}

func NewCatalogRepo(db *sql.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

const recordColumns = `
	id, nome, preco, descricao, categoria,
	porte, idade, sexo, especial, whatsapp, obs, imagem
`

// List devuelve la colección completa, id descendente.
func (r *CatalogRepo) List(ctx context.Context, kind catalog.Kind) ([]catalog.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+recordColumns+`
		FROM catalog_records
		WHERE kind = $1
		ORDER BY id DESC
	`, string(kind))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]catalog.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *CatalogRepo) GetByID(ctx context.Context, kind catalog.Kind, id int64) (catalog.Record, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+recordColumns+`
		FROM catalog_records
		WHERE kind = $1 AND id = $2
	`, string(kind), id)

	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return catalog.Record{}, catalog.ErrNotFound
		}
		return catalog.Record{}, err
	}
	return rec, nil
}

// Put hace upsert: el create y el edit pasan por acá.
func (r *CatalogRepo) Put(ctx context.Context, kind catalog.Kind, rec catalog.Record) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO catalog_records (
			kind, id, nome, preco, descricao, categoria,
			porte, idade, sexo, especial, whatsapp, obs, imagem
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		ON CONFLICT (kind, id) DO UPDATE SET
			nome = EXCLUDED.nome,
			preco = EXCLUDED.preco,
			descricao = EXCLUDED.descricao,
			categoria = EXCLUDED.categoria,
			porte = EXCLUDED.porte,
			idade = EXCLUDED.idade,
			sexo = EXCLUDED.sexo,
			especial = EXCLUDED.especial,
			whatsapp = EXCLUDED.whatsapp,
			obs = EXCLUDED.obs,
			imagem = EXCLUDED.imagem
	`,
		string(kind),
		rec.ID,
		rec.Nome,
		rec.Preco,
		rec.Descricao,
		rec.Categoria,
		rec.Porte,
		rec.Idade,
		rec.Sexo,
		rec.Especial,
		rec.Whatsapp,
		rec.Obs,
		rec.Imagem,
	)
	return err
}

func (r *CatalogRepo) Delete(ctx context.Context, kind catalog.Kind, id int64) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM catalog_records
		WHERE kind = $1 AND id = $2
	`, string(kind), id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (catalog.Record, error) {
	var (
		rec       catalog.Record
		preco     sql.NullFloat64
		categoria sql.NullString
		porte     sql.NullString
		idade     sql.NullString
		sexo      sql.NullString
		especial  sql.NullBool
		whatsapp  sql.NullString
		obs       sql.NullString
		imagem    sql.NullString
	)

	if err := row.Scan(
		&rec.ID,
		&rec.Nome,
		&preco,
		&rec.Descricao,
		&categoria,
		&porte,
		&idade,
		&sexo,
		&especial,
		&whatsapp,
		&obs,
		&imagem,
	); err != nil {
		return catalog.Record{}, err
	}

	if preco.Valid {
		rec.Preco = &preco.Float64
	}
	rec.Categoria = nullString(categoria)
	rec.Porte = nullString(porte)
	rec.Idade = nullString(idade)
	rec.Sexo = nullString(sexo)
	if especial.Valid {
		rec.Especial = &especial.Bool
	}
	rec.Whatsapp = nullString(whatsapp)
	rec.Obs = nullString(obs)
	rec.Imagem = nullString(imagem)

	return rec, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
