package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/tiendapos/inventory-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Insert(ctx context.Context, s *model.Sale) (int64, error) {
	query := `
        INSERT INTO sales (product_id, product_name, quantity)
        VALUES (:product_id, :product_name, :quantity)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, s)
	if err != nil {
		return 0, errors.Wrap(err, "insert sale")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, errors.Wrap(err, "scan sale id")
		}
	}
	return id, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Sale, error) {
	sales := []model.Sale{}
	query := `SELECT * FROM sales ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &sales, query); err != nil {
		return nil, errors.Wrap(err, "list sales")
	}
	return sales, nil
}
