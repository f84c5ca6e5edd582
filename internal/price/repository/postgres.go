package repository

import (
	"context"
	"database/sql"

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

func (r *PGRepository) FindByProduct(ctx context.Context, productName string) (*model.Price, error) {
	var price model.Price
	query := `SELECT * FROM prices WHERE product_name = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &price, query, productName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find price by product")
	}
	return &price, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Price, error) {
	prices := []model.Price{}
	query := `SELECT * FROM prices ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &prices, query); err != nil {
		return nil, errors.Wrap(err, "list prices")
	}
	return prices, nil
}

func (r *PGRepository) Insert(ctx context.Context, p *model.Price) (int64, error) {
	query := `
        INSERT INTO prices (product_id, product_name, purchase_price, sale_price)
        VALUES (:product_id, :product_name, :purchase_price, :sale_price)
        RETURNING id
    `
	rows, err := r.DB.NamedQueryContext(ctx, query, p)
	if err != nil {
		return 0, errors.Wrap(err, "insert price")
	}
	defer rows.Close()

	var id int64
	if rows.Next() {
		if err := rows.Scan(&id); err != nil {
			return 0, errors.Wrap(err, "scan price id")
		}
	}
	return id, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Price) (int64, error) {
	query := `
        UPDATE prices
        SET purchase_price = :purchase_price,
            sale_price = :sale_price
        WHERE product_name = :product_name
    `
	result, err := r.DB.NamedExecContext(ctx, query, p)
	if err != nil {
		return 0, errors.Wrap(err, "update price")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "update price rows affected")
	}
	return affected, nil
}
