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

func (r *PGRepository) Insert(ctx context.Context, name string, quantity int64) (*model.Product, error) {
	// ON CONFLICT DO NOTHING keeps the duplicate check and the insert in
	// one statement, so two sessions racing on the same name cannot both
	// succeed.
	query := `
        INSERT INTO stock (name, quantity)
        VALUES ($1, $2)
        ON CONFLICT (name) DO NOTHING
        RETURNING id
    `
	var id int64
	err := r.DB.GetContext(ctx, &id, query, name, quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrDuplicateProduct
	}
	if err != nil {
		return nil, errors.Wrap(err, "insert stock")
	}
	return &model.Product{ID: id, Name: name, Quantity: quantity}, nil
}

func (r *PGRepository) FindByName(ctx context.Context, name string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM stock WHERE name = $1 LIMIT 1`
	err := r.DB.GetContext(ctx, &product, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "find stock by name")
	}
	return &product, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM stock ORDER BY id ASC`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, errors.Wrap(err, "list stock")
	}
	return products, nil
}

func (r *PGRepository) AddQuantity(ctx context.Context, name string, delta int64) (int64, error) {
	query := `
        UPDATE stock
        SET quantity = quantity + $2
        WHERE name = $1
        RETURNING quantity
    `
	var newQuantity int64
	err := r.DB.GetContext(ctx, &newQuantity, query, name, delta)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, model.ErrProductNotFound
	}
	if err != nil {
		return 0, errors.Wrap(err, "add stock quantity")
	}
	return newQuantity, nil
}

func (r *PGRepository) SubtractQuantity(ctx context.Context, name string, delta int64) (int64, error) {
	// Single conditional update: the decrement only applies when the row
	// covers delta, so concurrent commits cannot drive quantity negative.
	query := `
        UPDATE stock
        SET quantity = quantity - $2
        WHERE name = $1 AND quantity >= $2
        RETURNING quantity
    `
	var newQuantity int64
	err := r.DB.GetContext(ctx, &newQuantity, query, name, delta)
	if err == nil {
		return newQuantity, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, errors.Wrap(err, "subtract stock quantity")
	}

	// No row updated: distinguish a missing product from short stock.
	product, err := r.FindByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if product == nil {
		return 0, model.ErrProductNotFound
	}
	return product.Quantity, model.ErrInsufficientStock
}
