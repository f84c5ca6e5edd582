package model

// Sale is one committed line-item. Rows are append-only: there is no edit
// or void path after creation.
type Sale struct {
	ID          int64  `db:"id"`
	ProductID   int64  `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int64  `db:"quantity"`
}
