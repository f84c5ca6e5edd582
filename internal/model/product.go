package model

// Product is a stock row. Quantity is the authoritative on-hand level;
// only the stock store mutates it.
type Product struct {
	ID       int64  `db:"id"`
	Name     string `db:"name"`
	Quantity int64  `db:"quantity"`
}
