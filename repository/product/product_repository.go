package product

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/mnmsi/Lara-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

// No ORDER BY: rows come back in storage order.
const listProductsQuery = `SELECT id, name, supplier, model, productCode, color, price, image, description, discount,
isActive, isDelete, createdAt, createdBy, updatedAt, updatedBy
FROM products
WHERE isDelete = 0`

func (s *SQL) List(ctx context.Context) ([]model.Product, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	items := make([]model.Product, 0)
	for rows.Next() {
		var it model.Product
		if err := rows.StructScan(&it); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return items, nil
}
