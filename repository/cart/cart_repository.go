package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	"github.com/shopspring/decimal"
)

type SQL struct {
	conn *sqlx.DB
}

type CartRepository interface {
	GetOpenLine(ctx context.Context, userID, productID uint64) (*model.CartLine, error)
	UpdateOpenLine(ctx context.Context, userID, productID uint64, quantity int64, amount decimal.Decimal) (int64, error)
	InsertCartTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertCartTxItem) (uint64, error)
	InsertCartDetailTx(ctx context.Context, tx *sqlx.Tx, req *model.CartDetail) error
	SumOpenQuantity(ctx context.Context, userID uint64) (int64, error)
	ListOpenItems(ctx context.Context, userID uint64) ([]model.CartItem, error)
	UpdateQuantity(ctx context.Context, userID, id uint64, quantity int64) (int64, error)
	DeleteCartTx(ctx context.Context, tx *sqlx.Tx, userID, id uint64) (int64, error)
	DeleteCartDetailTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error
	MarkOrderedTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64) (int64, error)
}

func NewCartRepository(conn *sqlx.DB) CartRepository {
	return &SQL{conn: conn}
}

const (
	getOpenLineQuery = `SELECT id, status, userId, productId, totalQuantity, totalPrice, totalDiscount, totalAmount
FROM carts WHERE status IS NULL AND productId = ? AND userId = ? LIMIT 1`

	updateOpenLineQuery = `UPDATE carts SET totalQuantity = ?, totalAmount = ?, updated_at = NOW()
WHERE status IS NULL AND productId = ? AND userId = ?`

	insertCartQuery = `INSERT INTO carts (userId, productId, totalQuantity, totalPrice, totalDiscount, totalAmount, createdBy)
VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertCartDetailQuery = `INSERT INTO cart_details (cartId, userName, userPhone, userEmail, userAddress) VALUES (?, ?, ?, ?, ?)`

	sumOpenQuantityQuery = `SELECT COALESCE(SUM(totalQuantity), 0) FROM carts WHERE status IS NULL AND userId = ?`

	listOpenItemsQuery = `SELECT c.id, c.totalQuantity, p.price, c.totalAmount, p.id AS productId, p.name AS productName, p.model AS productModel
FROM carts c
LEFT JOIN products p ON c.productId = p.id
WHERE c.status IS NULL AND c.userId = ?`

	updateQuantityQuery = `UPDATE carts SET totalQuantity = ?, updated_at = NOW() WHERE id = ? AND userId = ?`

	deleteCartQuery       = `DELETE FROM carts WHERE id = ? AND userId = ?`
	deleteCartDetailQuery = `DELETE FROM cart_details WHERE cartId = ?`

	markOrderedQuery = `UPDATE carts SET status = ?, updated_at = NOW() WHERE status IS NULL AND productId = ? AND userId = ?`
)

// GetOpenLine returns nil, nil when the user has no open line for the product.
func (s *SQL) GetOpenLine(ctx context.Context, userID, productID uint64) (*model.CartLine, error) {
	var line model.CartLine
	if err := s.conn.QueryRowxContext(ctx, getOpenLineQuery, productID, userID).StructScan(&line); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

// UpdateOpenLine sets every open line of the user for the product, so duplicate
// open lines stay in step.
func (s *SQL) UpdateOpenLine(ctx context.Context, userID, productID uint64, quantity int64, amount decimal.Decimal) (int64, error) {
	res, err := s.conn.ExecContext(ctx, updateOpenLineQuery, quantity, amount, productID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) InsertCartTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertCartTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertCartQuery,
		req.UserID, req.ProductID, req.TotalQuantity, req.TotalPrice, req.TotalDiscount, req.TotalAmount, req.UserID)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) InsertCartDetailTx(ctx context.Context, tx *sqlx.Tx, req *model.CartDetail) error {
	_, err := tx.ExecContext(ctx, insertCartDetailQuery,
		req.CartID, req.Contact.Name, req.Contact.Phone, req.Contact.Email, req.Contact.Address)
	return err
}

func (s *SQL) SumOpenQuantity(ctx context.Context, userID uint64) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, sumOpenQuantityQuery, userID); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *SQL) ListOpenItems(ctx context.Context, userID uint64) ([]model.CartItem, error) {
	items := make([]model.CartItem, 0)
	if err := s.conn.SelectContext(ctx, &items, listOpenItemsQuery, userID); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity returns the number of matched rows.
func (s *SQL) UpdateQuantity(ctx context.Context, userID, id uint64, quantity int64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, updateQuantityQuery, quantity, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) DeleteCartTx(ctx context.Context, tx *sqlx.Tx, userID, id uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, deleteCartQuery, id, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) DeleteCartDetailTx(ctx context.Context, tx *sqlx.Tx, cartID uint64) error {
	_, err := tx.ExecContext(ctx, deleteCartDetailQuery, cartID)
	return err
}

func (s *SQL) MarkOrderedTx(ctx context.Context, tx *sqlx.Tx, userID, productID uint64) (int64, error) {
	res, err := tx.ExecContext(ctx, markOrderedQuery, string(constant.CartStatusOrdered), productID, userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
