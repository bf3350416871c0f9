package order

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/mnmsi/Lara-api/model"
)

type SQL struct {
	conn *sqlx.DB
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderDetailTx(ctx context.Context, tx *sqlx.Tx, detail *model.OrderDetail) error
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = `INSERT INTO orders (userId, status, userName, userPhone, userEmail, userAddress,
totalQuantity, totalPrice, totalDiscount, totalAmount, createdBy)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	insertOrderDetailQuery = `INSERT INTO order_details (orderId, productId, productQuantity, productPrice, productDiscount, totalAmount)
VALUES (:orderId, :productId, :productQuantity, :productPrice, :productDiscount, :totalAmount)`
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery,
		req.UserID, string(req.Status),
		req.Contact.Name, req.Contact.Phone, req.Contact.Email, req.Contact.Address,
		req.TotalQuantity, req.TotalPrice, req.TotalDiscount, req.TotalAmount,
		req.UserID,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderDetailTx(ctx context.Context, tx *sqlx.Tx, detail *model.OrderDetail) error {
	_, err := tx.NamedExecContext(ctx, insertOrderDetailQuery, detail)
	return err
}
