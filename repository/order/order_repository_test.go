package order

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockTx(t *testing.T) (*sqlx.DB, *sqlx.Tx, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })

	db := sqlx.NewDb(raw, "mysql")
	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)
	return db, tx, mock
}

func TestSQL_InsertOrderTx(t *testing.T) {
	db, tx, mock := newMockTx(t)
	mock.ExpectExec(regexp.QuoteMeta(insertOrderQuery)).
		WithArgs(uint64(7), "processing", "Jane", "0170", "jane@example.com", "Dhaka",
			int64(3), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), uint64(7)).
		WillReturnResult(sqlmock.NewResult(42, 1))

	id, err := NewOrderRepository(db).InsertOrderTx(context.Background(), tx, &model.InsertOrderTxItem{
		UserID:        7,
		Status:        constant.OrderStatusProcessing,
		Contact:       model.Contact{Name: "Jane", Phone: "0170", Email: "jane@example.com", Address: "Dhaka"},
		TotalQuantity: 3,
		TotalPrice:    decimal.RequireFromString("119.50"),
		TotalDiscount: decimal.RequireFromString("4.50"),
		TotalAmount:   decimal.RequireFromString("115"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_InsertOrderDetailTx(t *testing.T) {
	t.Run("named params are bound from the detail", func(t *testing.T) {
		db, tx, mock := newMockTx(t)
		mock.ExpectExec(`INSERT INTO order_details`).
			WithArgs(uint64(42), uint64(3), int64(2), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := NewOrderRepository(db).InsertOrderDetailTx(context.Background(), tx, &model.OrderDetail{
			OrderID:         42,
			ProductID:       3,
			ProductQuantity: 2,
			ProductPrice:    decimal.RequireFromString("10"),
			ProductDiscount: decimal.Zero,
			TotalAmount:     decimal.RequireFromString("20"),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error is returned", func(t *testing.T) {
		db, tx, mock := newMockTx(t)
		mock.ExpectExec(`INSERT INTO order_details`).WillReturnError(errors.New("deadlock"))

		err := NewOrderRepository(db).InsertOrderDetailTx(context.Background(), tx, &model.OrderDetail{OrderID: 42, ProductID: 3})
		assert.Error(t, err)
	})
}
