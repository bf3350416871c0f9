package cart

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/mnmsi/Lara-api/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func q(query string) string {
	return regexp.QuoteMeta(query)
}

var lineColumns = []string{"id", "status", "userId", "productId", "totalQuantity", "totalPrice", "totalDiscount", "totalAmount"}

func TestSQL_GetOpenLine(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(q(getOpenLineQuery)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnRows(sqlmock.NewRows(lineColumns).AddRow(11, nil, 7, 3, 2, "12.50", "0", "25.00"))

		got, err := NewCartRepository(db).GetOpenLine(context.Background(), 7, 3)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(11), got.ID)
		assert.True(t, got.IsOpen())
		assert.Equal(t, int64(2), got.TotalQuantity)
		assert.True(t, got.TotalPrice.Equal(decimal.RequireFromString("12.5")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(q(getOpenLineQuery)).
			WithArgs(uint64(3), uint64(7)).
			WillReturnRows(sqlmock.NewRows(lineColumns))

		got, err := NewCartRepository(db).GetOpenLine(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock := newMock(t)
		mock.ExpectQuery(q(getOpenLineQuery)).WillReturnError(errors.New("db down"))

		_, err := NewCartRepository(db).GetOpenLine(context.Background(), 7, 3)
		assert.Error(t, err)
	})
}

func TestSQL_UpdateOpenLine(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectExec(q(updateOpenLineQuery)).
		WithArgs(int64(3), sqlmock.AnyArg(), uint64(3), uint64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	n, err := NewCartRepository(db).UpdateOpenLine(context.Background(), 7, 3, 3, decimal.RequireFromString("37.50"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_InsertCartTxWithDetail(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(q(insertCartQuery)).
		WithArgs(uint64(7), uint64(3), int64(1), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), uint64(7)).
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec(q(insertCartDetailQuery)).
		WithArgs(uint64(11), "Jane", "0170", "jane@example.com", "Dhaka").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewCartRepository(db)
	tx, err := db.Beginx()
	require.NoError(t, err)

	id, err := repo.InsertCartTx(context.Background(), tx, &model.InsertCartTxItem{
		UserID:        7,
		ProductID:     3,
		TotalQuantity: 1,
		TotalPrice:    decimal.RequireFromString("12.50"),
		TotalAmount:   decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(11), id)

	err = repo.InsertCartDetailTx(context.Background(), tx, &model.CartDetail{
		CartID:  id,
		Contact: model.Contact{Name: "Jane", Phone: "0170", Email: "jane@example.com", Address: "Dhaka"},
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_SumOpenQuantity(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectQuery(q(sumOpenQuantityQuery)).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(int64(5)))

	got, err := NewCartRepository(db).SumOpenQuantity(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), got)
}

func TestSQL_ListOpenItems(t *testing.T) {
	db, mock := newMock(t)
	rows := sqlmock.NewRows([]string{"id", "totalQuantity", "price", "totalAmount", "productId", "productName", "productModel"}).
		AddRow(11, 2, "12.50", "25.00", 3, "Desk", "D-200").
		AddRow(12, 1, nil, "7.25", nil, nil, nil)
	mock.ExpectQuery(q(listOpenItemsQuery)).WithArgs(uint64(7)).WillReturnRows(rows)

	got, err := NewCartRepository(db).ListOpenItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.True(t, got[0].Price.Valid)
	require.NotNil(t, got[0].ProductName)
	assert.Equal(t, "Desk", *got[0].ProductName)

	// the product row is gone; the cart line is still listed
	assert.False(t, got[1].Price.Valid)
	assert.Nil(t, got[1].ProductID)
	assert.True(t, got[1].TotalAmount.Equal(decimal.RequireFromString("7.25")))
}

func TestSQL_UpdateQuantity(t *testing.T) {
	tests := []struct {
		name    string
		matched int64
	}{
		{name: "owned line", matched: 1},
		{name: "no such line for user", matched: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMock(t)
			mock.ExpectExec(q(updateQuantityQuery)).
				WithArgs(int64(4), uint64(11), uint64(7)).
				WillReturnResult(sqlmock.NewResult(0, tt.matched))

			got, err := NewCartRepository(db).UpdateQuantity(context.Background(), 7, 11, 4)
			require.NoError(t, err)
			assert.Equal(t, tt.matched, got)
		})
	}
}

func TestSQL_DeleteAndMarkOrdered(t *testing.T) {
	db, mock := newMock(t)
	mock.ExpectBegin()
	mock.ExpectExec(q(deleteCartQuery)).WithArgs(uint64(11), uint64(7)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(deleteCartDetailQuery)).WithArgs(uint64(11)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(markOrderedQuery)).WithArgs("ordered", uint64(3), uint64(7)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectRollback()

	repo := NewCartRepository(db)
	tx, err := db.Beginx()
	require.NoError(t, err)

	deleted, err := repo.DeleteCartTx(context.Background(), tx, 7, 11)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	require.NoError(t, repo.DeleteCartDetailTx(context.Background(), tx, 11))

	marked, err := repo.MarkOrderedTx(context.Background(), tx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(2), marked)

	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
