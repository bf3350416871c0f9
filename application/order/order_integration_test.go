//go:build integration

package order_test

import (
	"context"
	"errors"
	"testing"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	apporder "github.com/mnmsi/Lara-api/application/order"
	"github.com/mnmsi/Lara-api/cmd/migration"
	"github.com/mnmsi/Lara-api/model"
	cartrepo "github.com/mnmsi/Lara-api/repository/cart"
	orderrepo "github.com/mnmsi/Lara-api/repository/order"
	txrepo "github.com/mnmsi/Lara-api/repository/tx"
	userrepo "github.com/mnmsi/Lara-api/repository/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mysql"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	ctr, err := mysql.Run(ctx, "mysql:8.0.36",
		mysql.WithDatabase("lara"),
		mysql.WithUsername("lara"),
		mysql.WithPassword("secret"),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := ctr.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := ctr.ConnectionString(ctx, "parseTime=true", "clientFoundRows=true", "multiStatements=true")
	require.NoError(t, err)

	db, err := sqlx.Connect("mysql", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, migration.Up(db.DB))
	return db
}

// seedCart creates a user with one open cart line per product id.
func seedCart(t *testing.T, db *sqlx.DB, productIDs ...uint64) uint64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO users (name, email, phone, address, password) VALUES ('Jane', 'jane@example.com', '0170', 'Dhaka', 'x')`)
	require.NoError(t, err)
	userID, err := res.LastInsertId()
	require.NoError(t, err)

	for _, pid := range productIDs {
		_, err := db.Exec(`INSERT INTO carts (userId, productId, totalQuantity, totalPrice, totalDiscount, totalAmount, createdBy)
VALUES (?, ?, 1, 10.00, 0, 10.00, ?)`, userID, pid, userID)
		require.NoError(t, err)
	}
	return uint64(userID)
}

func orderRequest(productIDs ...uint64) *model.PlaceOrderRequest {
	req := &model.PlaceOrderRequest{
		ProductIDs:          productIDs,
		ProductQuantities:   map[uint64]int64{},
		ProductPrices:       map[uint64]decimal.Decimal{},
		ProductDiscounts:    map[uint64]decimal.Decimal{},
		ProductTotalAmounts: map[uint64]decimal.Decimal{},
	}
	for _, pid := range productIDs {
		req.ProductQuantities[pid] = 1
		req.ProductPrices[pid] = decimal.NewFromInt(10)
		req.ProductDiscounts[pid] = decimal.Zero
		req.ProductTotalAmounts[pid] = decimal.NewFromInt(10)
		req.TotalQuantity++
		req.TotalPrice = req.TotalPrice.Add(decimal.NewFromInt(10))
		req.TotalAmount = req.TotalAmount.Add(decimal.NewFromInt(10))
	}
	return req
}

// failingDetails fails the detail insert for one product.
type failingDetails struct {
	orderrepo.OrderRepository
	productID uint64
}

func (f failingDetails) InsertOrderDetailTx(ctx context.Context, tx *sqlx.Tx, d *model.OrderDetail) error {
	if d.ProductID == f.productID {
		return errors.New("detail insert failed")
	}
	return f.OrderRepository.InsertOrderDetailTx(ctx, tx, d)
}

func count(t *testing.T, db *sqlx.DB, query string, args ...interface{}) int {
	t.Helper()
	var n int
	require.NoError(t, db.Get(&n, query, args...))
	return n
}

func TestPlaceOrder_Integration(t *testing.T) {
	db := setupTestDB(t)
	userID := seedCart(t, db, 3, 5)

	app := apporder.NewOrderApp(
		txrepo.NewTxRepository(db),
		orderrepo.NewOrderRepository(db),
		cartrepo.NewCartRepository(db),
		userrepo.NewUserRepository(db),
		nil,
	)

	got, err := app.PlaceOrder(context.Background(), userID, orderRequest(3, 5))
	require.NoError(t, err)
	assert.NotZero(t, got.OrderID)

	assert.Equal(t, 1, count(t, db, `SELECT COUNT(*) FROM orders WHERE userId = ?`, userID))
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM order_details WHERE orderId = ?`, got.OrderID))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM carts WHERE userId = ? AND status IS NULL`, userID))
	assert.Equal(t, "Jane", func() string {
		var name string
		require.NoError(t, db.Get(&name, `SELECT userName FROM orders WHERE id = ?`, got.OrderID))
		return name
	}())
}

func TestPlaceOrder_Integration_RollbackLeavesNothing(t *testing.T) {
	db := setupTestDB(t)
	userID := seedCart(t, db, 3, 5)

	app := apporder.NewOrderApp(
		txrepo.NewTxRepository(db),
		failingDetails{OrderRepository: orderrepo.NewOrderRepository(db), productID: 5},
		cartrepo.NewCartRepository(db),
		userrepo.NewUserRepository(db),
		nil,
	)

	_, err := app.PlaceOrder(context.Background(), userID, orderRequest(3, 5))
	require.Error(t, err)

	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM orders`))
	assert.Equal(t, 0, count(t, db, `SELECT COUNT(*) FROM order_details`))
	assert.Equal(t, 2, count(t, db, `SELECT COUNT(*) FROM carts WHERE userId = ? AND status IS NULL`, userID))
}
