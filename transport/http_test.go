package transport

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mnmsi/Lara-api/constant"
	cartMocks "github.com/mnmsi/Lara-api/mocks/application/cart"
	orderMocks "github.com/mnmsi/Lara-api/mocks/application/order"
	productMocks "github.com/mnmsi/Lara-api/mocks/application/product"
	userMocks "github.com/mnmsi/Lara-api/mocks/application/user"
	"github.com/mnmsi/Lara-api/model"
	"github.com/mnmsi/Lara-api/utils/errors"
	"github.com/mnmsi/Lara-api/utils/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testApps struct {
	user    *userMocks.UserApp
	product *productMocks.ProductApp
	cart    *cartMocks.CartApp
	order   *orderMocks.OrderApp
}

func newTestHandler(t *testing.T) (http.Handler, *testApps) {
	t.Helper()
	logger.Set(zap.NewNop())

	apps := &testApps{
		user:    userMocks.NewUserApp(t),
		product: productMocks.NewProductApp(t),
		cart:    cartMocks.NewCartApp(t),
		order:   orderMocks.NewOrderApp(t),
	}
	h := NewTransport(&RestHandler{
		UserApp:    apps.user,
		ProductApp: apps.product,
		CartApp:    apps.cart,
		OrderApp:   apps.order,
	}, []string{"*"})
	return h, apps
}

func authorize(apps *testApps, userID uint64, sessionID string) {
	apps.user.On("ValidateToken", mock.Anything, "good-token").
		Return(&model.Identity{UserID: userID, SessionID: sessionID}, nil)
}

func doRequest(h http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestSignup(t *testing.T) {
	t.Run("success without token", func(t *testing.T) {
		h, apps := newTestHandler(t)
		apps.user.On("Signup", mock.Anything, mock.MatchedBy(func(req *model.SignupRequest) bool {
			return req.Email == "jane@example.com" && req.PasswordConf == "secret1"
		})).Return(model.NewMessageResponse(constant.MsgSignupSuccess), nil)

		body := `{"name":"Jane","email":"jane@example.com","password":"secret1","passwordConf":"secret1","phone":"0123","address":"Dhaka"}`
		rec := doRequest(h, http.MethodPost, "/api/v1/signup", body, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		out := decodeBody(t, rec)
		assert.Equal(t, constant.ResponseTypeSuccess, out["responseType"])
		assert.Equal(t, constant.MsgSignupSuccess, out["message"])
	})

	t.Run("validation messages are joined", func(t *testing.T) {
		h, _ := newTestHandler(t)

		body := `{"email":"jane@example.com","password":"secret1","passwordConf":"other12","phone":"0123","address":"Dhaka"}`
		rec := doRequest(h, http.MethodPost, "/api/v1/signup", body, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		out := decodeBody(t, rec)
		assert.Equal(t, constant.ResponseTypeError, out["responseType"])
		msg := out["message"].(string)
		assert.Contains(t, msg, "Name is a required field")
		assert.Contains(t, msg, " || ")
		assert.Contains(t, msg, "Password Confirm")
	})

	t.Run("malformed json", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodPost, "/api/v1/signup", `{"name":`, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, apps := newTestHandler(t)
		apps.user.On("Signup", mock.Anything, mock.Anything).
			Return(nil, errors.SetCustomError(constant.ErrCredentialExists))

		body := `{"name":"Jane","email":"jane@example.com","password":"secret1","passwordConf":"secret1","phone":"0123","address":"Dhaka"}`
		rec := doRequest(h, http.MethodPost, "/api/v1/signup", body, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "The Email has already been taken.", decodeBody(t, rec)["message"])
	})
}

func TestLogin(t *testing.T) {
	for _, remember := range []string{`true`, `1`, `"1"`} {
		t.Run("remember_me "+remember, func(t *testing.T) {
			h, apps := newTestHandler(t)
			apps.user.On("Login", mock.Anything, &model.LoginRequest{Email: "jane@example.com", Password: "secret1", RememberMe: true}).
				Return(&model.LoginResponse{
					BaseResponse: model.Success(constant.MsgLoginSuccess),
					AccessToken:  "tok",
					TokenType:    constant.TokenTypeBearer,
					ExpiresAt:    "2026-10-24 10:00:00",
				}, nil)

			body := `{"email":"jane@example.com","password":"secret1","remember_me":` + remember + `}`
			rec := doRequest(h, http.MethodPost, "/api/v1/login", body, "")

			assert.Equal(t, http.StatusOK, rec.Code)
			out := decodeBody(t, rec)
			assert.Equal(t, "tok", out["access_token"])
			assert.Equal(t, constant.TokenTypeBearer, out["token_type"])
		})
	}

	t.Run("remember_me not a boolean", func(t *testing.T) {
		h, _ := newTestHandler(t)

		body := `{"email":"jane@example.com","password":"secret1","remember_me":"yes"}`
		rec := doRequest(h, http.MethodPost, "/api/v1/login", body, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		h, _ := newTestHandler(t)

		rec := doRequest(h, http.MethodGet, "/api/v1/products", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, constant.ResponseTypeError, decodeBody(t, rec)["responseType"])
	})

	t.Run("rejected token", func(t *testing.T) {
		h, apps := newTestHandler(t)
		apps.user.On("ValidateToken", mock.Anything, "revoked").
			Return(nil, errors.SetCustomError(constant.ErrUnauthorize))

		rec := doRequest(h, http.MethodGet, "/api/v1/products", "", "revoked")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{header: "Bearer abc", want: "abc", ok: true},
		{header: "bearer abc", want: "abc", ok: true},
		{header: "Basic abc"},
		{header: "Bearer "},
		{header: "abc"},
		{header: ""},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
			req.Header.Set("Authorization", tt.header)

			got, ok := bearerToken(req)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogout(t *testing.T) {
	h, apps := newTestHandler(t)
	authorize(apps, 7, "sess-1")
	apps.user.On("Logout", mock.Anything, "sess-1").
		Return(model.NewMessageResponse(constant.MsgLogoutSuccess), nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/logout", "", "good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, constant.MsgLogoutSuccess, decodeBody(t, rec)["message"])
}

func TestListProducts(t *testing.T) {
	h, apps := newTestHandler(t)
	authorize(apps, 7, "sess-1")
	apps.product.On("ListProducts", mock.Anything).
		Return(nil, errors.NewCustomError(constant.ErrInternal, constant.MsgProductsLoadFailed))

	rec := doRequest(h, http.MethodGet, "/api/v1/products", "", "good-token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.MsgProductsLoadFailed, decodeBody(t, rec)["message"])
}

func TestAddProductToCart(t *testing.T) {
	t.Run("passes caller id", func(t *testing.T) {
		h, apps := newTestHandler(t)
		authorize(apps, 7, "sess-1")
		apps.cart.On("AddOrAdjust", mock.Anything, uint64(7), mock.MatchedBy(func(req *model.AddToCartRequest) bool {
			return req.ProductID == 3 && req.Method == constant.CartMethodIncrement
		})).Return(model.NewMessageResponse(constant.MsgCartAdded), nil)

		rec := doRequest(h, http.MethodPost, "/api/v1/addProductToCart", `{"productId":3,"method":"increment"}`, "good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, constant.MsgCartAdded, decodeBody(t, rec)["message"])
	})

	t.Run("unknown method", func(t *testing.T) {
		h, apps := newTestHandler(t)
		authorize(apps, 7, "sess-1")

		rec := doRequest(h, http.MethodPost, "/api/v1/addProductToCart", `{"productId":3,"method":"double"}`, "good-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNumCartedItem(t *testing.T) {
	h, apps := newTestHandler(t)
	authorize(apps, 7, "sess-1")
	apps.cart.On("CountOpenItems", mock.Anything, uint64(7)).
		Return(&model.CartCountResponse{BaseResponse: model.Success(constant.MsgCartCounted), NumCartedItem: 5}, nil)

	rec := doRequest(h, http.MethodGet, "/api/v1/numCartedItem", "", "good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 5, decodeBody(t, rec)["numCartedItem"])
}

func TestUpdateCartQuantity(t *testing.T) {
	t.Run("zero is a valid quantity", func(t *testing.T) {
		h, apps := newTestHandler(t)
		authorize(apps, 7, "sess-1")
		apps.cart.On("UpdateQuantity", mock.Anything, uint64(7), mock.MatchedBy(func(req *model.UpdateCartQtyRequest) bool {
			return req.ID == 11 && req.UpdateQuantity != nil && *req.UpdateQuantity == 0
		})).Return(model.NewMessageResponse(constant.MsgCartQtyUpdated), nil)

		rec := doRequest(h, http.MethodPut, "/api/v1/updateCartQtn", `{"id":11,"updateQuantity":0}`, "good-token")

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("quantity missing", func(t *testing.T) {
		h, apps := newTestHandler(t)
		authorize(apps, 7, "sess-1")

		rec := doRequest(h, http.MethodPut, "/api/v1/updateCartQtn", `{"id":11}`, "good-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteProductFromCart(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		cartID uint64
	}{
		{name: "id in body", target: "/api/v1/deleteProductFromCart", body: `{"id":11}`, cartID: 11},
		{name: "id in query", target: "/api/v1/deleteProductFromCart?id=12", cartID: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, apps := newTestHandler(t)
			authorize(apps, 7, "sess-1")
			apps.cart.On("Remove", mock.Anything, uint64(7), tt.cartID).
				Return(model.NewMessageResponse(constant.MsgCartDeleted), nil)

			rec := doRequest(h, http.MethodDelete, tt.target, tt.body, "good-token")

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, constant.MsgCartDeleted, decodeBody(t, rec)["message"])
		})
	}

	t.Run("no id", func(t *testing.T) {
		h, apps := newTestHandler(t)
		authorize(apps, 7, "sess-1")

		rec := doRequest(h, http.MethodDelete, "/api/v1/deleteProductFromCart", "", "good-token")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSubmitOrder(t *testing.T) {
	h, apps := newTestHandler(t)
	authorize(apps, 7, "sess-1")
	apps.order.On("PlaceOrder", mock.Anything, uint64(7), mock.MatchedBy(func(req *model.PlaceOrderRequest) bool {
		return len(req.ProductIDs) == 1 && req.ProductQuantities[3] == 2
	})).Return(&model.PlaceOrderResponse{BaseResponse: model.Success(constant.MsgOrderPlaced), OrderID: 99}, nil)

	body := `{"productIdArr":[3],"productQuantityArr":{"3":2},"productPriceArr":{"3":"10"},"productDiscountArr":{"3":"0"},"productTotalAmountArr":{"3":"20"},"totalQuantity":2,"totalPrice":"20","totalDiscount":"0","totalAmount":"20"}`
	rec := doRequest(h, http.MethodPost, "/api/v1/submitOrder", body, "good-token")

	assert.Equal(t, http.StatusOK, rec.Code)
	out := decodeBody(t, rec)
	assert.EqualValues(t, 99, out["orderId"])
	assert.Equal(t, constant.MsgOrderPlaced, out["message"])
}

func TestRecoverMiddleware(t *testing.T) {
	h, apps := newTestHandler(t)
	authorize(apps, 7, "sess-1")
	apps.cart.On("ListCartItems", mock.Anything, uint64(7)).Run(func(mock.Arguments) {
		panic("boom")
	})

	rec := doRequest(h, http.MethodGet, "/api/v1/cartItems", "", "good-token")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, constant.ResponseTypeError, decodeBody(t, rec)["responseType"])
}

func TestCORSPreflight(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/products", nil)
	req.Header.Set("Origin", "http://shop.local")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://shop.local", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/v1/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, constant.ResponseTypeError, decodeBody(t, rec)["responseType"])
}

func TestRequestID(t *testing.T) {
	t.Run("echoes incoming id", func(t *testing.T) {
		h, _ := newTestHandler(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/login", strings.NewReader("{"))
		req.Header.Set(constant.HeaderRequestID, "req-42")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get(constant.HeaderRequestID))
	})

	t.Run("generates id when missing", func(t *testing.T) {
		h, _ := newTestHandler(t)
		rec := doRequest(h, http.MethodPost, "/api/v1/login", "{", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(constant.HeaderRequestID))
	})
}
