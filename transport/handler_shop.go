package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strconv"

	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	"github.com/mnmsi/Lara-api/utils/errors"
)

// ListProducts handler
// @Summary List products
// @Tags Product
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ProductListResponse
// @Failure 401 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /products [get]
func (s *RestHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	res, err := s.ProductApp.ListProducts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// AddProductToCart handler
// @Summary Add product to cart
// @Description Create the open cart line for a product, or increment/decrement it
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.AddToCartRequest true "Add To Cart Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /addProductToCart [post]
func (s *RestHandler) AddProductToCart(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.AddToCartRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.AddOrAdjust(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// NumCartedItem handler
// @Summary Count carted items
// @Description Sum of quantities over the caller's open cart lines
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartCountResponse
// @Failure 500 {object} model.MessageResponse
// @Router /numCartedItem [get]
func (s *RestHandler) NumCartedItem(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.CountOpenItems(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CartItems handler
// @Summary List cart items
// @Tags Cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.CartItemsResponse
// @Failure 500 {object} model.MessageResponse
// @Router /cartItems [get]
func (s *RestHandler) CartItems(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.ListCartItems(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateCartQuantity handler
// @Summary Update cart quantity
// @Description Overwrite the quantity of one cart line
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.UpdateCartQtyRequest true "Update Quantity Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /updateCartQtn [put]
func (s *RestHandler) UpdateCartQuantity(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.UpdateCartQtyRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.UpdateQuantity(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DeleteProductFromCart handler
// @Summary Remove cart line
// @Description Remove a cart line and its contact snapshot. The id may be sent in the body or the query.
// @Tags Cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id query int false "Cart ID"
// @Param request body model.DeleteCartRequest false "Delete Cart Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /deleteProductFromCart [delete]
func (s *RestHandler) DeleteProductFromCart(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.DeleteCartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !stderrors.Is(err, io.EOF) {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.ID == 0 {
		if raw := r.URL.Query().Get("id"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
				return
			}
			req.ID = id
		}
	}
	if err := validateRequest(&req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.CartApp.Remove(r.Context(), userID, req.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitOrder handler
// @Summary Place order
// @Description Convert the listed open cart lines into an order
// @Tags Order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PlaceOrderRequest true "Place Order Request"
// @Success 200 {object} model.PlaceOrderResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /submitOrder [post]
func (s *RestHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.PlaceOrderRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.OrderApp.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
