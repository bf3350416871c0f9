package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	cartapp "github.com/mnmsi/Lara-api/application/cart"
	orderapp "github.com/mnmsi/Lara-api/application/order"
	productapp "github.com/mnmsi/Lara-api/application/product"
	userapp "github.com/mnmsi/Lara-api/application/user"
	"github.com/mnmsi/Lara-api/constant"
	"github.com/mnmsi/Lara-api/model"
	utilsContext "github.com/mnmsi/Lara-api/utils/context"
	"github.com/mnmsi/Lara-api/utils/errors"
	validatorx "github.com/mnmsi/Lara-api/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

const apiPrefix = "/api/v1"

type RestHandler struct {
	UserApp    userapp.UserApp
	ProductApp productapp.ProductApp
	CartApp    cartapp.CartApp
	OrderApp   orderapp.OrderApp
}

func NewTransport(rh *RestHandler, allowedOrigins []string) http.Handler {
	mux := mux.NewRouter()
	mux.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, model.Failure("route not found"))
	})

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	api := mux.PathPrefix(apiPrefix).Subrouter()

	// Public routes
	api.HandleFunc("/signup", rh.Signup).Methods(http.MethodPost)
	api.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// protected routes
	api.HandleFunc("/logout", rh.Logout).Methods(http.MethodGet)
	api.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	api.HandleFunc("/addProductToCart", rh.AddProductToCart).Methods(http.MethodPost)
	api.HandleFunc("/numCartedItem", rh.NumCartedItem).Methods(http.MethodGet)
	api.HandleFunc("/cartItems", rh.CartItems).Methods(http.MethodGet)
	api.HandleFunc("/updateCartQtn", rh.UpdateCartQuantity).Methods(http.MethodPut)
	api.HandleFunc("/deleteProductFromCart", rh.DeleteProductFromCart).Methods(http.MethodDelete)
	api.HandleFunc("/submitOrder", rh.SubmitOrder).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.UserApp))

	return RecoverMiddleware(CORSMiddleware(allowedOrigins)(mux))
}

// decodeRequest reads the JSON body into dst and validates it.
func decodeRequest(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return validateRequest(dst)
}

func validateRequest(dst interface{}) error {
	if err := validatorx.ValidateStruct(dst); err != nil {
		return errors.NewCustomError(constant.ErrInvalidRequest, validatorx.Join(err))
	}
	return nil
}

// callerID returns the user resolved by AuthMiddleware.
func callerID(r *http.Request) (uint64, error) {
	id, ok := utilsContext.GetUserID(r.Context())
	if !ok || id == 0 {
		return 0, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return id, nil
}

// Signup handler
// @Summary Sign up
// @Description Create a new user account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.SignupRequest true "Signup Request"
// @Success 200 {object} model.MessageResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 500 {object} model.MessageResponse
// @Router /signup [post]
func (s *RestHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Signup(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} model.MessageResponse
// @Failure 401 {object} model.MessageResponse
// @Router /login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeRequest(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout user
// @Description Revoke the current bearer token
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MessageResponse
// @Failure 401 {object} model.MessageResponse
// @Router /logout [get]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utilsContext.GetSessionID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Logout(r.Context(), sessionID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
