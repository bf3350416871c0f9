package constant

// User facing messages returned in the response envelope.
const (
	MsgSignupSuccess = "Successfully created user!"
	MsgSignupFailed  = "Unsuccessfull to create user!"
	MsgLoginSuccess  = "Successfully login!!"
	MsgLoginFailed   = "Unauthorized to login!"
	MsgLogoutSuccess = "Successfully logged out"

	MsgProductsLoaded     = "Successfully loaded product!!"
	MsgProductsLoadFailed = "Unable to load product!!"

	MsgCartAdded          = "Product added to cart!"
	MsgCartRemoved        = "Product removed!"
	MsgCartAddFailed      = "Unable to add product to cart!"
	MsgCartNotInCart      = "Product is not in cart!"
	MsgCartBelowZero      = "Product quantity cannot be less than zero!"
	MsgCartCounted        = "Successfully counted carted item!"
	MsgCartCountFailed    = "Unable to count carted item!"
	MsgCartLoaded         = "Successfully loaded cart items!"
	MsgCartLoadFailed     = "Unable to load cart items!"
	MsgCartQtyUpdated     = "Successfully updated quantity!"
	MsgCartQtyFailed      = "Unsuccessfull to updated quantity!"
	MsgCartDeleted        = "Successfully deleted product from cart!"
	MsgCartDeleteFailed   = "Unsuccessfull to deleted product from cart!"
	MsgOrderPlaced        = "Successfully place your order!"
	MsgOrderFailed        = "Unsuccessfull to place order!"
	MsgOrderMissingValues = "Order values are missing for product"
)
