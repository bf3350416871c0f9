package constant

// CartStatus is the value of carts.status. An open line has a NULL status.
type CartStatus string

const (
	CartStatusOrdered CartStatus = "ordered"
)

const (
	CartMethodIncrement = "increment"
	CartMethodDecrement = "decrement"
)

// DefaultCartQuantity is used when addProductToCart omits productQuantity.
const DefaultCartQuantity = 1
