package menu

import "github.com/thalikart/food-order-backend/internal/money"

// MenuItem is one purchasable catalog row.
// swagger:model MenuItem
type MenuItem struct {
	ID    string       `json:"id"    example:"1"`
	Name  string       `json:"name"  example:"Normal Thali"`
	Price money.Amount `json:"price" swaggertype:"number" example:"129"`
	// Image is a file name; its existence is not checked.
	Image string `json:"image" example:"thaali1.jpg"`
}

// OrderItem references a catalog id. The id is not checked against the catalog.
// swagger:model OrderItem
type OrderItem struct {
	ID       *string `json:"id"       binding:"required" example:"1"`
	Quantity *int    `json:"quantity" binding:"required" example:"2"`
}

// Order payload of POST /order. Total is taken as sent by the caller.
// swagger:model Order
type Order struct {
	Items []OrderItem   `json:"items" binding:"required,dive"`
	Total *money.Amount `json:"total" binding:"required" swaggertype:"number" example:"258"`
}

// OrderAck is the response of a placed order.
// swagger:model OrderAck
type OrderAck struct {
	Message string `json:"message" example:"Order placed successfully"`
	Order   Order  `json:"order"`
}

// OrderPlaced is the fixed acknowledgment of POST /order.
const OrderPlaced = "Order placed successfully"
