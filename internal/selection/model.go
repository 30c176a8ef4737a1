// Package selection holds the food selection payload and the diagnostic
// reporter of the selection logger service.
package selection

import "github.com/thalikart/food-order-backend/internal/money"

// FoodItem is one selected dish as sent by the app.
// swagger:model FoodItem
type FoodItem struct {
	ID       *string       `json:"id"       binding:"required" example:"3"`
	Name     *string       `json:"name"     binding:"required" example:"Special Thali"`
	Price    *money.Amount `json:"price"    binding:"required" swaggertype:"number" example:"199"`
	Quantity *int          `json:"quantity" binding:"required" example:"1"`
}

// LineTotal is price times quantity.
func (f FoodItem) LineTotal() money.Amount {
	return f.Price.Times(*f.Quantity)
}

// FoodSelection payload of POST /log_selected_items/.
// swagger:model FoodSelection
type FoodSelection struct {
	SelectedItems []FoodItem `json:"selectedItems" binding:"required,dive"`
}

// SelectionAck is the response of a logged selection.
// swagger:model SelectionAck
type SelectionAck struct {
	Message string     `json:"message" example:"Items logged successfully!"`
	Items   []FoodItem `json:"items"`
}

// PreflightAck is the body of OPTIONS /log_selected_items/.
// swagger:model PreflightAck
type PreflightAck struct {
	Message string `json:"message" example:"CORS preflight successful"`
}

const (
	ItemsLogged         = "Items logged successfully!"
	PreflightSuccessful = "CORS preflight successful"
)
