package main

import (
	"github.com/gin-gonic/gin"

	"github.com/thalikart/food-order-backend/internal/httpx"
	"github.com/thalikart/food-order-backend/internal/selection"
)

// preflightHandler godoc
// @Summary  Preflight acknowledgment
// @Tags     selection
// @Produce  json
// @Success  200 {object} selection.PreflightAck
// @Router   /log_selected_items/ [options]
func preflightHandler() gin.HandlerFunc {
	return httpx.Message(selection.PreflightSuccessful)
}

// logSelectionHandler godoc
// @Summary  Log selected items
// @Tags     selection
// @Accept   json
// @Produce  json
// @Param    selection body     selection.FoodSelection true "selection"
// @Success  200       {object} selection.SelectionAck
// @Failure  400       {object} httpx.HTTPError
// @Router   /log_selected_items/ [post]
func logSelectionHandler(rep *selection.Reporter) gin.HandlerFunc {
	return httpx.Echo(
		func(c *gin.Context, in *selection.FoodSelection) {
			rep.Report(httpx.RequestIDFrom(c), in.SelectedItems)
		},
		func(in *selection.FoodSelection) selection.SelectionAck {
			return selection.SelectionAck{Message: selection.ItemsLogged, Items: in.SelectedItems}
		},
	)
}

func registerRoutes(r gin.IRoutes, rep *selection.Reporter) {
	r.OPTIONS("/log_selected_items/", preflightHandler())
	r.POST("/log_selected_items/", logSelectionHandler(rep))
}
