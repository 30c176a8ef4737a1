package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thalikart/food-order-backend/internal/httpx"
	"github.com/thalikart/food-order-backend/internal/menu"
)

// getMenuHandler godoc
// @Summary  List the catalog
// @Tags     menu
// @Produce  json
// @Success  200 {array} menu.MenuItem
// @Router   /menu [get]
func getMenuHandler(cat *menu.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cat.Items())
	}
}

// placeOrderHandler godoc
// @Summary  Place an order
// @Tags     order
// @Accept   json
// @Produce  json
// @Param    order body     menu.Order true "order"
// @Success  200   {object} menu.OrderAck
// @Failure  400   {object} httpx.HTTPError
// @Router   /order [post]
func placeOrderHandler() gin.HandlerFunc {
	return httpx.Echo[menu.Order, menu.OrderAck](nil, func(o *menu.Order) menu.OrderAck {
		return menu.OrderAck{Message: menu.OrderPlaced, Order: *o}
	})
}

func registerRoutes(r gin.IRoutes, cat *menu.Catalog) {
	r.GET("/menu", getMenuHandler(cat))
	r.POST("/order", placeOrderHandler())
}
