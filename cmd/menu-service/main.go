package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	_ "github.com/thalikart/food-order-backend/internal/apidocs"
	"github.com/thalikart/food-order-backend/internal/config"
	"github.com/thalikart/food-order-backend/internal/menu"
	"github.com/thalikart/food-order-backend/internal/server"
)

// @title    Thali Menu & Order API
// @version  1.0
// @BasePath /
func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	r, err := server.NewEngine(cfg, "menu")
	if err != nil {
		log.Fatalf("[menu-service] %v", err)
	}
	registerRoutes(r, menu.Default())

	opts := server.Options{
		Name:           "menu-service",
		Addr:           cfg.MenuSvcAddr,
		GRPCHealthAddr: cfg.MenuGRPCHealthAddr,
	}
	if err := server.Run(context.Background(), cfg, opts, r); err != nil {
		log.Fatalf("[menu-service] %v", err)
	}
}
