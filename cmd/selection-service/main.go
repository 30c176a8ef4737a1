package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	_ "github.com/thalikart/food-order-backend/internal/apidocs"
	"github.com/thalikart/food-order-backend/internal/config"
	"github.com/thalikart/food-order-backend/internal/selection"
	"github.com/thalikart/food-order-backend/internal/server"
)

// @title    Thali Food-Selection Logger API
// @version  1.0
// @BasePath /
func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	r, err := server.NewEngine(cfg, "selection")
	if err != nil {
		log.Fatalf("[selection-service] %v", err)
	}
	registerRoutes(r, selection.NewReporter(os.Stdout, cfg.CurrencySymbol))

	opts := server.Options{
		Name:           "selection-service",
		Addr:           cfg.SelectionSvcAddr,
		GRPCHealthAddr: cfg.SelectionGRPCHealthAddr,
	}
	if err := server.Run(context.Background(), cfg, opts, r); err != nil {
		log.Fatalf("[selection-service] %v", err)
	}
}
