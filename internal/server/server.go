// Package server wires the gin engine and process lifecycle shared by both
// services.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/thalikart/food-order-backend/internal/config"
	"github.com/thalikart/food-order-backend/internal/health"
	"github.com/thalikart/food-order-backend/internal/httpx"
)

// Options describe one service process.
type Options struct {
	Name           string // e.g. "menu-service"
	Addr           string
	GRPCHealthAddr string // empty disables the gRPC health endpoint
}

// NewEngine returns a gin engine with recovery, request ids, access logging,
// the CORS allow-list and /healthz mounted. A non-empty docsInstance also
// serves that swag instance under /swagger.
func NewEngine(cfg config.Config, docsInstance string) (*gin.Engine, error) {
	corsMW, err := httpx.CORS(cfg.CORS)
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Logger(nil), corsMW)

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	if docsInstance != "" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.InstanceName(docsInstance)))
	}
	return r, nil
}

// Run serves h until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down within cfg.ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config, opts Options, h http.Handler) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if opts.GRPCHealthAddr != "" {
		hs, err := health.Listen(opts.GRPCHealthAddr, opts.Name)
		if err != nil {
			return fmt.Errorf("grpc health: %w", err)
		}
		go func() {
			if err := hs.Serve(); err != nil {
				log.Printf("[%s] grpc health stopped: %v", opts.Name, err)
			}
		}()
		defer hs.Stop()
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}
	errc := make(chan error, 1)
	go func() {
		log.Printf("%s listening on %s", opts.Name, opts.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("%s shutting down", opts.Name)
	sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
