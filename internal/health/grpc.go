// Package health exposes the standard gRPC health service next to the HTTP
// /healthz route, for orchestrators that check liveness over gRPC.
package health

import (
	"log"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

// Listen binds addr and marks service (and the overall server) as SERVING.
func Listen(addr, service string) (*Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(service, healthpb.HealthCheckResponse_SERVING)

	gs := grpc.NewServer()
	healthpb.RegisterHealthServer(gs, hs)
	return &Server{grpc: gs, health: hs, lis: lis}, nil
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

// Serve blocks until Stop is called.
func (s *Server) Serve() error {
	log.Printf("[health] grpc health listening on %s", s.Addr())
	return s.grpc.Serve(s.lis)
}

// Stop reports NOT_SERVING to watchers and stops the server gracefully.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
