package rpc

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NewServer builds the gRPC server with the user service and the standard
// health service registered.
func NewServer(h UserServiceServer, hs *health.Server, log *zap.Logger, opts ...grpc.ServerOption) *grpc.Server {
	log = log.Named("rpc")
	opts = append([]grpc.ServerOption{
		grpc.ChainUnaryInterceptor(RecoveryInterceptor(log), LoggingInterceptor(log)),
	}, opts...)

	s := grpc.NewServer(opts...)
	RegisterUserServiceServer(s, h)
	if hs != nil {
		healthpb.RegisterHealthServer(s, hs)
		hs.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	}
	return s
}
