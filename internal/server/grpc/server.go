// Package grpc exposes the chat service over gRPC as the chat.Chat service.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/minichat/internal/logging"
	pb "github.com/dmitrijs2005/minichat/internal/proto"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/config"
	"google.golang.org/grpc"
)

const limiterCleanupInterval = 3 * time.Minute

type GRPCServer struct {
	pb.UnimplementedChatServer
	address string
	chat    *chat.Service
	logger  logging.Logger
	joins   *peerLimiter
}

// NewGRPCServer wires the chat service to a gRPC endpoint on
// cfg.EndpointAddrGRPC. Join throttling is off when cfg.JoinRate is 0.
func NewGRPCServer(cfg *config.Config, l logging.Logger, cs *chat.Service) *GRPCServer {
	return &GRPCServer{
		address: cfg.EndpointAddrGRPC,
		chat:    cs,
		logger:  l.With("module", "grpc_server"),
		joins:   newPeerLimiter(cfg.JoinRate, cfg.JoinBurst),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestLogInterceptor, s.joinRateInterceptor),
		grpc.ChainStreamInterceptor(s.streamLogInterceptor),
	)
	pb.RegisterChatServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled,
// then stops gracefully.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.serve(ctx, listen)
}

func (s *GRPCServer) serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	if s.joins != nil {
		go s.joins.cleanup(ctx, limiterCleanupInterval)
	}

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
