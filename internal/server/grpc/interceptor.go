package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/minichat/internal/common"
	pb "github.com/dmitrijs2005/minichat/internal/proto"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const requestIDKey ctxKey = "requestID"

// requestID returns the caller supplied x-request-id or a fresh uuid.
func requestID(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.RequestIDHeaderName); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.NewString()
}

func (s *GRPCServer) requestLogInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	id := requestID(ctx)
	ctx = context.WithValue(ctx, requestIDKey, id)
	_ = grpc.SetHeader(ctx, metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Info(ctx, "grpc call",
		"method", info.FullMethod,
		"request_id", id,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

// requestStream overrides the stream context so handlers see the request id.
type requestStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (r *requestStream) Context() context.Context {
	return r.ctx
}

func (s *GRPCServer) streamLogInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	id := requestID(ss.Context())
	ctx := context.WithValue(ss.Context(), requestIDKey, id)
	_ = ss.SetHeader(metadata.Pairs(common.RequestIDHeaderName, id))

	start := time.Now()
	err := handler(srv, &requestStream{ServerStream: ss, ctx: ctx})

	s.logger.Info(ctx, "grpc stream",
		"method", info.FullMethod,
		"request_id", id,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return err
}

// joinRateInterceptor throttles Join per client host.
func (s *GRPCServer) joinRateInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod != pb.Chat_Join_FullMethodName {
		return handler(ctx, req)
	}

	var addr string
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		addr = p.Addr.String()
	}

	if !s.joins.Allow(addr) {
		s.logger.Warn(ctx, "join rate limit exceeded", "peer", addr)
		return nil, status.Error(codes.ResourceExhausted, common.ErrRateLimited.Error())
	}
	return handler(ctx, req)
}
