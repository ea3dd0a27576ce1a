package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/minichat/internal/common"
	pb "github.com/dmitrijs2005/minichat/internal/proto"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.ChatClient
}

// withRequestID tags the outgoing call with a fresh x-request-id unless the
// caller already set one.
func withRequestID(ctx context.Context) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	if len(md.Get(common.RequestIDHeaderName)) > 0 {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, common.RequestIDHeaderName, uuid.NewString())
}

func requestIDUnaryInterceptor(ctx context.Context, method string, req, reply any, cc *grpc.ClientConn, invoker grpc.UnaryInvoker, opts ...grpc.CallOption) error {
	return invoker(withRequestID(ctx), method, req, reply, cc, opts...)
}

func requestIDStreamInterceptor(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn, method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return streamer(withRequestID(ctx), desc, cc, method, opts...)
}

// NewChatClient creates a client for endpointURL. The connection is lazy;
// an unreachable server surfaces as ErrUnavailable on the first call.
func NewChatClient(endpointURL string, timeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.initGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDUnaryInterceptor),
		grpc.WithStreamInterceptor(requestIDStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewChatClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.timeout)
}

func (s *GRPCClient) Join(ctx context.Context, username, password string) (uint64, bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Join(ctx, &pb.Member{Username: username, Password: password})
	if err != nil {
		return 0, false, s.mapError(err)
	}
	if resp.GetResponse() != pb.JoinResponse_ACCEPTED {
		return 0, false, nil
	}
	return resp.GetToken(), true, nil
}

func (s *GRPCClient) Post(ctx context.Context, token uint64, text string) (uint64, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	resp, err := s.client.Commit(ctx, &pb.NewChatMessage{Token: token, Value: text})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetTime(), nil
}

// Messages reads the whole stream of entries after the given sequence.
func (s *GRPCClient) Messages(ctx context.Context, token, after uint64) ([]Message, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	stream, err := s.client.ChatLog(ctx, &pb.After{Token: token, Value: after})
	if err != nil {
		return nil, s.mapError(err)
	}

	var received []*pb.ChatMessage
	for {
		m, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.mapError(err)
		}
		received = append(received, m)
	}

	return lo.Map(received, func(m *pb.ChatMessage, _ int) Message {
		return Message{Sequence: m.GetTime(), Username: m.GetUsername(), Text: m.GetValue()}
	}), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.ResourceExhausted:
		return common.ErrRateLimited
	case codes.InvalidArgument:
		switch st.Message() {
		case common.ErrMessageTooLong.Error():
			return common.ErrMessageTooLong
		case common.ErrInvalidMember.Error():
			return common.ErrInvalidMember
		}
		return fmt.Errorf("%w: %s", ErrRejected, st.Message())
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
