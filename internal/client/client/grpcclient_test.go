package client

import (
	"context"
	"errors"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/minichat/internal/common"
	"github.com/dmitrijs2005/minichat/internal/logging"
	pb "github.com/dmitrijs2005/minichat/internal/proto"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/config"
	gs "github.com/dmitrijs2005/minichat/internal/server/grpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type nopLogger struct{}

func (n nopLogger) Debug(context.Context, string, ...any) {}
func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// newBufconnClient runs a real chat server in memory and returns a client
// connected to it.
func newBufconnClient(t *testing.T) *GRPCClient {
	t.Helper()

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.JoinRate = 0

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterChatServer(srv, gs.NewGRPCServer(cfg, nopLogger{}, chat.NewService(cfg, nil, nopLogger{})))
	go func() { _ = srv.Serve(lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(requestIDUnaryInterceptor),
		grpc.WithStreamInterceptor(requestIDStreamInterceptor),
	)
	require.NoError(t, err)

	c := &GRPCClient{conn: conn, client: pb.NewChatClient(conn), timeout: 5 * time.Second}
	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c
}

func TestGRPCClient_RoundTrip(t *testing.T) {
	c := newBufconnClient(t)
	ctx := context.Background()

	token, ok, err := c.Join(ctx, "alice", "p1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, uint64(1), token)

	_, ok, err = c.Join(ctx, "alice", "p2")
	require.NoError(t, err)
	assert.False(t, ok)

	seq, err := c.Post(ctx, token, "hi")
	require.NoError(t, err)
	assert.Equal(t, uint64(1), seq)
	_, err = c.Post(ctx, token, "there")
	require.NoError(t, err)

	msgs, err := c.Messages(ctx, token, 0)
	require.NoError(t, err)
	assert.Equal(t, []Message{
		{Sequence: 1, Username: "alice", Text: "hi"},
		{Sequence: 2, Username: "alice", Text: "there"},
	}, msgs)

	msgs, err = c.Messages(ctx, token, 1)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "there", msgs[0].Text)
}

func TestGRPCClient_Errors(t *testing.T) {
	c := newBufconnClient(t)
	ctx := context.Background()

	_, err := c.Post(ctx, 42, "hi")
	require.ErrorIs(t, err, ErrUnauthorized)

	_, err = c.Post(ctx, 42, strings.Repeat("x", 51))
	require.ErrorIs(t, err, common.ErrMessageTooLong)

	_, err = c.Messages(ctx, 42, 0)
	require.ErrorIs(t, err, ErrUnauthorized)

	_, _, err = c.Join(ctx, "", "p")
	require.ErrorIs(t, err, common.ErrInvalidMember)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"unauthenticated", status.Error(codes.Unauthenticated, "user does not exist"), ErrUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "down"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
		{"rate limited", status.Error(codes.ResourceExhausted, "slow down"), common.ErrRateLimited},
		{"too long", status.Error(codes.InvalidArgument, common.ErrMessageTooLong.Error()), common.ErrMessageTooLong},
		{"other invalid", status.Error(codes.InvalidArgument, "weird"), ErrRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, c.mapError(tt.in), tt.want)
		})
	}

	assert.NoError(t, c.mapError(nil))

	internal := status.Error(codes.Internal, "boom")
	got := c.mapError(internal)
	assert.ErrorIs(t, got, internal)
	assert.False(t, errors.Is(got, ErrUnavailable))
}

func TestWithRequestID(t *testing.T) {
	ctx := withRequestID(context.Background())
	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	require.Len(t, md.Get(common.RequestIDHeaderName), 1)

	preset := metadata.AppendToOutgoingContext(context.Background(), common.RequestIDHeaderName, "fixed")
	md, _ = metadata.FromOutgoingContext(withRequestID(preset))
	assert.Equal(t, []string{"fixed"}, md.Get(common.RequestIDHeaderName))
}

func TestNewChatClient_LazyConnect(t *testing.T) {
	c, err := NewChatClient("127.0.0.1:1", 200*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	_, _, err = c.Join(context.Background(), "a", "b")
	require.ErrorIs(t, err, ErrUnavailable)
}
