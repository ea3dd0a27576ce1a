package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/minichat/internal/common"
	pb "github.com/dmitrijs2005/minichat/internal/proto"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) Join(ctx context.Context, req *pb.Member) (*pb.JoinResult, error) {
	res, err := s.chat.Join(ctx, req.GetUsername(), req.GetPassword())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	if !res.Accepted {
		return &pb.JoinResult{Response: pb.JoinResponse_DENIED}, nil
	}
	return &pb.JoinResult{Token: uint64(res.Token), Response: pb.JoinResponse_ACCEPTED}, nil
}

func (s *GRPCServer) Commit(ctx context.Context, req *pb.NewChatMessage) (*pb.CommitResult, error) {
	seq, err := s.chat.Post(ctx, chat.Token(req.GetToken()), req.GetValue())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CommitResult{Time: seq}, nil
}

// ChatLog streams the log entries after req.Value. An unknown token fails
// the call before any message is sent.
func (s *GRPCServer) ChatLog(req *pb.After, stream grpc.ServerStreamingServer[pb.ChatMessage]) error {
	ctx := stream.Context()

	messages, err := s.chat.ReadLog(ctx, chat.Token(req.GetToken()), req.GetValue())
	if err != nil {
		return s.toStatus(ctx, err)
	}

	for m := range messages {
		if err := stream.Send(toProto(m)); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func toProto(m chat.ChatMessage) *pb.ChatMessage {
	return &pb.ChatMessage{Time: m.Sequence, Username: m.Username, Value: m.Text}
}

// toStatus maps service errors onto gRPC status codes.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrInvalidMember):
		return status.Error(codes.InvalidArgument, common.ErrInvalidMember.Error())
	case errors.Is(err, common.ErrMessageTooLong):
		return status.Error(codes.InvalidArgument, common.ErrMessageTooLong.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
	default:
		s.logger.Error(ctx, "request failed", "error", err, "request_id", ctx.Value(requestIDKey))
		return status.Error(codes.Internal, "internal error")
	}
}
