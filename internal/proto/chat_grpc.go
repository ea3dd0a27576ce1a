package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	Chat_Join_FullMethodName    = "/chat.Chat/Join"
	Chat_Commit_FullMethodName  = "/chat.Chat/Commit"
	Chat_ChatLog_FullMethodName = "/chat.Chat/ChatLog"
)

// ChatClient is the client API for the chat.Chat service.
type ChatClient interface {
	Join(ctx context.Context, in *Member, opts ...grpc.CallOption) (*JoinResult, error)
	Commit(ctx context.Context, in *NewChatMessage, opts ...grpc.CallOption) (*CommitResult, error)
	ChatLog(ctx context.Context, in *After, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatMessage], error)
}

type chatClient struct {
	cc grpc.ClientConnInterface
}

func NewChatClient(cc grpc.ClientConnInterface) ChatClient {
	return &chatClient{cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
}

func (c *chatClient) Join(ctx context.Context, in *Member, opts ...grpc.CallOption) (*JoinResult, error) {
	out := new(JoinResult)
	err := c.cc.Invoke(ctx, Chat_Join_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatClient) Commit(ctx context.Context, in *NewChatMessage, opts ...grpc.CallOption) (*CommitResult, error) {
	out := new(CommitResult)
	err := c.cc.Invoke(ctx, Chat_Commit_FullMethodName, in, out, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *chatClient) ChatLog(ctx context.Context, in *After, opts ...grpc.CallOption) (grpc.ServerStreamingClient[ChatMessage], error) {
	stream, err := c.cc.NewStream(ctx, &Chat_ServiceDesc.Streams[0], Chat_ChatLog_FullMethodName, callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[After, ChatMessage]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// ChatServer is the server API for the chat.Chat service.
// Implementations must embed UnimplementedChatServer.
type ChatServer interface {
	Join(context.Context, *Member) (*JoinResult, error)
	Commit(context.Context, *NewChatMessage) (*CommitResult, error)
	ChatLog(*After, grpc.ServerStreamingServer[ChatMessage]) error
	mustEmbedUnimplementedChatServer()
}

type UnimplementedChatServer struct{}

func (UnimplementedChatServer) Join(context.Context, *Member) (*JoinResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Join not implemented")
}

func (UnimplementedChatServer) Commit(context.Context, *NewChatMessage) (*CommitResult, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Commit not implemented")
}

func (UnimplementedChatServer) ChatLog(*After, grpc.ServerStreamingServer[ChatMessage]) error {
	return status.Errorf(codes.Unimplemented, "method ChatLog not implemented")
}

func (UnimplementedChatServer) mustEmbedUnimplementedChatServer() {}

func RegisterChatServer(s grpc.ServiceRegistrar, srv ChatServer) {
	s.RegisterService(&Chat_ServiceDesc, srv)
}

func _Chat_Join_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(Member)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServer).Join(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chat_Join_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServer).Join(ctx, req.(*Member))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chat_Commit_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(NewChatMessage)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ChatServer).Commit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Chat_Commit_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ChatServer).Commit(ctx, req.(*NewChatMessage))
	}
	return interceptor(ctx, in, info, handler)
}

func _Chat_ChatLog_Handler(srv any, stream grpc.ServerStream) error {
	m := new(After)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(ChatServer).ChatLog(m, &grpc.GenericServerStream[After, ChatMessage]{ServerStream: stream})
}

// Chat_ServiceDesc is the grpc.ServiceDesc for the chat.Chat service.
var Chat_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "chat.Chat",
	HandlerType: (*ChatServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Join",
			Handler:    _Chat_Join_Handler,
		},
		{
			MethodName: "Commit",
			Handler:    _Chat_Commit_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ChatLog",
			Handler:       _Chat_ChatLog_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "chat.proto",
}
