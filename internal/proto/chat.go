// Package proto holds the wire types and gRPC bindings of the chat.Chat
// service defined in chat.proto. Messages are encoded by the codec in
// codec.go.
package proto

import "google.golang.org/protobuf/encoding/protowire"

// JoinResponse is the outcome of a Join call. The zero value is DENIED.
type JoinResponse int32

const (
	JoinResponse_DENIED   JoinResponse = 0
	JoinResponse_ACCEPTED JoinResponse = 1
)

var joinResponseName = map[JoinResponse]string{
	JoinResponse_DENIED:   "DENIED",
	JoinResponse_ACCEPTED: "ACCEPTED",
}

func (x JoinResponse) String() string {
	if s, ok := joinResponseName[x]; ok {
		return s
	}
	return "UNKNOWN"
}

type Member struct {
	Username string `protobuf:"bytes,1,opt,name=username"`
	Password string `protobuf:"bytes,2,opt,name=password"`
}

func (x *Member) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Member) GetPassword() string {
	if x != nil {
		return x.Password
	}
	return ""
}

func (x *Member) appendWire(b []byte) []byte {
	b = appendString(b, 1, x.Username)
	return appendString(b, 2, x.Password)
}

func (x *Member) unmarshalWire(b []byte) error {
	*x = Member{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return decodeString(typ, b, &x.Username)
		case 2:
			return decodeString(typ, b, &x.Password)
		}
		return 0
	})
}

type JoinResult struct {
	Token    uint64       `protobuf:"varint,1,opt,name=token"`
	Response JoinResponse `protobuf:"varint,2,opt,name=response,enum=chat.JoinResponse"`
}

func (x *JoinResult) GetToken() uint64 {
	if x != nil {
		return x.Token
	}
	return 0
}

func (x *JoinResult) GetResponse() JoinResponse {
	if x != nil {
		return x.Response
	}
	return JoinResponse_DENIED
}

func (x *JoinResult) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, x.Token)
	return appendUint64(b, 2, uint64(int64(x.Response)))
}

func (x *JoinResult) unmarshalWire(b []byte) error {
	*x = JoinResult{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return decodeUint64(typ, b, &x.Token)
		case 2:
			var v uint64
			n := decodeUint64(typ, b, &v)
			x.Response = JoinResponse(int32(v))
			return n
		}
		return 0
	})
}

type NewChatMessage struct {
	Token uint64 `protobuf:"varint,1,opt,name=token"`
	Value string `protobuf:"bytes,2,opt,name=value"`
}

func (x *NewChatMessage) GetToken() uint64 {
	if x != nil {
		return x.Token
	}
	return 0
}

func (x *NewChatMessage) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *NewChatMessage) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, x.Token)
	return appendString(b, 2, x.Value)
}

func (x *NewChatMessage) unmarshalWire(b []byte) error {
	*x = NewChatMessage{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return decodeUint64(typ, b, &x.Token)
		case 2:
			return decodeString(typ, b, &x.Value)
		}
		return 0
	})
}

// CommitResult carries the sequence number assigned to a posted message.
type CommitResult struct {
	Time uint64 `protobuf:"varint,1,opt,name=time"`
}

func (x *CommitResult) GetTime() uint64 {
	if x != nil {
		return x.Time
	}
	return 0
}

func (x *CommitResult) appendWire(b []byte) []byte {
	return appendUint64(b, 1, x.Time)
}

func (x *CommitResult) unmarshalWire(b []byte) error {
	*x = CommitResult{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		if num == 1 {
			return decodeUint64(typ, b, &x.Time)
		}
		return 0
	})
}

// After asks for the log entries with a sequence number greater than Value.
type After struct {
	Token uint64 `protobuf:"varint,1,opt,name=token"`
	Value uint64 `protobuf:"varint,2,opt,name=value"`
}

func (x *After) GetToken() uint64 {
	if x != nil {
		return x.Token
	}
	return 0
}

func (x *After) GetValue() uint64 {
	if x != nil {
		return x.Value
	}
	return 0
}

func (x *After) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, x.Token)
	return appendUint64(b, 2, x.Value)
}

func (x *After) unmarshalWire(b []byte) error {
	*x = After{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return decodeUint64(typ, b, &x.Token)
		case 2:
			return decodeUint64(typ, b, &x.Value)
		}
		return 0
	})
}

type ChatMessage struct {
	Time     uint64 `protobuf:"varint,1,opt,name=time"`
	Username string `protobuf:"bytes,2,opt,name=username"`
	Value    string `protobuf:"bytes,3,opt,name=value"`
}

func (x *ChatMessage) GetTime() uint64 {
	if x != nil {
		return x.Time
	}
	return 0
}

func (x *ChatMessage) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *ChatMessage) GetValue() string {
	if x != nil {
		return x.Value
	}
	return ""
}

func (x *ChatMessage) appendWire(b []byte) []byte {
	b = appendUint64(b, 1, x.Time)
	b = appendString(b, 2, x.Username)
	return appendString(b, 3, x.Value)
}

func (x *ChatMessage) unmarshalWire(b []byte) error {
	*x = ChatMessage{}
	return consumeMessage(b, func(num protowire.Number, typ protowire.Type, b []byte) int {
		switch num {
		case 1:
			return decodeUint64(typ, b, &x.Time)
		case 2:
			return decodeString(typ, b, &x.Username)
		case 3:
			return decodeString(typ, b, &x.Value)
		}
		return 0
	})
}
