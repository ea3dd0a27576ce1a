package proto

import (
	"fmt"

	"google.golang.org/grpc/encoding"
	_ "google.golang.org/grpc/encoding/proto"
	"google.golang.org/protobuf/encoding/protowire"
	protov2 "google.golang.org/protobuf/proto"
)

// CodecName is the default gRPC content-subtype. The chat messages are
// encoded in the protobuf binary format described by chat.proto, so any
// protobuf client of chat.Chat can talk to this service.
const CodecName = "proto"

// wireMessage is implemented by the chat.proto messages in this package.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
}

// codec replaces the stock proto codec. Messages generated by protoc-gen-go
// are still handed to the protobuf runtime.
type codec struct{}

func (codec) Marshal(v any) ([]byte, error) {
	switch m := v.(type) {
	case wireMessage:
		return m.appendWire(nil), nil
	case protov2.Message:
		return protov2.Marshal(m)
	}
	return nil, fmt.Errorf("proto: cannot marshal %T", v)
}

func (codec) Unmarshal(data []byte, v any) error {
	switch m := v.(type) {
	case wireMessage:
		return m.unmarshalWire(data)
	case protov2.Message:
		return protov2.Unmarshal(data, m)
	}
	return fmt.Errorf("proto: cannot unmarshal into %T", v)
}

func (codec) Name() string {
	return CodecName
}

func init() {
	encoding.RegisterCodec(codec{})
}

func appendUint64(b []byte, num protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	if v == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

// fieldDecoder decodes one field value from b and returns the number of
// bytes consumed, 0 for a field it does not know, or a negative error code.
type fieldDecoder func(num protowire.Number, typ protowire.Type, b []byte) int

func consumeMessage(b []byte, decode fieldDecoder) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n = decode(num, typ, b)
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, b)
		}
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
	}
	return nil
}

func decodeUint64(typ protowire.Type, b []byte, v *uint64) int {
	if typ != protowire.VarintType {
		return 0
	}
	u, n := protowire.ConsumeVarint(b)
	if n >= 0 {
		*v = u
	}
	return n
}

func decodeString(typ protowire.Type, b []byte, v *string) int {
	if typ != protowire.BytesType {
		return 0
	}
	s, n := protowire.ConsumeString(b)
	if n >= 0 {
		*v = s
	}
	return n
}
