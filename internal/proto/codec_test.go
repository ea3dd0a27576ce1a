package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestCodecRegisteredAsDefault(t *testing.T) {
	c := encoding.GetCodec(CodecName)
	require.NotNil(t, c)
	assert.Equal(t, "proto", c.Name())
	assert.IsType(t, codec{}, c)
}

func TestMarshal_WireBytes(t *testing.T) {
	c := codec{}

	tests := []struct {
		name string
		in   any
		want []byte
	}{
		{"member", &Member{Username: "alice", Password: "p1"},
			[]byte{0x0a, 5, 'a', 'l', 'i', 'c', 'e', 0x12, 2, 'p', '1'}},
		{"accepted", &JoinResult{Token: 1, Response: JoinResponse_ACCEPTED}, []byte{0x08, 1, 0x10, 1}},
		{"denied", &JoinResult{Response: JoinResponse_DENIED}, []byte{}},
		{"after", &After{Token: 2, Value: 300}, []byte{0x08, 2, 0x10, 0xac, 0x02}},
		{"commit", &CommitResult{Time: 3}, []byte{0x08, 3}},
		{"new message", &NewChatMessage{Token: 1, Value: "hi"}, []byte{0x08, 1, 0x12, 2, 'h', 'i'}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, append([]byte{}, got...))
		})
	}
}

func TestUnmarshal_EmptyJoinResultIsDenied(t *testing.T) {
	r := JoinResult{Token: 9, Response: JoinResponse_ACCEPTED}
	require.NoError(t, codec{}.Unmarshal(nil, &r))

	assert.Equal(t, JoinResponse_DENIED, r.GetResponse())
	assert.Zero(t, r.GetToken())
}

func TestUnmarshal_ChatMessage(t *testing.T) {
	b, err := codec{}.Marshal(&ChatMessage{Time: 1 << 40, Username: "bob", Value: "héllo"})
	require.NoError(t, err)

	var m ChatMessage
	require.NoError(t, codec{}.Unmarshal(b, &m))
	assert.Equal(t, ChatMessage{Time: 1 << 40, Username: "bob", Value: "héllo"}, m)
}

func TestUnmarshal_SkipsUnknownFields(t *testing.T) {
	b := protowire.AppendTag(nil, 9, protowire.VarintType)
	b = protowire.AppendVarint(b, 77)
	b = protowire.AppendTag(b, 2, protowire.BytesType)
	b = protowire.AppendString(b, "secret")
	b = protowire.AppendTag(b, 10, protowire.BytesType)
	b = protowire.AppendString(b, "extra")
	// username sent with the wrong wire type is ignored
	b = protowire.AppendTag(b, 1, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, 1)

	var m Member
	require.NoError(t, codec{}.Unmarshal(b, &m))
	assert.Equal(t, Member{Password: "secret"}, m)
}

func TestUnmarshal_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"truncated string", []byte{0x0a, 5, 'a', 'b'}},
		{"truncated varint", []byte{0x08, 0x80}},
		{"bad tag", []byte{0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m Member
			assert.Error(t, codec{}.Unmarshal(tt.in, &m))
		})
	}
}

func TestCodec_ProtobufMessages(t *testing.T) {
	b, err := codec{}.Marshal(wrapperspb.String("x"))
	require.NoError(t, err)

	var got wrapperspb.StringValue
	require.NoError(t, codec{}.Unmarshal(b, &got))
	assert.Equal(t, "x", got.GetValue())
}

func TestCodec_UnsupportedType(t *testing.T) {
	_, err := codec{}.Marshal(struct{}{})
	require.Error(t, err)

	require.Error(t, codec{}.Unmarshal([]byte{}, &struct{}{}))
}

func TestNilGetters(t *testing.T) {
	var r *JoinResult
	assert.Zero(t, r.GetToken())
	assert.Equal(t, JoinResponse_DENIED, r.GetResponse())

	var a *After
	assert.Zero(t, a.GetValue())
}

func TestJoinResponse_String(t *testing.T) {
	assert.Equal(t, "ACCEPTED", JoinResponse_ACCEPTED.String())
	assert.Equal(t, "DENIED", JoinResponse_DENIED.String())
	assert.Equal(t, "UNKNOWN", JoinResponse(7).String())
}
