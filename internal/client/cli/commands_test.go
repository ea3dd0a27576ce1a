package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/minichat/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(f *fakeClient, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return NewApp(f, strings.NewReader(input), &out, &out), &out
}

func TestJoin_WithFlags(t *testing.T) {
	f := &fakeClient{joinToken: 1, joinAccepted: true}
	app, out := newTestApp(f, "")

	require.NoError(t, app.Run(context.Background(), "join", []string{"-u", "alice", "-p", "p1"}))
	assert.Equal(t, "alice", f.lastUser)
	assert.Equal(t, "p1", f.lastPassword)
	assert.Contains(t, out.String(), "Joined as alice. Token: 1")
}

func TestJoin_Prompts(t *testing.T) {
	noTerminal(t)
	f := &fakeClient{joinToken: 2, joinAccepted: true}
	app, out := newTestApp(f, "bob\nsecret\n")

	require.NoError(t, app.Run(context.Background(), "join", nil))
	assert.Equal(t, "bob", f.lastUser)
	assert.Equal(t, "secret", f.lastPassword)
	assert.Contains(t, out.String(), "Enter password")
}

func TestJoin_Denied(t *testing.T) {
	f := &fakeClient{joinAccepted: false}
	app, out := newTestApp(f, "")

	err := app.Run(context.Background(), "join", []string{"-u", "alice", "-p", "x"})
	require.ErrorIs(t, err, errDenied)
	assert.Contains(t, out.String(), "already taken")
}

func TestSend(t *testing.T) {
	f := &fakeClient{postSeq: 2}
	app, out := newTestApp(f, "")

	require.NoError(t, app.Run(context.Background(), "send", []string{"-t", "1", "-m", "hello"}))
	assert.Equal(t, []string{"hello"}, f.posted)
	assert.Contains(t, out.String(), "Message #3 sent")

	err := app.Run(context.Background(), "send", []string{"-m", "no token"})
	require.ErrorIs(t, err, errUsage)

	err = app.Run(context.Background(), "send", []string{"-t", "abc"})
	require.ErrorIs(t, err, errUsage)
}

func TestSend_Unauthorized(t *testing.T) {
	f := &fakeClient{postErr: client.ErrUnauthorized}
	app, _ := newTestApp(f, "")

	err := app.Run(context.Background(), "send", []string{"-t", "9", "-m", "hi"})
	require.ErrorIs(t, err, client.ErrUnauthorized)
}

func TestMessages(t *testing.T) {
	f := &fakeClient{messages: []client.Message{
		{Sequence: 1, Username: "alice", Text: "hi"},
		{Sequence: 2, Username: "bob", Text: "yo"},
	}}
	app, out := newTestApp(f, "")

	require.NoError(t, app.Run(context.Background(), "messages", []string{"-t", "1", "-a", "1"}))
	assert.Equal(t, []uint64{1}, f.afters)
	assert.Contains(t, out.String(), "bob")
	assert.Contains(t, out.String(), "yo")
	assert.NotContains(t, out.String(), "alice")
}

func TestMessages_Empty(t *testing.T) {
	app, out := newTestApp(&fakeClient{}, "")

	require.NoError(t, app.Run(context.Background(), "messages", []string{"-t", "1"}))
	assert.Contains(t, out.String(), "No messages")

	require.ErrorIs(t, app.Run(context.Background(), "messages", nil), errUsage)
}

func TestRun_UnknownCommand(t *testing.T) {
	app, _ := newTestApp(&fakeClient{}, "")
	require.ErrorIs(t, app.Run(context.Background(), "dance", nil), errUsage)

	app, out := newTestApp(&fakeClient{}, "")
	require.NoError(t, app.Run(context.Background(), "help", nil))
	assert.Contains(t, out.String(), "Commands:")
}
