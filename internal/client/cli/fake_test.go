package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/minichat/internal/client/client"
)

type fakeClient struct {
	joinToken    uint64
	joinAccepted bool
	joinErr      error
	lastUser     string
	lastPassword string

	postSeq  uint64
	postErr  error
	posted   []string
	messages []client.Message
	msgErr   error
	afters   []uint64
	closed   bool
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func (f *fakeClient) Join(ctx context.Context, username, password string) (uint64, bool, error) {
	f.lastUser, f.lastPassword = username, password
	return f.joinToken, f.joinAccepted, f.joinErr
}

func (f *fakeClient) Post(ctx context.Context, token uint64, text string) (uint64, error) {
	if f.postErr != nil {
		return 0, f.postErr
	}
	f.posted = append(f.posted, text)
	f.postSeq++
	return f.postSeq, nil
}

func (f *fakeClient) Messages(ctx context.Context, token, after uint64) ([]client.Message, error) {
	f.afters = append(f.afters, after)
	if f.msgErr != nil {
		return nil, f.msgErr
	}
	var out []client.Message
	for _, m := range f.messages {
		if m.Sequence > after {
			out = append(out, m)
		}
	}
	return out, nil
}

// noTerminal makes password prompts read from the app's reader.
func noTerminal(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}
