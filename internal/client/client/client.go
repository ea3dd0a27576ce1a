package client

import "context"

// Message is a chat log entry as seen by the client.
type Message struct {
	Sequence uint64
	Username string
	Text     string
}

// Client is the set of chat operations available to the CLI.
type Client interface {
	Close() error
	// Join returns the issued token, or accepted=false when the username is
	// already in use.
	Join(ctx context.Context, username, password string) (token uint64, accepted bool, err error)
	Post(ctx context.Context, token uint64, text string) (uint64, error)
	Messages(ctx context.Context, token, after uint64) ([]Message, error)
}
