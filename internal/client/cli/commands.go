package cli

import (
	"context"
	"flag"
	"fmt"
)

// credentials parses -u and -p, prompting for whatever is missing.
func (a *App) credentials(fs *flag.FlagSet, args []string) (string, string, error) {
	username := fs.String("u", "", "username")
	password := fs.String("p", "", "password")
	if err := fs.Parse(args); err != nil {
		return "", "", fmt.Errorf("%w: %v", errUsage, err)
	}

	var err error
	if *username == "" {
		if *username, err = GetSimpleText(a.reader, "Username", a.out); err != nil {
			return "", "", err
		}
	}
	if *password == "" {
		if *password, err = GetPassword(a.reader, a.out); err != nil {
			return "", "", err
		}
	}
	return *username, *password, nil
}

func (a *App) join(ctx context.Context, username, password string) (uint64, error) {
	token, ok, err := a.client.Join(ctx, username, password)
	if err != nil {
		return 0, err
	}
	if !ok {
		failure(a.out, "Username %s is already taken", username)
		return 0, errDenied
	}
	return token, nil
}

func (a *App) Join(ctx context.Context, args []string) error {
	username, password, err := a.credentials(a.flagSet("join"), args)
	if err != nil {
		return err
	}

	token, err := a.join(ctx, username, password)
	if err != nil {
		return err
	}
	success(a.out, "Joined as %s. Token: %d", username, token)
	return nil
}

func (a *App) Send(ctx context.Context, args []string) error {
	fs := a.flagSet("send")
	token := fs.Uint64("t", 0, "token")
	message := fs.String("m", "", "message")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *token == 0 || *message == "" {
		return fmt.Errorf("%w: -t and -m are required", errUsage)
	}

	seq, err := a.client.Post(ctx, *token, *message)
	if err != nil {
		return err
	}
	success(a.out, "Message #%d sent", seq)
	return nil
}

func (a *App) Messages(ctx context.Context, args []string) error {
	fs := a.flagSet("messages")
	token := fs.Uint64("t", 0, "token")
	after := fs.Uint64("a", 0, "show messages after this sequence number")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	if *token == 0 {
		return fmt.Errorf("%w: -t is required", errUsage)
	}

	msgs, err := a.client.Messages(ctx, *token, *after)
	if err != nil {
		return err
	}
	renderMessages(a.out, msgs)
	return nil
}
