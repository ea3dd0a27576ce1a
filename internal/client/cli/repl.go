package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/minichat/internal/client/client"
	"github.com/dmitrijs2005/minichat/internal/common"
)

const chatHelp = `Type a message and press Enter to send it.
  /log    show messages you have not seen yet
  /all    show the whole history
  /help   show this help
  /quit   leave`

// Chat joins and then reads lines until EOF or /quit. Plain lines are posted;
// commands start with a slash.
func (a *App) Chat(ctx context.Context, args []string) error {
	username, password, err := a.credentials(a.flagSet("chat"), args)
	if err != nil {
		return err
	}

	token, err := a.join(ctx, username, password)
	if err != nil {
		return err
	}
	success(a.out, "Joined as %s. Token: %d", username, token)
	info(a.out, chatHelp)

	var seen uint64
	show := func(after uint64) error {
		msgs, err := a.client.Messages(ctx, token, after)
		if err != nil {
			return err
		}
		renderMessages(a.out, msgs)
		if n := len(msgs); n > 0 {
			seen = max(seen, msgs[n-1].Sequence)
		}
		return nil
	}

	for {
		if ctx.Err() != nil {
			return nil
		}
		fmt.Fprintf(a.out, "%s> ", username)

		line, err := readLine(a.reader)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		switch line {
		case "/quit", "/exit":
			return nil
		case "/help":
			info(a.out, chatHelp)
		case "/log":
			err = show(seen)
		case "/all":
			err = show(0)
		default:
			err = a.post(ctx, token, line)
		}

		if err != nil {
			if errors.Is(err, client.ErrUnavailable) || errors.Is(err, client.ErrUnauthorized) {
				return err
			}
			failure(a.out, "%v", err)
		}
	}
}

func (a *App) post(ctx context.Context, token uint64, text string) error {
	seq, err := a.client.Post(ctx, token, text)
	if err != nil {
		if errors.Is(err, common.ErrMessageTooLong) {
			return fmt.Errorf("%w (max %d bytes)", err, common.MaxMessageLen)
		}
		return err
	}
	info(a.out, "#%d", seq)
	return nil
}
