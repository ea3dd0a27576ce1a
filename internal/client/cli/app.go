package cli

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/dmitrijs2005/minichat/internal/client/client"
	"github.com/dmitrijs2005/minichat/internal/client/config"
)

var (
	errUsage  = errors.New("usage")
	errDenied = errors.New("username already taken")
)

const usage = `Usage: minichat [-c file] [-s server] [-w timeout] <command> [flags]

Commands:
  join     -u user [-p password]
  send     -t token -m message
  messages -t token [-a after]
  chat     -u user [-p password]`

// newClient is a test seam for the gRPC client constructor.
var newClient = func(cfg *config.Config) (client.Client, error) {
	return client.NewChatClient(cfg.ServerEndpointAddr, cfg.RequestTimeout)
}

type App struct {
	client client.Client
	reader *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

func NewApp(c client.Client, in io.Reader, out, errOut io.Writer) *App {
	return &App{client: c, reader: bufio.NewReader(in), out: out, errOut: errOut}
}

// Main parses global flags, connects and runs one command. It returns the
// process exit code: 0 on success, 2 on usage errors, 1 otherwise.
func Main(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	global := flag.NewFlagSet("minichat", flag.ContinueOnError)
	global.SetOutput(io.Discard)
	global.String("c", "", "config file")
	global.String("config", "", "config file")
	global.String("s", "", "server address")
	global.String("w", "", "request timeout")

	if err := global.Parse(args); err != nil || global.NArg() == 0 {
		fmt.Fprintln(errOut, usage)
		return 2
	}
	rest := global.Args()

	cfg, err := config.LoadConfig(args[:len(args)-len(rest)])
	if err != nil {
		failure(errOut, "%v", err)
		return 1
	}

	c, err := newClient(cfg)
	if err != nil {
		failure(errOut, "%v", err)
		return 1
	}
	defer c.Close()

	app := NewApp(c, in, out, errOut)
	if err := app.Run(ctx, rest[0], rest[1:]); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(errOut, usage)
			return 2
		}
		if !errors.Is(err, errDenied) {
			failure(errOut, "%v", err)
		}
		return 1
	}
	return 0
}

// Run executes a single command.
func (a *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "join":
		return a.Join(ctx, args)
	case "send":
		return a.Send(ctx, args)
	case "messages":
		return a.Messages(ctx, args)
	case "chat":
		return a.Chat(ctx, args)
	case "help":
		fmt.Fprintln(a.out, usage)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *App) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}
