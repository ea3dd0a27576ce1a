// Package server assembles the chat server: logging, metrics, the chat
// service and its seed, and the gRPC and ops listeners.
package server

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/minichat/internal/logging"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/config"
	"github.com/dmitrijs2005/minichat/internal/server/ops"
	"github.com/dmitrijs2005/minichat/internal/server/seed"

	gs "github.com/dmitrijs2005/minichat/internal/server/grpc"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	chat    *chat.Service
	metrics *ops.Metrics
}

// NewApp builds the service and imports the configured seed. Logs go to out.
func NewApp(ctx context.Context, c *config.Config, out io.Writer) (*App, error) {
	logger := logging.New(c.LogLevel, c.LogFormat, out)
	metrics := ops.NewMetrics()
	cs := chat.NewService(c, metrics, logger)

	if err := loadSeed(ctx, c, cs); err != nil {
		return nil, fmt.Errorf("seed: %w", err)
	}

	return &App{config: c, logger: logger, chat: cs, metrics: metrics}, nil
}

func loadSeed(ctx context.Context, c *config.Config, cs *chat.Service) error {
	src, err := seed.New(ctx, c)
	if err != nil {
		return err
	}
	if src == nil {
		return nil
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}

	data, err := src.Load(ctx)
	if err != nil {
		return err
	}
	return cs.Seed(ctx, data)
}

type runner interface {
	Run(ctx context.Context) error
}

// Run serves until ctx is cancelled, SIGINT or SIGTERM arrives, or a listener
// fails. The first listener error is returned.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	app.logger.Info(ctx, "Starting app...")

	runners := []runner{gs.NewGRPCServer(app.config, app.logger, app.chat)}
	if app.config.OpsAddr != "" {
		h := ops.Router(app.metrics, app.chat.Stats)
		runners = append(runners, ops.NewServer(app.config.OpsAddr, h, app.logger, app.config.ShutdownTimeout))
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, r := range runners {
		wg.Add(1)
		go func(r runner) {
			defer wg.Done()
			if err := r.Run(ctx); err != nil {
				app.logger.Error(ctx, err.Error())
				once.Do(func() { firstErr = err })
				cancel()
			}
		}(r)
	}

	wg.Wait()
	app.logger.Info(context.Background(), "Good bye!")
	return firstErr
}
