// Package seed loads bootstrap members and messages for the chat service
// from a JSON file, an S3 object or a PostgreSQL database. Sources are only
// read; chat state is never written back.
package seed

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/minichat/internal/common"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/config"
)

// Source yields the seed to import at startup.
type Source interface {
	Load(ctx context.Context) (chat.Seed, error)
}

// DemoName selects the built-in demo seed.
const DemoName = "demo"

// Demo returns the two demo members and their greeting messages.
func Demo() chat.Seed {
	return chat.Seed{
		Members: []chat.Member{
			{Username: "user1", Password: "pass1"},
			{Username: "user2", Password: "pass2"},
		},
		Messages: []chat.SeedMessage{
			{Username: "user1", Text: "Hi!"},
			{Username: "user2", Text: "Hello sir!"},
		},
	}
}

type staticSource chat.Seed

func (s staticSource) Load(context.Context) (chat.Seed, error) {
	return chat.Seed(s), nil
}

// New picks a Source from cfg.SeedSource:
//
//	""                      no seed, nil Source
//	"demo"                  built-in demo data
//	"s3://bucket/key"       JSON object in S3
//	"postgres://..."        seed_members and seed_messages tables
//	anything else           path to a JSON file
//
// The returned Source may also implement io.Closer.
func New(ctx context.Context, cfg *config.Config) (Source, error) {
	src := strings.TrimSpace(cfg.SeedSource)

	switch {
	case src == "":
		return nil, nil
	case src == DemoName:
		return staticSource(Demo()), nil
	case strings.HasPrefix(src, "s3://"):
		bucket, key, err := parseS3URL(src)
		if err != nil {
			return nil, err
		}
		return NewS3Source(ctx, cfg, bucket, key)
	case strings.HasPrefix(src, "postgres://"), strings.HasPrefix(src, "postgresql://"):
		return OpenPostgres(ctx, src)
	case strings.Contains(src, "://"):
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownSeedKind, src)
	default:
		return NewFileSource(src), nil
	}
}

func parseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("seed url: %w", err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("seed url %q: want s3://bucket/key", raw)
	}
	return u.Host, key, nil
}
