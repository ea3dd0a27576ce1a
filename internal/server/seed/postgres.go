package seed

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/minichat/internal/dbx"
	"github.com/dmitrijs2005/minichat/internal/server/chat"
	"github.com/dmitrijs2005/minichat/internal/server/seed/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

const (
	selectMembers  = `SELECT username, password FROM seed_members ORDER BY id`
	selectMessages = `SELECT username, body FROM seed_messages ORDER BY id`
)

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// PostgresSource reads the seed tables in a single read-only transaction.
type PostgresSource struct {
	db *sql.DB
}

// OpenPostgres connects through the pgx driver and brings the seed tables
// up to date.
func OpenPostgres(ctx context.Context, dsn string) (*PostgresSource, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping seed database: %w", err)
	}

	p := NewPostgresSource(db)
	if err := p.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate seed database: %w", err)
	}
	return p, nil
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

// RunMigrations applies the embedded goose migrations.
func (p *PostgresSource) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, p.db, ".")
}

func (p *PostgresSource) Load(ctx context.Context) (chat.Seed, error) {
	var s chat.Seed

	err := dbx.WithTx(ctx, p.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		var err error
		s.Members, err = dbx.Collect(ctx, tx, selectMembers, func(r *sql.Rows) (chat.Member, error) {
			var m chat.Member
			err := r.Scan(&m.Username, &m.Password)
			return m, err
		})
		if err != nil {
			return fmt.Errorf("read members: %w", err)
		}

		s.Messages, err = dbx.Collect(ctx, tx, selectMessages, func(r *sql.Rows) (chat.SeedMessage, error) {
			var m chat.SeedMessage
			err := r.Scan(&m.Username, &m.Text)
			return m, err
		})
		if err != nil {
			return fmt.Errorf("read messages: %w", err)
		}
		return nil
	})
	if err != nil {
		return chat.Seed{}, err
	}
	return s, nil
}

func (p *PostgresSource) Close() error {
	return p.db.Close()
}
