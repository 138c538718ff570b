package postgres

import (
	"context"
	"fmt"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/seo-review-backend/internal/config"
)

// NewPool creates a PostgreSQL connection pool configured from DatabaseConfig.
// It parses the DSN, applies pool settings (max/min conns, lifetimes), pings
// the database for fail-fast validation, and returns the ready pool.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse database DSN: %w", err)
	}

	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

// Conn is a connected pool as seen by Provider.
type Conn interface {
	DB
	Ping(ctx context.Context) error
	Close()
}

// ConnectFunc opens a new Conn.
type ConnectFunc func(ctx context.Context) (Conn, error)

// Provider is a process-wide, lazily connected database handle.
// Concurrent first callers share one connection attempt; a failed attempt is
// not remembered and the next caller tries again.
type Provider struct {
	connect ConnectFunc
	group   singleflight.Group

	mu   sync.RWMutex
	conn Conn
}

// NewProvider returns a Provider that connects with NewPool on first use.
func NewProvider(cfg config.DatabaseConfig) *Provider {
	return NewProviderWithConnect(func(ctx context.Context) (Conn, error) {
		return NewPool(ctx, cfg)
	})
}

// NewProviderWithConnect returns a Provider using a custom connect function.
func NewProviderWithConnect(connect ConnectFunc) *Provider {
	return &Provider{connect: connect}
}

// Conn returns the shared connection, opening it on first use.
func (p *Provider) Conn(ctx context.Context) (Conn, error) {
	p.mu.RLock()
	conn := p.conn
	p.mu.RUnlock()
	if conn != nil {
		return conn, nil
	}

	v, err, _ := p.group.Do("connect", func() (any, error) {
		p.mu.RLock()
		existing := p.conn
		p.mu.RUnlock()
		if existing != nil {
			return existing, nil
		}

		c, err := p.connect(ctx)
		if err != nil {
			return nil, err
		}

		p.mu.Lock()
		p.conn = c
		p.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return v.(Conn), nil
}

// Ping connects if needed and pings the database.
func (p *Provider) Ping(ctx context.Context) error {
	conn, err := p.Conn(ctx)
	if err != nil {
		return err
	}
	return conn.Ping(ctx)
}

// Close releases the connection if one was opened.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}

// ---- DB implementation ----

func (p *Provider) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	conn, err := p.Conn(ctx)
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return conn.Exec(ctx, sql, args...)
}

func (p *Provider) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	conn, err := p.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Query(ctx, sql, args...)
}

func (p *Provider) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	conn, err := p.Conn(ctx)
	if err != nil {
		return errRow{err: err}
	}
	return conn.QueryRow(ctx, sql, args...)
}

func (p *Provider) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	conn, err := p.Conn(ctx)
	if err != nil {
		return 0, err
	}
	return conn.CopyFrom(ctx, tableName, columnNames, rowSrc)
}

func (p *Provider) Begin(ctx context.Context) (pgx.Tx, error) {
	conn, err := p.Conn(ctx)
	if err != nil {
		return nil, err
	}
	return conn.Begin(ctx)
}

// errRow is a pgx.Row whose Scan reports a connection failure.
type errRow struct {
	err error
}

func (r errRow) Scan(...any) error { return r.err }
