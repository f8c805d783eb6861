package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
)

// withTestDB opens a client against dsn and closes it on cleanup
func withTestDB(t *testing.T, cfg Config, fn func(p *PG)) {
	t.Helper()
	client, err := Open(context.Background(), cfg, nil, func(pc *pgxpool.Config) { pc.MinConns = 1 })
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(client.Close)
	fn(client)
}

// acquireConn pins one session so TEMP tables survive between statements
func acquireConn(t *testing.T, ctx context.Context, p *PG) *pgxpool.Conn {
	t.Helper()
	conn, err := p.Pool.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	t.Cleanup(conn.Release)
	return conn
}
