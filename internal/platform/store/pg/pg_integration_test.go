//go:build integration_pg

package pg

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startPostgres(t *testing.T) string {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	t.Cleanup(cancel)

	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "postgres",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections"),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(context.Background()) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	mapped, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("mapped port: %v", err)
	}
	return fmt.Sprintf("postgres://postgres:postgres@%s:%s/postgres?sslmode=disable", host, mapped.Port())
}

func TestOpen_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	withTestDB(t, Config{URL: dsn, AppName: "bankocr-pg-integration"}, func(p *PG) {
		conn := acquireConn(t, ctx, p)

		if _, err := conn.Exec(ctx, `create temporary table readings (account text primary key, disposition text)`); err != nil {
			t.Fatalf("create temp table: %v", err)
		}

		batch := &pgx.Batch{}
		batch.Queue(`insert into readings values ($1, $2)`, "123456789", "clean")
		batch.Queue(`insert into readings values ($1, $2)`, "888888888", "ambiguous")
		if err := conn.SendBatch(ctx, batch).Close(); err != nil {
			t.Fatalf("batch: %v", err)
		}

		type reading struct {
			Account     string
			Disposition string
		}
		rows, err := conn.Query(ctx, `select account, disposition from readings order by account`)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[reading])
		if err != nil || len(got) != 2 || got[1].Disposition != "ambiguous" {
			t.Fatalf("rows = %#v, %v", got, err)
		}

		var app string
		if err := conn.QueryRow(ctx, `select current_setting('application_name')`).Scan(&app); err != nil {
			t.Fatalf("application_name: %v", err)
		}
		if app != "bankocr-pg-integration" {
			t.Fatalf("application_name = %q", app)
		}
	})
}
