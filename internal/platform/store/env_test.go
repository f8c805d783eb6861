package store

import (
	"testing"

	"bankocr/internal/platform/config"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://u:p@db:5432/ocr")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "8")
	t.Setenv("SERVICE_PGSQL_LOG_SQL", "true")

	c := FromEnv(config.New(), "bankocr", "cli")
	if !c.PG.Enabled || c.PG.URL != "postgres://u:p@db:5432/ocr" || c.PG.MaxConns != 8 || !c.PG.LogSQL {
		t.Fatalf("pg %+v", c.PG)
	}
	if c.CH.Enabled || c.AppName != "bankocr" || c.Role != "cli" {
		t.Fatalf("config %+v", c)
	}
}
