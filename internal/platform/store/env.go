package store

import (
	"time"

	"bankocr/internal/platform/config"
)

// FromEnv reads SERVICE_PGSQL_* and SERVICE_CLICKHOUSE_*; a backend is enabled only
// when its DBURL is set
func FromEnv(root config.Conf, appName, role string) Config {
	pg := root.Prefix("SERVICE_PGSQL_")
	ch := root.Prefix("SERVICE_CLICKHOUSE_")
	return Config{
		AppName: appName,
		Role:    role,
		PG: PGConfig{
			Enabled:        pg.Has("DBURL"),
			URL:            pg.MayString("DBURL", ""),
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 500),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 0),
		},
		CH: CHConfig{
			Enabled:     ch.Has("DBURL"),
			URL:         ch.MayString("DBURL", ""),
			DialTimeout: ch.MayDuration("DIAL_TIMEOUT", 5*time.Second),
		},
	}
}
