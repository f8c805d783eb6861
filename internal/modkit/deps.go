// Package modkit wires API modules: shared deps, build options and the Module contract
package modkit

import (
	"bankocr/internal/modkit/repokit"
	"bankocr/internal/platform/config"
	"bankocr/internal/platform/logger"
	"bankocr/internal/platform/store"
)

// Deps holds what every module may use; PG and CH are nil when not configured
type Deps struct {
	Log *logger.Logger
	Cfg config.Conf
	PG  repokit.TxRunner
	CH  store.Clickhouse
}

// FromStore fills PG and CH from an opened store
func FromStore(cfg config.Conf, st *store.Store) Deps {
	d := Deps{Cfg: cfg, Log: logger.Named("api")}
	if st != nil {
		d.PG = st.PG
		d.CH = st.CH
	}
	return d
}
