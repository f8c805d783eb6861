// Package module implements the results service module
package module

import (
	"context"

	"bankocr/internal/modkit"
	"bankocr/internal/modkit/httpkit"
	"bankocr/internal/platform/logger"
	"bankocr/internal/services/results/domain"
	"bankocr/internal/services/results/repo"
	"bankocr/internal/services/results/service"
)

// Ports exposed by the results module
type Ports struct {
	Writer domain.WriterPort
	Query  domain.QueryPort
	// Service is nil-safe and reports Enabled false without Postgres
	Service *service.Service
}

// Module implements the results service module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the results module; ClickHouse is used only when deps carries it
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	var ch service.Analytics
	if deps.CH != nil {
		c, err := repo.NewCH(deps.CH, opts.CHTable)
		if err != nil {
			log := deps.Log
			if log == nil {
				log = logger.Named("results")
			}
			log.Warn().Err(err).Msg("clickhouse analytics disabled")
		} else {
			ch = c
		}
	}
	svc := service.New(deps.PG, repo.NewPG(), ch, service.Config{HardLimit: opts.HardLimit})

	m := &Module{deps: deps}
	m.ports = Ports{Writer: svc, Query: svc, Service: svc}
	return m
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "results" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}

// EnsureSchema applies the results DDL when Postgres is configured and is a no-op otherwise
func (m *Module) EnsureSchema(ctx context.Context) error {
	if !m.ports.Service.Enabled() {
		return nil
	}
	return m.ports.Service.EnsureSchema(ctx)
}
