// Package module wires the scan service
package module

import (
	"io"

	"bankocr/internal/adapters/ingest/scanfile"
	"bankocr/internal/modkit"
	"bankocr/internal/modkit/httpkit"
	"bankocr/internal/services/scan/domain"
	"bankocr/internal/services/scan/service"
)

// OpenFunc turns a byte stream into a record source
type OpenFunc func(r io.Reader) (*scanfile.Reader, error)

// Ports exposed by the scan module
type Ports struct {
	Runner     domain.RunnerPort
	Classifier domain.ClassifierPort
	Open       OpenFunc
}

// Module implements modkit.Module
type Module struct {
	deps  modkit.Deps
	opts  Options
	ports Ports
}

// New builds the scan module from CORE_SCAN_* with the given edit applied on top
func New(deps modkit.Deps, edit func(*Options)) *Module {
	o := FromConfig(deps.Cfg)
	if edit != nil {
		edit(&o)
	}
	svc := service.New(service.Config{Workers: o.Workers, ChunkSize: o.ChunkSize, Timeouts: o.timeouts()})
	ro := o.reader()

	m := &Module{deps: deps, opts: o}
	m.ports = Ports{
		Runner:     svc,
		Classifier: svc,
		Open:       func(r io.Reader) (*scanfile.Reader, error) { return scanfile.NewReader(r, ro) },
	}
	return m
}

// Options returns the resolved settings
func (m *Module) Options() Options { return m.opts }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "scan" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module; scan has no routes of its own
func (m *Module) MountRoutes(httpkit.Router) {}
