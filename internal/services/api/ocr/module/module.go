// Package module wires the OCR endpoints into the API using modkit
package module

import (
	"bankocr/internal/modkit"
	"bankocr/internal/modkit/httpkit"
	str "bankocr/internal/platform/strings"
	ocrhttp "bankocr/internal/services/api/ocr/http"
	"bankocr/internal/services/api/ocr/service"
	scandom "bankocr/internal/services/scan/domain"
)

// Ports are what the OCR module consumes from the scan and results modules
// they are injected with modkit.WithPorts
type Ports struct {
	Classifier scandom.ClassifierPort
	Results    service.Results
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	svc   *service.Service
	opts  Options
}

// New constructs the OCR module; it panics without a Classifier port
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("ocr"),
		modkit.WithPrefix("/ocr"),
	}, opts...)...)

	p, _ := b.Ports.(Ports)
	if p.Classifier == nil {
		panic("ocr module: classifier port is required")
	}
	o := FromConfig(deps.Cfg)
	return &Module{
		built: b,
		svc:   service.New(p.Classifier, p.Results, service.Config{MaxImages: o.MaxImages}),
		opts:  o,
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) { ocrhttp.Register(rr, m.svc, m.opts.MaxBody) })
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.built.Name, "ocr") }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.built.Ports }
