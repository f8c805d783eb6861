package modkit

import (
	"net/http"

	phttp "bankocr/internal/platform/net/http"
	pstrings "bankocr/internal/platform/strings"
)

// Built is the resolved option set a module keeps
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(phttp.Router)
}

// Build applies opts; the prefix is normalized and Register is never nil
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(phttp.Router) {}
	}
	b := Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
	if b.Prefix != "" {
		b.Prefix = pstrings.MustPrefix(b.Prefix)
	}
	return b
}

// Mount routes register under b.Prefix with b.Mw applied, then b.Register
func (b Built) Mount(r phttp.Router, register func(phttp.Router)) {
	mount := func(rr phttp.Router) {
		if len(b.Mw) > 0 {
			rr.Use(b.Mw...)
		}
		register(rr)
		b.Register(rr)
	}
	if b.Prefix == "" {
		r.Group(mount)
		return
	}
	r.Route(b.Prefix, mount)
}
