package modkit

import (
	phttp "bankocr/internal/platform/net/http"
)

// Module is what the API mounts: routes under a router plus an optional port set
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
