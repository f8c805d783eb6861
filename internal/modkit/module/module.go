// Package module holds helpers over modkit modules that would otherwise import-cycle
package module

import (
	phttp "bankocr/internal/platform/net/http"
)

// Module mirrors modkit.Module
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
