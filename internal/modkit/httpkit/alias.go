// Package httpkit is the routing surface modules import instead of platform/net/http
package httpkit

import (
	"net/http"

	phttp "bankocr/internal/platform/net/http"
	"bankocr/internal/platform/net/http/bind"
)

type (
	// Router is the platform router seam
	Router = phttp.Router
	// Handler is the platform handler type
	Handler = phttp.Handler
	// Response is the return-style response
	Response = phttp.Response
)

// Get mounts a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) { phttp.GetJSON(r, path, h) }

// Post mounts a JSON handler under POST with the default bind options
func Post[T any](r Router, path string, h func(*http.Request, T) (any, error)) {
	phttp.PostJSON(r, path, h)
}

// PostLimited mounts a JSON handler under POST accepting bodies up to maxBytes
func PostLimited[T any](r Router, path string, maxBytes int64, h func(*http.Request, T) (any, error)) {
	o := bind.DefaultJSONOptions()
	o.MaxBytes = maxBytes
	phttp.PostJSON(r, path, h, o)
}

// Param returns a URL path parameter
func Param(r *http.Request, name string) string { return phttp.Param(r, name) }
