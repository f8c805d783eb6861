package httpkit

import (
	"net/http"
	"strings"
)

// MountAPI mounts mount under /api/{version} with mw applied
//
//	httpkit.MountAPIV1(r, httpkit.CommonStack(cfg), func(api httpkit.Router) {
//		ocr.MountRoutes(api)
//	})
func MountAPI(r Router, version string, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountUnder(r, "/api/"+strings.Trim(version, "/"), mw, mount)
}

// MountAPIV1 is MountAPI for v1
func MountAPIV1(r Router, mw []func(http.Handler) http.Handler, mount func(Router)) {
	MountAPI(r, "v1", mw, mount)
}
