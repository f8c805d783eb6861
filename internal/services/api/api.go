// Package api assembles the HTTP API from its modules
package api

import (
	"bankocr/internal/platform/config"
	phttp "bankocr/internal/platform/net/http"
	"bankocr/internal/platform/store"

	"bankocr/internal/modkit"
	"bankocr/internal/modkit/httpkit"
	"bankocr/internal/modkit/module"
	"bankocr/internal/modkit/swaggerkit"

	metamod "bankocr/internal/services/api/meta/module"
	ocrmod "bankocr/internal/services/api/ocr/module"
	resultsmod "bankocr/internal/services/results/module"
	scanmod "bankocr/internal/services/scan/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount mounts the API onto r
func Mount(r phttp.Router, opt Options) {
	deps := modkit.FromStore(opt.Config, opt.Store)

	// service modules own the ports the API modules consume
	scan := scanmod.New(deps, nil)
	results := resultsmod.New(deps)
	sp := module.MustPortsOf[scanmod.Ports](scan)
	rp := module.MustPortsOf[resultsmod.Ports](results)

	mods := []modkit.Module{
		metamod.New(deps),
		ocrmod.New(deps, modkit.WithPorts(ocrmod.Ports{
			Classifier: sp.Classifier,
			Results:    rp.Service,
		})),
	}

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, httpkit.CommonStack(opt.Config), func(api httpkit.Router) {
		for _, m := range mods {
			deps.Log.Debug().Str("module", m.Name()).Msg("mounting module")
			m.MountRoutes(api)
		}
	})
}
