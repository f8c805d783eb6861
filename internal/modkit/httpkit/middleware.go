package httpkit

import (
	"compress/flate"
	"net/http"
	"time"

	"bankocr/internal/platform/config"
	"bankocr/internal/platform/net/middleware"
)

// CommonStack is the middleware every API route runs behind
// CORE_API_CORS_ORIGINS, CORE_API_TIMEOUT and CORE_API_SLOW tune it.
// CORE_API_THROTTLE caps in-flight requests (0 is unlimited) with
// CORE_API_THROTTLE_BACKLOG waiting up to CORE_API_THROTTLE_WAIT.
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	c := cfg.Prefix("CORE_API_")
	stack := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),
		middleware.AccessLog(middleware.AccessLogOptions{Slow: c.MayDuration("SLOW", 500*time.Millisecond)}),
		middleware.RecoverJSON,
	}
	if limit := c.MayInt("THROTTLE", 0); limit > 0 {
		backlog := max(c.MayInt("THROTTLE_BACKLOG", limit), 0)
		stack = append(stack, middleware.Throttle(limit, backlog, c.MayDuration("THROTTLE_WAIT", 5*time.Second)))
	}
	return append(stack,
		middleware.NoCache(),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: c.MayCSV("CORS_ORIGINS", nil)}),
		middleware.AllowContentType("application/json"),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(c.MayDuration("TIMEOUT", 30*time.Second)),
	)
}
