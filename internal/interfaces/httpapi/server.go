package httpapi

import (
	"net/http"
	"time"

	"github.com/janssensmaxim13-arch/pro-invest-x-sub000/internal/platform/logging"
)

// RouterOptions carries the HTTP-facing settings of the service.
type RouterOptions struct {
	SwaggerEnabled     bool
	CORSAllowedOrigins []string
	RateLimitRequests  int
	RateLimitWindow    time.Duration
	TrustProxyHeaders  bool
}

func NewRouter(handler *Handler, logger *logging.Logger, opts RouterOptions) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerCatalogRoutes(mux, handler)
	registerMarketRoutes(mux, handler)
	registerWatchlistRoutes(mux, handler)

	clients := ClientResolver{TrustProxyHeaders: opts.TrustProxyHeaders}
	limited := RateLimit(opts.RateLimitRequests, opts.RateLimitWindow, clients, recoverPanic(logger, mux))
	return RequestTracing(RequestLogging(logger, clients, CORS(opts.CORSAllowedOrigins, limited)))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
