// Package http translates the wire protocol into cache operations:
// GET /{key}, PUT /{key}/{value}, DELETE /{key}, HEAD / (Space-Used
// header), POST /reset. Unmatched targets are malformed (400), except
// POST where an unknown target is 404; unsupported methods are 400.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/InternetUnexplorer/CSCI-389-HW6/internal/cache"
	ilog "github.com/InternetUnexplorer/CSCI-389-HW6/internal/log"
)

// NewRouter builds the data-plane handler over c. l may be nil to
// disable access logging.
func NewRouter(c *cache.Cache, l ilog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestIDMiddleware())
	r.Use(RecoverMiddleware())
	r.Use(AccessLog(l))

	h := &cacheHandler{c: c}
	h.mount(r)

	// A target that matched no route is a malformed request, not a
	// missing resource, except for POST where only /reset exists.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	return r
}

// NewAdminRouter builds the admin-plane handler (health and metrics).
// It listens on its own port so /metrics can never shadow a cache key
// on the data plane.
func NewAdminRouter(g prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
