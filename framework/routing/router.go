package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	gohttp "github.com/km-arc/microioc/framework/http"
)

// Router wraps chi.Router for the read-only diagnostics surface.
type Router struct {
	mux chi.Router
}

// New creates a Router with RequestID, RealIP and Recoverer middleware.
// Unknown paths and methods get the JSON {"message": ...} envelope.
func New() *Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		gohttp.NewResponse(w).NotFound("")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		gohttp.NewResponse(w).MethodNotAllowed(req.Method)
	})
	return &Router{mux: r}
}

// Get registers a GET handler.
func (r *Router) Get(pattern string, h http.HandlerFunc) { r.mux.Get(pattern, h) }

// Handle registers any http.Handler, e.g. promhttp.Handler().
func (r *Router) Handle(pattern string, h http.Handler) { r.mux.Handle(pattern, h) }

// Prefix creates a sub-router under a URL prefix.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Param extracts a URL param.
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ServeHTTP implements http.Handler so Router can be passed to http.Server.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
