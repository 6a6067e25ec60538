package http

import (
	nethttp "net/http"
	"net/http/pprof"

	"github.com/julienschmidt/httprouter"

	"github.com/preston-bernstein/rivalry-service/internal/http/handlers"
	"github.com/preston-bernstein/rivalry-service/internal/web"
)

const pprofPrefix = "/debug/pprof"

// RouterOptions toggles the optional routes.
type RouterOptions struct {
	// Live serves the websocket channel at /ws when non-nil.
	Live nethttp.Handler
	// Profile registers net/http/pprof handlers under /debug/pprof.
	Profile bool
}

// NewRouter registers HTTP routes on an httprouter.Router.
func NewRouter(h *handlers.Handler, opts RouterOptions) nethttp.Handler {
	mux := httprouter.New()
	mux.PanicHandler = h.Panic
	mux.NotFound = nethttp.HandlerFunc(h.NotFound)
	mux.MethodNotAllowed = nethttp.HandlerFunc(h.MethodNotAllowed)

	mux.HandlerFunc(nethttp.MethodGet, "/", h.Page)
	mux.HandlerFunc(nethttp.MethodGet, "/data/rivalry.json", h.Data)

	mux.HandlerFunc(nethttp.MethodGet, "/api/rivalry", h.Rivalry)
	mux.HandlerFunc(nethttp.MethodGet, "/api/excuses/current", h.CurrentExcuse)
	mux.HandlerFunc(nethttp.MethodPost, "/api/excuses/next", h.NextExcuse)
	mux.HandlerFunc(nethttp.MethodGet, "/api/excuses/share", h.Share)
	mux.HandlerFunc(nethttp.MethodGet, "/api/excuses/share.png", h.ShareQR)

	mux.HandlerFunc(nethttp.MethodGet, "/health", h.Health)
	mux.HandlerFunc(nethttp.MethodGet, "/ready", h.Ready)
	mux.HandlerFunc(nethttp.MethodGet, "/version", h.Version)
	mux.HandlerFunc(nethttp.MethodGet, "/robots.txt", h.Robots)

	mux.ServeFiles("/assets/*filepath", nethttp.FS(web.Assets()))

	if opts.Live != nil {
		mux.Handler(nethttp.MethodGet, "/ws", opts.Live)
	}
	if opts.Profile {
		registerProfileHandlers(mux)
	}
	return mux
}

func registerProfileHandlers(mux *httprouter.Router) {
	for _, name := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handler(nethttp.MethodGet, pprofPrefix+"/"+name, pprof.Handler(name))
	}
	mux.HandlerFunc(nethttp.MethodGet, pprofPrefix+"/", pprof.Index)
	mux.HandlerFunc(nethttp.MethodGet, pprofPrefix+"/cmdline", pprof.Cmdline)
	mux.HandlerFunc(nethttp.MethodGet, pprofPrefix+"/profile", pprof.Profile)
	mux.HandlerFunc(nethttp.MethodGet, pprofPrefix+"/symbol", pprof.Symbol)
	mux.HandlerFunc(nethttp.MethodGet, pprofPrefix+"/trace", pprof.Trace)
}
