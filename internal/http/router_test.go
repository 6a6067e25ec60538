package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apprivalry "github.com/preston-bernstein/rivalry-service/internal/app/rivalry"
	"github.com/preston-bernstein/rivalry-service/internal/http/handlers"
	"github.com/preston-bernstein/rivalry-service/internal/loader"
	"github.com/preston-bernstein/rivalry-service/internal/store"
	"github.com/preston-bernstein/rivalry-service/internal/testutil"
	"github.com/preston-bernstein/rivalry-service/internal/web"
)

type readySource struct{}

func (readySource) State() loader.State {
	rec := testutil.SampleRecord()
	return loader.Ready{Record: &rec}
}

func newTestRouter(t *testing.T, opts RouterOptions) http.Handler {
	t.Helper()
	pages, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	svc := apprivalry.NewService(readySource{}, store.NewSessionStore(10, 0, nil))
	h := handlers.NewHandler(svc, pages, nil, nil, handlers.Options{Version: "test"})
	return NewRouter(h, opts)
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/data/rivalry.json", http.StatusOK},
		{http.MethodGet, "/api/rivalry", http.StatusOK},
		{http.MethodGet, "/api/excuses/current", http.StatusOK},
		{http.MethodPost, "/api/excuses/next", http.StatusOK},
		{http.MethodGet, "/api/excuses/share", http.StatusOK},
		{http.MethodGet, "/api/excuses/share.png", http.StatusOK},
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/version", http.StatusOK},
		{http.MethodGet, "/robots.txt", http.StatusOK},
		{http.MethodGet, "/assets/app.css", http.StatusOK},
		{http.MethodGet, "/assets/app.js", http.StatusOK},
		{http.MethodGet, "/nope", http.StatusNotFound},
		{http.MethodGet, "/ws", http.StatusNotFound},
		{http.MethodGet, "/debug/pprof/heap", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s: expected %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter(t, RouterOptions{})
	rr := testutil.Serve(router, http.MethodGet, "/api/excuses/next", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
	if !strings.Contains(rr.Body.String(), "method not allowed") {
		t.Fatalf("expected json error body, got %s", rr.Body.String())
	}
}

func TestRouterOptionalRoutes(t *testing.T) {
	live := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router := newTestRouter(t, RouterOptions{Live: live, Profile: true})

	rr := testutil.Serve(router, http.MethodGet, "/ws", nil)
	testutil.AssertStatus(t, rr, http.StatusTeapot)

	rr = testutil.Serve(router, http.MethodGet, "/debug/pprof/heap", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestRouterRecoversPanics(t *testing.T) {
	pages, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	h := handlers.NewHandler(apprivalry.NewService(readySource{}, nil), pages, nil, nil, handlers.Options{})
	live := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })
	router := NewRouter(h, RouterOptions{Live: live})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if !strings.Contains(rr.Body.String(), "An error has occurred") {
		t.Fatalf("expected static error page, got %s", rr.Body.String())
	}
}
