package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	appdraws "github.com/preston-bernstein/team-draw-service/internal/app/draws"
	"github.com/preston-bernstein/team-draw-service/internal/http/handlers"
	"github.com/preston-bernstein/team-draw-service/internal/testutil"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	playerSvc := testutil.NewPlayersService(testutil.SampleRoster(4), nil)
	drawSvc := appdraws.NewService(appdraws.Config{Resolver: playerSvc})
	h := handlers.NewHandler(playerSvc, drawSvc, nil, nil)
	return NewRouter(h, handlers.NewAdminHandler("secret", nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/players", http.StatusOK},
		{http.MethodGet, "/players/p01", http.StatusOK},
		{http.MethodGet, "/players/missing", http.StatusNotFound},
		{http.MethodGet, "/draws/latest", http.StatusNotFound},
		{http.MethodGet, "/draws/abc", http.StatusNotFound},
		{http.MethodGet, "/draws/abc/export", http.StatusNotFound},
	}

	for _, tc := range cases {
		rr := testutil.Serve(router, tc.method, tc.path, nil)
		if rr.Code != tc.want {
			t.Fatalf("%s %s expected status %d, got %d", tc.method, tc.path, tc.want, rr.Code)
		}
	}
}

func TestRouterDrawFlow(t *testing.T) {
	router := newTestRouter(t)

	rr := testutil.ServeRequest(router, testutil.JSONRequest(t, http.MethodPost, "/draws", map[string]any{
		"roster": "Player 00\nPlayer 01\nPlayer 02\nPlayer 03",
	}))
	testutil.AssertStatus(t, rr, http.StatusCreated)
	loc := rr.Header().Get("Location")
	if loc == "" {
		t.Fatalf("expected Location header")
	}

	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, loc, nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, loc+"/export", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/draws/latest", nil), http.StatusOK)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodPost, "/draws/redraw", nil), http.StatusCreated)
	testutil.AssertStatus(t, testutil.Serve(router, http.MethodGet, "/draws", nil), http.StatusOK)
}

func TestRouterGuardsRegistryMutations(t *testing.T) {
	router := newTestRouter(t)
	body := map[string]any{"name": "Nova", "position": "FORWARD", "level": 4}

	rr := testutil.ServeRequest(router, testutil.JSONRequest(t, http.MethodPost, "/players", body))
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)

	req := testutil.JSONRequest(t, http.MethodPost, "/players", body)
	req.Header.Set("Authorization", "Bearer secret")
	testutil.AssertStatus(t, testutil.ServeRequest(router, req), http.StatusCreated)

	req = httptest.NewRequest(http.MethodDelete, "/players/p00", nil)
	testutil.AssertStatus(t, testutil.ServeRequest(router, req), http.StatusUnauthorized)
	req.Header.Set("Authorization", "Bearer secret")
	testutil.AssertStatus(t, testutil.ServeRequest(router, req), http.StatusNoContent)
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t), http.MethodGet, "/does-not-exist", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
	if rr.Header().Get("Content-Type") != "application/json" {
		t.Fatalf("expected json 404 body")
	}
}

func TestRouterWrongMethodReturns405(t *testing.T) {
	rr := testutil.Serve(newTestRouter(t), http.MethodDelete, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
