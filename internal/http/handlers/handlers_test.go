package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/soccer-data-service/internal/domain/players"
	"github.com/preston-bernstein/soccer-data-service/internal/metrics"
	"github.com/preston-bernstein/soccer-data-service/internal/testutil"
)

// newRouted mounts the handler on the same patterns the API router uses.
func newRouted(t *testing.T, rec *metrics.Recorder) (http.Handler, *Handler) {
	t.Helper()
	h := NewHandler(testutil.NewServiceWithPlayers(testutil.SamplePlayers(t)), nil, rec)
	h.now = testutil.NowAt(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))

	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Get("/api", h.Players)
	r.Get("/api/player/{"+ParamName+"}", h.PlayerByName)
	r.Get("/api/country/{"+ParamCountry+"}", h.PlayersByCountry)
	r.Get("/api/club/{"+ParamClub+"}", h.PlayersByClub)
	r.Get("/api/attributes", h.Attributes)
	r.Get("/api/names", h.Names)
	return r, h
}

func TestHealth(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	_, h := newRouted(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestReadyReportsPlayerCount(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ready" || resp["players"] != float64(4) {
		t.Fatalf("unexpected ready payload %v", resp)
	}
}

func TestReadyWithoutServiceIsUnavailable(t *testing.T) {
	h := NewHandler(nil, nil, nil)
	rr := testutil.Serve(http.HandlerFunc(h.Ready), http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestPlayersReturnsDatasetInOrder(t *testing.T) {
	rec := metrics.NewRecorder()
	router, _ := newRouted(t, rec)

	rr := testutil.Serve(router, http.MethodGet, "/api", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []players.Player
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp) != 4 {
		t.Fatalf("expected 4 players, got %d", len(resp))
	}
	if resp[0].Name != "Lionel Messi" || resp[3].Name != "Kevin De Bruyne" {
		t.Fatalf("unexpected order: %s ... %s", resp[0].Name, resp[3].Name)
	}
	if rec.QueryCalls(metrics.OpAll) != 1 {
		t.Fatalf("expected query recorded")
	}
}

func TestPlayerByNameCaseInsensitive(t *testing.T) {
	router, _ := newRouted(t, nil)

	for _, path := range []string{"/api/player/neymar", "/api/player/NEYMAR", "/api/player/Neymar"} {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)

		var p players.Player
		testutil.DecodeJSON(t, rr, &p)
		if p.Name != "Neymar" || p.Club != "FC Barcelona" {
			t.Fatalf("%s: unexpected player %+v", path, p)
		}
	}
}

func TestPlayerByNamePercentDecoded(t *testing.T) {
	router, _ := newRouted(t, nil)

	cases := []string{
		"/api/player/Lionel%20Messi",
		"/api/player/sergio%20ag%C3%BCero",
		"/api/player/Kevin%20De%20Bruyne",
	}
	for _, path := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
	}
}

func TestPlayerByNameReturnsSourceAttributes(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/player/Lionel%20Messi", nil)
	want := `{"Name":"Lionel Messi","Nationality":"Argentina","Club":"FC Barcelona","Age":29,"Preffered_Position":"RW"}` + "\n"
	if got := rr.Body.String(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestPlayerByNameNotFound(t *testing.T) {
	rec := metrics.NewRecorder()
	router, _ := newRouted(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/player/Ronaldo", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr := testutil.ServeRequest(router, req)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "player not found" || resp["requestId"] != "req-1" {
		t.Fatalf("unexpected error body %v", resp)
	}
	if rec.QueryMisses(metrics.OpByName) != 1 {
		t.Fatalf("expected miss recorded")
	}
}

func TestPlayerByNameBlankIsBadRequest(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/player/%20%20", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestPlayersByCountry(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/country/argentina", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []players.Player
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp) != 2 || resp[0].Name != "Lionel Messi" || resp[1].Name != "Sergio Agüero" {
		t.Fatalf("unexpected players %+v", resp)
	}
}

func TestPlayersByClubWithEscapedSlash(t *testing.T) {
	items := append(testutil.SamplePlayers(t), players.New("Test Player", "Nowhere", "AC/DC United", nil))
	h := NewHandler(testutil.NewServiceWithPlayers(items), nil, nil)
	r := chi.NewRouter()
	r.Get("/api/club/{"+ParamClub+"}", h.PlayersByClub)

	rr := testutil.Serve(r, http.MethodGet, "/api/club/ac%2Fdc%20united", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp []players.Player
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp) != 1 || resp[0].Name != "Test Player" {
		t.Fatalf("expected club with slash to match, got %+v", resp)
	}
}

func TestPlayersByClubNoMatchReturnsEmptyArray(t *testing.T) {
	rec := metrics.NewRecorder()
	router, _ := newRouted(t, rec)

	rr := testutil.Serve(router, http.MethodGet, "/api/club/Nowhere%20FC", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
	if rec.QueryMisses(metrics.OpByClub) != 1 {
		t.Fatalf("expected miss recorded")
	}
}

func TestPlayersByCountryNoMatchReturnsEmptyArray(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/country/Atlantis", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestAttributes(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/attributes", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	want := `["Name","Nationality","Club","Age","Preffered_Position"]` + "\n"
	if got := rr.Body.String(); got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNames(t *testing.T) {
	router, _ := newRouted(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/names", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var names []string
	testutil.DecodeJSON(t, rr, &names)
	if len(names) != 4 || names[1] != "Neymar" {
		t.Fatalf("unexpected names %v", names)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	_, h := newRouted(t, nil)

	rr := testutil.Serve(http.HandlerFunc(h.NotFound), http.MethodGet, "/missing", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(http.HandlerFunc(h.MethodNotAllowed), http.MethodDelete, "/api", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestPathParamDecoding(t *testing.T) {
	cases := []struct {
		target string
		value  string
		want   string
		ok     bool
	}{
		{"/api/player/Neymar", "Neymar", "Neymar", true},
		{"/api/club/ac%2Fdc", "ac%2Fdc", "ac/dc", true},
		{"/api/club/%2F%zz", "%2F%zz", "", false},
		{"/api/player/x", "   ", "", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if u, err := req.URL.Parse(tc.target); err == nil {
			req.URL = u
		} else {
			req.URL.Path = tc.target
			req.URL.RawPath = tc.target
		}
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("v", tc.value)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

		got, ok := pathParam(req, "v")
		if ok != tc.ok || got != tc.want {
			t.Fatalf("%s: expected (%q,%v), got (%q,%v)", tc.target, tc.want, tc.ok, got, ok)
		}
	}
}

func BenchmarkPlayersHandler(b *testing.B) {
	h := NewHandler(testutil.NewServiceWithPlayers(testutil.SamplePlayers(b)), nil, nil)
	handler := http.HandlerFunc(h.Players)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api", nil))
	}
}
