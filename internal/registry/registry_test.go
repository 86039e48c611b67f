package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/namelens/namelens/internal/cache"
	"github.com/namelens/namelens/internal/model"
)

func testClient(store cache.Cache) *Client {
	cfg := model.HTTPConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "NameLens-test/0.0",
		MaxBodyBytes: 1_000_000,
	}
	return NewClient(cfg, store, time.Minute, nil)
}

func query(value string) model.CheckQuery {
	return model.CheckQuery{CandidateMark: value, Value: value}
}

func TestNPMChecker_Taken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tool" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"name":"tool","description":"a tool"}`))
	}))
	defer srv.Close()

	checker := NewNPMChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if len(checks) != 1 {
		t.Fatalf("got %d checks, want 1", len(checks))
	}
	c := checks[0]
	if c.Status != model.StatusTaken {
		t.Errorf("status = %q, want taken", c.Status)
	}
	if c.Authority != model.AuthorityAuthoritative {
		t.Errorf("authority = %q, want authoritative", c.Authority)
	}
	if c.EvidenceRef == "" {
		t.Error("evidence ref missing")
	}
}

func TestNPMChecker_Available(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	checker := NewNPMChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("definitely-unused-name"))
	if checks[0].Status != model.StatusAvailable {
		t.Errorf("status = %q, want available", checks[0].Status)
	}
}

func TestNPMChecker_ServerErrorIsUnknown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	checker := NewNPMChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if checks[0].Status != model.StatusUnknown {
		t.Errorf("status = %q, want unknown on 500", checks[0].Status)
	}
	if checks[0].Details == "" {
		t.Error("unknown check should say why")
	}
}

func TestPyPIChecker_Paths(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pypi/tool/json" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"info":{"name":"tool","summary":"cli"}}`))
	}))
	defer srv.Close()

	checker := NewPyPIChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if checks[0].Status != model.StatusTaken {
		t.Errorf("status = %q, want taken", checks[0].Status)
	}
}

func TestGitHubChecker_ExactMatchOnly(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total_count":2,"items":[
			{"name":"tool-extras","full_name":"a/tool-extras","html_url":"https://github.com/a/tool-extras"},
			{"name":"Tool","full_name":"b/Tool","html_url":"https://github.com/b/Tool"}
		]}`))
	}))
	defer srv.Close()

	checker := NewGitHubChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if checks[0].Status != model.StatusTaken {
		t.Errorf("status = %q, want taken for case-insensitive exact match", checks[0].Status)
	}

	checks = checker.Check(context.Background(), query("toolbox"))
	if checks[0].Status != model.StatusAvailable {
		t.Errorf("status = %q, want available without an exact match", checks[0].Status)
	}
}

func TestDomainChecker_PerTLD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/domain/tool.com" {
			w.Write([]byte(`{"ldhName":"tool.com"}`))
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	checker := NewDomainChecker(testClient(nil), []string{"com", "dev"})
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if len(checks) != 2 {
		t.Fatalf("got %d checks, want one per TLD", len(checks))
	}
	if checks[0].Query.Value != "tool.com" || checks[0].Status != model.StatusTaken {
		t.Errorf("com check = %q/%q", checks[0].Query.Value, checks[0].Status)
	}
	if checks[1].Query.Value != "tool.dev" || checks[1].Status != model.StatusAvailable {
		t.Errorf("dev check = %q/%q", checks[1].Query.Value, checks[1].Status)
	}
}

func TestDockerHubChecker_FallsBackToSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v2/repositories/library/tool/":
			http.NotFound(w, r)
		case "/v2/search/repositories/":
			w.Write([]byte(`{"results":[{"repo_name":"someuser/tool"}]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	checker := NewDockerHubChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if checks[0].Status != model.StatusTaken {
		t.Errorf("status = %q, want taken via search fallback", checks[0].Status)
	}
}

func TestHuggingFaceChecker_MatchesRepoPart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":"acme/tool"},{"id":"acme/tool-base"}]`))
	}))
	defer srv.Close()

	checker := NewHuggingFaceChecker(testClient(nil))
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("tool"))
	if checks[0].Status != model.StatusTaken {
		t.Errorf("status = %q, want taken for owner-scoped exact match", checks[0].Status)
	}
}

func TestWebChecker_SimilarTitlesBecomeIndicativeChecks(t *testing.T) {
	page := `<html><body>
		<a class="result__a" href="#">fastcache</a>
		<a class="result__a" href="#">totally unrelated page about gardening</a>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	checker := NewWebChecker(testClient(nil), nil)
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("fastcache"))
	if len(checks) != 1 {
		t.Fatalf("got %d checks, want 1 similar hit", len(checks))
	}
	c := checks[0]
	if c.Status != model.StatusTaken || c.Authority != model.AuthorityIndicative {
		t.Errorf("check = %q/%q, want taken/indicative", c.Status, c.Authority)
	}
	if c.Similarity == nil || c.Similarity.Overall < 0.70 {
		t.Errorf("similarity missing or below threshold: %+v", c.Similarity)
	}
}

func TestWebChecker_NoHitsIsIndicativeAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><a class="result__a" href="#">gardening weekly</a></body></html>`))
	}))
	defer srv.Close()

	checker := NewWebChecker(testClient(nil), nil)
	checker.baseURL = srv.URL

	checks := checker.Check(context.Background(), query("zxqvnt"))
	if len(checks) != 1 || checks[0].Status != model.StatusAvailable {
		t.Errorf("checks = %+v, want single indicative available", checks)
	}
}

func TestClient_CachesDefinitiveResponses(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"name":"tool"}`))
	}))
	defer srv.Close()

	store := cache.NewMemoryCache(time.Minute, time.Minute)
	client := testClient(store)

	for i := 0; i < 3; i++ {
		status, _, err := client.Get(context.Background(), "npm", srv.URL+"/tool")
		if err != nil || status != 200 {
			t.Fatalf("get: status %d err %v", status, err)
		}
	}

	if atomic.LoadInt32(&hits) != 1 {
		t.Errorf("server saw %d requests, want 1 with caching", hits)
	}
}

func TestClient_DoesNotCacheServerErrors(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	store := cache.NewMemoryCache(time.Minute, time.Minute)
	client := testClient(store)

	for i := 0; i < 2; i++ {
		if _, _, err := client.Get(context.Background(), "npm", srv.URL+"/tool"); err != nil {
			t.Fatalf("get: %v", err)
		}
	}

	if atomic.LoadInt32(&hits) != 2 {
		t.Errorf("server saw %d requests, want 2 without caching errors", hits)
	}
}

func TestBuild_SkipsUnknownNamespaces(t *testing.T) {
	cfg := model.RegistryConfig{
		Namespaces: []string{model.NamespaceNPM, "gopher_store", model.NamespaceDomain},
		DomainTLDs: []string{"com"},
	}
	checkers := Build(testClient(nil), cfg)
	if len(checkers) != 2 {
		t.Fatalf("got %d checkers, want 2", len(checkers))
	}
	if checkers[0].Namespace() != model.NamespaceNPM || checkers[1].Namespace() != model.NamespaceDomain {
		t.Errorf("checker order = %q, %q", checkers[0].Namespace(), checkers[1].Namespace())
	}
}
