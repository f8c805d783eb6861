package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func header(name string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
			w.Header().Set(name, "1")
			next.ServeHTTP(w, r)
		})
	}
}

func write(body string) Handler {
	return func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { _, _ = w.Write([]byte(body)) }
}

func TestAdaptChi_Routing(t *testing.T) {
	r := AdaptChi(chi.NewRouter())
	r.Use(header("X-Root"))
	r.Get("/root", write("root"))
	r.Group(func(g Router) {
		g.Use(header("X-Group"))
		g.Post("/g", write("g"))
	})
	r.Route("/api", func(api Router) {
		api.Use(header("X-Api"))
		api.Route("/v1", func(v1 Router) {
			v1.Get("/batches/{id}", func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
				_, _ = w.Write([]byte(Param(req, "id")))
			})
			v1.Head("/h", func(w stdhttp.ResponseWriter, _ *stdhttp.Request) { w.Header().Set("X-Head", "1") })
		})
		api.Handle("/std", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
			_, _ = w.Write([]byte("std"))
		}))
		if api.Mux() == nil {
			t.Fatalf("sub router Mux() is nil")
		}
	})

	cases := []struct {
		method, path, body string
		headers            []string
	}{
		{stdhttp.MethodGet, "/root", "root", []string{"X-Root"}},
		{stdhttp.MethodPost, "/g", "g", []string{"X-Root", "X-Group"}},
		{stdhttp.MethodGet, "/api/v1/batches/b-7", "b-7", []string{"X-Root", "X-Api"}},
		{stdhttp.MethodHead, "/api/v1/h", "", []string{"X-Head"}},
		{stdhttp.MethodGet, "/api/std", "std", []string{"X-Api"}},
	}
	for _, c := range cases {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(c.method, c.path, nil))
		if rr.Code != 200 || rr.Body.String() != c.body {
			t.Fatalf("%s %s => %d %q", c.method, c.path, rr.Code, rr.Body.String())
		}
		for _, h := range c.headers {
			if rr.Header().Get(h) != "1" {
				t.Fatalf("%s %s missing %s", c.method, c.path, h)
			}
		}
	}

	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(stdhttp.MethodGet, "/g", nil))
	if rr.Code != stdhttp.StatusMethodNotAllowed {
		t.Fatalf("GET on a POST route => %d", rr.Code)
	}
}
