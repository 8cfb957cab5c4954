package middlewares

import (
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"portfolio0/pagecache"
)

func Test_CacheMiddleware_ServesSecondRequestFromCache(t *testing.T) {
	logger := log.New(os.Stderr, "[http-server] ", log.LstdFlags)
	cache := pagecache.NewPageCache(hclog.NewNullLogger(), time.Minute)
	middleware := NewMiddlewareHandler(logger)

	hits := 0
	handler := middleware.CacheMiddleware(cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":[],"success":true}`))
	}))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, `{"data":[],"success":true}`, w.Body.String())
	}

	assert.Equal(t, 1, hits)
	assert.Equal(t, 1, cache.Len())
}

func Test_CacheMiddleware_QueryVariantsCacheSeparately(t *testing.T) {
	logger := log.New(os.Stderr, "[http-server] ", log.LstdFlags)
	cache := pagecache.NewPageCache(hclog.NewNullLogger(), time.Minute)
	middleware := NewMiddlewareHandler(logger)

	handler := middleware.CacheMiddleware(cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.RawQuery))
	}))

	for _, target := range []string{"/api/projects", "/api/projects?featured=true"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	assert.Equal(t, 2, cache.Len())
}

func Test_CacheMiddleware_SkipsNonContentRoutes(t *testing.T) {
	logger := log.New(os.Stderr, "[http-server] ", log.LstdFlags)
	cache := pagecache.NewPageCache(hclog.NewNullLogger(), time.Minute)
	middleware := NewMiddlewareHandler(logger)

	handler := middleware.CacheMiddleware(cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	for _, target := range []string{"/healthcheck", "/api/revalidate"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	assert.Equal(t, 0, cache.Len())
}

func Test_CacheMiddleware_SkipsErrorResponses(t *testing.T) {
	logger := log.New(os.Stderr, "[http-server] ", log.LstdFlags)
	cache := pagecache.NewPageCache(hclog.NewNullLogger(), time.Minute)
	middleware := NewMiddlewareHandler(logger)

	handler := middleware.CacheMiddleware(cache)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/projects/missing", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, 0, cache.Len())
}
