package middlewares

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/segmentio/ksuid"

	"portfolio0/constants"
	"portfolio0/pagecache"
)

const (
	RequestID = iota + 1
)

type middlewareHandler struct {
	logger *log.Logger
}

type MiddlewareHandler interface {
	ContextMiddleware(next http.Handler) http.Handler
	CacheMiddleware(cache *pagecache.PageCache) func(next http.Handler) http.Handler
}

func NewMiddlewareHandler(logger *log.Logger) MiddlewareHandler {
	return &middlewareHandler{
		logger: logger,
	}
}

// ContextMiddleware stamps each request with a ksuid id
func (m *middlewareHandler) ContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := ksuid.New().String()
		ctx := r.Context()
		ctx = context.WithValue(ctx, RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CacheMiddleware serves content GETs from the page cache and fills it on a
// miss. Entries are tagged with their content section so the revalidation
// endpoint can drop them by tag.
func (m *middlewareHandler) CacheMiddleware(cache *pagecache.PageCache) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, cacheable := cacheTagForRequest(r)
			if !cacheable {
				next.ServeHTTP(w, r)
				return
			}

			key := r.URL.RequestURI()

			if body, contentType, ok := cache.Get(key); ok {
				w.Header().Set("Content-Type", contentType)
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				if _, err := w.Write(body); err != nil {
					m.logger.Println("failed to write cached response:", err)
				}
				return
			}

			recorder := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			if recorder.status == http.StatusOK {
				cache.Set(key, []string{tag}, recorder.Header().Get("Content-Type"), recorder.body.Bytes())
			}
		})
	}
}

// cacheTagForRequest reports whether the request is a cacheable content read
// and, if so, which section tag its entry carries.
func cacheTagForRequest(r *http.Request) (string, bool) {
	if r.Method != http.MethodGet {
		return "", false
	}

	path := strings.TrimPrefix(r.URL.Path, constants.APIBasePath+"/")
	if path == r.URL.Path {
		return "", false
	}

	section := strings.SplitN(path, "/", 2)[0]
	switch section {
	case "about", "projects", "blog", "skills", "contact":
		return section, true
	}

	return "", false
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (recorder *responseRecorder) WriteHeader(status int) {
	recorder.status = status
	recorder.ResponseWriter.WriteHeader(status)
}

func (recorder *responseRecorder) Write(data []byte) (int, error) {
	recorder.body.Write(data)
	return recorder.ResponseWriter.Write(data)
}
