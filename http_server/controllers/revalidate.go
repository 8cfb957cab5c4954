package controllers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"portfolio0/constants"
	"portfolio0/pagecache"
)

type RevalidateHTTPController interface {
	Revalidate(w http.ResponseWriter, r *http.Request)
	RevalidateAll(w http.ResponseWriter, r *http.Request)
}

type revalidateHTTPController struct {
	logger *log.Logger
	cache  *pagecache.PageCache
	secret string
}

type revalidateRequestBody struct {
	Path string `json:"path,omitempty"`
	Tag  string `json:"tag,omitempty"`
}

type revalidateResponseBody struct {
	Revalidated bool   `json:"revalidated"`
	Type        string `json:"type,omitempty"`
	Path        string `json:"path,omitempty"`
	Tag         string `json:"tag,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

func NewRevalidateHTTPController(logger *log.Logger, cache *pagecache.PageCache, secret string) RevalidateHTTPController {
	return &revalidateHTTPController{
		logger: logger,
		cache:  cache,
		secret: secret,
	}
}

// Revalidate drops cached content named by the request body. A tag wins over
// a path, and an empty body falls back to the default page set.
func (controller *revalidateHTTPController) Revalidate(w http.ResponseWriter, r *http.Request) {
	if !controller.authorized(r.Header.Get(constants.RevalidationSecretHeader)) {
		controller.sendError(w, http.StatusUnauthorized, "invalid revalidation secret")
		return
	}

	body := revalidateRequestBody{}
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil && err != io.EOF {
			controller.sendError(w, http.StatusBadRequest, "request body is not valid json")
			return
		}
	}

	response := revalidateResponseBody{
		Revalidated: true,
		Timestamp:   time.Now().UnixMilli(),
	}

	switch {
	case body.Tag != "":
		controller.cache.InvalidateTag(body.Tag)
		response.Type = "tag"
		response.Tag = body.Tag
	case body.Path != "":
		controller.invalidatePagePath(body.Path)
		response.Type = "path"
		response.Path = body.Path
	default:
		for _, path := range constants.DefaultRevalidationPaths {
			controller.invalidatePagePath(path)
		}
		response.Type = "default"
	}

	controller.sendResponse(w, http.StatusOK, response)
}

// RevalidateAll drops the whole cache. The secret travels as a query
// parameter so build hooks can call it with a bare GET.
func (controller *revalidateHTTPController) RevalidateAll(w http.ResponseWriter, r *http.Request) {
	if !controller.authorized(r.URL.Query().Get("secret")) {
		controller.sendError(w, http.StatusUnauthorized, "invalid revalidation secret")
		return
	}

	controller.cache.InvalidateAll()

	controller.sendResponse(w, http.StatusOK, revalidateResponseBody{
		Revalidated: true,
		Timestamp:   time.Now().UnixMilli(),
	})
}

func (controller *revalidateHTTPController) authorized(provided string) bool {
	return controller.secret != "" && provided == controller.secret
}

// invalidatePagePath maps a site page path to the cached API responses that
// feed it. The home page aggregates every section, so "/" clears the cache.
func (controller *revalidateHTTPController) invalidatePagePath(path string) {
	if path == "/" {
		controller.cache.InvalidateAll()
		return
	}
	controller.cache.InvalidatePath(constants.APIBasePath + path)
}

func (controller *revalidateHTTPController) sendResponse(w http.ResponseWriter, status int, response revalidateResponseBody) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		controller.logger.Println("failed to write revalidation response:", err)
	}
}

func (controller *revalidateHTTPController) sendError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": message}); err != nil {
		controller.logger.Println("failed to write revalidation error:", err)
	}
}
