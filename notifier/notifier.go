package notifier

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/hashicorp/go-hclog"

	"portfolio0/constants"
)

// Notifier tells the rendering layer's cache to drop entries after a
// mutation, and can trigger an external rebuild. Every failure mode is
// logged and reported as false; callers never see an error.
type Notifier interface {
	RevalidatePath(path string) bool
	RevalidateTag(tag string) bool
	TriggerBuild() bool
}

type httpNotifier struct {
	logger       hclog.Logger
	siteURL      string
	secret       string
	buildHookURL string
	client       *http.Client
}

type revalidateRequest struct {
	Path string `json:"path,omitempty"`
	Tag  string `json:"tag,omitempty"`
}

func NewNotifier(logger hclog.Logger, siteURL string, secret string, buildHookURL string, client *http.Client) Notifier {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &httpNotifier{
		logger:       logger.Named("notifier"),
		siteURL:      siteURL,
		secret:       secret,
		buildHookURL: buildHookURL,
		client:       client,
	}
}

// RevalidatePath invalidates the cached page at path. An empty path asks the
// server to revalidate its default set of top-level pages.
func (notifier *httpNotifier) RevalidatePath(path string) bool {
	return notifier.revalidate(revalidateRequest{Path: path})
}

// RevalidateTag invalidates every cached page carrying the tag.
func (notifier *httpNotifier) RevalidateTag(tag string) bool {
	return notifier.revalidate(revalidateRequest{Tag: tag})
}

func (notifier *httpNotifier) revalidate(reqBody revalidateRequest) bool {
	if len(notifier.secret) < 1 {
		notifier.logger.Warn("revalidation secret not set, skipping revalidation")
		return false
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		notifier.logger.Error("failed to marshal revalidation request", "error", err)
		return false
	}

	req, err := http.NewRequest(
		http.MethodPost,
		notifier.siteURL+constants.APIBasePath+"/revalidate",
		bytes.NewReader(data),
	)
	if err != nil {
		notifier.logger.Error("failed to create revalidation request", "error", err)
		return false
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add(constants.RevalidationSecretHeader, notifier.secret)

	res, err := notifier.client.Do(req)
	if err != nil {
		notifier.logger.Error("revalidation request failed", "error", err)
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		notifier.logger.Error("revalidation rejected", "status", res.StatusCode)
		return false
	}

	notifier.logger.Debug("revalidation successful", "path", reqBody.Path, "tag", reqBody.Tag)
	return true
}

// TriggerBuild sends an unparameterized POST to the configured build webhook.
func (notifier *httpNotifier) TriggerBuild() bool {
	if len(notifier.buildHookURL) < 1 {
		notifier.logger.Warn("build hook url not set, skipping build trigger")
		return false
	}

	res, err := notifier.client.Post(notifier.buildHookURL, "application/json", nil)
	if err != nil {
		notifier.logger.Error("failed to trigger build", "error", err)
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		notifier.logger.Error("build trigger rejected", "status", res.StatusCode)
		return false
	}

	return true
}
