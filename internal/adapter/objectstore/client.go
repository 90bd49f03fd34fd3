// Package objectstore is an HTTP client for the document object store
// (a Supabase-Storage compatible API).
package objectstore

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/crm-backend/internal/config"
	"github.com/heartmarshall/crm-backend/internal/domain"
)

// Client uploads, signs and deletes objects in one bucket.
type Client struct {
	http   *resty.Client
	base   string
	bucket string
}

// New creates a client from config.
func New(cfg config.StorageConfig) *Client {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Second).
		SetHeader("Accept", "application/json")

	if cfg.ServiceKey != "" {
		httpClient.SetAuthToken(cfg.ServiceKey).
			SetHeader("apikey", cfg.ServiceKey)
	}

	return &Client{
		http:   httpClient,
		base:   cfg.BaseURL,
		bucket: cfg.Bucket,
	}
}

type signRequest struct {
	ExpiresIn int `json:"expiresIn"`
}

type signResponse struct {
	SignedURL string `json:"signedURL"`
}

type errorResponse struct {
	StatusCode string `json:"statusCode"`
	Error      string `json:"error"`
	Message    string `json:"message"`
}

// Upload stores data at path. Existing objects are not overwritten.
func (c *Client) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetHeader("x-upsert", "false").
		SetBody(data).
		SetError(&apiErr).
		Post(c.objectPath(path))
	if err != nil {
		return fmt.Errorf("objectstore upload %s: %w", path, err)
	}
	if resp.IsError() {
		return statusError("upload", path, resp.StatusCode(), apiErr)
	}
	return nil
}

// SignedURL returns an absolute URL granting read access to path for ttl.
func (c *Client) SignedURL(ctx context.Context, path string, ttl time.Duration) (string, error) {
	var (
		out    signResponse
		apiErr errorResponse
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(signRequest{ExpiresIn: int(ttl.Seconds())}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/object/sign/" + c.bucket + "/" + escapePath(path))
	if err != nil {
		return "", fmt.Errorf("objectstore sign %s: %w", path, err)
	}
	if resp.IsError() {
		return "", statusError("sign", path, resp.StatusCode(), apiErr)
	}
	if out.SignedURL == "" {
		return "", fmt.Errorf("objectstore sign %s: empty signed url", path)
	}
	if strings.HasPrefix(out.SignedURL, "http://") || strings.HasPrefix(out.SignedURL, "https://") {
		return out.SignedURL, nil
	}
	return c.base + "/" + strings.TrimPrefix(out.SignedURL, "/"), nil
}

// Delete removes the object at path.
func (c *Client) Delete(ctx context.Context, path string) error {
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&apiErr).
		Delete(c.objectPath(path))
	if err != nil {
		return fmt.Errorf("objectstore delete %s: %w", path, err)
	}
	if resp.IsError() {
		return statusError("delete", path, resp.StatusCode(), apiErr)
	}
	return nil
}

func (c *Client) objectPath(path string) string {
	return "/object/" + c.bucket + "/" + escapePath(path)
}

// escapePath escapes each segment of an object key, keeping the separators.
func escapePath(path string) string {
	segments := strings.Split(strings.TrimPrefix(path, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

func statusError(op, path string, status int, apiErr errorResponse) error {
	msg := apiErr.Message
	if msg == "" {
		msg = apiErr.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch status {
	case http.StatusNotFound:
		return fmt.Errorf("objectstore %s %s: %s: %w", op, path, msg, domain.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("objectstore %s %s: %s: %w", op, path, msg, domain.ErrAlreadyExists)
	}
	return fmt.Errorf("objectstore %s %s: status %d: %s", op, path, status, msg)
}
