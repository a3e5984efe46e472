// Package api is the remote data client of the admin dashboard. It
// translates logical list/get/create/update/delete operations on the
// backend's resources into JSON HTTP requests and normalizes every
// failure into *models.RemoteError.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"pubquiz-admin/internal/models"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// HTTPClient is the transport used by Client. *http.Client satisfies
// it; tests substitute their own.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues JSON requests against the quiz backend. Each call is a
// single attempt: no retry and no caching. A timeout, if wanted, is
// configured on the injected http.Client.
type Client struct {
	baseURL string
	http    HTTPClient
	token   string
}

// NewClient creates a client for the backend at baseURL. A nil
// httpClient falls back to a default http.Client.
func NewClient(baseURL string, httpClient HTTPClient) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// SetToken sets the bearer token attached to subsequent requests.
// An empty string clears it.
func (c *Client) SetToken(token string) {
	c.token = token
}

// do performs one request. A non-2xx response becomes a RemoteError
// whose message is the body's detail field when present, else a generic
// "request failed with status N". Transport failures become a
// RemoteError with StatusCode zero wrapping the underlying error.
func (c *Client) do(method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &models.RemoteError{Message: fmt.Sprintf("encode request body: %v", err), Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, endpoint, reader)
	if err != nil {
		return &models.RemoteError{Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	log.WithFields(logrus.Fields{
		"method": method,
		"url":    endpoint,
	}).Debug("Issuing API request")

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).WithField("url", endpoint).Warn("API request failed at transport level")
		return &models.RemoteError{Message: err.Error(), Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.RemoteError{StatusCode: resp.StatusCode, Message: err.Error(), Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr models.APIError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Detail != "" {
			return &models.RemoteError{StatusCode: resp.StatusCode, Message: apiErr.Detail}
		}
		return &models.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("request failed with status %d", resp.StatusCode),
		}
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &models.RemoteError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response body: %v", err), Err: err}
	}
	return nil
}

func (c *Client) get(path string, query url.Values, out any) error {
	return c.do(http.MethodGet, path, query, nil, out)
}

func (c *Client) post(path string, body, out any) error {
	return c.do(http.MethodPost, path, nil, body, out)
}

func (c *Client) put(path string, body, out any) error {
	return c.do(http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(path string, out any) error {
	return c.do(http.MethodPatch, path, nil, nil, out)
}

func (c *Client) delete(path string) error {
	return c.do(http.MethodDelete, path, nil, nil, nil)
}
