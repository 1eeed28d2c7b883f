package httpclient

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// TransportError is the single failure kind this layer reports: the request
// could not be sent, the server answered an error status, or the body was not
// valid JSON.
type TransportError struct {
	Op         string
	StatusCode int
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type HttpClient struct {
	client  *http.Client
	baseUrl string
	headers http.Header
}

func NewHttpClient(baseUrl string) *HttpClient {
	return &HttpClient{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseUrl: baseUrl,
		headers: make(http.Header),
	}
}

func (c *HttpClient) SetHeaders(headers http.Header) {
	c.headers = headers
}

func (c *HttpClient) Get(url string, data any) error {
	return c.do("GET", url, data)
}

func (c *HttpClient) Post(url string, data any) error {
	return c.do("POST", url, data)
}

func (c *HttpClient) do(method string, path string, data any) error {
	curl, err := url.Parse(c.baseUrl + path)
	if err != nil {
		slog.Error("[HttpClient] Failed to parse url", "error", err)
		return &TransportError{Op: method + " " + path, Err: err}
	}
	req := &http.Request{
		Method: method,
		URL:    curl,
		Header: c.headers,
	}
	resp, err := c.client.Do(req)
	if err != nil {
		slog.Error("[HttpClient] Failed to send request", "error", err)
		return &TransportError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return &TransportError{Op: method + " " + path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if data == nil {
		return nil
	}
	if err := c.readJson(resp.Body, data); err != nil {
		return &TransportError{Op: method + " " + path, Err: err}
	}
	return nil
}

func (c *HttpClient) readJson(r io.Reader, data any) error {
	body, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, data)
}
