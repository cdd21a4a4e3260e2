package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a thin JSON wrapper over an *http.Client whose transport is
// expected to be an AuthTransport. All resource services go through it.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Do performs a JSON request against path (relative to the base URL) and
// decodes the response into out when out is non-nil. Error statuses are
// mapped to sentinel errors with the server's detail message attached.
func (c *Client) Do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer drainClose(resp.Body)

	if resp.StatusCode >= 400 {
		return mapStatus(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return decodeList(data, out)
}

// decodeList normalizes the backend's two list shapes: some endpoints return
// a bare JSON array, others wrap it as {"results": [...]}. Non-array payloads
// decode directly. This is the single place shape-sniffing happens.
func decodeList(data []byte, out any) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Results json.RawMessage `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err == nil && envelope.Results != nil {
			return json.Unmarshal(envelope.Results, out)
		}
	}
	return json.Unmarshal(data, out)
}

func mapStatus(resp *http.Response) error {
	detail := readDetail(resp.Body)

	var err error
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		err = ErrUnauthorized
	case http.StatusForbidden:
		err = ErrForbidden
	case http.StatusNotFound:
		err = ErrNotFound
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		err = ErrUnavailable
	default:
		if detail == "" {
			return fmt.Errorf("server returned %s", resp.Status)
		}
		return fmt.Errorf("server returned %s: %s", resp.Status, detail)
	}

	if detail == "" {
		return err
	}
	return fmt.Errorf("%w: %s", err, detail)
}

func readDetail(body io.Reader) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Detail
}
