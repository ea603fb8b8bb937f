// Package api implements the HTTP client for the filebox server. Commands
// travel as query parameters against a single endpoint; responses come back
// as a JSON envelope with a success flag and an optional message.
package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is the outcome of one server call. Message carries the listing text
// or the failure reason; Content carries downloaded file bytes.
type Result struct {
	Success bool
	Message string
	Content []byte
}

// response mirrors the server's JSON envelope.
type response struct {
	Success         bool   `json:"success"`
	Data            string `json:"data"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}

// Client issues commands against a filebox server.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// NewClient builds a Client for the given base URL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
	}
}

func (c *Client) do(ctx context.Context, method, command string, params url.Values,
	body io.Reader, headers map[string]string) (*response, error) {

	if params == nil {
		params = url.Values{}
	}
	params.Set("command", command)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/?"+params.Encode(), body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer resp.Body.Close()

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &r, nil
}

// Put uploads content under (user, filename). The body is base64-encoded on
// the wire so binary files survive any intermediary.
func (c *Client) Put(ctx context.Context, filename, user string, content []byte) (*Result, error) {
	encoded := base64.StdEncoding.EncodeToString(content)

	r, err := c.do(ctx, http.MethodPost, "put",
		url.Values{"filename": {filename}, "user": {user}},
		bytes.NewReader([]byte(encoded)),
		map[string]string{"Content-Transfer-Encoding": "base64"})
	if err != nil {
		return nil, err
	}
	return &Result{Success: r.Success, Message: r.Data}, nil
}

// View fetches the user's file listing.
func (c *Client) View(ctx context.Context, user string) (*Result, error) {
	r, err := c.do(ctx, http.MethodGet, "view", url.Values{"user": {user}}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Success: r.Success, Message: r.Data}, nil
}

// Get downloads a file's bytes. On success Content holds the decoded payload;
// on failure Message holds the server's reason, if any.
func (c *Client) Get(ctx context.Context, filename, user string) (*Result, error) {
	r, err := c.do(ctx, http.MethodGet, "get",
		url.Values{"filename": {filename}, "user": {user}}, nil, nil)
	if err != nil {
		return nil, err
	}

	if !r.Success {
		return &Result{Success: false, Message: r.Data}, nil
	}

	content := []byte(r.Data)
	if r.IsBase64Encoded {
		content, err = base64.StdEncoding.DecodeString(r.Data)
		if err != nil {
			return nil, fmt.Errorf("decoding content: %w", err)
		}
	}
	return &Result{Success: true, Content: content}, nil
}

// NewUser creates an account.
func (c *Client) NewUser(ctx context.Context, username, password string) (*Result, error) {
	r, err := c.do(ctx, http.MethodPost, "newuser",
		url.Values{"username": {username}, "password": {password}}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Success: r.Success, Message: r.Data}, nil
}

// Login checks the credentials against the server.
func (c *Client) Login(ctx context.Context, username, password string) (*Result, error) {
	r, err := c.do(ctx, http.MethodGet, "login",
		url.Values{"username": {username}, "password": {password}}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Success: r.Success, Message: r.Data}, nil
}

// Share grants to read access to from's file.
func (c *Client) Share(ctx context.Context, from, to, filename string) (*Result, error) {
	r, err := c.do(ctx, http.MethodPost, "share",
		url.Values{"share_from": {from}, "share_to": {to}, "filename": {filename}}, nil, nil)
	if err != nil {
		return nil, err
	}
	return &Result{Success: r.Success, Message: r.Data}, nil
}
