package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"hostel-portal/app/logger"
	"hostel-portal/app/models"
)

// Credential holds the session cookies the backend set at login. The browser
// never sees them directly; the portal keeps them inside its own session token.
type Credential map[string]string

// Empty reports whether no cookie is held.
func (c Credential) Empty() bool { return len(c) == 0 }

// Client calls the hostel backend. Each method performs exactly one HTTP
// request with no retries, caching or request deduplication.
type Client struct {
	baseURL    string
	http       *http.Client
	timeout    time.Duration
	credential Credential
}

type Option func(*Client)

// WithHTTPClient replaces the transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout bounds every call. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithCredential attaches backend session cookies to every call.
func WithCredential(cred Credential) Option {
	return func(c *Client) { c.credential = cred }
}

// New creates a client for the backend rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// As returns a copy of the client that authenticates with cred.
func (c *Client) As(cred Credential) *Client {
	cp := *c
	cp.credential = cred
	return &cp
}

// Credential returns the cookies attached to calls.
func (c *Client) Credential() Credential { return c.credential }

type request struct {
	method      string
	path        string
	body        io.Reader
	contentType string
}

func jsonRequest(method, path string, payload interface{}) (request, error) {
	r := request{method: method, path: path}
	if payload == nil {
		return r, nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return r, &Error{Kind: KindValidation, Op: method + " " + path, Message: "Invalid request data.", Err: err}
	}
	r.body = bytes.NewReader(raw)
	r.contentType = "application/json"
	return r, nil
}

// call sends r and decodes a 2xx body into out (if non-nil). It returns the
// cookies the backend set on the response.
func (c *Client) call(ctx context.Context, r request, out interface{}) ([]*http.Cookie, error) {
	op := r.method + " " + r.path

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	for name, value := range c.credential {
		req.AddCookie(&http.Cookie{Name: name, Value: value})
	}

	resp, err := c.http.Do(req)
	if err != nil {
		e := &Error{Kind: KindNetwork, Op: op, Err: err}
		if isTimeout(ctx, err) {
			e.Kind = KindTimeout
		}
		logger.Warn().Str("op", op).Str("kind", e.Kind.String()).Err(err).Msg("backend call failed")
		return nil, e
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		e := &Error{Kind: KindNetwork, Op: op, Err: err}
		if isTimeout(ctx, err) {
			e.Kind = KindTimeout
		}
		return nil, e
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		e := &Error{Kind: KindServer, Op: op, Status: resp.StatusCode, Message: serverMessage(resp.Header.Get("Content-Type"), body)}
		logger.Warn().Str("op", op).Int("status", e.Status).Str("message", e.Message).Msg("backend rejected call")
		return nil, e
	}

	if out != nil {
		if err := decode(body, out); err != nil {
			return nil, &Error{Kind: KindDecode, Op: op, Err: err}
		}
	}
	return resp.Cookies(), nil
}

func decode(body []byte, out interface{}) error {
	if msg, ok := out.(*models.Message); ok {
		// Mutations answer with {"message": ...} or nothing at all; neither is a failure.
		_ = json.Unmarshal(body, msg)
		return nil
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return errors.New("empty response body")
	}
	return json.Unmarshal(body, out)
}

// serverMessage extracts {"message"} or {"error"} from an error body, or a short
// plain-text body. HTML error pages yield no message.
func serverMessage(contentType string, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	if strings.HasPrefix(contentType, "text/plain") {
		text := strings.TrimSpace(string(body))
		if len(text) <= 300 {
			return text
		}
	}
	return ""
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	_, err := c.call(ctx, request{method: http.MethodGet, path: path}, out)
	return err
}

func (c *Client) send(ctx context.Context, method, path string, payload interface{}) (models.Message, error) {
	var msg models.Message
	r, err := jsonRequest(method, path, payload)
	if err != nil {
		return msg, err
	}
	_, err = c.call(ctx, r, &msg)
	return msg, err
}

func pathID(prefix string, id int) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
