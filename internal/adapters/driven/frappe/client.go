// Package frappe implements the ERP client port against the Frappe
// REST API that ERPNext exposes: /api/resource for document CRUD and
// /api/method for whitelisted RPC.
package frappe

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/asisaga/erpnext-mcp/internal/config"
	"github.com/asisaga/erpnext-mcp/internal/core/domain"
	"github.com/asisaga/erpnext-mcp/internal/core/ports/driven"
	"github.com/asisaga/erpnext-mcp/internal/metrics"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements the interface.
var _ driven.ERPClient = (*Client)(nil)

// Client talks to one ERPNext instance. It is safe for concurrent use;
// all mutable state lives in the underlying http.Client.
type Client struct {
	baseURL   string
	http      *http.Client
	limiter   *rate.Limiter
	log       *zap.Logger
	metrics   *metrics.Metrics
	authToken string // "key:secret" for API key auth, empty otherwise

	// session login credentials, used lazily on the first request
	mu       sync.Mutex
	username string
	password string
	loggedIn bool
}

// New builds a client from configuration. The credential style follows
// cfg.AuthMode: API key/secret, OAuth2 bearer token, or session login.
func New(cfg *config.Config, log *zap.Logger, m *metrics.Metrics) (*Client, error) {
	if cfg.AuthMode() == config.AuthNone {
		return nil, ErrNoCredentials
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	c := &Client{
		baseURL: cfg.URL,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), 1),
		log:     log,
		metrics: m,
	}

	switch cfg.AuthMode() {
	case config.AuthAPIKey:
		c.authToken = cfg.APIKey + ":" + cfg.APISecret
		c.http = &http.Client{Timeout: timeout, Transport: transport}
	case config.AuthBearer:
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
		base := &http.Client{Transport: transport}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		c.http = oauth2.NewClient(ctx, ts)
		c.http.Timeout = timeout
	case config.AuthSession:
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.username = cfg.Username
		c.password = cfg.Password
		c.http = &http.Client{Timeout: timeout, Transport: transport, Jar: jar}
	}

	return c, nil
}

// login establishes a cookie session for username/password auth.
func (c *Client) login(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loggedIn || c.username == "" {
		return nil
	}

	form := url.Values{}
	form.Set("usr", c.username)
	form.Set("pwd", c.password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/method/login", bytes.NewBufferString(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("frappe: login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    "login rejected",
			Method:     http.MethodPost,
			Path:       "/api/method/login",
		}
	}

	c.loggedIn = true
	c.log.Info("session established", zap.String("user", c.username))
	return nil
}

// apiEnvelope is the standard Frappe response wrapper. Resource
// endpoints answer under "data", method endpoints under "message".
type apiEnvelope struct {
	Data    json.RawMessage `json:"data"`
	Message json.RawMessage `json:"message"`
}

// apiErrorBody is the useful subset of a Frappe error response.
type apiErrorBody struct {
	Exception string `json:"exception"`
	ExcType   string `json:"exc_type"`
	Message   string `json:"message"`
}

// do performs one API request and returns the decoded envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*apiEnvelope, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	if err := c.login(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("frappe: encode request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	requestID := uuid.NewString()
	req.Header.Set("X-Request-Id", requestID)

	c.log.Debug("api request",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID))

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(method, "error")
		return nil, fmt.Errorf("frappe: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.observe(method, "error")
		return nil, fmt.Errorf("frappe: read response: %w", err)
	}

	c.observe(method, statusClass(resp.StatusCode))

	if resp.StatusCode >= 400 {
		return nil, c.apiError(resp.StatusCode, method, path, raw)
	}

	var env apiEnvelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("frappe: decode response: %w", err)
		}
	}
	return &env, nil
}

func (c *Client) apiError(status int, method, path string, raw []byte) error {
	var body apiErrorBody
	_ = json.Unmarshal(raw, &body)

	msg := body.Message
	if msg == "" {
		msg = body.Exception
	}
	if msg == "" && body.ExcType != "" {
		msg = body.ExcType
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	c.log.Warn("api error",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", status),
		zap.String("message", msg))

	return &APIError{StatusCode: status, Message: msg, Method: method, Path: path}
}

func (c *Client) observe(method, status string) {
	if c.metrics != nil {
		c.metrics.ObserveAPIRequest(method, status)
	}
}

func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

func resourcePath(doctype domain.DocType, name string) string {
	p := "/api/resource/" + url.PathEscape(string(doctype))
	if name != "" {
		p += "/" + url.PathEscape(name)
	}
	return p
}

func decodeRecord(raw json.RawMessage) (domain.Record, error) {
	if len(raw) == 0 {
		return domain.Record{}, nil
	}
	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err == nil {
		return rec, nil
	}
	// Method responses are not always objects; wrap scalars and arrays
	// so callers still get a record.
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("frappe: decode payload: %w", err)
	}
	return domain.Record{"message": v}, nil
}

// CreateDocument inserts a new document.
func (c *Client) CreateDocument(ctx context.Context, doctype domain.DocType, doc domain.Record) (domain.Record, error) {
	env, err := c.do(ctx, http.MethodPost, resourcePath(doctype, ""), nil, doc)
	if err != nil {
		return nil, err
	}
	return decodeRecord(env.Data)
}

// GetDocument fetches one document by name.
func (c *Client) GetDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	env, err := c.do(ctx, http.MethodGet, resourcePath(doctype, name), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(env.Data)
}

// UpdateDocument fetches the current document, overlays the given
// fields, and writes the whole merged document back. Writing the full
// document keeps child tables intact when the update does not touch
// them.
func (c *Client) UpdateDocument(ctx context.Context, doctype domain.DocType, name string, fields domain.Record) (domain.Record, error) {
	current, err := c.GetDocument(ctx, doctype, name)
	if err != nil {
		return nil, err
	}

	merged := current.Merge(fields)
	env, err := c.do(ctx, http.MethodPut, resourcePath(doctype, name), nil, merged)
	if err != nil {
		return nil, err
	}
	return decodeRecord(env.Data)
}

// DeleteDocument removes a document by name.
func (c *Client) DeleteDocument(ctx context.Context, doctype domain.DocType, name string) error {
	_, err := c.do(ctx, http.MethodDelete, resourcePath(doctype, name), nil, nil)
	return err
}

// SubmitDocument transitions a draft document to Submitted via the
// frappe.client.submit RPC, which expects the full document.
func (c *Client) SubmitDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	doc, err := c.GetDocument(ctx, doctype, name)
	if err != nil {
		return nil, err
	}
	return c.CallMethod(ctx, "frappe.client.submit", domain.Record{"doc": doc})
}

// CancelDocument transitions a submitted document to Cancelled.
func (c *Client) CancelDocument(ctx context.Context, doctype domain.DocType, name string) (domain.Record, error) {
	return c.CallMethod(ctx, "frappe.client.cancel", domain.Record{
		"doctype": string(doctype),
		"name":    name,
	})
}

// ListDocuments returns documents matching the filters. Filters and
// fields travel as JSON-encoded query parameters, which is how the
// resource endpoint expects them.
func (c *Client) ListDocuments(ctx context.Context, doctype domain.DocType, filters []domain.Filter, fields []string, limit int) ([]domain.Record, error) {
	query := url.Values{}

	if len(filters) > 0 {
		triplets := make([][3]any, len(filters))
		for i, f := range filters {
			triplets[i] = [3]any{f.Field, f.Operator, f.Value}
		}
		encoded, err := json.Marshal(triplets)
		if err != nil {
			return nil, fmt.Errorf("frappe: encode filters: %w", err)
		}
		query.Set("filters", string(encoded))
	}

	if len(fields) > 0 {
		encoded, err := json.Marshal(fields)
		if err != nil {
			return nil, fmt.Errorf("frappe: encode fields: %w", err)
		}
		query.Set("fields", string(encoded))
	}

	if limit > 0 {
		query.Set("limit_page_length", strconv.Itoa(limit))
	} else {
		// 0 means no page limit on the Frappe side.
		query.Set("limit_page_length", "0")
	}

	env, err := c.do(ctx, http.MethodGet, resourcePath(doctype, ""), query, nil)
	if err != nil {
		return nil, err
	}

	var records []domain.Record
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &records); err != nil {
			return nil, fmt.Errorf("frappe: decode list: %w", err)
		}
	}
	return records, nil
}

// CallMethod invokes a whitelisted server-side method.
func (c *Client) CallMethod(ctx context.Context, method string, args domain.Record) (domain.Record, error) {
	env, err := c.do(ctx, http.MethodPost, "/api/method/"+method, nil, args)
	if err != nil {
		return nil, err
	}
	return decodeRecord(env.Message)
}
