package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrMissingToken is returned before any request is made when the
	// caller has no platform token.
	ErrMissingToken = errors.New("missing auth token")
)

// APIError is a non-2xx answer from one of the upstream APIs
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("platform responded %d: %s", e.Status, e.Message)
}

// Auth is the operator context every authenticated call runs under
type Auth struct {
	Token     string
	UserID    uint
	AdminType string
}

func (a Auth) Valid() bool {
	return strings.TrimSpace(a.Token) != ""
}

// Config points the client at its four hosts
type Config struct {
	BaseURL          string
	RateURL          string
	CountryURL       string
	ExchangeURL      string
	ExchangeBase     string
	Timeout          time.Duration
	AudioConcurrency int
	PageLimit        int
}

// Client is the single access point to the course platform, the rate API and
// the public reference APIs
type Client struct {
	cfg    Config
	api    *resty.Client
	rates  *resty.Client
	public *resty.Client
}

// API is the process-wide client, set up in main
var API *Client

// Init builds the global client
func Init(cfg Config) {
	API = New(cfg)
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.AudioConcurrency <= 0 {
		cfg.AudioConcurrency = 4
	}
	if cfg.PageLimit <= 0 {
		cfg.PageLimit = 10
	}
	if cfg.ExchangeBase == "" {
		cfg.ExchangeBase = "BDT"
	}

	return &Client{
		cfg:    cfg,
		api:    newRestClient(cfg.BaseURL, cfg.Timeout),
		rates:  newRestClient(cfg.RateURL, cfg.Timeout),
		public: newRestClient("", cfg.Timeout),
	}
}

func newRestClient(baseURL string, timeout time.Duration) *resty.Client {
	rc := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if baseURL != "" {
		rc.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}
	return rc
}

// Page selects one page of a listing
type Page struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (c *Client) firstPage(limit int) Page {
	if limit <= 0 {
		limit = c.cfg.PageLimit
	}
	return Page{Page: 1, Limit: limit}
}

func (p Page) query() map[string]string {
	page, limit := p.Page, p.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return map[string]string{
		"page":  strconv.Itoa(page),
		"limit": strconv.Itoa(limit),
	}
}

// Upload is a file forwarded to the platform inside a multipart body
type Upload struct {
	FileName string
	Reader   io.Reader
}

func (c *Client) request(ctx context.Context, rc *resty.Client, auth Auth) (*resty.Request, error) {
	if !auth.Valid() {
		return nil, ErrMissingToken
	}
	return rc.R().SetContext(ctx).SetAuthToken(auth.Token), nil
}

func send(req *resty.Request, method, path, fallback string) ([]byte, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !resp.IsSuccess() {
		return nil, decodeError(resp.StatusCode(), resp.Body(), fallback)
	}
	return resp.Body(), nil
}

func (c *Client) getJSON(ctx context.Context, rc *resty.Client, auth Auth, path string, query map[string]string, fallback string) ([]byte, error) {
	req, err := c.request(ctx, rc, auth)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return send(req, http.MethodGet, path, fallback)
}

func (c *Client) sendJSON(ctx context.Context, rc *resty.Client, auth Auth, method, path string, body interface{}, fallback string) ([]byte, error) {
	req, err := c.request(ctx, rc, auth)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	return send(req, method, path, fallback)
}

// sendMultipart never sets Content-Type itself so the boundary is generated.
func (c *Client) sendMultipart(ctx context.Context, rc *resty.Client, auth Auth, method, path string, fields map[string]string, files map[string]*Upload, fallback string) ([]byte, error) {
	req, err := c.request(ctx, rc, auth)
	if err != nil {
		return nil, err
	}
	req.SetMultipartFormData(fields)
	for field, up := range files {
		if up == nil || up.Reader == nil {
			continue
		}
		req.SetFileReader(field, up.FileName, up.Reader)
	}
	return send(req, method, path, fallback)
}

func (c *Client) delete(ctx context.Context, rc *resty.Client, auth Auth, path, fallback string) error {
	req, err := c.request(ctx, rc, auth)
	if err != nil {
		return err
	}
	_, err = send(req, http.MethodDelete, path, fallback)
	return err
}

func (c *Client) getPublic(ctx context.Context, url string, query map[string]string) ([]byte, error) {
	req := c.public.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	return send(req, http.MethodGet, url, "Public API request failed")
}

// decodeError prefers the body's message, then its error field.
func decodeError(status int, body []byte, fallback string) *APIError {
	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	apiErr := &APIError{Status: status, Message: fallback}
	if err := json.Unmarshal(body, &payload); err != nil {
		return apiErr
	}
	for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
		var s string
		if len(raw) > 0 && json.Unmarshal(raw, &s) == nil && strings.TrimSpace(s) != "" {
			apiErr.Message = s
			return apiErr
		}
	}
	return apiErr
}

func idPath(prefix string, id uint) string {
	return prefix + "/" + strconv.FormatUint(uint64(id), 10)
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
