package scoring

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/strength"
	"github.com/rihenm13-code/password-checker/internal/version"
)

const (
	// DefaultBaseURL is where the scoring service listens out of the box
	DefaultBaseURL = "http://localhost:5000"

	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// CheckPath and GeneratePath are the service endpoints
	CheckPath    = "/api/check"
	GeneratePath = "/api/generate"

	// MinGenerateLength and MaxGenerateLength bound the optional length
	// parameter accepted by the generate endpoint.
	MinGenerateLength = 8
	MaxGenerateLength = 32

	// maxResponseBytes caps how much of a response body is read
	maxResponseBytes = 1 << 20
)

const (
	opCheck    = "check"
	opGenerate = "generate"
)

// Client calls the scoring service. It never retries and never caches;
// every call is one HTTP round trip.
type Client struct {
	// BaseURL is the service root (e.g., "http://localhost:5000")
	BaseURL string

	// HTTPClient is the underlying HTTP client
	HTTPClient *http.Client

	// GenerateLength requests a specific generated length (0 = service default)
	GenerateLength int

	// UserAgent is sent with every request
	UserAgent string
}

// NewClient creates a scoring client for the given base URL
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  version.UserAgent(),
	}
}

// SetTimeout sets the HTTP request timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.HTTPClient.Timeout = timeout
}

// checkRequest is the /api/check request body
type checkRequest struct {
	Password string `json:"password"`
}

// assessmentBody is the assessment part shared by both responses.
// Percentage is a pointer so a missing field is detectable.
type assessmentBody struct {
	Percentage *float64 `json:"percentage"`
	Strength   string   `json:"strength"`
	Feedback   []string `json:"feedback"`
}

// generateBody is the /api/generate response body
type generateBody struct {
	Password string `json:"password"`
	assessmentBody
}

// errorBody is what the service sends alongside 4xx responses
type errorBody struct {
	Error string `json:"error"`
}

func (b assessmentBody) toAssessment(op string) (strength.Assessment, error) {
	if b.Percentage == nil {
		return strength.Assessment{}, NewParseError(op, "response missing percentage", nil)
	}
	a, err := strength.NewAssessment(*b.Percentage, b.Strength, b.Feedback)
	if err != nil {
		return strength.Assessment{}, NewParseError(op, "invalid assessment", err)
	}
	return a, nil
}

// Check scores a candidate password
func (c *Client) Check(ctx context.Context, password string) (strength.Assessment, error) {
	if password == "" {
		return strength.Assessment{}, NewValidationError(opCheck, "password is required")
	}

	payload, err := json.Marshal(checkRequest{Password: password})
	if err != nil {
		return strength.Assessment{}, NewParseError(opCheck, "failed to encode request", err)
	}

	var body assessmentBody
	if err := c.do(ctx, opCheck, http.MethodPost, CheckPath, bytes.NewReader(payload), &body); err != nil {
		return strength.Assessment{}, err
	}
	return body.toAssessment(opCheck)
}

// Generate asks the service for a new password and its assessment
func (c *Client) Generate(ctx context.Context) (strength.GeneratedPassword, error) {
	path := GeneratePath
	if c.GenerateLength != 0 {
		if c.GenerateLength < MinGenerateLength || c.GenerateLength > MaxGenerateLength {
			return strength.GeneratedPassword{}, NewValidationError(opGenerate,
				fmt.Sprintf("length must be between %d and %d", MinGenerateLength, MaxGenerateLength))
		}
		path += "?" + url.Values{"length": {strconv.Itoa(c.GenerateLength)}}.Encode()
	}

	var body generateBody
	if err := c.do(ctx, opGenerate, http.MethodGet, path, nil, &body); err != nil {
		return strength.GeneratedPassword{}, err
	}
	if body.Password == "" {
		return strength.GeneratedPassword{}, NewParseError(opGenerate, "response missing password", nil)
	}

	a, err := body.toAssessment(opGenerate)
	if err != nil {
		return strength.GeneratedPassword{}, err
	}
	return strength.GeneratedPassword{Password: body.Password, Assessment: a}, nil
}

// do performs one request and decodes a 2xx JSON body into out
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, out any) (err error) {
	start := time.Now()
	status := 0
	defer func() {
		logging.LogServiceRequest(method, path, status, time.Since(start), err)
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return &ServiceError{Type: ErrTypeNetwork, Op: op, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return classifyTransportError(op, err)
	}
	defer func() { _ = resp.Body.Close() }()
	status = resp.StatusCode

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return classifyTransportError(op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return NewHTTPError(op, resp.StatusCode, errorMessage(resp.StatusCode, data))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return NewParseError(op, "failed to parse JSON response", err)
	}
	return nil
}

// errorMessage prefers the service's {"error": "..."} text over the status line
func errorMessage(statusCode int, data []byte) string {
	var eb errorBody
	if json.Unmarshal(data, &eb) == nil && eb.Error != "" {
		return eb.Error
	}
	return fmt.Sprintf("unexpected status code: %d", statusCode)
}
