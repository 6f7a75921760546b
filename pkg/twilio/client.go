package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Version is the vanity-recon release, sent in the User-Agent header.
const Version = "0.1.0"

const (
	defaultBaseURL = "https://api.twilio.com"
	apiVersion     = "2010-04-01"
	defaultTimeout = 30 * time.Second
)

// Client is a minimal Twilio REST client for the available phone numbers API.
// Requests are authenticated with HTTP basic auth (account SID and auth token).
// Failed requests are not retried.
type Client struct {
	accountSID string
	authToken  string
	baseURL    string
	httpClient *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API host, e.g. a test server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithTimeout sets the overall timeout of a single request.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a new Twilio API client bound to the given account credentials.
// The client is configured with connection pooling and a 30 second request timeout.
func NewClient(accountSID, authToken string, opts ...ClientOption) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 5,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		accountSID: accountSID,
		authToken:  authToken,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{
			Timeout:   defaultTimeout,
			Transport: transport,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListAvailableLocal lists local numbers available for provisioning in the given
// country (ISO code, e.g. "US"), filtered by params.
func (c *Client) ListAvailableLocal(ctx context.Context, country string, params LocalParams) (*AvailableNumbersResponse, error) {
	endpoint := fmt.Sprintf("%s/%s/Accounts/%s/AvailablePhoneNumbers/%s/Local.json",
		c.baseURL, apiVersion, url.PathEscape(c.accountSID), url.PathEscape(strings.ToUpper(country)))

	query := url.Values{}
	if params.AreaCode != "" {
		query.Set("AreaCode", params.AreaCode)
	}
	if params.Contains != "" {
		query.Set("Contains", params.Contains)
	}
	if params.SMSEnabled {
		query.Set("SmsEnabled", "true")
	}
	if params.VoiceEnabled {
		query.Set("VoiceEnabled", "true")
	}
	if params.PageSize > 0 {
		query.Set("PageSize", strconv.Itoa(params.PageSize))
	}
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.addAuthHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, body)
	}

	var numbersResp AvailableNumbersResponse
	if err := json.Unmarshal(body, &numbersResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &numbersResp, nil
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("User-Agent", "vanity-recon/"+Version)
	req.Header.Set("Accept", "application/json")
}

// parseAPIError converts an error response into an *APIError, using Twilio's JSON
// error document when present and the raw body otherwise.
func parseAPIError(status int, body []byte) error {
	apiErr := &APIError{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr = &APIError{Message: strings.TrimSpace(string(body))}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	apiErr.Status = status

	return apiErr
}
