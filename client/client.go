// Package client is the Go SDK for the budget tracking API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client talks to the API. Zero value is not usable; construct with New.
// The token is attached as a bearer credential once set.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client

	Users        *UsersService
	Accounts     *AccountsService
	Categories   *CategoriesService
	Budgets      *BudgetsService
	Transactions *TransactionsService
}

func New(baseURL string) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}

	c.Users = &UsersService{client: c}
	c.Accounts = &AccountsService{client: c}
	c.Categories = &CategoriesService{client: c}
	c.Budgets = &BudgetsService{client: c}
	c.Transactions = &TransactionsService{client: c}

	return c
}

// SetToken installs the JWT used on subsequent requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// APIError is the error returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body any) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	return req, nil
}

// do issues a request and decodes the response body into T. Non-2xx
// responses become an *APIError with the server message when one can be
// decoded, falling back to the HTTP status text.
func do[T any](ctx context.Context, c *Client, method, path string, query url.Values, body any) (T, error) {
	var out T

	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return out, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return out, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, apiError(resp)
	}

	if resp.StatusCode == http.StatusNoContent {
		return out, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding response: %w", err)
	}

	return out, nil
}

func apiError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}

	var body struct {
		Message string `json:"message"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	}

	return apiErr
}

func pageQuery(q url.Values, page, limit int) url.Values {
	if q == nil {
		q = url.Values{}
	}

	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}

	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	return q
}
