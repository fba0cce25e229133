package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client makes REST calls to the activities backend.
type Client struct {
	baseURL string
	client  *http.Client
}

// New creates a client targeting the given base URL (e.g. "http://127.0.0.1:8000").
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a session token via POST /login.
// Credentials travel as query parameters; that is the backend's contract,
// kept as-is rather than redesigned here.
func (c *Client) Login(username, password string) (LoginResponse, error) {
	q := url.Values{}
	q.Set("username", username)
	q.Set("password", password)

	var out LoginResponse
	if err := c.do(http.MethodPost, "/login", q, &out); err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// Logout invalidates a token via POST /logout. The response body is ignored.
func (c *Client) Logout(token string) error {
	q := url.Values{}
	q.Set("token", token)
	return c.do(http.MethodPost, "/logout", q, nil)
}

// Activities fetches the full roster snapshot via GET /activities.
func (c *Client) Activities() (ActivityList, error) {
	var out ActivityList
	if err := c.do(http.MethodGet, "/activities", nil, &out); err != nil {
		return ActivityList{}, err
	}
	return out, nil
}

// Signup registers a student email for an activity. It returns the
// server's confirmation message.
func (c *Client) Signup(activity, email, token string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("token", token)

	var out actionResponse
	if err := c.do(http.MethodPost, "/activities/"+url.PathEscape(activity)+"/signup", q, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// Unregister removes a student email from an activity. It returns the
// server's confirmation message.
func (c *Client) Unregister(activity, email, token string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("token", token)

	var out actionResponse
	if err := c.do(http.MethodDelete, "/activities/"+url.PathEscape(activity)+"/unregister", q, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// do issues a request and decodes the JSON response into out (when non-nil).
// Non-2xx responses become *APIError carrying the server's detail field.
func (c *Client) do(method, path string, query url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequest(method, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode}
		body, _ := io.ReadAll(resp.Body)
		var e errorResponse
		if json.Unmarshal(body, &e) == nil {
			apiErr.Detail = e.Detail
		}
		return apiErr
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
