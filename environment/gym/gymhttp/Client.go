package gymhttp

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gymenv/environment/gym"
)

// Client is a gym.Runtime which creates environments on a remote
// Server. Requests are not retried unless the Client is created with
// WithRetries.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

// Option configures a Client
type Option func(*Client)

// WithRetries sets the number of times a request is retried after a
// connection error or a 5xx response
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.http.RetryMax = retries
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.http.HTTPClient = client
	}
}

// NewClient returns a new Client for the Server at baseURL
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrap(err, "newClient: invalid base URL")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, errors.Errorf("newClient: unsupported scheme %q in %q",
			u.Scheme, baseURL)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.Logger = nil
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Make creates a new instance of the environment name on the Server
func (c *Client) Make(name string) (gym.Handle, error) {
	var resp createResponse
	err := c.do(http.MethodPost, envsPath, createRequest{EnvID: name}, &resp)
	if err != nil {
		return nil, errors.Wrap(err, "make")
	}
	if resp.InstanceID == "" {
		return nil, errors.New("make: server returned no instance id")
	}
	return &remote{client: c, id: resp.InstanceID}, nil
}

// List returns the environment name of each instance on the Server,
// keyed by instance id
func (c *Client) List() (map[string]string, error) {
	var resp listResponse
	if err := c.do(http.MethodGet, envsPath, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "list")
	}
	return resp.AllEnvs, nil
}

// do sends a JSON request and decodes the JSON response into out
func (c *Client) do(method, path string, body, out interface{}) error {
	data, err := c.send(method, path, body)
	if err != nil || out == nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(data, out), "could not decode response")
}

// send sends a JSON request and returns the body of a successful
// response
func (c *Client) send(method, path string, body interface{}) ([]byte,
	error) {
	var reqBody interface{}
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "could not encode request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := retryablehttp.NewRequest(method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%v %v", method, path)
	}
	defer resp.Body.Close()

	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "could not read response")
	}

	if resp.StatusCode >= 400 {
		var e errorResponse
		if json.Unmarshal(data, &e) == nil && e.Message != "" {
			return nil, errors.Errorf("%v %v: %v (status %d)", method,
				path, e.Message, resp.StatusCode)
		}
		return nil, errors.Errorf("%v %v: status %d", method, path,
			resp.StatusCode)
	}
	return data, nil
}

// remote is a gym.Handle to an environment instance on a Server.
// Responses are decoded into loosely typed values so that gym.Env
// performs all type checking. A successful response which is not a
// JSON object is returned undecoded, as a json.RawMessage, so that
// gym.Env reports it as a Conversion error rather than a failed call.
type remote struct {
	client *Client
	id     string
}

func (r *remote) path(route string) string {
	return envsPath + url.PathEscape(r.id) + route
}

func (r *remote) Seed(seed int) error {
	return r.client.do(http.MethodPost, r.path(seedPath),
		seedRequest{Seed: seed}, nil)
}

// call sends a request and decodes a JSON object response. If the
// response is not a JSON object, its raw body is returned instead.
func (r *remote) call(method, route string, body interface{}) (
	map[string]interface{}, interface{}, error) {
	data, err := r.client.send(method, r.path(route), body)
	if err != nil {
		return nil, nil, err
	}

	var resp map[string]interface{}
	if err := json.Unmarshal(data, &resp); err != nil || resp == nil {
		return nil, json.RawMessage(data), nil
	}
	return resp, nil, nil
}

func (r *remote) Reset() (interface{}, error) {
	resp, raw, err := r.call(http.MethodPost, resetPath, nil)
	if err != nil || resp == nil {
		return raw, err
	}
	return resp["observation"], nil
}

func (r *remote) Step(action int) (interface{}, error) {
	resp, raw, err := r.call(http.MethodPost, stepPath,
		stepRequest{Action: action})
	if err != nil || resp == nil {
		return raw, err
	}
	return []interface{}{resp["observation"], resp["reward"], resp["done"],
		resp["info"]}, nil
}

func (r *remote) ActionSpace() (interface{}, error) {
	return r.space(actionSpacePath)
}

func (r *remote) ObservationSpace() (interface{}, error) {
	return r.space(observationSpacePath)
}

func (r *remote) space(route string) (interface{}, error) {
	resp, raw, err := r.call(http.MethodGet, route, nil)
	if err != nil || resp == nil {
		return raw, err
	}
	if info, ok := resp["info"].(map[string]interface{}); ok {
		return info, nil
	}
	return resp["info"], nil
}

// Close deletes the instance from the Server
func (r *remote) Close() error {
	return r.client.do(http.MethodPost, r.path(closePath), nil, nil)
}
