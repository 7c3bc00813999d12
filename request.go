package tmdb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/cinephile/go-tmdb/internal/endpoint"
)

// Params is the structured form of an endpoint's parameters. Endpoint
// methods also accept a bare scalar wherever the path template has exactly
// one placeholder, e.g. client.GetMovie(ctx, 550).
type Params = endpoint.Params

// accountPlaceholder is the literal path segment the API resolves to the
// account behind the current session.
const accountPlaceholder = "{account_id}"

// A RequestOption adjusts the assembled *http.Request just before it is
// dispatched. Options run after URL, verb and body are fixed, so they
// compose with the request rather than replace it.
type RequestOption func(*http.Request)

// WithHeader returns a RequestOption setting a single request header.
func WithHeader(key, value string) RequestOption {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// Call performs one API operation: params are normalized, merged with the
// client's credentials, compiled into ep's path template, rate limited and
// dispatched. The decoded response body is stored into payload exactly as
// the API returned it, whatever the response status code was.
func (c *Client) Call(ctx context.Context, ep Endpoint, params interface{}, payload interface{}, options ...RequestOption) error {
	request, err := c.buildRequest(ctx, ep, params, options...)
	if err != nil {
		return err
	}

	c.logger.Debug().
		Str("method", ep.Method).
		Str("url", request.URL.String()).
		Msg("dispatching request")

	return c.dispatcher.Do(ctx, func() error {
		response, err := c.netClient.Do(request)
		if err != nil {
			return err
		}

		defer response.Body.Close()
		decoder := json.NewDecoder(response.Body)
		return decoder.Decode(payload)
	})
}

func (c *Client) call(ctx context.Context, ep Endpoint, params interface{}, options ...RequestOption) (Response, error) {
	payload := Response{}
	if err := c.Call(ctx, ep, params, &payload, options...); err != nil {
		return nil, err
	}

	return payload, nil
}

func (c *Client) buildRequest(ctx context.Context, ep Endpoint, rawParams interface{}, options ...RequestOption) (*http.Request, error) {
	merged := c.withDefaultParams(ep.Path, endpoint.Normalize(ep.Path, rawParams))
	path, residual := endpoint.Compile(ep.Path, merged)

	var (
		targetURL = fmt.Sprintf("%s/%s", &c.config.APIBaseURL, path)
		body      io.Reader = http.NoBody
	)

	if ep.Method == http.MethodGet {
		if query := encodeQuery(residual); query != "" {
			targetURL = fmt.Sprintf("%s?%s", targetURL, query)
		}
	} else {
		serialized, err := json.Marshal(residual)
		if err != nil {
			return nil, err
		}

		body = bytes.NewReader(serialized)
	}

	request, err := http.NewRequestWithContext(ctx, ep.Method, targetURL, body)
	if err != nil {
		return nil, err
	}

	if ep.Method != http.MethodGet {
		request.Header.Set("Content-Type", "application/json")
	}

	for _, option := range options {
		option(request)
	}

	return request, nil
}

// withDefaultParams merges the client's credentials under the caller's
// parameters; explicit caller keys always win. When a session is live and
// the template wants an ":id" nobody supplied, the account placeholder is
// injected so account endpoints resolve to the authenticated user.
func (c *Client) withDefaultParams(template string, params Params) Params {
	sessionID := c.auth.session()

	merged := Params{"api_key": c.config.APIKey}
	if sessionID != "" {
		merged["session_id"] = sessionID
	}

	for name, value := range params {
		merged[name] = value
	}

	if _, ok := merged["id"]; !ok && sessionID != "" && hasPlaceholder(template, "id") {
		merged["id"] = accountPlaceholder
	}

	return merged
}

func hasPlaceholder(template, name string) bool {
	for _, candidate := range endpoint.Placeholders(template) {
		if candidate == name {
			return true
		}
	}

	return false
}

func encodeQuery(params Params) string {
	queryValues := url.Values{}
	for name, value := range params {
		queryValues.Set(name, endpoint.Format(value))
	}

	return queryValues.Encode()
}
