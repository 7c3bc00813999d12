package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/cinephile/go-tmdb/internal/throttle"
	"github.com/cinephile/go-tmdb/internal/validate"
)

type capturedRequest struct {
	method string
	path   string
	query  url.Values
	body   []byte
}

type captureHandler struct {
	mu       sync.Mutex
	payload  interface{}
	status   int
	captured []capturedRequest
}

func (h *captureHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	h.mu.Lock()
	h.captured = append(h.captured, capturedRequest{r.Method, r.URL.Path, r.URL.Query(), body})
	h.mu.Unlock()

	if h.status != 0 {
		w.WriteHeader(h.status)
	}

	serialized, _ := json.Marshal(h.payload)
	fmt.Fprintf(w, "%s", serialized)
}

func (h *captureHandler) last(t *testing.T) capturedRequest {
	t.Helper()
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.captured) == 0 {
		t.Fatal("expected at least one request to have reached the test server")
	}

	return h.captured[len(h.captured)-1]
}

func getServerClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	parsedBaseURL, err := url.Parse(server.URL)
	if err != nil {
		t.Fatalf("received error %s parsing server URL, expected %v", err, nil)
	}

	config := DefaultClientConfig("test-api-key")
	config.APIBaseURL = *parsedBaseURL
	client, err := NewClientWithConfig(&config)
	if err != nil {
		t.Fatalf("received error %s creating client, expected %v", err, nil)
	}

	t.Cleanup(client.Close)
	return client
}

func TestNewClientWithConfig(t *testing.T) {
	t.Run("returns error if no API key is provided", func(t *testing.T) {
		expected := &validate.StructValidationError{
			Struct:   "ClientConfig",
			Field:    "APIKey",
			Tag:      "required",
			Value:    "",
			Expected: "",
		}
		_, received := NewClient("")
		if received == nil || received.Error() != expected.Error() {
			t.Errorf("received error %v, but expected %v", received, expected)
		}
	})

	t.Run("returns error if the request rate is not positive", func(t *testing.T) {
		config := DefaultClientConfig("test-api-key")
		config.RequestsPerSecond = 0
		_, received := NewClientWithConfig(&config)
		if received == nil {
			t.Errorf("received %v, but expected a validation error", received)
		}
	})

	t.Run("returns a client for a valid configuration", func(t *testing.T) {
		client, err := NewClient("test-api-key")
		if err != nil {
			t.Fatalf("received error %s, expected %v", err, nil)
		}

		defer client.Close()
		if client.config.RequestsPerSecond != DefaultRequestsPerSecond {
			t.Errorf(
				"received requests per second %d, but expected %d",
				client.config.RequestsPerSecond,
				DefaultRequestsPerSecond,
			)
		}
	})
}

func TestCall(t *testing.T) {
	t.Run("resolves a scalar argument against the endpoint template", func(t *testing.T) {
		handler := &captureHandler{payload: map[string]interface{}{"id": 550, "title": "Fight Club"}}
		client := getServerClient(t, handler)

		received, err := client.GetMovie(context.TODO(), 550)
		if err != nil {
			t.Fatalf("received error %s, expected %v", err, nil)
		}

		request := handler.last(t)
		if request.path != "/movie/550" {
			t.Errorf(`received path %s, but expected "/movie/550"`, request.path)
		}

		if received["title"] != "Fight Club" {
			t.Errorf(`received title %v, but expected "Fight Club"`, received["title"])
		}
	})

	t.Run("sends POST parameters as a JSON body including merged credentials", func(t *testing.T) {
		handler := &captureHandler{payload: map[string]interface{}{"status_code": 1}}
		client := getServerClient(t, handler)
		client.auth.setSession("test-session")

		_, err := client.MarkAsFavorite(context.TODO(), FavoriteBody{
			MediaType: "movie",
			MediaID:   550,
			Favorite:  true,
		})
		if err != nil {
			t.Fatalf("received error %s, expected %v", err, nil)
		}

		request := handler.last(t)
		if request.method != http.MethodPost {
			t.Errorf(`received method %s, but expected "%s"`, request.method, http.MethodPost)
		}

		if request.path != "/account/{account_id}/favorite" {
			t.Errorf(`received path %s, but expected "/account/{account_id}/favorite"`, request.path)
		}

		if len(request.query) != 0 {
			t.Errorf("received query %v, but expected no query string", request.query)
		}

		body := map[string]interface{}{}
		if err := json.Unmarshal(request.body, &body); err != nil {
			t.Fatalf("received error %s decoding body, expected %v", err, nil)
		}

		for _, key := range []string{"api_key", "session_id", "media_type", "media_id", "favorite"} {
			if _, ok := body[key]; !ok {
				t.Errorf("received body %v, but expected it to carry %q", body, key)
			}
		}
	})

	t.Run("returns decoded payloads regardless of the response status code", func(t *testing.T) {
		payload := map[string]interface{}{"status_code": float64(7), "status_message": "Invalid API key"}
		handler := &captureHandler{payload: payload, status: http.StatusUnauthorized}
		client := getServerClient(t, handler)

		received, err := client.GetMovie(context.TODO(), 550)
		if err != nil {
			t.Fatalf("received error %s, expected %v", err, nil)
		}

		if received["status_code"] != payload["status_code"] {
			t.Errorf("received payload %v, but expected %v", received, payload)
		}
	})

	t.Run("returns errors from failing transports as-is", func(t *testing.T) {
		config := DefaultClientConfig("test-api-key")
		parsedBaseURL, _ := url.Parse("http://127.0.0.1:1")
		config.APIBaseURL = *parsedBaseURL
		client, err := NewClientWithConfig(&config)
		if err != nil {
			t.Fatalf("received error %s creating client, expected %v", err, nil)
		}

		defer client.Close()
		if _, received := client.GetMovie(context.TODO(), 550); received == nil {
			t.Error("received nil, but expected a transport error")
		}
	})

	t.Run("fails with ErrClosed once the client is closed", func(t *testing.T) {
		client := getTestClient(t)
		client.Close()

		_, received := client.GetMovie(context.TODO(), 550)
		if !errors.Is(received, throttle.ErrClosed) {
			t.Errorf("received error %v, but expected %v", received, throttle.ErrClosed)
		}
	})
}

func TestRateMovie(t *testing.T) {
	t.Run("returns error if the rating value fails validation", func(t *testing.T) {
		client := getTestClient(t)
		expected := &validate.StructValidationError{
			Struct:   "RatingBody",
			Field:    "Value",
			Tag:      "min",
			Value:    float64(0),
			Expected: "0.5",
		}

		_, received := client.RateMovie(context.TODO(), 550, RatingBody{})
		if received == nil || received.Error() != expected.Error() {
			t.Errorf("received error %v, but expected %v", received, expected)
		}
	})

	t.Run("posts the rating to the movie's rating endpoint", func(t *testing.T) {
		handler := &captureHandler{payload: map[string]interface{}{"status_code": 1}}
		client := getServerClient(t, handler)

		_, err := client.RateMovie(context.TODO(), 550, RatingBody{Value: 8.5})
		if err != nil {
			t.Fatalf("received error %s, expected %v", err, nil)
		}

		request := handler.last(t)
		if request.path != "/movie/550/rating" {
			t.Errorf(`received path %s, but expected "/movie/550/rating"`, request.path)
		}

		body := map[string]interface{}{}
		if err := json.Unmarshal(request.body, &body); err != nil {
			t.Fatalf("received error %s decoding body, expected %v", err, nil)
		}

		if body["value"] != 8.5 {
			t.Errorf("received value %v, but expected %v", body["value"], 8.5)
		}
	})
}
