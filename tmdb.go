package tmdb

import (
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/cinephile/go-tmdb/internal/throttle"
	"github.com/cinephile/go-tmdb/internal/validate"
)

const (
	// DefaultAPIBaseURL is the origin and version path against which
	// endpoint templates are resolved.
	DefaultAPIBaseURL = "https://api.themoviedb.org/3"

	// DefaultRequestsPerSecond is the client side ceiling on how many
	// requests may be started per second.
	DefaultRequestsPerSecond = 50

	defaultRequestTimeout = time.Second * 30
)

// A ClientConfig collects every tunable of a Client. Zero values for
// APIKey or RequestsPerSecond fail validation; construct one through
// DefaultClientConfig and override what you need.
type ClientConfig struct {
	APIKey            string `validate:"required"`
	APIBaseURL        url.URL
	RequestsPerSecond int `validate:"min=1"`
	RequestTimeout    time.Duration
	Debug             bool
}

// DefaultClientConfig returns the stock configuration for the given API
// key: the production API origin, 50 requests per second and a 30 second
// request timeout.
func DefaultClientConfig(apiKey string) ClientConfig {
	parsedAPIBaseURL, _ := url.Parse(DefaultAPIBaseURL)
	return ClientConfig{
		APIKey:            apiKey,
		APIBaseURL:        *parsedAPIBaseURL,
		RequestsPerSecond: DefaultRequestsPerSecond,
		RequestTimeout:    defaultRequestTimeout,
		Debug:             false,
	}
}

// A Client issues typed calls against the API. Every call made through one
// Client shares its rate budget and its credential state; distinct Client
// instances are fully independent.
type Client struct {
	config     ClientConfig
	netClient  *http.Client
	dispatcher *throttle.Dispatcher
	logger     zerolog.Logger
	auth       authState
}

// NewClient returns a Client with the default configuration for the
// provided API key.
func NewClient(apiKey string) (*Client, error) {
	config := DefaultClientConfig(apiKey)
	return NewClientWithConfig(&config)
}

// NewClientWithConfig validates the provided configuration and returns a
// Client built from it.
func NewClientWithConfig(config *ClientConfig) (*Client, error) {
	if err := validate.Struct("ClientConfig", config); err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if config.Debug {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			With().
			Timestamp().
			Str("component", "tmdb").
			Logger()
	}

	return &Client{
		config:     *config,
		netClient:  &http.Client{Timeout: config.RequestTimeout},
		dispatcher: throttle.New(config.RequestsPerSecond),
		logger:     logger,
	}, nil
}

// Close stops the client's dispatcher. Calls made after Close fail with
// throttle.ErrClosed.
func (c *Client) Close() {
	c.dispatcher.Close()
}
