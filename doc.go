/*
Package tmdb provides a typed client for version 3 of The Movie Database
(TMDb) API (https://developer.themoviedb.org/reference). The client takes
care of endpoint path templating, parameter placement, the token/session
authentication handshake and client side request throttling, and returns
each endpoint's decoded JSON payload untouched.

The general workflow for this package involves creating a client instance
like so:

	client, err := tmdb.NewClient("your-api-key")

Or if you wish to provide a custom configuration for the resulting client
this can be done in the following manner.

	parsedAPIBaseURL, _ := url.Parse(tmdb.DefaultAPIBaseURL)

	config := tmdb.ClientConfig{
		APIKey:            "your-api-key",
		APIBaseURL:        *parsedAPIBaseURL,
		RequestsPerSecond: 40,
		RequestTimeout:    time.Minute,
		Debug:             false,
	}

	client, err := tmdb.NewClientWithConfig(&config)

In most situations however it is prudent to use the default configuration
and then modify it to suit your needs.

	config := tmdb.DefaultClientConfig("your-api-key")
	config.Debug = true
	client, err := tmdb.NewClientWithConfig(&config)

With the *tmdb.Client instance instantiated you can leverage the typed
endpoint methods. Wherever an endpoint's path template has exactly one
placeholder a bare scalar may be passed in place of a parameter mapping.

	response, err := client.SearchMovies(ctx, tmdb.Params{"query": "oppenheimer"})
	...
	response, err := client.GetMovie(ctx, 550)
	...
	response, err := client.GetTVSeason(ctx, tmdb.Params{"id": 1399, "season_number": 1})

Endpoints acting on behalf of a user first need the two step
authentication handshake: an API key yields a request token, and a request
token (once approved by the user) yields a session id. The session id is
remembered by the client and merged into every subsequent request.

	token, err := client.RequestToken(ctx)
	// direct the user to approve the token, then
	sessionID, err := client.RetrieveSession(ctx)
	...
	response, err := client.RateMovie(ctx, 550, tmdb.RatingBody{Value: 8.5})
	...
	response, err := client.GetFavoriteMovies(ctx, nil)

Endpoints without a typed method can be reached through Call with an own
descriptor; the same templating, credential merging and throttling apply.

	releaseDates := tmdb.Endpoint{Method: http.MethodGet, Path: "movie/:id/release_dates"}
	payload := tmdb.Response{}
	err := client.Call(ctx, releaseDates, 550, &payload)

Every request made through one client shares its rate budget, fifty
request starts per second by default. Calls beyond the budget queue up and
start in submission order.
*/
package tmdb
