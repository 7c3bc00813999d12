package tmdb

import (
	"context"
	"net/http"

	"github.com/cinephile/go-tmdb/internal/validate"
)

// An Endpoint describes one API operation: the HTTP verb to use and the
// path template whose ":name" placeholders are filled from the call's
// parameters. Endpoints not covered by a typed method below can be reached
// by passing an own descriptor to Call.
type Endpoint struct {
	Method string
	Path   string
}

// The statically known operations exposed through typed methods. GET
// endpoints send residual parameters as the query string, POST and DELETE
// endpoints send them as a JSON body.
var (
	EndpointConfiguration         = Endpoint{http.MethodGet, "configuration"}
	EndpointSearchMovie           = Endpoint{http.MethodGet, "search/movie"}
	EndpointSearchTV              = Endpoint{http.MethodGet, "search/tv"}
	EndpointSearchPerson          = Endpoint{http.MethodGet, "search/person"}
	EndpointMovie                 = Endpoint{http.MethodGet, "movie/:id"}
	EndpointMovieCredits          = Endpoint{http.MethodGet, "movie/:id/credits"}
	EndpointMovieRecommendations  = Endpoint{http.MethodGet, "movie/:id/recommendations"}
	EndpointMovieRate             = Endpoint{http.MethodPost, "movie/:id/rating"}
	EndpointMovieUnrate           = Endpoint{http.MethodDelete, "movie/:id/rating"}
	EndpointTV                    = Endpoint{http.MethodGet, "tv/:id"}
	EndpointTVSeason              = Endpoint{http.MethodGet, "tv/:id/season/:season_number"}
	EndpointTVEpisode             = Endpoint{http.MethodGet, "tv/:id/season/:season_number/episode/:episode_number"}
	EndpointPerson                = Endpoint{http.MethodGet, "person/:id"}
	EndpointTrending              = Endpoint{http.MethodGet, "trending/:media_type/:time_window"}
	EndpointAccount               = Endpoint{http.MethodGet, "account"}
	EndpointAccountFavoriteMovies = Endpoint{http.MethodGet, "account/:id/favorite/movies"}
	EndpointAccountFavorite       = Endpoint{http.MethodPost, "account/:id/favorite"}
	EndpointAuthTokenNew          = Endpoint{http.MethodGet, "authentication/token/new"}
	EndpointAuthSessionNew        = Endpoint{http.MethodGet, "authentication/session/new"}
	EndpointAuthGuestSessionNew   = Endpoint{http.MethodGet, "authentication/guest_session/new"}
)

// Configuration returns the system wide configuration information.
func (c *Client) Configuration(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointConfiguration, params, options...)
}

// SearchMovies searches for movies; pass at least a "query" parameter.
func (c *Client) SearchMovies(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointSearchMovie, params, options...)
}

// SearchTV searches for TV shows; pass at least a "query" parameter.
func (c *Client) SearchTV(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointSearchTV, params, options...)
}

// SearchPeople searches for people; pass at least a "query" parameter.
func (c *Client) SearchPeople(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointSearchPerson, params, options...)
}

// GetMovie returns the primary information about a movie. A bare movie id
// may be passed in place of a parameter mapping.
func (c *Client) GetMovie(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointMovie, params, options...)
}

// GetMovieCredits returns the cast and crew of a movie.
func (c *Client) GetMovieCredits(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointMovieCredits, params, options...)
}

// GetMovieRecommendations returns recommended movies for a movie.
func (c *Client) GetMovieRecommendations(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointMovieRecommendations, params, options...)
}

// GetTV returns the primary information about a TV show.
func (c *Client) GetTV(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointTV, params, options...)
}

// GetTVSeason returns one season of a TV show; the mapping needs "id" and
// "season_number" keys.
func (c *Client) GetTVSeason(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointTVSeason, params, options...)
}

// GetTVEpisode returns one episode of a TV show; the mapping needs "id",
// "season_number" and "episode_number" keys.
func (c *Client) GetTVEpisode(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointTVEpisode, params, options...)
}

// GetPerson returns the primary information about a person.
func (c *Client) GetPerson(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointPerson, params, options...)
}

// GetTrending returns the trending items for a media type ("all", "movie",
// "tv" or "person") over a time window ("day" or "week").
func (c *Client) GetTrending(ctx context.Context, mediaType, timeWindow string, options ...RequestOption) (Response, error) {
	params := Params{"media_type": mediaType, "time_window": timeWindow}
	return c.call(ctx, EndpointTrending, params, options...)
}

// GetAccount returns the details of the account behind the current
// session.
func (c *Client) GetAccount(ctx context.Context, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointAccount, nil, options...)
}

// GetFavoriteMovies returns the favorite movies of an account. Without an
// explicit "id" parameter the account behind the current session is used.
func (c *Client) GetFavoriteMovies(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointAccountFavoriteMovies, params, options...)
}

// A FavoriteBody is the request payload accepted by the favorite marking
// endpoint.
type FavoriteBody struct {
	MediaType string `json:"media_type" validate:"oneof=movie tv"`
	MediaID   int    `json:"media_id"   validate:"min=1"`
	Favorite  bool   `json:"favorite"`
}

// MarkAsFavorite adds or removes a movie or TV show from the favorites of
// the account behind the current session.
func (c *Client) MarkAsFavorite(ctx context.Context, body FavoriteBody, options ...RequestOption) (Response, error) {
	if err := validate.Struct("FavoriteBody", &body); err != nil {
		return nil, err
	}

	params := Params{
		"media_type": body.MediaType,
		"media_id":   body.MediaID,
		"favorite":   body.Favorite,
	}

	return c.call(ctx, EndpointAccountFavorite, params, options...)
}

// A RatingBody is the request payload accepted by the rating endpoints.
// Ratings run from 0.5 to 10 in steps of 0.5; the API rejects values off
// that grid.
type RatingBody struct {
	Value float64 `json:"value" validate:"min=0.5,max=10"`
}

// RateMovie posts a rating for a movie.
func (c *Client) RateMovie(ctx context.Context, movieID int, body RatingBody, options ...RequestOption) (Response, error) {
	if err := validate.Struct("RatingBody", &body); err != nil {
		return nil, err
	}

	params := Params{"id": movieID, "value": body.Value}
	return c.call(ctx, EndpointMovieRate, params, options...)
}

// DeleteMovieRating removes a previously posted rating for a movie. A bare
// movie id may be passed in place of a parameter mapping.
func (c *Client) DeleteMovieRating(ctx context.Context, params interface{}, options ...RequestOption) (Response, error) {
	return c.call(ctx, EndpointMovieUnrate, params, options...)
}
