package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"

	tmdb "github.com/cinephile/go-tmdb"
)

var client *tmdb.Client

func init() {
	config := tmdb.DefaultClientConfig(os.Getenv("TMDB_API_KEY"))
	config.Debug = true

	var err error
	client, err = tmdb.NewClientWithConfig(&config)
	if err != nil {
		log.Fatal(err)
	}
}

func main() {
	defer client.Close()

	var methodCallers = []func() error{
		searchMovies,
		movieDetails,
		tvSeason,
		trending,
		customEndpoint,
	}

	for _, caller := range methodCallers {
		if err := caller(); err != nil {
			log.Fatal(err)
		}
	}
}

func searchMovies() error {
	const methodName = "SearchMovies"
	response, err := client.SearchMovies(context.Background(), tmdb.Params{"query": "oppenheimer"})
	if err != nil {
		message := formatMethodReturns(methodName, response, err)
		return errors.New(message)
	}

	logMethodResponse(methodName, response)
	return nil
}

func movieDetails() error {
	const methodName = "GetMovie"
	const movieID = 550
	response, err := client.GetMovie(context.Background(), movieID)
	if err != nil {
		message := formatMethodReturns(methodName, response, err)
		return errors.New(message)
	}

	logMethodResponse(methodName, response)
	return nil
}

func tvSeason() error {
	const methodName = "GetTVSeason"
	response, err := client.GetTVSeason(context.Background(), tmdb.Params{
		"id":            1399,
		"season_number": 1,
	})
	if err != nil {
		message := formatMethodReturns(methodName, response, err)
		return errors.New(message)
	}

	logMethodResponse(methodName, response)
	return nil
}

func trending() error {
	const methodName = "GetTrending"
	response, err := client.GetTrending(context.Background(), "movie", "week")
	if err != nil {
		message := formatMethodReturns(methodName, response, err)
		return errors.New(message)
	}

	logMethodResponse(methodName, response)
	return nil
}

func customEndpoint() error {
	const methodName = "Call"
	releaseDates := tmdb.Endpoint{Method: http.MethodGet, Path: "movie/:id/release_dates"}

	response := tmdb.Response{}
	if err := client.Call(context.Background(), releaseDates, 550, &response); err != nil {
		message := formatMethodReturns(methodName, response, err)
		return errors.New(message)
	}

	logMethodResponse(methodName, response)
	return nil
}
