// Package geocoder resolves free-text addresses to coordinates through
// a Yandex-style HTTP geocoding provider.
package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/foodcart/restorank/internal/models"
)

var (
	// ErrProviderUnavailable covers network-level failures and
	// non-success HTTP statuses from the provider.
	ErrProviderUnavailable = errors.New("geocoding provider unavailable")

	// ErrNoResultsFound means the provider returned an empty
	// candidate list for the address.
	ErrNoResultsFound = errors.New("no geocoding results found")

	// ErrMalformedResponse means the provider payload did not match
	// the expected shape or the position string failed to parse.
	ErrMalformedResponse = errors.New("malformed geocoding response")
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

func NewClient(cfg models.GeocoderConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
	}
}

// yandexResponse mirrors the provider payload. Only the position of
// each candidate is consumed.
type yandexResponse struct {
	Response struct {
		GeoObjectCollection struct {
			FeatureMember []struct {
				GeoObject struct {
					Point struct {
						Pos string `json:"pos"`
					} `json:"Point"`
				} `json:"GeoObject"`
			} `json:"featureMember"`
		} `json:"GeoObjectCollection"`
	} `json:"response"`
}

// Geocode resolves address to a coordinate pair. The provider returns
// candidates ordered by relevance; the first one is always taken.
func (c *Client) Geocode(ctx context.Context, address string) (models.Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return models.Location{}, fmt.Errorf("building geocode request: %w", err)
	}

	query := url.Values{}
	query.Set("geocode", address)
	query.Set("apikey", c.apiKey)
	query.Set("format", "json")
	req.URL.RawQuery = query.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Location{}, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var payload yandexResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Location{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	candidates := payload.Response.GeoObjectCollection.FeatureMember
	if len(candidates) == 0 {
		return models.Location{}, fmt.Errorf("%w: address %q", ErrNoResultsFound, address)
	}

	return parsePos(candidates[0].GeoObject.Point.Pos)
}

// parsePos parses the provider position string "<lon> <lat>".
// The provider orders longitude first.
func parsePos(pos string) (models.Location, error) {
	fields := strings.Fields(pos)
	if len(fields) != 2 {
		return models.Location{}, fmt.Errorf("%w: pos %q", ErrMalformedResponse, pos)
	}

	lon, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: longitude %q", ErrMalformedResponse, fields[0])
	}
	lat, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return models.Location{}, fmt.Errorf("%w: latitude %q", ErrMalformedResponse, fields[1])
	}

	return models.Location{Lat: lat, Lon: lon}, nil
}
