// Package client provides an HTTP client for the hbnb REST API.
package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"

	"github.com/evcraddock/hbnb/internal/api"
)

// Client is an HTTP client for the hbnb API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// ListPlaces returns the abbreviated record of every place.
func (c *Client) ListPlaces() ([]api.PlaceSummary, error) {
	var places []api.PlaceSummary
	if err := c.get("/api/v1/places", &places); err != nil {
		return nil, err
	}
	return places, nil
}

// GetPlace returns a place with its owner and amenities.
func (c *Client) GetPlace(id string) (*api.PlaceDetail, error) {
	var place api.PlaceDetail
	if err := c.get("/api/v1/places/"+url.PathEscape(id), &place); err != nil {
		return nil, err
	}
	return &place, nil
}

// ListAmenities returns every amenity.
func (c *Client) ListAmenities() ([]api.AmenityResponse, error) {
	var amenities []api.AmenityResponse
	if err := c.get("/api/v1/amenities", &amenities); err != nil {
		return nil, err
	}
	return amenities, nil
}

// ListPlaceReviews returns the reviews of a place.
func (c *Client) ListPlaceReviews(placeID string) ([]api.ReviewSummary, error) {
	var reviews []api.ReviewSummary
	if err := c.get("/api/v1/places/"+url.PathEscape(placeID)+"/reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

// get performs a GET request and decodes the response.
func (c *Client) get(path string, result any) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	return c.do(req, result)
}

// do executes an HTTP request and handles errors.
func (c *Client) do(req *http.Request, result any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp api.ErrorResponse
		if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
			return &Error{Status: resp.StatusCode, Message: errResp.Error}
		}
		return &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// Error is a failed API response.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.Status, e.Message)
}
