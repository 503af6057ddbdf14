package recus

import (
	"net/url"

	"github.com/rneedle3/play-now/api"
	"github.com/rneedle3/play-now/models"
)

// RecUsApiClient embeds the common HTTPClient
type RecUsApiClient struct {
	*api.HTTPClient
}

// NewRecUsApiClient creates a new instance of RecUsApiClient
func NewRecUsApiClient(httpClient *api.HTTPClient) *RecUsApiClient {
	return &RecUsApiClient{
		HTTPClient: httpClient,
	}
}

// GetLocation retrieves a location with its courts and per-court
// availability. The vendor rejects requests without browser-ish headers.
func (c *RecUsApiClient) GetLocation(locationID string) (*models.LocationResponse, error) {
	query := url.Values{}
	query.Set("publishedSites", "true")

	headers := map[string]string{
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
		"Accept":     "application/json",
		"Origin":     "https://www.rec.us",
		"Referer":    "https://www.rec.us/",
	}

	var response models.LocationResponse
	err := c.Request("GET", "/locations/"+locationID, query, headers, nil, &response)
	if err != nil {
		return nil, err
	}
	return &response, nil
}
