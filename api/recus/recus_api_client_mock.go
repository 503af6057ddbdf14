package recus

import (
	"fmt"

	"github.com/rneedle3/play-now/config"
	"github.com/rneedle3/play-now/models"
	"github.com/rneedle3/play-now/util"
)

// RecUsApiClientMock embeds mocked logic for the rec.us api client
type RecUsApiClientMock struct {
}

// NewRecUsApiClientMock creates a new instance of RecUsApiClientMock
func NewRecUsApiClientMock() *RecUsApiClientMock {
	return &RecUsApiClientMock{}
}

// GetLocation returns the fixture location regardless of the requested ID.
func (c *RecUsApiClientMock) GetLocation(locationID string) (*models.LocationResponse, error) {
	response, err := util.ReadLocationResponseFromJSON(
		config.GetResourcePath(config.REC_US_LOCATION_RESPONSE_RESOURCE))
	if err != nil {
		fmt.Println("Could not read location response from json")
		return nil, err
	}
	return response, nil
}
