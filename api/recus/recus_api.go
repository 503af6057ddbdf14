package recus

import "github.com/rneedle3/play-now/models"

// RecUsAPI defines the interface for interacting with the rec.us booking API
type RecUsAPI interface {
	GetLocation(locationID string) (*models.LocationResponse, error)
}
